package postgres

import (
	"context"
	"errors"

	"github.com/xy-planning-network/habits"
)

// A HabitStore persists the Habits of Challenges.
// Every operation is scoped to the User owning the Challenge.
type HabitStore struct {
	db *DB
}

// NewHabitStore constructs a HabitStore.
func NewHabitStore(db *DB) *HabitStore { return &HabitStore{db: db} }

// ownedChallenges is a subquery selecting the IDs of the User's Challenges.
func ownedChallenges(db *DB, userID string) *DB {
	return db.Model(new(habits.Challenge)).Select("id").Where("user_id = ?", userID)
}

// ListForChallenge returns the Habits of the User's Challenge identified by challengeID in order.
// Archived Habits are included.
func (s *HabitStore) ListForChallenge(ctx context.Context, userID, challengeID string) ([]habits.Habit, error) {
	db := s.db.WithContext(ctx)
	if _, err := NewChallengeStore(s.db).FindForUser(ctx, userID, challengeID); err != nil {
		return nil, err
	}

	list := make([]habits.Habit, 0)
	err := db.Where("challenge_id = ?", challengeID).Order("sort_order ASC").Order("created_at ASC").Find(&list)
	if err != nil && !errors.Is(err, habits.ErrNotFound) {
		return nil, err
	}

	return list, nil
}

// Create inserts h into the User's Challenge identified by h.ChallengeID.
//
// A Challenge tracks at most MaxActiveHabits active Habits,
// so Create returns ErrHabitLimit for one more.
// When h.Order is zero, h is ordered after the existing active Habits.
func (s *HabitStore) Create(ctx context.Context, userID string, h *habits.Habit) error {
	return s.db.WithContext(ctx).Transaction(func(tx *DB) error {
		ok, err := tx.Model(new(habits.Challenge)).
			Where("id = ?", h.ChallengeID).
			Where("user_id = ?", userID).
			Exists()
		if err != nil {
			return err
		}

		if !ok {
			return habits.ErrNotFound
		}

		active, err := tx.Model(new(habits.Habit)).
			Where("challenge_id = ?", h.ChallengeID).
			Where("is_active = ?", true).
			Count()
		if err != nil {
			return err
		}

		if active >= habits.MaxActiveHabits {
			return habits.ErrHabitLimit
		}

		if h.Order == 0 {
			h.Order = int(active)
		}

		h.IsActive = true
		return tx.Create(h)
	})
}

// FindForUser returns the Habit identified by id.
// A Habit of another User's Challenge is not found.
func (s *HabitStore) FindForUser(ctx context.Context, userID, id string) (habits.Habit, error) {
	db := s.db.WithContext(ctx)

	var h habits.Habit
	err := db.Where("id = ?", id).Where("challenge_id IN (?)", ownedChallenges(db, userID)).First(&h)
	if err != nil {
		return habits.Habit{}, err
	}

	return h, nil
}

// Update applies the non-nil values of updates to the Habit identified by id.
func (s *HabitStore) Update(ctx context.Context, userID, id string, updates Updates) (habits.Habit, error) {
	updates.StripNils()
	if len(updates) > 0 {
		db := s.db.WithContext(ctx)
		err := db.Model(new(habits.Habit)).
			Where("id = ?", id).
			Where("challenge_id IN (?)", ownedChallenges(db, userID)).
			Update(updates)
		if err != nil {
			return habits.Habit{}, err
		}
	}

	return s.FindForUser(ctx, userID, id)
}

// Archive deactivates the Habit identified by id, keeping its DailyEntries.
func (s *HabitStore) Archive(ctx context.Context, userID, id string) error {
	db := s.db.WithContext(ctx)
	return db.Model(new(habits.Habit)).
		Where("id = ?", id).
		Where("challenge_id IN (?)", ownedChallenges(db, userID)).
		Update(Updates{"is_active": false})
}

// Count returns the number of Habits across every Challenge.
func (s *HabitStore) Count(ctx context.Context) (int64, error) {
	return s.db.WithContext(ctx).Model(new(habits.Habit)).Count()
}
