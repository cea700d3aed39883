package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/xy-planning-network/habits"
)

// An EntryStore persists the DailyEntries of Habits.
// Every operation is scoped to the User owning the Habit.
type EntryStore struct {
	db *DB
}

// NewEntryStore constructs an EntryStore.
func NewEntryStore(db *DB) *EntryStore { return &EntryStore{db: db} }

// ownedHabits is a subquery selecting the IDs of the Habits of the User's Challenges.
func ownedHabits(db *DB, userID string) *DB {
	return db.Model(new(habits.Habit)).Select("id").Where("challenge_id IN (?)", ownedChallenges(db, userID))
}

// ListForHabit returns the DailyEntries of the Habit identified by habitID, newest first.
// A non-zero start or end bounds the days returned, inclusively.
func (s *EntryStore) ListForHabit(ctx context.Context, userID, habitID string, start, end time.Time) ([]habits.DailyEntry, error) {
	if _, err := NewHabitStore(s.db).FindForUser(ctx, userID, habitID); err != nil {
		return nil, err
	}

	q := s.db.WithContext(ctx).Where("habit_id = ?", habitID)
	if !start.IsZero() {
		q = q.Where("date >= ?", habits.NormalizeDate(start))
	}

	if !end.IsZero() {
		q = q.Where("date <= ?", habits.NormalizeDate(end))
	}

	entries := make([]habits.DailyEntry, 0)
	if err := q.Order("date DESC").Find(&entries); err != nil && !errors.Is(err, habits.ErrNotFound) {
		return nil, err
	}

	return entries, nil
}

// Upsert records e for the day e.Date falls on,
// replacing the completion and count of any DailyEntry already recorded that day.
// e.Date is normalized to midnight UTC.
func (s *EntryStore) Upsert(ctx context.Context, e *habits.DailyEntry) error {
	e.Date = habits.NormalizeDate(e.Date)

	return s.db.WithContext(ctx).Transaction(func(tx *DB) error {
		var existing habits.DailyEntry
		err := tx.Where("habit_id = ?", e.HabitID).Where("date = ?", e.Date).First(&existing)
		switch {
		case errors.Is(err, habits.ErrNotFound):
			return tx.Create(e)

		case err != nil:
			return err
		}

		err = tx.Model(&existing).Update(Updates{
			"completed": e.Completed,
			"count":     e.Count,
		})
		if err != nil {
			return err
		}

		existing.Completed = e.Completed
		existing.Count = e.Count
		*e = existing
		return nil
	})
}

// ListForChallengeDate returns the DailyEntries recorded on date
// for the active Habits of the User's Challenge identified by challengeID.
func (s *EntryStore) ListForChallengeDate(ctx context.Context, userID, challengeID string, date time.Time) ([]habits.DailyEntry, error) {
	db := s.db.WithContext(ctx)

	ok, err := db.Model(new(habits.Challenge)).Where("id = ?", challengeID).Where("user_id = ?", userID).Exists()
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, habits.ErrNotFound
	}

	active := db.Model(new(habits.Habit)).
		Select("id").
		Where("challenge_id = ?", challengeID).
		Where("is_active = ?", true)

	entries := make([]habits.DailyEntry, 0)
	err = db.Where("habit_id IN (?)", active).Where("date = ?", habits.NormalizeDate(date)).Find(&entries)
	if err != nil && !errors.Is(err, habits.ErrNotFound) {
		return nil, err
	}

	return entries, nil
}

// FindForUser returns the DailyEntry identified by id.
// A DailyEntry of another User's Habit is not found.
func (s *EntryStore) FindForUser(ctx context.Context, userID, id string) (habits.DailyEntry, error) {
	db := s.db.WithContext(ctx)

	var e habits.DailyEntry
	if err := db.Where("id = ?", id).Where("habit_id IN (?)", ownedHabits(db, userID)).First(&e); err != nil {
		return habits.DailyEntry{}, err
	}

	return e, nil
}

// Update applies the non-nil values of updates to the DailyEntry identified by id.
func (s *EntryStore) Update(ctx context.Context, userID, id string, updates Updates) (habits.DailyEntry, error) {
	updates.StripNils()
	if len(updates) > 0 {
		db := s.db.WithContext(ctx)
		err := db.Model(new(habits.DailyEntry)).
			Where("id = ?", id).
			Where("habit_id IN (?)", ownedHabits(db, userID)).
			Update(updates)
		if err != nil {
			return habits.DailyEntry{}, err
		}
	}

	return s.FindForUser(ctx, userID, id)
}

// DeleteForUser deletes the DailyEntry identified by id.
func (s *EntryStore) DeleteForUser(ctx context.Context, userID, id string) error {
	db := s.db.WithContext(ctx)
	return db.Where("id = ?", id).Where("habit_id IN (?)", ownedHabits(db, userID)).Delete(new(habits.DailyEntry))
}
