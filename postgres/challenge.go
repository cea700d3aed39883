package postgres

import (
	"context"
	"errors"

	"github.com/xy-planning-network/habits"
)

// A ChallengeStore persists the Challenges of Users.
// Every operation is scoped to the User owning the Challenge.
type ChallengeStore struct {
	db *DB
}

// NewChallengeStore constructs a ChallengeStore.
func NewChallengeStore(db *DB) *ChallengeStore { return &ChallengeStore{db: db} }

func habitsInOrder(dbx *DB) *DB { return dbx.Order("sort_order ASC").Order("created_at ASC") }

// ListForUser returns the User's Challenges, newest first,
// each with its Habits in order.
func (s *ChallengeStore) ListForUser(ctx context.Context, userID string) ([]habits.Challenge, error) {
	challenges := make([]habits.Challenge, 0)
	err := s.db.WithContext(ctx).
		Preload("Habits", habitsInOrder).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&challenges)
	if err != nil && !errors.Is(err, habits.ErrNotFound) {
		return nil, err
	}

	return challenges, nil
}

// Create inserts c.
func (s *ChallengeStore) Create(ctx context.Context, c *habits.Challenge) error {
	if c.Habits == nil {
		c.Habits = make([]habits.Habit, 0)
	}

	return s.db.WithContext(ctx).Create(c)
}

// FindForUser returns the Challenge identified by id with its Habits in order.
// A Challenge owned by another User is not found.
func (s *ChallengeStore) FindForUser(ctx context.Context, userID, id string) (habits.Challenge, error) {
	var c habits.Challenge
	err := s.db.WithContext(ctx).
		Preload("Habits", habitsInOrder).
		Where("id = ?", id).
		Where("user_id = ?", userID).
		First(&c)
	if err != nil {
		return habits.Challenge{}, err
	}

	return c, nil
}

// UpdateStatus moves the Challenge identified by id to status.
func (s *ChallengeStore) UpdateStatus(ctx context.Context, userID, id string, status habits.ChallengeStatus) (habits.Challenge, error) {
	if err := status.Valid(); err != nil {
		return habits.Challenge{}, err
	}

	err := s.db.WithContext(ctx).
		Model(new(habits.Challenge)).
		Where("id = ?", id).
		Where("user_id = ?", userID).
		Update(Updates{"status": status})
	if err != nil {
		return habits.Challenge{}, err
	}

	return s.FindForUser(ctx, userID, id)
}

// DeleteForUser deletes the Challenge identified by id,
// its Habits and their DailyEntries in a single transaction.
func (s *ChallengeStore) DeleteForUser(ctx context.Context, userID, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *DB) error {
		var c habits.Challenge
		if err := tx.Where("id = ?", id).Where("user_id = ?", userID).First(&c); err != nil {
			return err
		}

		habitIDs := tx.Model(new(habits.Habit)).Select("id").Where("challenge_id = ?", c.ID)
		err := tx.Where("habit_id IN (?)", habitIDs).Delete(new(habits.DailyEntry))
		if err != nil && !errors.Is(err, habits.ErrNotFound) {
			return err
		}

		err = tx.Where("challenge_id = ?", c.ID).Delete(new(habits.Habit))
		if err != nil && !errors.Is(err, habits.ErrNotFound) {
			return err
		}

		return tx.Where("id = ?", c.ID).Delete(new(habits.Challenge))
	})
}
