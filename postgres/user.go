package postgres

import (
	"context"
	"errors"

	"github.com/xy-planning-network/habits"
)

// A UserStore persists Users.
type UserStore struct {
	db *DB
}

// NewUserStore constructs a UserStore.
func NewUserStore(db *DB) *UserStore { return &UserStore{db: db} }

// FindByID returns the User identified by id.
func (s *UserStore) FindByID(ctx context.Context, id string) (habits.User, error) {
	var u habits.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&u); err != nil {
		return habits.User{}, err
	}

	return u, nil
}

// FindByGoogleID returns the User identified by the Google subject googleID.
func (s *UserStore) FindByGoogleID(ctx context.Context, googleID string) (habits.User, error) {
	var u habits.User
	if err := s.db.WithContext(ctx).Where("google_id = ?", googleID).First(&u); err != nil {
		return habits.User{}, err
	}

	return u, nil
}

// UpsertFromGoogle creates the User identified by u.GoogleID
// or refreshes the email, name and picture of the existing one,
// in a single transaction.
//
// When a concurrent login creates the same User first,
// UpsertFromGoogle retries once and refreshes that User instead.
func (s *UserStore) UpsertFromGoogle(ctx context.Context, u habits.User) (habits.User, error) {
	saved, err := s.upsertFromGoogle(ctx, u)
	if errors.Is(err, habits.ErrExists) {
		saved, err = s.upsertFromGoogle(ctx, u)
	}
	if err != nil {
		return habits.User{}, err
	}

	return saved, nil
}

func (s *UserStore) upsertFromGoogle(ctx context.Context, u habits.User) (habits.User, error) {
	var saved habits.User
	err := s.db.WithContext(ctx).Transaction(func(tx *DB) error {
		err := tx.Where("google_id = ?", u.GoogleID).First(&saved)
		switch {
		case errors.Is(err, habits.ErrNotFound):
			saved = habits.User{
				Email:    u.Email,
				Name:     u.Name,
				Picture:  u.Picture,
				GoogleID: u.GoogleID,
			}
			return tx.Create(&saved)

		case err != nil:
			return err
		}

		if err := tx.Model(&saved).Update(Updates{
			"email":   u.Email,
			"name":    u.Name,
			"picture": u.Picture,
		}); err != nil {
			return err
		}

		saved.Email = u.Email
		saved.Name = u.Name
		saved.Picture = u.Picture
		return nil
	})

	return saved, err
}

// UpdateName renames the User identified by id.
func (s *UserStore) UpdateName(ctx context.Context, id, name string) (habits.User, error) {
	db := s.db.WithContext(ctx)
	if err := db.Model(new(habits.User)).Where("id = ?", id).Update(Updates{"name": name}); err != nil {
		return habits.User{}, err
	}

	return s.FindByID(ctx, id)
}

// List returns every User, newest first.
func (s *UserStore) List(ctx context.Context) ([]habits.User, error) {
	users := make([]habits.User, 0)
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&users)
	if err != nil && !errors.Is(err, habits.ErrNotFound) {
		return nil, err
	}

	return users, nil
}

// Paged returns a page of Users, newest first.
func (s *UserStore) Paged(ctx context.Context, page, perPage int64) (PagedData, error) {
	return s.db.WithContext(ctx).Model(new(habits.User)).Order("created_at DESC").Paged(page, perPage)
}

// Count returns the number of Users.
func (s *UserStore) Count(ctx context.Context) (int64, error) {
	return s.db.WithContext(ctx).Model(new(habits.User)).Count()
}
