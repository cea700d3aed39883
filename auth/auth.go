package auth

import (
	"context"

	"github.com/xy-planning-network/habits"
)

// An Exchanger trades an OAuth authorization code for the Profile of the person who granted it.
type Exchanger interface {
	Exchange(ctx context.Context, code, redirectURI string) (Profile, error)
}

// A UserStore persists the Users that log in.
type UserStore interface {
	// FindByID returns the User identified by id
	// or an error wrapping habits.ErrNotFound.
	FindByID(ctx context.Context, id string) (habits.User, error)

	// UpsertFromGoogle creates the User identified by u.GoogleID
	// or refreshes its email, name and picture,
	// in a single transaction.
	UpsertFromGoogle(ctx context.Context, u habits.User) (habits.User, error)
}

// A Profile is what the identity provider knows about the person logging in.
type Profile struct {
	Subject string
	Email   string
	Name    string
	Picture string
}

// Valid asserts the Profile identifies someone.
// Valid returns ErrProfileIncomplete if Subject or Email is missing.
func (p Profile) Valid() error {
	if p.Subject == "" || p.Email == "" {
		return ErrProfileIncomplete
	}

	return nil
}

// User maps the Profile onto the fields of a User it owns.
func (p Profile) User() habits.User {
	u := habits.User{
		Email:    p.Email,
		Name:     p.Name,
		GoogleID: p.Subject,
	}

	if u.Name == "" {
		u.Name = p.Email
	}

	if p.Picture != "" {
		pic := p.Picture
		u.Picture = &pic
	}

	return u
}
