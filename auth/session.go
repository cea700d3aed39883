package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/xy-planning-network/habits"
)

// An Issuer turns a verified Profile into a session for the User it belongs to.
type Issuer struct {
	codec *TokenCodec
	store UserStore
	ttl   time.Duration
}

// NewIssuer constructs an Issuer whose session tokens last for ttl.
func NewIssuer(codec *TokenCodec, store UserStore, ttl time.Duration) *Issuer {
	return &Issuer{codec: codec, store: store, ttl: ttl}
}

// Login provisions the User p identifies, or refreshes it with p,
// and issues a session token for them.
//
// Logging in with the same Profile.Subject always resolves to the same User.
// Login returns ErrProfileIncomplete if p is not valid
// and ErrPersistence if the User could not be saved.
func (iss *Issuer) Login(ctx context.Context, p Profile) (habits.User, string, error) {
	if err := p.Valid(); err != nil {
		return habits.User{}, "", err
	}

	u, err := iss.store.UpsertFromGoogle(ctx, p.User())
	if err != nil {
		return habits.User{}, "", fmt.Errorf("%w: %s", ErrPersistence, err)
	}

	token, err := iss.codec.Issue(u.ID, iss.ttl)
	if err != nil {
		return habits.User{}, "", err
	}

	return u, token, nil
}
