package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/xy-planning-network/habits"
)

const bearerScheme = "bearer"

// A Guard resolves the bearer credential of a request into the User it identifies.
type Guard struct {
	codec *TokenCodec
	store UserStore
}

// NewGuard constructs a Guard.
func NewGuard(codec *TokenCodec, store UserStore) *Guard {
	return &Guard{codec: codec, store: store}
}

// Authenticate returns the User identified by the session token in header,
// the value of an Authorization header.
//
// Authenticate returns ErrMissingCredential if header is not of the form "Bearer <token>",
// any error of TokenCodec.Verify,
// ErrUserNotFound if the User no longer exists
// and ErrPersistence if the User could not be loaded.
func (g *Guard) Authenticate(ctx context.Context, header string) (habits.User, error) {
	token, err := bearerToken(header)
	if err != nil {
		return habits.User{}, err
	}

	id, err := g.codec.Verify(token)
	if err != nil {
		return habits.User{}, err
	}

	u, err := g.store.FindByID(ctx, id)
	switch {
	case errors.Is(err, habits.ErrNotFound):
		return habits.User{}, ErrUserNotFound
	case err != nil:
		return habits.User{}, fmt.Errorf("%w: %s", ErrPersistence, err)
	}

	return u, nil
}

// bearerToken parses the token out of the value of an Authorization header.
// The scheme is case-insensitive.
func bearerToken(header string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, bearerScheme) {
		return "", ErrMissingCredential
	}

	token = strings.TrimSpace(token)
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", ErrMissingCredential
	}

	return token, nil
}
