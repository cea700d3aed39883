package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/xy-planning-network/habits"
)

// A TokenCodec issues and verifies the session tokens of the habits API.
type TokenCodec struct {
	key    []byte
	now    func() time.Time
	parser *jwt.Parser
}

// A CodecOptFn configures a TokenCodec when constructing a new one.
type CodecOptFn func(*TokenCodec)

// WithClock sets the source of the current time a TokenCodec issues and verifies tokens against.
func WithClock(now func() time.Time) CodecOptFn {
	return func(c *TokenCodec) {
		c.now = now
	}
}

// NewTokenCodec constructs a TokenCodec signing with secret.
func NewTokenCodec(secret string, opts ...CodecOptFn) (*TokenCodec, error) {
	if secret == "" {
		return nil, fmt.Errorf(`%w: token secret cannot be ""`, habits.ErrBadConfig)
	}

	c := &TokenCodec{
		key: []byte(secret),
		now: time.Now,

		// NOTE(dlk): expiry is checked against c.now rather than the jwt package's global clock
		parser: &jwt.Parser{
			ValidMethods:         []string{jwt.SigningMethodHS256.Alg()},
			SkipClaimsValidation: true,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Issue signs a token identifying userID that expires after ttl.
func (c *TokenCodec) Issue(userID string, ttl time.Duration) (string, error) {
	if userID == "" {
		return "", fmt.Errorf("%w: cannot issue a token without a subject", habits.ErrMissingData)
	}

	now := c.now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiry(now, ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.key)
	if err != nil {
		return "", fmt.Errorf("%w: %s", habits.ErrUnexpected, err)
	}

	return signed, nil
}

// expiry is now plus ttl rounded up to the whole second exp is encoded with,
// so a positive ttl never yields a token already expired at now.
func expiry(now time.Time, ttl time.Duration) time.Time {
	exp := now.Add(ttl)
	if ttl <= 0 {
		return exp
	}

	if whole := exp.Truncate(jwt.TimePrecision); !whole.Equal(exp) {
		return whole.Add(jwt.TimePrecision)
	}

	return exp
}

// Verify returns the ID of the User token identifies.
//
// Verify returns ErrInvalidSignature if token was not signed with HS256 by this TokenCodec's secret,
// ErrExpiredToken if token has expired
// and ErrMalformedToken if token cannot be read or lacks a subject or expiry.
func (c *TokenCodec) Verify(token string) (string, error) {
	claims := new(jwt.RegisteredClaims)
	_, err := c.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return c.key, nil
	})

	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "", ErrInvalidSignature
	default:
		return "", ErrMalformedToken
	}

	if claims.Subject == "" || claims.ExpiresAt == nil {
		return "", ErrMalformedToken
	}

	if !claims.VerifyExpiresAt(c.now(), true) {
		return "", ErrExpiredToken
	}

	return claims.Subject, nil
}
