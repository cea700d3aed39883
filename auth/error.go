package auth

import "errors"

// Credential failures.
// A guarded route answers each with the same generic 401.
var (
	ErrMissingCredential = errors.New("auth: missing bearer credential")
	ErrMalformedToken    = errors.New("auth: malformed token")
	ErrExpiredToken      = errors.New("auth: token expired")
	ErrInvalidSignature  = errors.New("auth: invalid token signature")
	ErrUserNotFound      = errors.New("auth: user not found")
)

// Login failures.
var (
	ErrOAuthCodeInvalid    = errors.New("auth: authorization code rejected")
	ErrOAuthExchangeFailed = errors.New("auth: oauth exchange failed")
	ErrProfileIncomplete   = errors.New("auth: identity provider profile incomplete")
	ErrPersistence         = errors.New("auth: persistence failure")
)
