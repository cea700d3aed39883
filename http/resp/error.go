package resp

import "errors"

var (
	// ErrDone signals the client went away before a response could be written.
	ErrDone = errors.New("request context done")

	// ErrInvalid marks a Fn given a value it cannot use, like a relative URL.
	ErrInvalid = errors.New("invalid response option")

	// ErrMissingData marks a response missing something it needs, like a redirect URL.
	ErrMissingData = errors.New("missing response data")

	// ErrNoUser signals no User was authenticated for the request.
	ErrNoUser = errors.New("no current user")
)
