package habits

import (
	"errors"
	"fmt"
)

var (
	ErrBadConfig      = errors.New("bad config")
	ErrBadFormat      = errors.New("bad format")
	ErrExists         = errors.New("already exists")
	ErrMissingData    = errors.New("missing data")
	ErrNotFound       = errors.New("not found")
	ErrNotImplemented = errors.New("not implemented")
	ErrNotValid       = errors.New("invalid")
	ErrUnaddressable  = errors.New("unaddressable value")
	ErrUnexpected     = errors.New("unexpected")
)

// Domain rule violations.
// Each wraps ErrNotValid.
var (
	ErrHabitLimit       = fmt.Errorf("%w: maximum of %d habits per challenge", ErrNotValid, MaxActiveHabits)
	ErrFutureEntry      = fmt.Errorf("%w: cannot create entries for future dates", ErrNotValid)
	ErrEntryBeforeStart = fmt.Errorf("%w: cannot create entries before the challenge start date", ErrNotValid)
	ErrEntryAfterEnd    = fmt.Errorf("%w: cannot create entries after the challenge end date", ErrNotValid)
)
