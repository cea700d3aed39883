package postgres

import (
	"errors"
	"fmt"
	"regexp"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"github.com/xy-planning-network/habits"
)

var (
	// Raised by database/sql while scanning rows.
	errSQLScan          = regexp.MustCompile(`sql: expected \d+ destination arguments in Scan, not \d+`)
	errSQLUnaddressable = regexp.MustCompile(`sql: Scan error on column index \d+, name "\w+": destination not a pointer`)

	// PG Docs: https://www.postgresql.org/docs/current/errcodes-appendix.html
	// The SQLite forms match the in-memory databases tests run against.
	errSQLSyntax           = regexp.MustCompile(`SQLSTATE (42601|22P02)|syntax error`)
	errConstraintViolation = regexp.MustCompile(`SQLSTATE (23502|23514)|(NOT NULL|CHECK) constraint failed`)
	errFKViolation         = regexp.MustCompile(`SQLSTATE 23503|FOREIGN KEY constraint failed`)
	errUniqViolation       = regexp.MustCompile(`SQLSTATE 23505|UNIQUE constraint failed`)

	errNilArg = errors.New("nil arg")
)

// safeGORMSession clones the statement of a *gorm.DB
// so chaining off of it never mutates the original.
var safeGORMSession = &gorm.Session{}

// translate maps err, raised while doing op with value, onto a habits sentinel error.
//
//	record not found                      habits.ErrNotFound
//	not a table                           habits.ErrMissingData
//	unique violation                      habits.ErrExists
//	FK, NOT NULL, CHECK or syntax issue   habits.ErrNotValid
//	scan into the wrong destination       habits.ErrNotValid
//	scan into a non-pointer               habits.ErrUnaddressable
//	anything else                         habits.ErrUnexpected
func translate(err error, op string, value any) error {
	if err == nil {
		return nil
	}

	msg := err.Error()
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %T", habits.ErrNotFound, value)

	case errors.Is(err, schema.ErrUnsupportedDataType), errors.Is(err, gorm.ErrInvalidData):
		return fmt.Errorf("%w: %T is not a database table", habits.ErrMissingData, value)

	case errUniqViolation.MatchString(msg):
		return fmt.Errorf("%w: %s", habits.ErrExists, err)

	case errFKViolation.MatchString(msg),
		errConstraintViolation.MatchString(msg),
		errSQLSyntax.MatchString(msg):
		return fmt.Errorf("%w: %s", habits.ErrNotValid, err)

	case errSQLScan.MatchString(msg):
		return fmt.Errorf("%w: %T cannot be scanned into", habits.ErrNotValid, value)

	case errSQLUnaddressable.MatchString(msg):
		return fmt.Errorf("%w: %s", habits.ErrUnaddressable, err)

	default:
		return fmt.Errorf("%w: failed %s %T: %s", habits.ErrUnexpected, op, value, err)
	}
}
