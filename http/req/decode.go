package req

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/gorilla/schema"

	"github.com/xy-planning-network/habits"
)

var timeType = reflect.TypeOf(time.Time{})

func newQueryParamDecoder() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	dec.RegisterConverter(time.Time{}, convertDate)

	return dec
}

// convertDate accepts YYYY-MM-DD or RFC 3339.
// Anything else yields the zero reflect.Value, surfacing as a schema.ConversionError.
func convertDate(val string) reflect.Value {
	if t, err := habits.ParseDate(val); err == nil {
		return reflect.ValueOf(t)
	}

	return reflect.Value{}
}

// translateDecoderError sorts the errors of a *schema.Decoder into
// ValidationErrors the client can act on and errors in how calling code uses this package.
func translateDecoderError(err error) error {
	var multi schema.MultiError
	if !errors.As(err, &multi) {
		return fmt.Errorf("%w: %s", habits.ErrBadFormat, err)
	}

	verrs := make(ValidationErrors, 0, len(multi))
	for _, e := range multi {
		ve, err := decoderValidationError(e)
		if err != nil {
			return err
		}

		verrs = append(verrs, ve)
	}

	return verrs
}

func decoderValidationError(err error) (ValidationError, error) {
	switch e := err.(type) {
	case schema.ConversionError:
		rule := "must be " + e.Type.String()
		if e.Type == timeType {
			rule = "must be YYYY-MM-DD or RFC 3339"
		}

		// NOTE(dlk): Index is -1 for scalar fields.
		return ValidationError{Field: e.Key, Got: fmt.Sprintf("bad value at index %d", max(0, e.Index)), Rule: rule}, nil

	case schema.UnknownKeyError:
		// NOTE(dlk): unreachable while the decoder ignores unknown keys.
		return ValidationError{Field: e.Key, Got: "value is set", Rule: "unexpected key should not be set"}, nil

	case schema.EmptyFieldError:
		return ValidationError{}, fmt.Errorf(`%w: use validate pkg to set "required" fields, not schema`, habits.ErrNotImplemented)
	}

	if strings.Contains(err.Error(), "converter not found for") {
		return ValidationError{}, fmt.Errorf("%w: cannot convert values into unsupported type", habits.ErrNotImplemented)
	}

	return ValidationError{}, fmt.Errorf("%w: %s", habits.ErrUnexpected, err)
}
