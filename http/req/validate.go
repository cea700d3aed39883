package req

import (
	"errors"
	"reflect"
	"strings"

	v10 "github.com/go-playground/validator/v10"

	"github.com/xy-planning-network/habits"
)

type validator struct {
	valid *v10.Validate
}

// newValidator constructs a validator reporting fields by their json or schema names
// and understanding the "enum" rule.
func newValidator() validator {
	v := v10.New()
	v.RegisterValidation("enum", validateEnumerable)
	v.RegisterTagNameFunc(fieldName)

	return validator{v}
}

// fieldName is the name a client knows field by:
// its json tag, else its schema tag, else nothing.
func fieldName(field reflect.StructField) string {
	for _, key := range []string{"json", "schema"} {
		name, _, _ := strings.Cut(field.Tag.Get(key), ",")
		if name != "" && name != "-" {
			return name
		}
	}

	return ""
}

// validate checks the fields on structPtr match the rules set by "validate" struct tags.
// Each broken rule becomes a ValidationError, returned together as ValidationErrors.
func (v validator) validate(structPtr any) error {
	err := v.valid.Struct(structPtr)

	var fieldErrs v10.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := make(ValidationErrors, len(fieldErrs))
	for i, fe := range fieldErrs {
		errs[i] = newValidationError(fe)
	}

	return errs
}

// newValidationError describes fe with the field's path below the top-level struct
// and a rule like "max=255; string".
func newValidationError(fe v10.FieldError) ValidationError {
	field := fe.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}

	rule := fe.Tag()
	if fe.Param() != "" {
		rule += "=" + fe.Param()
	}

	return ValidationError{
		Field: field,
		Got:   fe.Value(),
		Rule:  rule + "; " + fe.Type().String(),
	}
}

// validateEnumerable passes a valid habits.Enumerable or a non-empty slice of them.
func validateEnumerable(fl v10.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.Slice {
		return isValidEnum(field)
	}

	if field.Len() == 0 {
		return false
	}

	for i := 0; i < field.Len(); i++ {
		if !isValidEnum(field.Index(i)) {
			return false
		}
	}

	return true
}

func isValidEnum(val reflect.Value) bool {
	if !val.IsValid() || !val.CanInterface() {
		return false
	}

	enum, ok := val.Interface().(habits.Enumerable)
	return ok && enum.Valid() == nil
}
