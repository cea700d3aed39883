package req

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xy-planning-network/habits"
)

// A ValidationError names a field whose value broke one of the rules set on it.
type ValidationError struct {
	Field string `json:"field"`
	Got   any    `json:"got"`
	Rule  string `json:"rule,omitempty"`
}

func (ve ValidationError) String() string {
	return fmt.Sprintf("field=%q rule=%q got=%q", ve.Field, ve.Rule, fmt.Sprint(ve.Got))
}

// ValidationErrors collects every ValidationError found in one request.
// It unwraps to habits.ErrNotValid.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var b strings.Builder
	for i, ve := range v {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(ve.String())
	}

	return b.String()
}

// MarshalJSON lists v under "validationErrors", omitted when v is empty.
func (v ValidationErrors) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Errors []ValidationError `json:"validationErrors,omitempty"`
	}{v})
}

func (ValidationErrors) Unwrap() error { return habits.ErrNotValid }
