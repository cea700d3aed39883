package postgres

import (
	"database/sql/driver"
	"fmt"

	"github.com/xy-planning-network/habits"
)

// Updates maps column names to the values an UPDATE sets them to.
type Updates map[string]any

func (u Updates) valid() error {
	if len(u) == 0 {
		return fmt.Errorf("%w: no columns set", habits.ErrMissingData)
	}

	return nil
}

// StripNils drops the columns a partial update leaves alone:
// nil values, nil pointers, driver.Valuers yielding NULL and invalid habits.Enumerables.
// Non-nil *bool, *int and *string values are dereferenced.
func (u Updates) StripNils() {
	for col, v := range u {
		if val, ok := settable(v); ok {
			u[col] = val
		} else {
			delete(u, col)
		}
	}
}

func settable(v any) (any, bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case *bool:
		return deref(t)
	case *int:
		return deref(t)
	case *string:
		return deref(t)
	case driver.Valuer:
		val, err := t.Value()
		return v, err == nil && val != nil
	case habits.Enumerable:
		return v, t.Valid() == nil
	default:
		return v, true
	}
}

func deref[T any](p *T) (any, bool) {
	if p == nil {
		return nil, false
	}

	return *p, true
}
