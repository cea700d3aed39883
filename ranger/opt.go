package ranger

import (
	"fmt"
	"time"

	"github.com/xy-planning-network/habits/auth"
	"github.com/xy-planning-network/habits/logger"
	"github.com/xy-planning-network/habits/postgres"
)

// A RangerOption configures a *Ranger under construction,
// replacing a component New would otherwise build from the Config.
type RangerOption func(rng *Ranger) error

// WithClock sets the function the Ranger's token codec and handlers read the time from.
func WithClock(now func() time.Time) RangerOption {
	return func(rng *Ranger) error {
		if now == nil {
			return fmt.Errorf("nil clock")
		}

		rng.now = now
		return nil
	}
}

// WithDB exposes the provided *postgres.DB to the habits API.
//
// WithDB assumes a connection has already been established
// and the schema migrated; New neither connects nor migrates.
func WithDB(db *postgres.DB) RangerOption {
	return func(rng *Ranger) error {
		if db == nil {
			return fmt.Errorf("nil db")
		}

		rng.db = db
		return nil
	}
}

// WithExchanger replaces the Google exchanger used when logging in.
func WithExchanger(ex auth.Exchanger) RangerOption {
	return func(rng *Ranger) error {
		if ex == nil {
			return fmt.Errorf("nil exchanger")
		}

		rng.ex = ex
		return nil
	}
}

// WithLogger exposes the provided logger.Logger to the habits API.
func WithLogger(l logger.Logger) RangerOption {
	return func(rng *Ranger) error {
		if l == nil {
			return fmt.Errorf("nil logger")
		}

		rng.l = l
		return nil
	}
}
