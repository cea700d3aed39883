package habits

import (
	"fmt"
	"time"
)

// A DailyEntry records a User's progress on a Habit for one day.
// A Habit has at most one DailyEntry per day.
//
// A DailyEntry belongs to a Habit.
type DailyEntry struct {
	Model
	HabitID   string    `gorm:"uniqueIndex:idx_daily_entries_habit_date;not null;type:varchar(36)" json:"habitId"`
	Date      time.Time `gorm:"uniqueIndex:idx_daily_entries_habit_date;not null" json:"date"`
	Completed bool      `gorm:"not null;default:false" json:"completed"`
	Count     *int      `json:"count"`
}

// NormalizeDate truncates t to midnight UTC of the day t falls on in UTC.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD formatted day into midnight UTC
// or an RFC 3339 timestamp as is.
func ParseDate(val string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, val); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.RFC3339, val)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is neither YYYY-MM-DD nor RFC 3339", ErrBadFormat, val)
	}

	return t, nil
}

// ValidateEntryDate asserts a DailyEntry can be recorded on date for the Challenge,
// given the current time now.
// All times are compared as days, per NormalizeDate.
//
// ValidateEntryDate returns ErrFutureEntry when date is after now,
// ErrEntryBeforeStart when date precedes the Challenge
// and ErrEntryAfterEnd when date follows it.
func ValidateEntryDate(date time.Time, c Challenge, now time.Time) error {
	date = NormalizeDate(date)
	switch {
	case date.After(NormalizeDate(now)):
		return ErrFutureEntry
	case date.Before(NormalizeDate(c.StartDate)):
		return ErrEntryBeforeStart
	case date.After(NormalizeDate(c.EndDate)):
		return ErrEntryAfterEnd
	default:
		return nil
	}
}
