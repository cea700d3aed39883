package habits

// MaxActiveHabits is the most active Habits a Challenge can track at once.
const MaxActiveHabits = 10

// HabitType distinguishes Habits completed once a day from those counted towards a target.
type HabitType string

const (
	HabitBinary  HabitType = "binary"
	HabitCounted HabitType = "counted"
)

func (ht HabitType) String() string { return string(ht) }

// Valid asserts whether ht is a known HabitType.
//
// Valid implements Enumerable.
func (ht HabitType) Valid() error {
	switch ht {
	case HabitBinary, HabitCounted:
		return nil
	default:
		return ErrNotValid
	}
}

// A Habit is something a User does, or avoids, every day of a Challenge.
//
// Deleting a Habit archives it by setting IsActive false,
// keeping its DailyEntries.
//
// A Habit belongs to a Challenge.
// A Habit has many DailyEntries.
type Habit struct {
	Model
	ChallengeID   string    `gorm:"index;not null;type:varchar(36)" json:"challengeId"`
	Name          string    `gorm:"not null" json:"name"`
	Type          HabitType `gorm:"not null" json:"type"`
	TargetCount   *int      `json:"targetCount"`
	PreferredTime *string   `json:"preferredTime"`
	Icon          *string   `json:"icon"`
	Order         int       `gorm:"column:sort_order;not null;default:0" json:"order"`
	IsActive      bool      `gorm:"not null;default:true" json:"isActive"`
	TemplateID    *string   `json:"templateId"`
}
