package habits

import "time"

// ChallengeDays is the length of every Challenge.
const ChallengeDays = 30

// ChallengeStatus is the lifecycle state of a Challenge.
type ChallengeStatus string

const (
	ChallengeActive    ChallengeStatus = "active"
	ChallengeCompleted ChallengeStatus = "completed"
	ChallengeAbandoned ChallengeStatus = "abandoned"
)

func (cs ChallengeStatus) String() string { return string(cs) }

// Valid asserts whether cs is a known ChallengeStatus.
//
// Valid implements Enumerable.
func (cs ChallengeStatus) Valid() error {
	switch cs {
	case ChallengeActive, ChallengeCompleted, ChallengeAbandoned:
		return nil
	default:
		return ErrNotValid
	}
}

// A Challenge is a 30-day period during which a User tracks their Habits.
//
// A Challenge belongs to a User.
// A Challenge has many Habits.
type Challenge struct {
	Model
	UserID    string          `gorm:"index;not null;type:varchar(36)" json:"userId"`
	StartDate time.Time       `gorm:"not null" json:"startDate"`
	EndDate   time.Time       `gorm:"not null" json:"endDate"`
	Status    ChallengeStatus `gorm:"not null;default:active" json:"status"`

	// Associations
	Habits []Habit `json:"habits"`
}

// NewChallenge constructs an active Challenge for the User starting at start
// and ending ChallengeDays later.
func NewChallenge(userID string, start time.Time) Challenge {
	return Challenge{
		UserID:    userID,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, ChallengeDays),
		Status:    ChallengeActive,
	}
}
