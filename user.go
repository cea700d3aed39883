package habits

import "strings"

// A User is the identity anchor of the habits API.
//
// A User is provisioned on their first successful Google login
// and refreshed with their Google profile on every login after.
// The application never hard deletes a User.
//
// A User has many Challenges.
type User struct {
	Model
	Email    string  `gorm:"uniqueIndex;not null" json:"email"`
	Name     string  `gorm:"not null" json:"name"`
	Picture  *string `json:"picture"`
	GoogleID string  `gorm:"uniqueIndex;not null" json:"-"`
}

// GetID returns the User's ID.
func (u User) GetID() string { return u.ID }

// GetEmail returns the User's email address.
func (u User) GetEmail() string { return u.Email }

// IsAdmin asserts whether the User's email is one of admins, ignoring case.
func (u User) IsAdmin(admins []string) bool {
	for _, email := range admins {
		if email != "" && strings.EqualFold(email, u.Email) {
			return true
		}
	}

	return false
}
