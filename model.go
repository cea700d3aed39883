package habits

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// A Model is the essential data points for UUID-keyed records,
// indicating when a record was created and last updated.
type Model struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Exists asserts whether the record was loaded from or saved to the database.
func (m Model) Exists() bool { return !m.CreatedAt.IsZero() }

// BeforeCreate assigns a random UUID to m when no ID is set.
//
// BeforeCreate implements GORM's BeforeCreateInterface.
func (m *Model) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}

	return nil
}
