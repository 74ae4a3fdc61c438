package entities

import (
	"github.com/google/uuid"
)

// Profile mirrors one row per authenticated identity. The ID is the
// identity provider's user ID, never generated locally.
type Profile struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Username *string   `gorm:"uniqueIndex" json:"username,omitempty"`
	FullName string    `gorm:"not null" json:"full_name"`
	Email    string    `gorm:"not null;index" json:"email"`
	Bio      string    `gorm:"type:text" json:"bio,omitempty"`

	Timestamp
}
