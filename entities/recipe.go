package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Recipe struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Title          string         `gorm:"not null" json:"title"`
	Description    string         `gorm:"type:text" json:"description,omitempty"`
	Ingredients    pq.StringArray `gorm:"type:text[];not null" json:"ingredients"`
	Instructions   pq.StringArray `gorm:"type:text[];not null" json:"instructions"`
	Difficulty     string         `json:"difficulty,omitempty"`
	CookingTime    int            `json:"cooking_time,omitempty"`
	Category       string         `gorm:"index" json:"category,omitempty"`
	CoverImagePath string         `json:"cover_image_path,omitempty"`
	CreatedAt      time.Time      `gorm:"type:timestamp" json:"created_at"`

	User *Profile `gorm:"foreignKey:UserID" json:"-"`
}
