package entities

import (
	"github.com/google/uuid"
)

// Comment keeps updated_at equal to created_at until the first edit,
// which is how clients detect the "edited" state.
type Comment struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	RecipeID uuid.UUID `gorm:"type:uuid;not null;index" json:"recipe_id"`
	Content  string    `gorm:"type:text;not null" json:"content"`

	User   *Profile `gorm:"foreignKey:UserID" json:"-"`
	Recipe *Recipe  `gorm:"foreignKey:RecipeID" json:"-"`

	Timestamp
}
