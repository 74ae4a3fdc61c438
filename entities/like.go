package entities

import (
	"time"

	"github.com/google/uuid"
)

// Like is a join row between Profile and Recipe. The composite primary
// key keeps at most one like per (user, recipe) pair.
type Like struct {
	UserID    uuid.UUID `gorm:"type:uuid;primary_key" json:"user_id"`
	RecipeID  uuid.UUID `gorm:"type:uuid;primary_key;index" json:"recipe_id"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	User   *Profile `gorm:"foreignKey:UserID" json:"-"`
	Recipe *Recipe  `gorm:"foreignKey:RecipeID" json:"-"`
}
