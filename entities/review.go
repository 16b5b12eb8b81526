package entities

import (
	"github.com/google/uuid"
)

type Review struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RecipeID   uuid.UUID `gorm:"uniqueIndex:idx_recipe_reviewer" json:"recipe_id"`
	ReviewerID uuid.UUID `gorm:"uniqueIndex:idx_recipe_reviewer" json:"reviewer_id"`
	Rating     int       `json:"rating"`
	Text       string    `json:"text"`

	Recipe   *Recipe `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
	Reviewer *User   `gorm:"foreignKey:ReviewerID" json:"reviewer,omitempty"`
	Timestamp
}
