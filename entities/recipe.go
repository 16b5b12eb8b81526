package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Title         string    `json:"title"`
	ChefID        uuid.UUID `json:"chef_id"`
	PublishedYear int       `json:"published_year"`
	Categories    []string  `gorm:"serializer:json" json:"categories"`
	Description   string    `json:"description,omitempty"`
	Ingredients   []string  `gorm:"serializer:json" json:"ingredients"`
	ImageURL      string    `json:"image_url,omitempty"`
	AddedByID     uuid.UUID `json:"added_by_id"`

	Chef    *Chef `gorm:"foreignKey:ChefID" json:"chef,omitempty"`
	AddedBy *User `gorm:"foreignKey:AddedByID" json:"added_by,omitempty"`
	Timestamp
}
