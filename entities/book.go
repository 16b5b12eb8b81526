package entities

import (
	"github.com/google/uuid"
)

type Book struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Title         string    `json:"title"`
	AuthorID      uuid.UUID `json:"author_id"`
	PublishedYear int       `json:"published_year"`
	Genres        []string  `gorm:"serializer:json" json:"genres"`
	Description   string    `json:"description,omitempty"`
	ImageURL      string    `json:"image_url,omitempty"`
	AddedByID     uuid.UUID `json:"added_by_id"`

	Author  *Author `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	AddedBy *User   `gorm:"foreignKey:AddedByID" json:"added_by,omitempty"`
	Timestamp
}
