package entities

import (
	"github.com/google/uuid"
)

type Chef struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"uniqueIndex" json:"name"`
	Bio       string    `json:"bio,omitempty"`
	BirthYear int       `json:"birth_year"`

	Timestamp
}
