package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetAuthors      = "success get authors"
	MessageSuccessGetAuthorDetail = "success get author detail"
	MessageSuccessCreateAuthor    = "author created successfully"
	MessageSuccessUpdateAuthor    = "author updated successfully"
	MessageSuccessDeleteAuthor    = "author deleted successfully"
	MessageFailedGetAuthors       = "failed to get authors"
	MessageFailedGetAuthorDetail  = "failed to get author detail"
	MessageFailedCreateAuthor     = "failed to create author"
	MessageFailedUpdateAuthor     = "failed to update author"
	MessageFailedDeleteAuthor     = "failed to delete author"

	ErrAuthorNotFound          = errors.New("author not found")
	ErrAuthorNameTaken         = errors.New("author name already taken")
	ErrAuthorBirthYearRequired = errors.New("author not found and birth year is required to create a new author")
	ErrAuthorNoFieldsToUpdate  = errors.New("at least one field is required")
)

type (
	CreateAuthorRequest struct {
		Name      string `json:"name" validate:"required"`
		Bio       string `json:"bio"`
		BirthYear int    `json:"birth_year" validate:"required"`
	}

	UpdateAuthorRequest struct {
		Name      string `json:"name"`
		Bio       string `json:"bio"`
		BirthYear int    `json:"birth_year"`
	}

	AuthorResponse struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Bio       string    `json:"bio,omitempty"`
		BirthYear int       `json:"birth_year"`
		CreatedAt time.Time `json:"created_at"`
	}

	AuthorDetailResponse struct {
		AuthorResponse
		Books []BookResponse `json:"books"`
	}
)
