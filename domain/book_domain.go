package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessGetBooks      = "success get books"
	MessageSuccessGetBookDetail = "success get book detail"
	MessageSuccessCreateBook    = "book created successfully"
	MessageSuccessUpdateBook    = "book updated successfully"
	MessageSuccessDeleteBook    = "book deleted successfully"
	MessageSuccessUploadBookImg = "book image uploaded successfully"
	MessageFailedGetBooks       = "failed to get books"
	MessageFailedGetBookDetail  = "failed to get book detail"
	MessageFailedCreateBook     = "failed to create book"
	MessageFailedUpdateBook     = "failed to update book"
	MessageFailedDeleteBook     = "failed to delete book"
	MessageFailedUploadBookImg  = "failed to upload book image"

	ErrBookNotFound = errors.New("book not found")
	ErrNotBookOwner = errors.New("you are not authorized to modify a book you haven't created")
)

type (
	CreateBookRequest struct {
		Title           string   `json:"title" validate:"required"`
		Author          string   `json:"author" validate:"required"`
		PublishedYear   int      `json:"published_year" validate:"required"`
		Genres          []string `json:"genres"`
		Description     string   `json:"description"`
		AuthorBirthYear *int     `json:"author_birth_year"`
	}

	UpdateBookRequest struct {
		Title         string   `json:"title"`
		Author        string   `json:"author"`
		PublishedYear int      `json:"published_year"`
		Genres        []string `json:"genres"`
		Description   string   `json:"description"`
	}

	UploadBookImageRequest struct {
		Image *multipart.FileHeader `validate:"required"`
	}

	BookRef struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	BookResponse struct {
		ID            string    `json:"id"`
		Title         string    `json:"title"`
		Author        *BookRef  `json:"author,omitempty"`
		PublishedYear int       `json:"published_year"`
		Genres        []string  `json:"genres"`
		Description   string    `json:"description,omitempty"`
		ImageURL      string    `json:"image_url,omitempty"`
		AddedBy       *BookRef  `json:"added_by,omitempty"`
		CreatedAt     time.Time `json:"created_at"`
	}
)
