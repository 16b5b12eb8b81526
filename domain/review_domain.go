package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddReview  = "review added successfully"
	MessageSuccessGetReviews = "success get reviews"
	MessageFailedAddReview   = "failed to add review"
	MessageFailedGetReviews  = "failed to get reviews"

	ErrInvalidRating       = errors.New("rating must be a number between 1 and 4")
	ErrEmptyReviewText     = errors.New("review text is required")
	ErrReviewAlreadyExists = errors.New("you already reviewed this recipe")
)

type (
	AddReviewRequest struct {
		Rating int    `json:"rating"`
		Text   string `json:"text"`
	}

	ReviewerResponse struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}

	ReviewResponse struct {
		ID        string           `json:"id"`
		RecipeID  string           `json:"recipe_id"`
		Rating    int              `json:"rating"`
		Text      string           `json:"text"`
		Reviewer  ReviewerResponse `json:"reviewer"`
		CreatedAt time.Time        `json:"created_at"`
	}
)
