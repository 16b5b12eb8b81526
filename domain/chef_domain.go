package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetChefs      = "success get chefs"
	MessageSuccessGetChefDetail = "success get chef detail"
	MessageSuccessCreateChef    = "chef created successfully"
	MessageSuccessUpdateChef    = "chef updated successfully"
	MessageSuccessDeleteChef    = "chef deleted successfully"
	MessageFailedGetChefs       = "failed to get chefs"
	MessageFailedGetChefDetail  = "failed to get chef detail"
	MessageFailedCreateChef     = "failed to create chef"
	MessageFailedUpdateChef     = "failed to update chef"
	MessageFailedDeleteChef     = "failed to delete chef"

	ErrChefNotFound          = errors.New("chef not found")
	ErrChefNameTaken         = errors.New("chef name already taken")
	ErrChefBirthYearRequired = errors.New("chef not found and birth year is required to create a new chef")
	ErrChefNoFieldsToUpdate  = errors.New("at least one field is required")
)

type (
	CreateChefRequest struct {
		Name      string `json:"name" validate:"required"`
		Bio       string `json:"bio"`
		BirthYear int    `json:"birth_year" validate:"required"`
	}

	UpdateChefRequest struct {
		Name      string `json:"name"`
		Bio       string `json:"bio"`
		BirthYear int    `json:"birth_year"`
	}

	ChefResponse struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Bio       string    `json:"bio,omitempty"`
		BirthYear int       `json:"birth_year"`
		CreatedAt time.Time `json:"created_at"`
	}

	ChefDetailResponse struct {
		ChefResponse
		Recipes []RecipeResponse `json:"recipes"`
	}
)
