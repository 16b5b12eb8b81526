package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessUploadRecipeImg = "recipe image uploaded successfully"
	MessageFailedGetRecipes       = "failed to get recipes"
	MessageFailedGetRecipeDetail  = "failed to get recipe detail"
	MessageFailedCreateRecipe     = "failed to create recipe"
	MessageFailedUpdateRecipe     = "failed to update recipe"
	MessageFailedDeleteRecipe     = "failed to delete recipe"
	MessageFailedUploadRecipeImg  = "failed to upload recipe image"

	ErrRecipeNotFound = errors.New("recipe not found")
	ErrNotRecipeOwner = errors.New("you are not authorized to modify a recipe you haven't created")
)

type (
	CreateRecipeRequest struct {
		Title         string   `json:"title" validate:"required"`
		Chef          string   `json:"chef" validate:"required"`
		PublishedYear int      `json:"published_year" validate:"required"`
		Categories    []string `json:"categories"`
		Description   string   `json:"description"`
		Ingredients   []string `json:"ingredients"`
		ChefBirthYear *int     `json:"chef_birth_year"`
	}

	UpdateRecipeRequest struct {
		Title         string   `json:"title"`
		Chef          string   `json:"chef"`
		PublishedYear int      `json:"published_year"`
		Categories    []string `json:"categories"`
		Description   string   `json:"description"`
		Ingredients   []string `json:"ingredients"`
	}

	UploadRecipeImageRequest struct {
		Image *multipart.FileHeader `validate:"required"`
	}

	RecipeRef struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	RecipeResponse struct {
		ID            string     `json:"id"`
		Title         string     `json:"title"`
		Chef          *RecipeRef `json:"chef,omitempty"`
		PublishedYear int        `json:"published_year"`
		Categories    []string   `json:"categories"`
		Description   string     `json:"description,omitempty"`
		Ingredients   []string   `json:"ingredients"`
		ImageURL      string     `json:"image_url,omitempty"`
		AddedBy       *RecipeRef `json:"added_by,omitempty"`
		CreatedAt     time.Time  `json:"created_at"`
	}
)
