package recipe

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"
	"Recipe-Share-Backend/internal/utils/storage"
	"Recipe-Share-Backend/pkg/chef"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeResponse, error)
		GetRecipes(ctx context.Context) ([]domain.RecipeResponse, error)
		GetRecipeDetail(ctx context.Context, id string) (domain.RecipeResponse, error)
		UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest, userID string) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, id string, userID string) error
		UploadRecipeImage(ctx context.Context, id string, req domain.UploadRecipeImageRequest, userID string) (domain.RecipeResponse, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		chefService      chef.ChefService
		s3               storage.AwsS3
	}
)

func NewRecipeService(recipeRepository RecipeRepository, chefService chef.ChefService, s3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		chefService:      chefService,
		s3:               s3,
	}
}

func toRecipeResponse(recipe *entities.Recipe) domain.RecipeResponse {
	res := domain.RecipeResponse{
		ID:            recipe.ID.String(),
		Title:         recipe.Title,
		PublishedYear: recipe.PublishedYear,
		Categories:    recipe.Categories,
		Description:   recipe.Description,
		Ingredients:   recipe.Ingredients,
		ImageURL:      recipe.ImageURL,
		CreatedAt:     recipe.CreatedAt,
	}
	if recipe.Chef != nil {
		res.Chef = &domain.RecipeRef{ID: recipe.Chef.ID.String(), Name: recipe.Chef.Name}
	}
	if recipe.AddedBy != nil {
		res.AddedBy = &domain.RecipeRef{ID: recipe.AddedBy.ID.String(), Name: recipe.AddedBy.Name}
	}
	return res
}

// getOwnedRecipe is the ownership gate for mutating operations: the recipe
// must exist and its creator must be the requesting user, compared by exact id.
func (s *recipeService) getOwnedRecipe(ctx context.Context, id string, userID string) (*entities.Recipe, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	if recipe.AddedByID.String() != userID {
		return nil, domain.ErrNotRecipeOwner
	}
	return recipe, nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeResponse, error) {
	recipeChef, err := s.chefService.ResolveChef(ctx, req.Chef, req.ChefBirthYear)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	addedBy, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrParseUUID
	}

	recipe := &entities.Recipe{
		ID:            uuid.New(),
		Title:         req.Title,
		ChefID:        recipeChef.ID,
		PublishedYear: req.PublishedYear,
		Categories:    req.Categories,
		Description:   req.Description,
		Ingredients:   req.Ingredients,
		AddedByID:     addedBy,
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}

	created, err := s.recipeRepository.GetRecipeByID(ctx, recipe.ID.String())
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	return toRecipeResponse(created), nil
}

func (s *recipeService) GetRecipes(ctx context.Context) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		res = append(res, toRecipeResponse(recipe))
	}
	return res, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, id string) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}
	return toRecipeResponse(recipe), nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest, userID string) (domain.RecipeResponse, error) {
	recipe, err := s.getOwnedRecipe(ctx, id, userID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	if req.Chef != "" {
		recipeChef, err := s.chefService.ResolveChef(ctx, req.Chef, nil)
		if err != nil {
			return domain.RecipeResponse{}, err
		}
		recipe.ChefID = recipeChef.ID
	}
	if req.Title != "" {
		recipe.Title = req.Title
	}
	if req.PublishedYear != 0 {
		recipe.PublishedYear = req.PublishedYear
	}
	if req.Categories != nil {
		recipe.Categories = req.Categories
	}
	if req.Description != "" {
		recipe.Description = req.Description
	}
	if req.Ingredients != nil {
		recipe.Ingredients = req.Ingredients
	}

	// the creator reference never changes, regardless of request contents
	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}

	updated, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	return toRecipeResponse(updated), nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id string, userID string) error {
	if _, err := s.getOwnedRecipe(ctx, id, userID); err != nil {
		return err
	}
	return s.recipeRepository.DeleteRecipe(ctx, id)
}

func (s *recipeService) UploadRecipeImage(ctx context.Context, id string, req domain.UploadRecipeImageRequest, userID string) (domain.RecipeResponse, error) {
	recipe, err := s.getOwnedRecipe(ctx, id, userID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	var objectKey string
	fileName := fmt.Sprintf("%s_%s", recipe.ID.String(), req.Image.Filename)
	if recipe.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(recipe.ImageURL)
		objectKey, err = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
	} else {
		objectKey, err = s.s3.UploadFile(fileName, req.Image, "recipes", storage.AllowImage...)
	}
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	recipe.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}
	return toRecipeResponse(recipe), nil
}
