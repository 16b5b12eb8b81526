package review

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"
	"Recipe-Share-Backend/pkg/recipe"
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ReviewService interface {
		AddReview(ctx context.Context, recipeID string, req domain.AddReviewRequest, userID string) (domain.ReviewResponse, error)
		GetReviewsByRecipe(ctx context.Context, recipeID string) ([]domain.ReviewResponse, error)
	}

	reviewService struct {
		reviewRepository ReviewRepository
		recipeRepository recipe.RecipeRepository
	}
)

func NewReviewService(reviewRepository ReviewRepository, recipeRepository recipe.RecipeRepository) ReviewService {
	return &reviewService{
		reviewRepository: reviewRepository,
		recipeRepository: recipeRepository,
	}
}

func toReviewResponse(review *entities.Review) domain.ReviewResponse {
	res := domain.ReviewResponse{
		ID:        review.ID.String(),
		RecipeID:  review.RecipeID.String(),
		Rating:    review.Rating,
		Text:      review.Text,
		CreatedAt: review.CreatedAt,
	}
	if review.Reviewer != nil {
		res.Reviewer = domain.ReviewerResponse{
			ID:    review.Reviewer.ID.String(),
			Email: review.Reviewer.Email,
			Name:  review.Reviewer.Name,
		}
	}
	return res
}

func (s *reviewService) AddReview(ctx context.Context, recipeID string, req domain.AddReviewRequest, userID string) (domain.ReviewResponse, error) {
	if req.Rating < 1 || req.Rating > 4 {
		return domain.ReviewResponse{}, domain.ErrInvalidRating
	}
	if strings.TrimSpace(req.Text) == "" {
		return domain.ReviewResponse{}, domain.ErrEmptyReviewText
	}

	rec, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ReviewResponse{}, domain.ErrRecipeNotFound
		}
		return domain.ReviewResponse{}, err
	}

	if _, err := s.reviewRepository.GetReviewByRecipeAndReviewer(ctx, recipeID, userID); err == nil {
		return domain.ReviewResponse{}, domain.ErrReviewAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ReviewResponse{}, err
	}

	reviewerID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ReviewResponse{}, domain.ErrParseUUID
	}

	review := &entities.Review{
		ID:         uuid.New(),
		RecipeID:   rec.ID,
		ReviewerID: reviewerID,
		Rating:     req.Rating,
		Text:       req.Text,
	}

	if err := s.reviewRepository.CreateReview(ctx, review); err != nil {
		// the compound unique index on (recipe, reviewer) catches the
		// check-then-insert race on a concurrent double submit
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ReviewResponse{}, domain.ErrReviewAlreadyExists
		}
		return domain.ReviewResponse{}, err
	}
	return toReviewResponse(review), nil
}

func (s *reviewService) GetReviewsByRecipe(ctx context.Context, recipeID string) ([]domain.ReviewResponse, error) {
	reviews, err := s.reviewRepository.GetReviewsByRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		res = append(res, toReviewResponse(review))
	}
	return res, nil
}
