package chef

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ChefService interface {
		CreateChef(ctx context.Context, req domain.CreateChefRequest) (domain.ChefResponse, error)
		GetChefs(ctx context.Context) ([]domain.ChefResponse, error)
		GetChefDetail(ctx context.Context, id string) (domain.ChefDetailResponse, error)
		UpdateChef(ctx context.Context, id string, req domain.UpdateChefRequest) (domain.ChefResponse, error)
		DeleteChef(ctx context.Context, id string) error
		ResolveChef(ctx context.Context, ref string, birthYear *int) (*entities.Chef, error)
	}

	chefService struct {
		chefRepository ChefRepository
	}
)

func NewChefService(chefRepository ChefRepository) ChefService {
	return &chefService{chefRepository: chefRepository}
}

func toChefResponse(chef *entities.Chef) domain.ChefResponse {
	return domain.ChefResponse{
		ID:        chef.ID.String(),
		Name:      chef.Name,
		Bio:       chef.Bio,
		BirthYear: chef.BirthYear,
		CreatedAt: chef.CreatedAt,
	}
}

func toChefRecipeResponse(recipe *entities.Recipe) domain.RecipeResponse {
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
	if recipe.AddedBy != nil {
		res.AddedBy = &domain.RecipeRef{ID: recipe.AddedBy.ID.String(), Name: recipe.AddedBy.Name}
	}
	return res
}

func (s *chefService) CreateChef(ctx context.Context, req domain.CreateChefRequest) (domain.ChefResponse, error) {
	chef := &entities.Chef{
		ID:        uuid.New(),
		Name:      req.Name,
		Bio:       req.Bio,
		BirthYear: req.BirthYear,
	}

	if err := s.chefRepository.CreateChef(ctx, chef); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ChefResponse{}, domain.ErrChefNameTaken
		}
		return domain.ChefResponse{}, err
	}
	return toChefResponse(chef), nil
}

func (s *chefService) GetChefs(ctx context.Context) ([]domain.ChefResponse, error) {
	chefs, err := s.chefRepository.GetChefs(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.ChefResponse, 0, len(chefs))
	for _, chef := range chefs {
		res = append(res, toChefResponse(chef))
	}
	return res, nil
}

func (s *chefService) GetChefDetail(ctx context.Context, id string) (domain.ChefDetailResponse, error) {
	chef, err := s.chefRepository.GetChefByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ChefDetailResponse{}, domain.ErrChefNotFound
		}
		return domain.ChefDetailResponse{}, err
	}

	// recipes joined in at query time, keyed by the chef id
	recipes, err := s.chefRepository.GetRecipesByChefID(ctx, id)
	if err != nil {
		return domain.ChefDetailResponse{}, err
	}

	detail := domain.ChefDetailResponse{
		ChefResponse: toChefResponse(chef),
		Recipes:      make([]domain.RecipeResponse, 0, len(recipes)),
	}
	for _, recipe := range recipes {
		detail.Recipes = append(detail.Recipes, toChefRecipeResponse(recipe))
	}
	return detail, nil
}

func (s *chefService) UpdateChef(ctx context.Context, id string, req domain.UpdateChefRequest) (domain.ChefResponse, error) {
	if req.Name == "" && req.Bio == "" && req.BirthYear == 0 {
		return domain.ChefResponse{}, domain.ErrChefNoFieldsToUpdate
	}

	chef, err := s.chefRepository.GetChefByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ChefResponse{}, domain.ErrChefNotFound
		}
		return domain.ChefResponse{}, err
	}

	if req.Name != "" {
		chef.Name = req.Name
	}
	if req.Bio != "" {
		chef.Bio = req.Bio
	}
	if req.BirthYear != 0 {
		chef.BirthYear = req.BirthYear
	}

	if err := s.chefRepository.UpdateChef(ctx, chef); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ChefResponse{}, domain.ErrChefNameTaken
		}
		return domain.ChefResponse{}, err
	}
	return toChefResponse(chef), nil
}

func (s *chefService) DeleteChef(ctx context.Context, id string) error {
	if _, err := s.chefRepository.GetChefByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrChefNotFound
		}
		return err
	}
	return s.chefRepository.DeleteChefWithRecipes(ctx, id)
}

// ResolveChef turns a loosely typed chef reference into a chef record:
// by id when the ref parses as a UUID, then by exact name, and finally by
// creating a new chef under that name, which requires a birth year.
func (s *chefService) ResolveChef(ctx context.Context, ref string, birthYear *int) (*entities.Chef, error) {
	if _, err := uuid.Parse(ref); err == nil {
		chef, err := s.chefRepository.GetChefByID(ctx, ref)
		if err == nil {
			return chef, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	chef, err := s.chefRepository.GetChefByName(ctx, ref)
	if err == nil {
		return chef, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if birthYear == nil {
		return nil, domain.ErrChefBirthYearRequired
	}

	chef = &entities.Chef{
		ID:        uuid.New(),
		Name:      ref,
		BirthYear: *birthYear,
	}
	if err := s.chefRepository.CreateChef(ctx, chef); err != nil {
		// lost a first-creation race on the name; the winner's row is the answer
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return s.chefRepository.GetChefByName(ctx, ref)
		}
		return nil, err
	}
	return chef, nil
}
