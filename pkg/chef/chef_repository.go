package chef

import (
	"Recipe-Share-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	ChefRepository interface {
		CreateChef(ctx context.Context, chef *entities.Chef) error
		GetChefByID(ctx context.Context, id string) (*entities.Chef, error)
		GetChefByName(ctx context.Context, name string) (*entities.Chef, error)
		GetChefs(ctx context.Context) ([]*entities.Chef, error)
		UpdateChef(ctx context.Context, chef *entities.Chef) error
		DeleteChefWithRecipes(ctx context.Context, id string) error
		GetRecipesByChefID(ctx context.Context, chefID string) ([]*entities.Recipe, error)
	}

	chefRepository struct {
		db *gorm.DB
	}
)

func NewChefRepository(db *gorm.DB) ChefRepository {
	return &chefRepository{db: db}
}

func (r *chefRepository) CreateChef(ctx context.Context, chef *entities.Chef) error {
	return r.db.WithContext(ctx).Create(chef).Error
}

func (r *chefRepository) GetChefByID(ctx context.Context, id string) (*entities.Chef, error) {
	var chef entities.Chef
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&chef).Error; err != nil {
		return nil, err
	}
	return &chef, nil
}

func (r *chefRepository) GetChefByName(ctx context.Context, name string) (*entities.Chef, error) {
	var chef entities.Chef
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&chef).Error; err != nil {
		return nil, err
	}
	return &chef, nil
}

func (r *chefRepository) GetChefs(ctx context.Context) ([]*entities.Chef, error) {
	var chefs []*entities.Chef
	if err := r.db.WithContext(ctx).Order("name asc").Find(&chefs).Error; err != nil {
		return nil, err
	}
	return chefs, nil
}

func (r *chefRepository) UpdateChef(ctx context.Context, chef *entities.Chef) error {
	return r.db.WithContext(ctx).Save(chef).Error
}

// DeleteChefWithRecipes removes the chef and every recipe referencing it in a
// single transaction, so a failed child delete never leaves the parent gone.
func (r *chefRepository) DeleteChefWithRecipes(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("chef_id = ?", id).Delete(&entities.Recipe{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Chef{}).Error
	})
}

func (r *chefRepository) GetRecipesByChefID(ctx context.Context, chefID string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Where("chef_id = ?", chefID).
		Preload("AddedBy").
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}
