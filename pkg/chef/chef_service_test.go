package chef

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.User{}, &entities.Chef{}, &entities.Recipe{}))
	return db
}

func intPtr(v int) *int { return &v }

func TestResolveChefByID(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	service := NewChefService(NewChefRepository(db))

	created, err := service.CreateChef(ctx, domain.CreateChefRequest{Name: "Ana", BirthYear: 1980})
	require.NoError(t, err)

	resolved, err := service.ResolveChef(ctx, created.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, created.ID, resolved.ID.String())
}

func TestResolveChefByName(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	service := NewChefService(NewChefRepository(db))

	created, err := service.CreateChef(ctx, domain.CreateChefRequest{Name: "Ana", BirthYear: 1980})
	require.NoError(t, err)

	resolved, err := service.ResolveChef(ctx, "Ana", nil)
	require.NoError(t, err)
	assert.Equal(t, created.ID, resolved.ID.String())
}

func TestResolveChefCreatesNew(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	service := NewChefService(NewChefRepository(db))

	// unknown name without a birth year is rejected
	_, err := service.ResolveChef(ctx, "Ana", nil)
	assert.ErrorIs(t, err, domain.ErrChefBirthYearRequired)

	resolved, err := service.ResolveChef(ctx, "Ana", intPtr(1980))
	require.NoError(t, err)
	assert.Equal(t, "Ana", resolved.Name)
	assert.Equal(t, 1980, resolved.BirthYear)

	// a second resolution of the same name reuses the record even without a birth year
	again, err := service.ResolveChef(ctx, "Ana", nil)
	require.NoError(t, err)
	assert.Equal(t, resolved.ID, again.ID)

	chefs, err := service.GetChefs(ctx)
	require.NoError(t, err)
	assert.Len(t, chefs, 1)
}

func TestCreateChefDuplicateName(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	service := NewChefService(NewChefRepository(db))

	_, err := service.CreateChef(ctx, domain.CreateChefRequest{Name: "Ana", BirthYear: 1980})
	require.NoError(t, err)

	_, err = service.CreateChef(ctx, domain.CreateChefRequest{Name: "Ana", BirthYear: 1990})
	assert.ErrorIs(t, err, domain.ErrChefNameTaken)
}

func TestDeleteChefCascadesRecipes(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewChefRepository(db)
	service := NewChefService(repo)

	ana, err := service.CreateChef(ctx, domain.CreateChefRequest{Name: "Ana", BirthYear: 1980})
	require.NoError(t, err)
	bob, err := service.CreateChef(ctx, domain.CreateChefRequest{Name: "Bob", BirthYear: 1975})
	require.NoError(t, err)

	anaID := uuid.MustParse(ana.ID)
	bobID := uuid.MustParse(bob.ID)
	userID := uuid.New()
	require.NoError(t, db.Create(&entities.Recipe{ID: uuid.New(), Title: "Soup", ChefID: anaID, PublishedYear: 2023, AddedByID: userID}).Error)
	require.NoError(t, db.Create(&entities.Recipe{ID: uuid.New(), Title: "Stew", ChefID: anaID, PublishedYear: 2024, AddedByID: userID}).Error)
	require.NoError(t, db.Create(&entities.Recipe{ID: uuid.New(), Title: "Cake", ChefID: bobID, PublishedYear: 2024, AddedByID: userID}).Error)

	require.NoError(t, service.DeleteChef(ctx, ana.ID))

	var count int64
	require.NoError(t, db.Model(&entities.Recipe{}).Where("chef_id = ?", ana.ID).Count(&count).Error)
	assert.Zero(t, count)

	// the other chef's recipes are untouched
	require.NoError(t, db.Model(&entities.Recipe{}).Where("chef_id = ?", bob.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	_, err = service.GetChefDetail(ctx, ana.ID)
	assert.ErrorIs(t, err, domain.ErrChefNotFound)
}

func TestDeleteChefNotFound(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	service := NewChefService(NewChefRepository(db))

	err := service.DeleteChef(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrChefNotFound)
}

func TestGetChefDetailListsRecipes(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	service := NewChefService(NewChefRepository(db))

	ana, err := service.CreateChef(ctx, domain.CreateChefRequest{Name: "Ana", BirthYear: 1980})
	require.NoError(t, err)

	user := entities.User{ID: uuid.New(), Email: "bob@example.com", Name: "Bob"}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&entities.Recipe{
		ID: uuid.New(), Title: "Soup", ChefID: uuid.MustParse(ana.ID),
		PublishedYear: 2023, Categories: []string{"soup"}, AddedByID: user.ID,
	}).Error)

	detail, err := service.GetChefDetail(ctx, ana.ID)
	require.NoError(t, err)
	require.Len(t, detail.Recipes, 1)
	assert.Equal(t, "Soup", detail.Recipes[0].Title)
	require.NotNil(t, detail.Recipes[0].AddedBy)
	assert.Equal(t, "Bob", detail.Recipes[0].AddedBy.Name)
}

func TestUpdateChefRequiresAField(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	service := NewChefService(NewChefRepository(db))

	ana, err := service.CreateChef(ctx, domain.CreateChefRequest{Name: "Ana", BirthYear: 1980})
	require.NoError(t, err)

	_, err = service.UpdateChef(ctx, ana.ID, domain.UpdateChefRequest{})
	assert.ErrorIs(t, err, domain.ErrChefNoFieldsToUpdate)

	updated, err := service.UpdateChef(ctx, ana.ID, domain.UpdateChefRequest{Bio: "chef of soups"})
	require.NoError(t, err)
	assert.Equal(t, "chef of soups", updated.Bio)
	assert.Equal(t, "Ana", updated.Name)
}
