package review

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"
	"Recipe-Share-Backend/pkg/recipe"
	"context"
	"fmt"
	"testing"
	"time"

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
	require.NoError(t, db.AutoMigrate(&entities.User{}, &entities.Chef{}, &entities.Recipe{}, &entities.Review{}))
	return db
}

type fixture struct {
	service ReviewService
	repo    ReviewRepository
	db      *gorm.DB
	recipe  entities.Recipe
	user    entities.User
}

func newFixture(t *testing.T) fixture {
	db := setupTestDB(t)
	repo := NewReviewRepository(db)
	service := NewReviewService(repo, recipe.NewRecipeRepository(db))

	user := entities.User{ID: uuid.New(), Email: "ana@example.com", Name: "Ana"}
	require.NoError(t, db.Create(&user).Error)
	chef := entities.Chef{ID: uuid.New(), Name: "Bob", BirthYear: 1975}
	require.NoError(t, db.Create(&chef).Error)
	rec := entities.Recipe{ID: uuid.New(), Title: "Soup", ChefID: chef.ID, PublishedYear: 2023, AddedByID: user.ID}
	require.NoError(t, db.Create(&rec).Error)

	return fixture{service: service, repo: repo, db: db, recipe: rec, user: user}
}

func TestAddReviewRatingBounds(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	for _, rating := range []int{0, 5, -1} {
		_, err := f.service.AddReview(ctx, f.recipe.ID.String(), domain.AddReviewRequest{Rating: rating, Text: "fine"}, f.user.ID.String())
		assert.ErrorIs(t, err, domain.ErrInvalidRating, "rating %d", rating)
	}

	count, err := f.repo.CountReviewsByRecipe(ctx, f.recipe.ID.String())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestAddReviewBlankText(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.service.AddReview(ctx, f.recipe.ID.String(), domain.AddReviewRequest{Rating: 3, Text: "   "}, f.user.ID.String())
	assert.ErrorIs(t, err, domain.ErrEmptyReviewText)
}

func TestAddReviewRecipeNotFound(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.service.AddReview(ctx, uuid.NewString(), domain.AddReviewRequest{Rating: 3, Text: "fine"}, f.user.ID.String())
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestAddReviewDuplicate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.service.AddReview(ctx, f.recipe.ID.String(), domain.AddReviewRequest{Rating: 4, Text: "great"}, f.user.ID.String())
	require.NoError(t, err)

	_, err = f.service.AddReview(ctx, f.recipe.ID.String(), domain.AddReviewRequest{Rating: 2, Text: "changed my mind"}, f.user.ID.String())
	assert.ErrorIs(t, err, domain.ErrReviewAlreadyExists)

	count, err := f.repo.CountReviewsByRecipe(ctx, f.recipe.ID.String())
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestGetReviewsNewestFirst(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	bob := entities.User{ID: uuid.New(), Email: "bob@example.com", Name: "Bob"}
	require.NoError(t, f.db.Create(&bob).Error)

	first := entities.Review{ID: uuid.New(), RecipeID: f.recipe.ID, ReviewerID: f.user.ID, Rating: 4, Text: "great"}
	require.NoError(t, f.db.Create(&first).Error)
	second := entities.Review{ID: uuid.New(), RecipeID: f.recipe.ID, ReviewerID: bob.ID, Rating: 2, Text: "meh"}
	second.CreatedAt = first.CreatedAt.Add(time.Second)
	require.NoError(t, f.db.Create(&second).Error)

	reviews, err := f.service.GetReviewsByRecipe(ctx, f.recipe.ID.String())
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "meh", reviews[0].Text)
	assert.Equal(t, "bob@example.com", reviews[0].Reviewer.Email)
	assert.Equal(t, "great", reviews[1].Text)
}
