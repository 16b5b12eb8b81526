package author

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
	require.NoError(t, db.AutoMigrate(&entities.User{}, &entities.Author{}, &entities.Book{}))
	return db
}

func intPtr(v int) *int { return &v }

func TestResolveAuthorFindOrCreate(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	service := NewAuthorService(NewAuthorRepository(db))

	_, err := service.ResolveAuthor(ctx, "Tolkien", nil)
	assert.ErrorIs(t, err, domain.ErrAuthorBirthYearRequired)

	created, err := service.ResolveAuthor(ctx, "Tolkien", intPtr(1892))
	require.NoError(t, err)

	byName, err := service.ResolveAuthor(ctx, "Tolkien", nil)
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	byID, err := service.ResolveAuthor(ctx, created.ID.String(), nil)
	require.NoError(t, err)
	assert.Equal(t, created.ID, byID.ID)
}

func TestDeleteAuthorCascadesBooks(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	service := NewAuthorService(NewAuthorRepository(db))

	created, err := service.CreateAuthor(ctx, domain.CreateAuthorRequest{Name: "Tolkien", BirthYear: 1892})
	require.NoError(t, err)

	authorID := uuid.MustParse(created.ID)
	userID := uuid.New()
	require.NoError(t, db.Create(&entities.Book{ID: uuid.New(), Title: "The Hobbit", AuthorID: authorID, PublishedYear: 1937, AddedByID: userID}).Error)
	require.NoError(t, db.Create(&entities.Book{ID: uuid.New(), Title: "LOTR", AuthorID: authorID, PublishedYear: 1954, AddedByID: userID}).Error)

	require.NoError(t, service.DeleteAuthor(ctx, created.ID))

	var count int64
	require.NoError(t, db.Model(&entities.Book{}).Where("author_id = ?", created.ID).Count(&count).Error)
	assert.Zero(t, count)

	_, err = service.GetAuthorDetail(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrAuthorNotFound)
}

func TestGetAuthorDetailListsBooks(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	service := NewAuthorService(NewAuthorRepository(db))

	created, err := service.CreateAuthor(ctx, domain.CreateAuthorRequest{Name: "Tolkien", BirthYear: 1892})
	require.NoError(t, err)

	user := entities.User{ID: uuid.New(), Email: "ana@example.com", Name: "Ana"}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&entities.Book{
		ID: uuid.New(), Title: "The Hobbit", AuthorID: uuid.MustParse(created.ID),
		PublishedYear: 1937, Genres: []string{"fantasy"}, AddedByID: user.ID,
	}).Error)

	detail, err := service.GetAuthorDetail(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, detail.Books, 1)
	assert.Equal(t, "The Hobbit", detail.Books[0].Title)
	assert.Equal(t, []string{"fantasy"}, detail.Books[0].Genres)
}
