package book

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"
	"Recipe-Share-Backend/pkg/author"
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

func newTestService(t *testing.T) (BookService, *gorm.DB) {
	db := setupTestDB(t)
	authorService := author.NewAuthorService(author.NewAuthorRepository(db))
	return NewBookService(NewBookRepository(db), authorService, nil), db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) entities.User {
	user := entities.User{ID: uuid.New(), Email: email, Name: email}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func intPtr(v int) *int { return &v }

func TestCreateBookWithImplicitAuthor(t *testing.T) {
	ctx := context.Background()
	service, db := newTestService(t)
	user := createTestUser(t, db, "ana@example.com")

	res, err := service.CreateBook(ctx, domain.CreateBookRequest{
		Title:           "The Hobbit",
		Author:          "Tolkien",
		PublishedYear:   1937,
		Genres:          []string{"fantasy"},
		AuthorBirthYear: intPtr(1892),
	}, user.ID.String())
	require.NoError(t, err)
	require.NotNil(t, res.Author)
	assert.Equal(t, "Tolkien", res.Author.Name)

	// reusing the name does not create a second author
	second, err := service.CreateBook(ctx, domain.CreateBookRequest{
		Title:         "LOTR",
		Author:        "Tolkien",
		PublishedYear: 1954,
	}, user.ID.String())
	require.NoError(t, err)
	assert.Equal(t, res.Author.ID, second.Author.ID)
}

func TestUpdateBookOwnership(t *testing.T) {
	ctx := context.Background()
	service, db := newTestService(t)
	owner := createTestUser(t, db, "owner@example.com")
	other := createTestUser(t, db, "other@example.com")

	created, err := service.CreateBook(ctx, domain.CreateBookRequest{
		Title:           "The Hobbit",
		Author:          "Tolkien",
		PublishedYear:   1937,
		AuthorBirthYear: intPtr(1892),
	}, owner.ID.String())
	require.NoError(t, err)

	_, err = service.UpdateBook(ctx, created.ID, domain.UpdateBookRequest{Title: "Hacked"}, other.ID.String())
	assert.ErrorIs(t, err, domain.ErrNotBookOwner)

	err = service.DeleteBook(ctx, created.ID, other.ID.String())
	assert.ErrorIs(t, err, domain.ErrNotBookOwner)

	unchanged, err := service.GetBookDetail(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "The Hobbit", unchanged.Title)

	require.NoError(t, service.DeleteBook(ctx, created.ID, owner.ID.String()))
	_, err = service.GetBookDetail(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrBookNotFound)
}
