package author

import (
	"Recipe-Share-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	AuthorRepository interface {
		CreateAuthor(ctx context.Context, author *entities.Author) error
		GetAuthorByID(ctx context.Context, id string) (*entities.Author, error)
		GetAuthorByName(ctx context.Context, name string) (*entities.Author, error)
		GetAuthors(ctx context.Context) ([]*entities.Author, error)
		UpdateAuthor(ctx context.Context, author *entities.Author) error
		DeleteAuthorWithBooks(ctx context.Context, id string) error
		GetBooksByAuthorID(ctx context.Context, authorID string) ([]*entities.Book, error)
	}

	authorRepository struct {
		db *gorm.DB
	}
)

func NewAuthorRepository(db *gorm.DB) AuthorRepository {
	return &authorRepository{db: db}
}

func (r *authorRepository) CreateAuthor(ctx context.Context, author *entities.Author) error {
	return r.db.WithContext(ctx).Create(author).Error
}

func (r *authorRepository) GetAuthorByID(ctx context.Context, id string) (*entities.Author, error) {
	var author entities.Author
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&author).Error; err != nil {
		return nil, err
	}
	return &author, nil
}

func (r *authorRepository) GetAuthorByName(ctx context.Context, name string) (*entities.Author, error) {
	var author entities.Author
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&author).Error; err != nil {
		return nil, err
	}
	return &author, nil
}

func (r *authorRepository) GetAuthors(ctx context.Context) ([]*entities.Author, error) {
	var authors []*entities.Author
	if err := r.db.WithContext(ctx).Order("name asc").Find(&authors).Error; err != nil {
		return nil, err
	}
	return authors, nil
}

func (r *authorRepository) UpdateAuthor(ctx context.Context, author *entities.Author) error {
	return r.db.WithContext(ctx).Save(author).Error
}

// DeleteAuthorWithBooks mirrors the chef cascade: books first, then the
// author, inside one transaction.
func (r *authorRepository) DeleteAuthorWithBooks(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("author_id = ?", id).Delete(&entities.Book{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Author{}).Error
	})
}

func (r *authorRepository) GetBooksByAuthorID(ctx context.Context, authorID string) ([]*entities.Book, error) {
	var books []*entities.Book
	if err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Preload("AddedBy").
		Order("created_at desc").
		Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}
