package book

import (
	"Recipe-Share-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	BookRepository interface {
		CreateBook(ctx context.Context, book *entities.Book) error
		GetBookByID(ctx context.Context, id string) (*entities.Book, error)
		GetBooks(ctx context.Context) ([]*entities.Book, error)
		UpdateBook(ctx context.Context, book *entities.Book) error
		DeleteBook(ctx context.Context, id string) error
	}

	bookRepository struct {
		db *gorm.DB
	}
)

func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) CreateBook(ctx context.Context, book *entities.Book) error {
	return r.db.WithContext(ctx).Create(book).Error
}

func (r *bookRepository) GetBookByID(ctx context.Context, id string) (*entities.Book, error) {
	var book entities.Book
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Preload("Author").
		Preload("AddedBy").
		First(&book).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *bookRepository) GetBooks(ctx context.Context) ([]*entities.Book, error) {
	var books []*entities.Book
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("AddedBy").
		Order("created_at desc").
		Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

func (r *bookRepository) UpdateBook(ctx context.Context, book *entities.Book) error {
	return r.db.WithContext(ctx).Save(book).Error
}

func (r *bookRepository) DeleteBook(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Book{}).Error
}
