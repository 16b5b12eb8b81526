package book

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"
	"Recipe-Share-Backend/internal/utils/storage"
	"Recipe-Share-Backend/pkg/author"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	BookService interface {
		CreateBook(ctx context.Context, req domain.CreateBookRequest, userID string) (domain.BookResponse, error)
		GetBooks(ctx context.Context) ([]domain.BookResponse, error)
		GetBookDetail(ctx context.Context, id string) (domain.BookResponse, error)
		UpdateBook(ctx context.Context, id string, req domain.UpdateBookRequest, userID string) (domain.BookResponse, error)
		DeleteBook(ctx context.Context, id string, userID string) error
		UploadBookImage(ctx context.Context, id string, req domain.UploadBookImageRequest, userID string) (domain.BookResponse, error)
	}

	bookService struct {
		bookRepository BookRepository
		authorService  author.AuthorService
		s3             storage.AwsS3
	}
)

func NewBookService(bookRepository BookRepository, authorService author.AuthorService, s3 storage.AwsS3) BookService {
	return &bookService{
		bookRepository: bookRepository,
		authorService:  authorService,
		s3:             s3,
	}
}

func toBookResponse(book *entities.Book) domain.BookResponse {
	res := domain.BookResponse{
		ID:            book.ID.String(),
		Title:         book.Title,
		PublishedYear: book.PublishedYear,
		Genres:        book.Genres,
		Description:   book.Description,
		ImageURL:      book.ImageURL,
		CreatedAt:     book.CreatedAt,
	}
	if book.Author != nil {
		res.Author = &domain.BookRef{ID: book.Author.ID.String(), Name: book.Author.Name}
	}
	if book.AddedBy != nil {
		res.AddedBy = &domain.BookRef{ID: book.AddedBy.ID.String(), Name: book.AddedBy.Name}
	}
	return res
}

func (s *bookService) getOwnedBook(ctx context.Context, id string, userID string) (*entities.Book, error) {
	book, err := s.bookRepository.GetBookByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBookNotFound
		}
		return nil, err
	}
	if book.AddedByID.String() != userID {
		return nil, domain.ErrNotBookOwner
	}
	return book, nil
}

func (s *bookService) CreateBook(ctx context.Context, req domain.CreateBookRequest, userID string) (domain.BookResponse, error) {
	bookAuthor, err := s.authorService.ResolveAuthor(ctx, req.Author, req.AuthorBirthYear)
	if err != nil {
		return domain.BookResponse{}, err
	}

	addedBy, err := uuid.Parse(userID)
	if err != nil {
		return domain.BookResponse{}, domain.ErrParseUUID
	}

	book := &entities.Book{
		ID:            uuid.New(),
		Title:         req.Title,
		AuthorID:      bookAuthor.ID,
		PublishedYear: req.PublishedYear,
		Genres:        req.Genres,
		Description:   req.Description,
		AddedByID:     addedBy,
	}

	if err := s.bookRepository.CreateBook(ctx, book); err != nil {
		return domain.BookResponse{}, err
	}

	created, err := s.bookRepository.GetBookByID(ctx, book.ID.String())
	if err != nil {
		return domain.BookResponse{}, err
	}
	return toBookResponse(created), nil
}

func (s *bookService) GetBooks(ctx context.Context) ([]domain.BookResponse, error) {
	books, err := s.bookRepository.GetBooks(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.BookResponse, 0, len(books))
	for _, book := range books {
		res = append(res, toBookResponse(book))
	}
	return res, nil
}

func (s *bookService) GetBookDetail(ctx context.Context, id string) (domain.BookResponse, error) {
	book, err := s.bookRepository.GetBookByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.BookResponse{}, domain.ErrBookNotFound
		}
		return domain.BookResponse{}, err
	}
	return toBookResponse(book), nil
}

func (s *bookService) UpdateBook(ctx context.Context, id string, req domain.UpdateBookRequest, userID string) (domain.BookResponse, error) {
	book, err := s.getOwnedBook(ctx, id, userID)
	if err != nil {
		return domain.BookResponse{}, err
	}

	if req.Author != "" {
		bookAuthor, err := s.authorService.ResolveAuthor(ctx, req.Author, nil)
		if err != nil {
			return domain.BookResponse{}, err
		}
		book.AuthorID = bookAuthor.ID
	}
	if req.Title != "" {
		book.Title = req.Title
	}
	if req.PublishedYear != 0 {
		book.PublishedYear = req.PublishedYear
	}
	if req.Genres != nil {
		book.Genres = req.Genres
	}
	if req.Description != "" {
		book.Description = req.Description
	}

	if err := s.bookRepository.UpdateBook(ctx, book); err != nil {
		return domain.BookResponse{}, err
	}

	updated, err := s.bookRepository.GetBookByID(ctx, id)
	if err != nil {
		return domain.BookResponse{}, err
	}
	return toBookResponse(updated), nil
}

func (s *bookService) DeleteBook(ctx context.Context, id string, userID string) error {
	if _, err := s.getOwnedBook(ctx, id, userID); err != nil {
		return err
	}
	return s.bookRepository.DeleteBook(ctx, id)
}

func (s *bookService) UploadBookImage(ctx context.Context, id string, req domain.UploadBookImageRequest, userID string) (domain.BookResponse, error) {
	book, err := s.getOwnedBook(ctx, id, userID)
	if err != nil {
		return domain.BookResponse{}, err
	}

	var objectKey string
	fileName := fmt.Sprintf("%s_%s", book.ID.String(), req.Image.Filename)
	if book.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(book.ImageURL)
		objectKey, err = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
	} else {
		objectKey, err = s.s3.UploadFile(fileName, req.Image, "books", storage.AllowImage...)
	}
	if err != nil {
		return domain.BookResponse{}, err
	}

	book.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.bookRepository.UpdateBook(ctx, book); err != nil {
		return domain.BookResponse{}, err
	}
	return toBookResponse(book), nil
}
