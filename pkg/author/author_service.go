package author

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	AuthorService interface {
		CreateAuthor(ctx context.Context, req domain.CreateAuthorRequest) (domain.AuthorResponse, error)
		GetAuthors(ctx context.Context) ([]domain.AuthorResponse, error)
		GetAuthorDetail(ctx context.Context, id string) (domain.AuthorDetailResponse, error)
		UpdateAuthor(ctx context.Context, id string, req domain.UpdateAuthorRequest) (domain.AuthorResponse, error)
		DeleteAuthor(ctx context.Context, id string) error
		ResolveAuthor(ctx context.Context, ref string, birthYear *int) (*entities.Author, error)
	}

	authorService struct {
		authorRepository AuthorRepository
	}
)

func NewAuthorService(authorRepository AuthorRepository) AuthorService {
	return &authorService{authorRepository: authorRepository}
}

func toAuthorResponse(author *entities.Author) domain.AuthorResponse {
	return domain.AuthorResponse{
		ID:        author.ID.String(),
		Name:      author.Name,
		Bio:       author.Bio,
		BirthYear: author.BirthYear,
		CreatedAt: author.CreatedAt,
	}
}

func toAuthorBookResponse(book *entities.Book) domain.BookResponse {
	res := domain.BookResponse{
		ID:            book.ID.String(),
		Title:         book.Title,
		PublishedYear: book.PublishedYear,
		Genres:        book.Genres,
		Description:   book.Description,
		ImageURL:      book.ImageURL,
		CreatedAt:     book.CreatedAt,
	}
	if book.AddedBy != nil {
		res.AddedBy = &domain.BookRef{ID: book.AddedBy.ID.String(), Name: book.AddedBy.Name}
	}
	return res
}

func (s *authorService) CreateAuthor(ctx context.Context, req domain.CreateAuthorRequest) (domain.AuthorResponse, error) {
	author := &entities.Author{
		ID:        uuid.New(),
		Name:      req.Name,
		Bio:       req.Bio,
		BirthYear: req.BirthYear,
	}

	if err := s.authorRepository.CreateAuthor(ctx, author); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.AuthorResponse{}, domain.ErrAuthorNameTaken
		}
		return domain.AuthorResponse{}, err
	}
	return toAuthorResponse(author), nil
}

func (s *authorService) GetAuthors(ctx context.Context) ([]domain.AuthorResponse, error) {
	authors, err := s.authorRepository.GetAuthors(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.AuthorResponse, 0, len(authors))
	for _, author := range authors {
		res = append(res, toAuthorResponse(author))
	}
	return res, nil
}

func (s *authorService) GetAuthorDetail(ctx context.Context, id string) (domain.AuthorDetailResponse, error) {
	author, err := s.authorRepository.GetAuthorByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AuthorDetailResponse{}, domain.ErrAuthorNotFound
		}
		return domain.AuthorDetailResponse{}, err
	}

	books, err := s.authorRepository.GetBooksByAuthorID(ctx, id)
	if err != nil {
		return domain.AuthorDetailResponse{}, err
	}

	detail := domain.AuthorDetailResponse{
		AuthorResponse: toAuthorResponse(author),
		Books:          make([]domain.BookResponse, 0, len(books)),
	}
	for _, book := range books {
		detail.Books = append(detail.Books, toAuthorBookResponse(book))
	}
	return detail, nil
}

func (s *authorService) UpdateAuthor(ctx context.Context, id string, req domain.UpdateAuthorRequest) (domain.AuthorResponse, error) {
	if req.Name == "" && req.Bio == "" && req.BirthYear == 0 {
		return domain.AuthorResponse{}, domain.ErrAuthorNoFieldsToUpdate
	}

	author, err := s.authorRepository.GetAuthorByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AuthorResponse{}, domain.ErrAuthorNotFound
		}
		return domain.AuthorResponse{}, err
	}

	if req.Name != "" {
		author.Name = req.Name
	}
	if req.Bio != "" {
		author.Bio = req.Bio
	}
	if req.BirthYear != 0 {
		author.BirthYear = req.BirthYear
	}

	if err := s.authorRepository.UpdateAuthor(ctx, author); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.AuthorResponse{}, domain.ErrAuthorNameTaken
		}
		return domain.AuthorResponse{}, err
	}
	return toAuthorResponse(author), nil
}

func (s *authorService) DeleteAuthor(ctx context.Context, id string) error {
	if _, err := s.authorRepository.GetAuthorByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrAuthorNotFound
		}
		return err
	}
	return s.authorRepository.DeleteAuthorWithBooks(ctx, id)
}

// ResolveAuthor is the same three-branch resolution as chefs: id, then exact
// name, then create-with-birth-year, retrying as a lookup when a concurrent
// create wins the name.
func (s *authorService) ResolveAuthor(ctx context.Context, ref string, birthYear *int) (*entities.Author, error) {
	if _, err := uuid.Parse(ref); err == nil {
		author, err := s.authorRepository.GetAuthorByID(ctx, ref)
		if err == nil {
			return author, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	author, err := s.authorRepository.GetAuthorByName(ctx, ref)
	if err == nil {
		return author, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if birthYear == nil {
		return nil, domain.ErrAuthorBirthYearRequired
	}

	author = &entities.Author{
		ID:        uuid.New(),
		Name:      ref,
		BirthYear: *birthYear,
	}
	if err := s.authorRepository.CreateAuthor(ctx, author); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return s.authorRepository.GetAuthorByName(ctx, ref)
		}
		return nil, err
	}
	return author, nil
}
