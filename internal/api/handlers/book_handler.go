package handlers

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/internal/api/presenters"
	"Recipe-Share-Backend/pkg/book"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	BookHandler interface {
		CreateBook(c *fiber.Ctx) error
		GetBooks(c *fiber.Ctx) error
		GetBookDetail(c *fiber.Ctx) error
		UpdateBook(c *fiber.Ctx) error
		DeleteBook(c *fiber.Ctx) error
		UploadBookImage(c *fiber.Ctx) error
	}

	bookHandler struct {
		bookService book.BookService
		validator   *validator.Validate
	}
)

func NewBookHandler(bookService book.BookService, validator *validator.Validate) BookHandler {
	return &bookHandler{
		bookService: bookService,
		validator:   validator,
	}
}

func (h *bookHandler) CreateBook(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateBookRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateBook, err)
	}

	res, err := h.bookService.CreateBook(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedCreateBook, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateBook)
}

func (h *bookHandler) GetBooks(c *fiber.Ctx) error {
	res, err := h.bookService.GetBooks(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetBooks, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetBooks)
}

func (h *bookHandler) GetBookDetail(c *fiber.Ctx) error {
	bookID := c.Params("id")

	res, err := h.bookService.GetBookDetail(c.Context(), bookID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetBookDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetBookDetail)
}

func (h *bookHandler) UpdateBook(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	bookID := c.Params("id")
	req := new(domain.UpdateBookRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.bookService.UpdateBook(c.Context(), bookID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUpdateBook, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateBook)
}

func (h *bookHandler) DeleteBook(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	bookID := c.Params("id")

	if err := h.bookService.DeleteBook(c.Context(), bookID, userID); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedDeleteBook, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteBook)
}

func (h *bookHandler) UploadBookImage(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	bookID := c.Params("id")

	req := new(domain.UploadBookImageRequest)
	req.Image, _ = c.FormFile("image")

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadBookImg, err)
	}

	res, err := h.bookService.UploadBookImage(c.Context(), bookID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUploadBookImg, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadBookImg)
}
