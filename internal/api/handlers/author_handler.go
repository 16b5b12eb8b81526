package handlers

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/internal/api/presenters"
	"Recipe-Share-Backend/pkg/author"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AuthorHandler interface {
		CreateAuthor(c *fiber.Ctx) error
		GetAuthors(c *fiber.Ctx) error
		GetAuthorDetail(c *fiber.Ctx) error
		UpdateAuthor(c *fiber.Ctx) error
		DeleteAuthor(c *fiber.Ctx) error
	}

	authorHandler struct {
		authorService author.AuthorService
		validator     *validator.Validate
	}
)

func NewAuthorHandler(authorService author.AuthorService, validator *validator.Validate) AuthorHandler {
	return &authorHandler{
		authorService: authorService,
		validator:     validator,
	}
}

func (h *authorHandler) CreateAuthor(c *fiber.Ctx) error {
	req := new(domain.CreateAuthorRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateAuthor, err)
	}

	res, err := h.authorService.CreateAuthor(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedCreateAuthor, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateAuthor)
}

func (h *authorHandler) GetAuthors(c *fiber.Ctx) error {
	res, err := h.authorService.GetAuthors(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetAuthors, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetAuthors)
}

func (h *authorHandler) GetAuthorDetail(c *fiber.Ctx) error {
	authorID := c.Params("id")

	res, err := h.authorService.GetAuthorDetail(c.Context(), authorID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetAuthorDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetAuthorDetail)
}

func (h *authorHandler) UpdateAuthor(c *fiber.Ctx) error {
	authorID := c.Params("id")
	req := new(domain.UpdateAuthorRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.authorService.UpdateAuthor(c.Context(), authorID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUpdateAuthor, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateAuthor)
}

func (h *authorHandler) DeleteAuthor(c *fiber.Ctx) error {
	authorID := c.Params("id")

	if err := h.authorService.DeleteAuthor(c.Context(), authorID); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedDeleteAuthor, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteAuthor)
}
