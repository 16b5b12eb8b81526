package handlers

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/internal/api/presenters"
	"Recipe-Share-Backend/pkg/chef"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ChefHandler interface {
		CreateChef(c *fiber.Ctx) error
		GetChefs(c *fiber.Ctx) error
		GetChefDetail(c *fiber.Ctx) error
		UpdateChef(c *fiber.Ctx) error
		DeleteChef(c *fiber.Ctx) error
	}

	chefHandler struct {
		chefService chef.ChefService
		validator   *validator.Validate
	}
)

func NewChefHandler(chefService chef.ChefService, validator *validator.Validate) ChefHandler {
	return &chefHandler{
		chefService: chefService,
		validator:   validator,
	}
}

func (h *chefHandler) CreateChef(c *fiber.Ctx) error {
	req := new(domain.CreateChefRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateChef, err)
	}

	res, err := h.chefService.CreateChef(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedCreateChef, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateChef)
}

func (h *chefHandler) GetChefs(c *fiber.Ctx) error {
	res, err := h.chefService.GetChefs(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetChefs, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetChefs)
}

func (h *chefHandler) GetChefDetail(c *fiber.Ctx) error {
	chefID := c.Params("id")

	res, err := h.chefService.GetChefDetail(c.Context(), chefID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetChefDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetChefDetail)
}

func (h *chefHandler) UpdateChef(c *fiber.Ctx) error {
	chefID := c.Params("id")
	req := new(domain.UpdateChefRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.chefService.UpdateChef(c.Context(), chefID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUpdateChef, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateChef)
}

func (h *chefHandler) DeleteChef(c *fiber.Ctx) error {
	chefID := c.Params("id")

	if err := h.chefService.DeleteChef(c.Context(), chefID); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedDeleteChef, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteChef)
}
