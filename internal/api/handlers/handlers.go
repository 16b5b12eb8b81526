package handlers

import (
	"Recipe-Share-Backend/domain"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// statusForError maps domain errors onto the HTTP taxonomy: bad request,
// forbidden, not found, conflict. Anything unknown is a server error.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrChefNotFound),
		errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrAuthorNotFound),
		errors.Is(err, domain.ErrBookNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrNotRecipeOwner),
		errors.Is(err, domain.ErrNotBookOwner):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrChefNameTaken),
		errors.Is(err, domain.ErrAuthorNameTaken),
		errors.Is(err, domain.ErrReviewAlreadyExists):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrChefBirthYearRequired),
		errors.Is(err, domain.ErrAuthorBirthYearRequired),
		errors.Is(err, domain.ErrChefNoFieldsToUpdate),
		errors.Is(err, domain.ErrAuthorNoFieldsToUpdate),
		errors.Is(err, domain.ErrInvalidRating),
		errors.Is(err, domain.ErrEmptyReviewText),
		errors.Is(err, domain.ErrDeleteOwnAccount),
		errors.Is(err, domain.ErrParseUUID):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
