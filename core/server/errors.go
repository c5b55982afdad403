package server

import (
	"errors"

	"pantry-planner/core/kitchen"

	"github.com/gofiber/fiber/v2"
)

// ErrorStatus maps a domain error to its HTTP status.
func ErrorStatus(err error) int {
	switch {
	case errors.Is(err, kitchen.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, kitchen.ErrInvalid):
		return fiber.StatusBadRequest
	case errors.Is(err, kitchen.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, kitchen.ErrAlreadyExists):
		return fiber.StatusConflict
	case errors.Is(err, kitchen.ErrIntegrity):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

// RespondError writes err as a JSON error body. Internal errors are not echoed
// to the client; fallback is sent instead.
func RespondError(c *fiber.Ctx, err error, fallback string) error {
	status := ErrorStatus(err)
	msg := err.Error()
	if status == fiber.StatusInternalServerError {
		msg = fallback
	}
	return c.Status(status).JSON(fiber.Map{"error": msg})
}
