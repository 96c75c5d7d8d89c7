package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/re-libas/relibas-server/internal/validate"
)

// ErrorResponse is the JSON body of every error response. Errors is only
// populated for validation failures.
type ErrorResponse struct {
	Message string                `json:"message"`
	Errors  []validate.FieldError `json:"errors,omitempty"`
}

// BadRequest responds 400 with a message.
func BadRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Message: message})
}

// ValidationFailed responds 400 with a message and the field-level error list.
func ValidationFailed(c *fiber.Ctx, message string, errs []validate.FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Message: message, Errors: errs})
}

// NotFound responds 404 with a message.
func NotFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Message: message})
}

// Conflict responds 409 with a message.
func Conflict(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusConflict).JSON(ErrorResponse{Message: message})
}

// ServerError responds 500 with an opaque message. Internal details belong
// in the log, never in the response body.
func ServerError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Message: message})
}
