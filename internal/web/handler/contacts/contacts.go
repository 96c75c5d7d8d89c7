// Package contacts provides the API handlers for contact messages.
package contacts

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/re-libas/relibas-server/internal/auth"
	"github.com/re-libas/relibas-server/internal/config"
	"github.com/re-libas/relibas-server/internal/db/controller/contact"
	"github.com/re-libas/relibas-server/internal/db/models"
	"github.com/re-libas/relibas-server/internal/validate"
	"github.com/re-libas/relibas-server/internal/web/handler"
)

// Path is the base path of the contact routes.
const Path = handler.APIPrefix + "/contacts"

// StatusBody is the payload of a status transition request.
type StatusBody struct {
	Status string `json:"status"`
}

// Service is the contacts handler service.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the contacts handler.
var Handler = Service{}

// Init initializes the contacts handler. Sending a message is public;
// listing, deleting and status changes require an admin session.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, authService *auth.Service) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.db = db
	s.cfg = cfg

	app.Post(Path, s.Post)
	app.Get(Path, auth.RequireAdmin(authService), s.List)
	app.Delete(Path+"/:id", auth.RequireAdmin(authService), s.Delete)
	app.Patch(Path+"/:id/status", auth.RequireAdmin(authService), s.UpdateStatus)
}

// Post handles a public contact form submission.
func (s *Service) Post(c *fiber.Ctx) error {
	input := new(models.ContactInput)

	if err := c.BodyParser(input); err != nil {
		return handler.BadRequest(c, "Invalid contact data")
	}

	if errs := validate.Struct(input); errs != nil {
		return handler.ValidationFailed(c, "Invalid contact data", errs)
	}

	stored, err := contact.Create(s.db, input.Record())
	if err != nil {
		log.Error().Err(err).Msg("failed to send contact message")

		return handler.ServerError(c, "Failed to send contact message")
	}

	return c.Status(fiber.StatusCreated).JSON(stored)
}

// List returns all contact messages in insertion order.
func (s *Service) List(c *fiber.Ctx) error {
	contacts, err := contact.GetAll(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch contacts")

		return handler.ServerError(c, "Failed to fetch contacts")
	}

	return c.JSON(contacts)
}

// Delete removes a contact message.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return handler.BadRequest(c, "Invalid message id")
	}

	if err := contact.Delete(s.db, id); err != nil {
		if errors.Is(err, contact.ErrContactNotFound) {
			return handler.NotFound(c, "Message not found")
		}

		log.Error().Err(err).Uint64("id", id).Msg("failed to delete message")

		return handler.ServerError(c, "Failed to delete message")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateStatus marks a message read or unread.
func (s *Service) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return handler.BadRequest(c, "Invalid message id")
	}

	body := new(StatusBody)
	if err := c.BodyParser(body); err != nil {
		return handler.BadRequest(c, "Invalid status data")
	}

	updated, err := contact.UpdateStatus(s.db, id, body.Status)
	if err != nil {
		switch {
		case errors.Is(err, contact.ErrInvalidStatus):
			return handler.BadRequest(c, "Unknown message status")
		case errors.Is(err, contact.ErrContactNotFound):
			return handler.NotFound(c, "Message not found")
		case errors.Is(err, contact.ErrInvalidTransition):
			return handler.Conflict(c, "Status transition not allowed")
		}

		log.Error().Err(err).Uint64("id", id).Msg("failed to update message status")

		return handler.ServerError(c, "Failed to update message status")
	}

	return c.JSON(updated)
}

func parseID(c *fiber.Ctx) (uint64, error) {
	return strconv.ParseUint(c.Params("id"), 10, 64) //nolint: wrapcheck
}
