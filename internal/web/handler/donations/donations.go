// Package donations provides the API handlers for donation pickup requests.
package donations

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/re-libas/relibas-server/internal/auth"
	"github.com/re-libas/relibas-server/internal/config"
	"github.com/re-libas/relibas-server/internal/db/controller/donation"
	"github.com/re-libas/relibas-server/internal/db/models"
	"github.com/re-libas/relibas-server/internal/validate"
	"github.com/re-libas/relibas-server/internal/web/handler"
)

// Path is the base path of the donation routes.
const Path = handler.APIPrefix + "/donations"

// StatusBody is the payload of a status transition request.
type StatusBody struct {
	Status string `json:"status"`
}

// Service is the donations handler service.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the donations handler.
var Handler = Service{}

// Init initializes the donations handler. Creating a request is public;
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

// Post handles a public donation form submission.
func (s *Service) Post(c *fiber.Ctx) error {
	input := new(models.DonationInput)

	if err := c.BodyParser(input); err != nil {
		return handler.BadRequest(c, "Invalid donation data")
	}

	if errs := validate.Struct(input); errs != nil {
		return handler.ValidationFailed(c, "Invalid donation data", errs)
	}

	stored, err := donation.Create(s.db, input.Record())
	if err != nil {
		log.Error().Err(err).Msg("failed to create donation request")

		return handler.ServerError(c, "Failed to create donation request")
	}

	return c.Status(fiber.StatusCreated).JSON(stored)
}

// List returns all donation requests in insertion order.
func (s *Service) List(c *fiber.Ctx) error {
	donations, err := donation.GetAll(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch donations")

		return handler.ServerError(c, "Failed to fetch donations")
	}

	return c.JSON(donations)
}

// Delete removes a donation request.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return handler.BadRequest(c, "Invalid donation id")
	}

	if err := donation.Delete(s.db, id); err != nil {
		if errors.Is(err, donation.ErrDonationNotFound) {
			return handler.NotFound(c, "Donation not found")
		}

		log.Error().Err(err).Uint64("id", id).Msg("failed to delete donation")

		return handler.ServerError(c, "Failed to delete donation")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateStatus moves a donation request through its moderation workflow.
func (s *Service) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return handler.BadRequest(c, "Invalid donation id")
	}

	body := new(StatusBody)
	if err := c.BodyParser(body); err != nil {
		return handler.BadRequest(c, "Invalid status data")
	}

	updated, err := donation.UpdateStatus(s.db, id, body.Status)
	if err != nil {
		switch {
		case errors.Is(err, donation.ErrInvalidStatus):
			return handler.BadRequest(c, "Unknown donation status")
		case errors.Is(err, donation.ErrDonationNotFound):
			return handler.NotFound(c, "Donation not found")
		case errors.Is(err, donation.ErrInvalidTransition):
			return handler.Conflict(c, "Status transition not allowed")
		}

		log.Error().Err(err).Uint64("id", id).Msg("failed to update donation status")

		return handler.ServerError(c, "Failed to update donation status")
	}

	return c.JSON(updated)
}

func parseID(c *fiber.Ctx) (uint64, error) {
	return strconv.ParseUint(c.Params("id"), 10, 64) //nolint: wrapcheck
}
