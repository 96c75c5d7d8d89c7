// Package volunteers provides the API handlers for volunteer registrations.
package volunteers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/re-libas/relibas-server/internal/auth"
	"github.com/re-libas/relibas-server/internal/config"
	"github.com/re-libas/relibas-server/internal/db/controller/volunteer"
	"github.com/re-libas/relibas-server/internal/db/models"
	"github.com/re-libas/relibas-server/internal/validate"
	"github.com/re-libas/relibas-server/internal/web/handler"
)

// Path is the base path of the volunteer routes.
const Path = handler.APIPrefix + "/volunteers"

// StatusBody is the payload of a status transition request.
type StatusBody struct {
	Status string `json:"status"`
}

// Service is the volunteers handler service.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the volunteers handler.
var Handler = Service{}

// Init initializes the volunteers handler. Registration is public;
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

// Post handles a public volunteer form submission.
func (s *Service) Post(c *fiber.Ctx) error {
	input := new(models.VolunteerInput)

	if err := c.BodyParser(input); err != nil {
		return handler.BadRequest(c, "Invalid volunteer data")
	}

	if errs := validate.Struct(input); errs != nil {
		return handler.ValidationFailed(c, "Invalid volunteer data", errs)
	}

	stored, err := volunteer.Create(s.db, input.Record())
	if err != nil {
		log.Error().Err(err).Msg("failed to register volunteer")

		return handler.ServerError(c, "Failed to register volunteer")
	}

	return c.Status(fiber.StatusCreated).JSON(stored)
}

// List returns all volunteer registrations in insertion order.
func (s *Service) List(c *fiber.Ctx) error {
	volunteers, err := volunteer.GetAll(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch volunteers")

		return handler.ServerError(c, "Failed to fetch volunteers")
	}

	return c.JSON(volunteers)
}

// Delete removes a volunteer registration.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return handler.BadRequest(c, "Invalid volunteer id")
	}

	if err := volunteer.Delete(s.db, id); err != nil {
		if errors.Is(err, volunteer.ErrVolunteerNotFound) {
			return handler.NotFound(c, "Volunteer not found")
		}

		log.Error().Err(err).Uint64("id", id).Msg("failed to delete volunteer")

		return handler.ServerError(c, "Failed to delete volunteer")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateStatus toggles a volunteer between active and inactive.
func (s *Service) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return handler.BadRequest(c, "Invalid volunteer id")
	}

	body := new(StatusBody)
	if err := c.BodyParser(body); err != nil {
		return handler.BadRequest(c, "Invalid status data")
	}

	updated, err := volunteer.UpdateStatus(s.db, id, body.Status)
	if err != nil {
		switch {
		case errors.Is(err, volunteer.ErrInvalidStatus):
			return handler.BadRequest(c, "Unknown volunteer status")
		case errors.Is(err, volunteer.ErrVolunteerNotFound):
			return handler.NotFound(c, "Volunteer not found")
		case errors.Is(err, volunteer.ErrInvalidTransition):
			return handler.Conflict(c, "Status transition not allowed")
		}

		log.Error().Err(err).Uint64("id", id).Msg("failed to update volunteer status")

		return handler.ServerError(c, "Failed to update volunteer status")
	}

	return c.JSON(updated)
}

func parseID(c *fiber.Ctx) (uint64, error) {
	return strconv.ParseUint(c.Params("id"), 10, 64) //nolint: wrapcheck
}
