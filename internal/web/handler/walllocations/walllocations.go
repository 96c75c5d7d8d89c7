// Package walllocations provides the read-only API handler for the Wall
// of Hope locations.
package walllocations

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/re-libas/relibas-server/internal/config"
	"github.com/re-libas/relibas-server/internal/db/controller/walllocation"
	"github.com/re-libas/relibas-server/internal/web/handler"
)

// Path is the path of the wall locations route.
const Path = handler.APIPrefix + "/wall-locations"

// Service is the wall locations handler service.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the wall locations handler.
var Handler = Service{}

// Init initializes the wall locations handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.db = db
	s.cfg = cfg

	app.Get(Path, s.List)
}

// List returns all Wall of Hope locations.
func (s *Service) List(c *fiber.Ctx) error {
	locations, err := walllocation.GetAll(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch wall locations")

		return handler.ServerError(c, "Failed to fetch wall locations")
	}

	return c.JSON(locations)
}
