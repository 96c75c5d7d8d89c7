// Package stats provides the impact statistics endpoint for the public site.
package stats

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/re-libas/relibas-server/internal/config"
	"github.com/re-libas/relibas-server/internal/db/controller/volunteer"
	"github.com/re-libas/relibas-server/internal/db/controller/walllocation"
	"github.com/re-libas/relibas-server/internal/web/handler"
)

// Path is the path of the stats route.
const Path = handler.APIPrefix + "/stats"

// Stats is the response body of the stats endpoint. Wall and volunteer
// counts are live; the remaining figures are configuration values tracked
// outside this system.
type Stats struct {
	ClothesCollected int64 `json:"clothesCollected"`
	FamiliesServed   int64 `json:"familiesServed"`
	WallsOfHope      int64 `json:"wallsOfHope"`
	Volunteers       int64 `json:"volunteers"`
}

// Service is the stats handler service.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the stats handler.
var Handler = Service{}

// Init initializes the stats handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.db = db
	s.cfg = cfg

	app.Get(Path, s.Get)
}

// Get computes and returns the current impact statistics.
func (s *Service) Get(c *fiber.Ctx) error {
	walls, err := walllocation.Count(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to count wall locations")

		return handler.ServerError(c, "Failed to fetch stats")
	}

	volunteers, err := volunteer.Count(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to count volunteers")

		return handler.ServerError(c, "Failed to fetch stats")
	}

	return c.JSON(Stats{
		ClothesCollected: s.cfg.Stats.ClothesCollected,
		FamiliesServed:   s.cfg.Stats.FamiliesServed,
		WallsOfHope:      walls,
		Volunteers:       volunteers + s.cfg.Stats.LegacyVolunteers,
	})
}
