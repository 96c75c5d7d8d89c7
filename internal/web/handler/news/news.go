// Package news provides the read-only API handler for news articles.
package news

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/re-libas/relibas-server/internal/config"
	newsctl "github.com/re-libas/relibas-server/internal/db/controller/news"
	"github.com/re-libas/relibas-server/internal/web/handler"
)

// Path is the path of the news route.
const Path = handler.APIPrefix + "/news"

// Service is the news handler service.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the news handler.
var Handler = Service{}

// Init initializes the news handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.db = db
	s.cfg = cfg

	app.Get(Path, s.List)
}

// List returns all news articles, newest first.
func (s *Service) List(c *fiber.Ctx) error {
	articles, err := newsctl.GetAll(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch news articles")

		return handler.ServerError(c, "Failed to fetch news articles")
	}

	return c.JSON(articles)
}
