// Package web implements the HTTP service exposing the intake and
// moderation API.
package web

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/re-libas/relibas-server/internal/auth"
	"github.com/re-libas/relibas-server/internal/config"
	fiberlogger "github.com/re-libas/relibas-server/internal/logger/adapter/fiber"
	"github.com/re-libas/relibas-server/internal/web/handler"
	adminhandler "github.com/re-libas/relibas-server/internal/web/handler/admin"
	"github.com/re-libas/relibas-server/internal/web/handler/contacts"
	"github.com/re-libas/relibas-server/internal/web/handler/donations"
	newshandler "github.com/re-libas/relibas-server/internal/web/handler/news"
	"github.com/re-libas/relibas-server/internal/web/handler/stats"
	"github.com/re-libas/relibas-server/internal/web/handler/volunteers"
	"github.com/re-libas/relibas-server/internal/web/handler/walllocations"
)

// CheckAlivePath is the liveness endpoint used by load balancers.
const CheckAlivePath = handler.APIPrefix + "/checkalive"

// Service represents the web service.
type Service struct {
	App         *fiber.App
	cfg         *config.Config
	alive       atomic.Bool
	db          *gorm.DB
	authService *auth.Service
}

// Start starts the web service on the configured port and blocks until
// the server stops.
func (s *Service) Start() error {
	var doneFiber = make(chan bool)

	go func() {
		addr := fmt.Sprintf(":%d", s.cfg.Webserver.Port)
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for SIGINT/SIGTERM and performs a graceful shutdown.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: fail the liveness check first
	// so the LB removes this pod from active targets before we stop.
	log.Info().Msgf(
		"graceful shutdown: return 503 for %d seconds to let LB remove this pod from active targets",
		s.cfg.Webserver.ShutDownTime,
	)

	s.alive.Store(false)
	time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)

	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// checkAlive reports liveness; during the shutdown drain it returns 503.
func (s *Service) checkAlive(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.SendStatus(fiber.StatusServiceUnavailable)
	}

	return c.SendString("OK")
}

// errorHandler converts uncaught errors into JSON responses. Anything at
// 500 and above is logged and reported with an opaque message so internal
// details never leak to the client.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		if code < fiber.StatusInternalServerError {
			message = e.Message
		}
	}

	if code >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
	}

	return c.Status(code).JSON(handler.ErrorResponse{Message: message})
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, db *gorm.DB) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if db == nil {
		panic("db cannot be nil")
	}

	// create fiber app
	app := fiber.New(
		fiber.Config{
			AppName:       "relibas-server",
			CaseSensitive: true,
			Prefork:       false,
			Immutable:     true,
			ErrorHandler:  errorHandler,
		},
	)

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New())
	}

	// access logging
	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
	}))

	authService := auth.NewService(db, cfg.Admin.SessionExpiry)

	service := &Service{
		cfg:         cfg,
		App:         app,
		db:          db,
		authService: authService,
	}
	service.alive.Store(true)

	app.Get(CheckAlivePath, service.checkAlive)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// init handlers (they register their own routes)
	adminhandler.Handler.Init(app, cfg, db, authService)
	donations.Handler.Init(app, cfg, db, authService)
	volunteers.Handler.Init(app, cfg, db, authService)
	contacts.Handler.Init(app, cfg, db, authService)
	walllocations.Handler.Init(app, cfg, db)
	newshandler.Handler.Init(app, cfg, db)
	stats.Handler.Init(app, cfg, db)

	return service
}
