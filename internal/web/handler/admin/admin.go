// Package admin provides the login and logout endpoints for the
// moderation dashboard. Sessions are issued and verified server-side;
// credentials never live in client code.
package admin

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/re-libas/relibas-server/internal/auth"
	"github.com/re-libas/relibas-server/internal/config"
	"github.com/re-libas/relibas-server/internal/validate"
	"github.com/re-libas/relibas-server/internal/web/handler"
)

// Paths of the admin session routes.
const (
	LoginPath  = handler.APIPrefix + "/admin/login"
	LogoutPath = handler.APIPrefix + "/admin/logout"
)

// LoginBody is the payload of a login request.
type LoginBody struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued session token.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Service is the admin session handler service.
type Service struct {
	cfg         *config.Config
	db          *gorm.DB
	authService *auth.Service
}

// Handler is the admin session handler.
var Handler = Service{}

// Init initializes the admin session handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, authService *auth.Service) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.db = db
	s.cfg = cfg
	s.authService = authService

	app.Post(LoginPath, s.Login)
	app.Post(LogoutPath, auth.RequireAdmin(authService), s.Logout)
}

// Login verifies credentials and issues a session token.
func (s *Service) Login(c *fiber.Ctx) error {
	body := new(LoginBody)

	if err := c.BodyParser(body); err != nil {
		return handler.BadRequest(c, "Invalid login data")
	}

	if errs := validate.Struct(body); errs != nil {
		return handler.ValidationFailed(c, "Invalid login data", errs)
	}

	user, err := s.authService.Authenticate(body.Email, body.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) || errors.Is(err, auth.ErrAccountDisabled) {
			return c.Status(fiber.StatusUnauthorized).
				JSON(handler.ErrorResponse{Message: "Invalid email or password"})
		}

		log.Error().Err(err).Msg("login failed")

		return handler.ServerError(c, "Login failed")
	}

	session, err := s.authService.IssueSession(user)
	if err != nil {
		log.Error().Err(err).Msg("failed to issue session")

		return handler.ServerError(c, "Login failed")
	}

	return c.JSON(LoginResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
	})
}

// Logout revokes the current session token.
func (s *Service) Logout(c *fiber.Ctx) error {
	token, _ := c.Locals(auth.LocalsAdminToken).(string)

	if err := s.authService.RevokeSession(token); err != nil {
		log.Error().Err(err).Msg("failed to revoke session")

		return handler.ServerError(c, "Logout failed")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
