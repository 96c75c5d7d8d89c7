package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by RequireAdmin.
const (
	// LocalsAdminUser holds the authenticated *models.AdminUser.
	LocalsAdminUser = "admin_user"
	// LocalsAdminToken holds the bearer token of the current session.
	LocalsAdminToken = "admin_token"
)

const bearerPrefix = "Bearer "

// RequireAdmin is a fiber middleware that rejects requests without a valid
// admin session token with 401. The authenticated user and token are made
// available via Locals.
func RequireAdmin(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
		}

		user, err := svc.ValidateSession(token)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired session")
		}

		c.Locals(LocalsAdminUser, user)
		c.Locals(LocalsAdminToken, token)

		return c.Next()
	}
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, bearerPrefix) {
		return ""
	}

	return strings.TrimPrefix(header, bearerPrefix)
}
