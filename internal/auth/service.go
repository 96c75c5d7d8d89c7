// Package auth implements server-verified admin authentication.
// Session tokens are issued at login, stored in the database with an
// expiry and validated on every moderation request.
package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/re-libas/relibas-server/internal/db/models"
)

// Service provides authentication for the moderation dashboard.
type Service struct {
	db            *gorm.DB
	sessionExpiry time.Duration
}

// NewService creates a new auth service.
func NewService(db *gorm.DB, sessionExpiry time.Duration) *Service {
	return &Service{db: db, sessionExpiry: sessionExpiry}
}

// Authenticate checks an email/password pair against the admin_users table.
func (s *Service) Authenticate(email, password string) (*models.AdminUser, error) {
	var user models.AdminUser

	err := s.db.Where("email = ?", email).First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}

	if err != nil {
		return nil, fmt.Errorf("failed to query admin user: %w", err)
	}

	if !user.Active {
		return nil, ErrAccountDisabled
	}

	if !user.VerifyPassword(password) {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// IssueSession creates a new session for the given admin user and returns it.
func (s *Service) IssueSession(user *models.AdminUser) (*models.AdminSession, error) {
	token, err := GenerateToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	session := &models.AdminSession{
		Token:       token,
		AdminUserID: user.ID,
		ExpiresAt:   time.Now().Add(s.sessionExpiry),
	}

	if err := s.db.Create(session).Error; err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	return session, nil
}

// ValidateSession resolves a bearer token to its admin user.
// Expired sessions are removed on sight.
func (s *Service) ValidateSession(token string) (*models.AdminUser, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}

	var session models.AdminSession

	err := s.db.Where("token = ?", token).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSessionNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to query session: %w", err)
	}

	if time.Now().After(session.ExpiresAt) {
		s.db.Delete(&session)
		return nil, ErrSessionExpired
	}

	var user models.AdminUser

	err = s.db.First(&user, session.AdminUserID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSessionNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to query admin user: %w", err)
	}

	if !user.Active {
		return nil, ErrAccountDisabled
	}

	return &user, nil
}

// RevokeSession deletes a session token. Revoking an unknown token is a no-op.
func (s *Service) RevokeSession(token string) error {
	if token == "" {
		return nil
	}

	return s.db.Where("token = ?", token).Delete(&models.AdminSession{}).Error
}

// GenerateToken generates a new secure random session token.
func GenerateToken() (string, error) {
	// 32 bytes = 256 bits
	b := make([]byte, 32) //nolint:mnd
	if _, err := rand.Read(b); err != nil {
		return "", err //nolint: wrapcheck
	}

	return hex.EncodeToString(b), nil
}
