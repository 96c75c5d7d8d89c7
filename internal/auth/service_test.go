package auth

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/re-libas/relibas-server/internal/db/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.AdminUser{}, &models.AdminSession{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func seedAdmin(t *testing.T, db *gorm.DB, active bool) *models.AdminUser {
	t.Helper()

	user := &models.AdminUser{
		Email:    "admin@example.com",
		Password: models.HashPassword("changeme"),
		Active:   active,
	}
	require.NoError(t, db.Create(user).Error)

	return user
}

func TestAuthenticate(t *testing.T) {
	db := setupTestDB(t)
	seedAdmin(t, db, true)

	svc := NewService(db, time.Hour)

	testCases := []struct {
		name          string
		email         string
		password      string
		expectedError error
	}{
		{name: "valid credentials", email: "admin@example.com", password: "changeme"},
		{name: "wrong password", email: "admin@example.com", password: "nope", expectedError: ErrInvalidCredentials},
		{name: "unknown email", email: "ghost@example.com", password: "changeme", expectedError: ErrInvalidCredentials},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			user, err := svc.Authenticate(tc.email, tc.password)

			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.email, user.Email)
			}
		})
	}
}

func TestAuthenticateDisabledAccount(t *testing.T) {
	db := setupTestDB(t)
	seedAdmin(t, db, false)

	svc := NewService(db, time.Hour)

	_, err := svc.Authenticate("admin@example.com", "changeme")
	require.ErrorIs(t, err, ErrAccountDisabled)
}

func TestSessionLifecycle(t *testing.T) {
	db := setupTestDB(t)
	user := seedAdmin(t, db, true)

	svc := NewService(db, time.Hour)

	session, err := svc.IssueSession(user)
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.True(t, session.ExpiresAt.After(time.Now()))

	validated, err := svc.ValidateSession(session.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, validated.ID)

	require.NoError(t, svc.RevokeSession(session.Token))

	_, err = svc.ValidateSession(session.Token)
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestValidateSessionExpired(t *testing.T) {
	db := setupTestDB(t)
	user := seedAdmin(t, db, true)

	svc := NewService(db, time.Hour)

	expired := &models.AdminSession{
		Token:       "expiredtoken",
		AdminUserID: user.ID,
		ExpiresAt:   time.Now().Add(-time.Minute),
	}
	require.NoError(t, db.Create(expired).Error)

	_, err := svc.ValidateSession("expiredtoken")
	require.ErrorIs(t, err, ErrSessionExpired)

	// expired sessions are removed on sight
	var count int64
	require.NoError(t, db.Model(&models.AdminSession{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestValidateSessionUnknownToken(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db, time.Hour)

	_, err := svc.ValidateSession("nope")
	require.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.ValidateSession("")
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRevokeUnknownTokenIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db, time.Hour)

	require.NoError(t, svc.RevokeSession("nope"))
	require.NoError(t, svc.RevokeSession(""))
}

func TestGenerateToken(t *testing.T) {
	a, err := GenerateToken()
	require.NoError(t, err)

	b, err := GenerateToken()
	require.NoError(t, err)

	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}
