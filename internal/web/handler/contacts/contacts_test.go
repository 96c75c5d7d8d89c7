package contacts

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/re-libas/relibas-server/internal/auth"
	"github.com/re-libas/relibas-server/internal/config"
	"github.com/re-libas/relibas-server/internal/db/models"
)

func setupTestApp(t *testing.T) (*fiber.App, string) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.Contact{}, &models.AdminUser{}, &models.AdminSession{})
	require.NoError(t, err, "failed to migrate test database")

	admin := &models.AdminUser{
		Email:    "admin@example.com",
		Password: models.HashPassword("changeme"),
		Active:   true,
	}
	require.NoError(t, db.Create(admin).Error)

	authService := auth.NewService(db, time.Hour)

	session, err := authService.IssueSession(admin)
	require.NoError(t, err)

	app := fiber.New(fiber.Config{Immutable: true})

	h := Service{}
	h.Init(app, &config.Config{}, db, authService)

	return app, session.Token
}

func doRequest(t *testing.T, app *fiber.App, method, target, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)

		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, out any) {
	t.Helper()

	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func contactPayload() map[string]any {
	return map[string]any{
		"name":    "Sana",
		"email":   "sana@example.com",
		"subject": "Collection drive",
		"message": "How can my school host a collection drive?",
	}
}

func TestLifecycle(t *testing.T) {
	app, token := setupTestApp(t)

	resp := doRequest(t, app, fiber.MethodPost, Path, "", contactPayload())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created models.Contact
	decodeJSON(t, resp, &created)

	assert.NotZero(t, created.ID)
	assert.Equal(t, models.ContactStatusUnread, created.Status)

	target := fmt.Sprintf("%s/%d/status", Path, created.ID)

	resp = doRequest(t, app, fiber.MethodPatch, target, token, StatusBody{Status: models.ContactStatusRead})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated models.Contact
	decodeJSON(t, resp, &updated)
	assert.Equal(t, models.ContactStatusRead, updated.Status)

	resp = doRequest(t, app, fiber.MethodDelete, fmt.Sprintf("%s/%d", Path, created.ID), token, nil)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = doRequest(t, app, fiber.MethodGet, Path, token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var listed []models.Contact
	decodeJSON(t, resp, &listed)
	assert.Empty(t, listed)
}

func TestPostValidation(t *testing.T) {
	app, _ := setupTestApp(t)

	payload := contactPayload()
	delete(payload, "message")

	resp := doRequest(t, app, fiber.MethodPost, Path, "", payload)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestModerationRequiresSession(t *testing.T) {
	app, _ := setupTestApp(t)

	resp := doRequest(t, app, fiber.MethodGet, Path, "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
