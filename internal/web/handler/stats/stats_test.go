package stats

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/re-libas/relibas-server/internal/config"
	"github.com/re-libas/relibas-server/internal/db/models"
)

func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.WallLocation{}, &models.Volunteer{})
	require.NoError(t, err, "failed to migrate test database")

	cfg := &config.Config{
		Stats: config.Stats{
			ClothesCollected: 2547,
			FamiliesServed:   1230,
			LegacyVolunteers: 156,
		},
	}

	app := fiber.New(fiber.Config{Immutable: true})

	h := Service{}
	h.Init(app, cfg, db)

	return app, db
}

func getStats(t *testing.T, app *fiber.App) Stats {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, Path, nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body Stats

	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	return body
}

func TestGet(t *testing.T) {
	app, db := setupTestApp(t)

	walls := []models.WallLocation{
		{Name: "A", Address: "a", Status: models.WallLocationStatusActive, LastRestocked: time.Now()},
		{Name: "B", Address: "b", Status: models.WallLocationStatusActive, LastRestocked: time.Now()},
		{Name: "C", Address: "c", Status: models.WallLocationStatusNeedsRestock, LastRestocked: time.Now()},
	}
	require.NoError(t, db.Create(&walls).Error)

	volunteers := []models.Volunteer{
		{FullName: "V1", Email: "v1@example.com", PhoneNumber: "1", Availability: "weekends", Status: models.VolunteerStatusActive},
		{FullName: "V2", Email: "v2@example.com", PhoneNumber: "2", Availability: "evenings", Status: models.VolunteerStatusActive},
	}
	require.NoError(t, db.Create(&volunteers).Error)

	body := getStats(t, app)

	assert.EqualValues(t, 2547, body.ClothesCollected)
	assert.EqualValues(t, 1230, body.FamiliesServed)
	assert.EqualValues(t, 3, body.WallsOfHope)
	assert.EqualValues(t, 158, body.Volunteers)
}

func TestGetEmptyDatabase(t *testing.T) {
	app, _ := setupTestApp(t)

	body := getStats(t, app)

	assert.Zero(t, body.WallsOfHope)
	assert.EqualValues(t, 156, body.Volunteers, "legacy volunteer count still reported")
}
