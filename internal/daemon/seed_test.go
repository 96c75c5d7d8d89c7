package daemon

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/re-libas/relibas-server/internal/config"
	"github.com/re-libas/relibas-server/internal/db/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(
		&models.AdminUser{},
		&models.WallLocation{},
		&models.NewsArticle{},
	)
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func testConfig() *config.Config {
	return &config.Config{
		Admin: config.Admin{
			Email:    "admin@example.com",
			Password: "changeme",
		},
	}
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)

	return count
}

func TestSeed(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()

	require.NoError(t, seed(cfg, db))

	assert.EqualValues(t, 1, countRows(t, db, &models.AdminUser{}))
	assert.EqualValues(t, 3, countRows(t, db, &models.WallLocation{}))
	assert.EqualValues(t, 3, countRows(t, db, &models.NewsArticle{}))

	var admin models.AdminUser
	require.NoError(t, db.First(&admin).Error)
	assert.Equal(t, "admin@example.com", admin.Email)
	assert.True(t, admin.Active)
	assert.True(t, admin.VerifyPassword("changeme"))
	assert.NotEqual(t, "changeme", admin.Password, "password must be stored hashed")
}

func TestSeedIdempotent(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()

	require.NoError(t, seed(cfg, db))
	require.NoError(t, seed(cfg, db))

	// repeated startups must not duplicate reference data
	assert.EqualValues(t, 1, countRows(t, db, &models.AdminUser{}))
	assert.EqualValues(t, 3, countRows(t, db, &models.WallLocation{}))
	assert.EqualValues(t, 3, countRows(t, db, &models.NewsArticle{}))
}
