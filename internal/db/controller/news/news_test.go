package news

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

	err = db.AutoMigrate(&models.NewsArticle{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func TestGetAllNewestFirst(t *testing.T) {
	db := setupTestDB(t)

	seed := []models.NewsArticle{
		{
			Title:       "Oldest",
			Excerpt:     "e",
			Content:     "c",
			Category:    "Impact Story",
			PublishedAt: time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			Title:       "Newest",
			Excerpt:     "e",
			Content:     "c",
			Category:    "Installation",
			PublishedAt: time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			Title:       "Middle",
			Excerpt:     "e",
			Content:     "c",
			Category:    "Partnership",
			PublishedAt: time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC),
		},
	}
	require.NoError(t, db.Create(&seed).Error)

	articles, err := GetAll(db)
	require.NoError(t, err)
	require.Len(t, articles, 3)

	assert.Equal(t, "Newest", articles[0].Title)
	assert.Equal(t, "Middle", articles[1].Title)
	assert.Equal(t, "Oldest", articles[2].Title)
}

func TestNilDB(t *testing.T) {
	_, err := GetAll(nil)
	require.ErrorIs(t, err, ErrDBNil)
}
