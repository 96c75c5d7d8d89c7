// Package news provides read access to the published news articles.
// Articles are reference data: seeded at boot, never created or deleted
// through the API.
package news

import (
	"errors"

	"gorm.io/gorm"

	"github.com/re-libas/relibas-server/internal/db/models"
)

// ErrDBNil is returned when the database connection is nil.
var ErrDBNil = errors.New("database connection is nil")

// GetAll retrieves all news articles, newest first.
func GetAll(db *gorm.DB) ([]models.NewsArticle, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var articles []models.NewsArticle
	result := db.Order("published_at DESC").Find(&articles)
	if result.Error != nil {
		return nil, result.Error
	}

	return articles, nil
}
