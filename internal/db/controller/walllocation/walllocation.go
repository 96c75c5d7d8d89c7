// Package walllocation provides read access to the Wall of Hope locations.
// Locations are reference data: seeded at boot, never created or deleted
// through the API.
package walllocation

import (
	"errors"

	"gorm.io/gorm"

	"github.com/re-libas/relibas-server/internal/db/models"
)

// ErrDBNil is returned when the database connection is nil.
var ErrDBNil = errors.New("database connection is nil")

// GetAll retrieves all Wall of Hope locations.
func GetAll(db *gorm.DB) ([]models.WallLocation, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var locations []models.WallLocation
	result := db.Order("id ASC").Find(&locations)
	if result.Error != nil {
		return nil, result.Error
	}

	return locations, nil
}

// Count returns the number of Wall of Hope locations.
func Count(db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var count int64
	result := db.Model(&models.WallLocation{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
