// Package volunteer provides storage operations for volunteer registrations.
package volunteer

import (
	"errors"

	"gorm.io/gorm"

	"github.com/re-libas/relibas-server/internal/db/models"
)

var (
	// ErrVolunteerNotFound is returned when a volunteer registration is not found.
	ErrVolunteerNotFound = errors.New("volunteer not found")
	// ErrInvalidStatus is returned when an unknown status value is requested.
	ErrInvalidStatus = errors.New("invalid volunteer status")
	// ErrInvalidTransition is returned when the requested status change is not allowed.
	ErrInvalidTransition = errors.New("invalid volunteer status transition")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Create stores a new volunteer registration and returns it with the
// assigned id and creation timestamp.
func Create(db *gorm.DB, volunteer *models.Volunteer) (*models.Volunteer, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	result := db.Create(volunteer)
	if result.Error != nil {
		return nil, result.Error
	}

	return volunteer, nil
}

// GetAll retrieves all volunteer registrations in insertion order.
func GetAll(db *gorm.DB) ([]models.Volunteer, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var volunteers []models.Volunteer
	result := db.Order("id ASC").Find(&volunteers)
	if result.Error != nil {
		return nil, result.Error
	}

	return volunteers, nil
}

// Count returns the number of registered volunteers.
func Count(db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var count int64
	result := db.Model(&models.Volunteer{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

// Delete removes a volunteer registration by ID.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.Volunteer{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVolunteerNotFound
	}

	return nil
}

// UpdateStatus moves a volunteer registration to a new status, enforcing
// the allowed transitions.
func UpdateStatus(db *gorm.DB, id uint64, status string) (*models.Volunteer, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if !models.IsVolunteerStatus(status) {
		return nil, ErrInvalidStatus
	}

	var volunteer models.Volunteer
	result := db.First(&volunteer, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrVolunteerNotFound
		}
		return nil, result.Error
	}

	if !models.VolunteerTransitionAllowed(volunteer.Status, status) {
		return nil, ErrInvalidTransition
	}

	volunteer.Status = status
	result = db.Save(&volunteer)
	if result.Error != nil {
		return nil, result.Error
	}

	return &volunteer, nil
}
