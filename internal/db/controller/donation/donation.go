// Package donation provides storage operations for donation pickup requests.
package donation

import (
	"errors"

	"gorm.io/gorm"

	"github.com/re-libas/relibas-server/internal/db/models"
)

var (
	// ErrDonationNotFound is returned when a donation request is not found.
	ErrDonationNotFound = errors.New("donation not found")
	// ErrInvalidStatus is returned when an unknown status value is requested.
	ErrInvalidStatus = errors.New("invalid donation status")
	// ErrInvalidTransition is returned when the requested status change is not allowed.
	ErrInvalidTransition = errors.New("invalid donation status transition")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Create stores a new donation request and returns it with the assigned
// id and creation timestamp.
func Create(db *gorm.DB, donation *models.Donation) (*models.Donation, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	result := db.Create(donation)
	if result.Error != nil {
		return nil, result.Error
	}

	return donation, nil
}

// GetAll retrieves all donation requests in insertion order.
func GetAll(db *gorm.DB) ([]models.Donation, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var donations []models.Donation
	result := db.Order("id ASC").Find(&donations)
	if result.Error != nil {
		return nil, result.Error
	}

	return donations, nil
}

// Delete removes a donation request by ID.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.Donation{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDonationNotFound
	}

	return nil
}

// UpdateStatus moves a donation request to a new status, enforcing the
// allowed transitions.
func UpdateStatus(db *gorm.DB, id uint64, status string) (*models.Donation, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if !models.IsDonationStatus(status) {
		return nil, ErrInvalidStatus
	}

	var donation models.Donation
	result := db.First(&donation, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrDonationNotFound
		}
		return nil, result.Error
	}

	if !models.DonationTransitionAllowed(donation.Status, status) {
		return nil, ErrInvalidTransition
	}

	donation.Status = status
	result = db.Save(&donation)
	if result.Error != nil {
		return nil, result.Error
	}

	return &donation, nil
}
