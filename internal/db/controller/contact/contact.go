// Package contact provides storage operations for contact messages.
package contact

import (
	"errors"

	"gorm.io/gorm"

	"github.com/re-libas/relibas-server/internal/db/models"
)

var (
	// ErrContactNotFound is returned when a contact message is not found.
	ErrContactNotFound = errors.New("contact message not found")
	// ErrInvalidStatus is returned when an unknown status value is requested.
	ErrInvalidStatus = errors.New("invalid contact status")
	// ErrInvalidTransition is returned when the requested status change is not allowed.
	ErrInvalidTransition = errors.New("invalid contact status transition")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Create stores a new contact message and returns it with the assigned
// id and creation timestamp.
func Create(db *gorm.DB, contact *models.Contact) (*models.Contact, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	result := db.Create(contact)
	if result.Error != nil {
		return nil, result.Error
	}

	return contact, nil
}

// GetAll retrieves all contact messages in insertion order.
func GetAll(db *gorm.DB) ([]models.Contact, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var contacts []models.Contact
	result := db.Order("id ASC").Find(&contacts)
	if result.Error != nil {
		return nil, result.Error
	}

	return contacts, nil
}

// Delete removes a contact message by ID.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.Contact{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrContactNotFound
	}

	return nil
}

// UpdateStatus moves a contact message to a new status, enforcing the
// allowed transitions.
func UpdateStatus(db *gorm.DB, id uint64, status string) (*models.Contact, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if !models.IsContactStatus(status) {
		return nil, ErrInvalidStatus
	}

	var contact models.Contact
	result := db.First(&contact, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, result.Error
	}

	if !models.ContactTransitionAllowed(contact.Status, status) {
		return nil, ErrInvalidTransition
	}

	contact.Status = status
	result = db.Save(&contact)
	if result.Error != nil {
		return nil, result.Error
	}

	return &contact, nil
}
