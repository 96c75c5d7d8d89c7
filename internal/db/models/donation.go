// Package models contains database model definitions.
package models

import (
	"time"
)

// Status values for a donation pickup request.
const (
	// DonationStatusPending is the initial status of every new request.
	DonationStatusPending = "pending"
	// DonationStatusScheduled means a pickup has been arranged.
	DonationStatusScheduled = "scheduled"
	// DonationStatusCompleted means the clothes were collected.
	DonationStatusCompleted = "completed"
	// DonationStatusCancelled means the request was withdrawn or abandoned.
	DonationStatusCancelled = "cancelled"
)

// donationTransitions lists the allowed status transitions per current status.
var donationTransitions = map[string][]string{
	DonationStatusPending:   {DonationStatusScheduled, DonationStatusCancelled},
	DonationStatusScheduled: {DonationStatusCompleted, DonationStatusCancelled},
}

// Donation represents a clothing pickup request submitted through the
// public donation form.
type Donation struct {
	// ID is the unique identifier for the request.
	ID uint64 `gorm:"primaryKey" json:"id"`
	// FullName is the donor's full name.
	FullName string `gorm:"size:255;not null" json:"fullName"`
	// PhoneNumber is the donor's contact number for the pickup.
	PhoneNumber string `gorm:"size:50;not null" json:"phoneNumber"`
	// Address is the pickup address.
	Address string `gorm:"size:500;not null" json:"address"`
	// ClothingType is the category of clothes offered (men, women, children, mixed).
	ClothingType string `gorm:"size:100;not null" json:"clothingType"`
	// EstimatedQuantity is the donor's estimate of how many items to expect.
	EstimatedQuantity string `gorm:"size:100;not null" json:"estimatedQuantity"`
	// PickupDate is the requested pickup date as submitted by the donor.
	PickupDate string `gorm:"size:50;not null" json:"pickupDate"`
	// PickupTime is the requested time window (morning, afternoon, evening).
	PickupTime string `gorm:"size:50;not null" json:"pickupTime"`
	// Status is the moderation status, always pending at creation.
	Status string `gorm:"size:50;not null;default:'pending'" json:"status"`
	// CreatedAt is assigned by the server at persistence time (managed by GORM).
	CreatedAt time.Time `json:"createdAt"`
}

// IsDonationStatus reports whether s is a known donation status value.
func IsDonationStatus(s string) bool {
	switch s {
	case DonationStatusPending, DonationStatusScheduled, DonationStatusCompleted, DonationStatusCancelled:
		return true
	}

	return false
}

// DonationTransitionAllowed reports whether a donation may move from one status to another.
func DonationTransitionAllowed(from, to string) bool {
	for _, next := range donationTransitions[from] {
		if next == to {
			return true
		}
	}

	return false
}

// DonationInput is the client submitted shape of a donation pickup request.
// Server managed fields (id, status, createdAt) are not part of the input
// and are ignored when supplied.
type DonationInput struct {
	FullName          string `json:"fullName"          validate:"required"`
	PhoneNumber       string `json:"phoneNumber"       validate:"required"`
	Address           string `json:"address"           validate:"required"`
	ClothingType      string `json:"clothingType"      validate:"required"`
	EstimatedQuantity string `json:"estimatedQuantity" validate:"required"`
	PickupDate        string `json:"pickupDate"        validate:"required"`
	PickupTime        string `json:"pickupTime"        validate:"required"`
}

// Record builds the storable donation from the validated input.
func (in *DonationInput) Record() *Donation {
	return &Donation{
		FullName:          in.FullName,
		PhoneNumber:       in.PhoneNumber,
		Address:           in.Address,
		ClothingType:      in.ClothingType,
		EstimatedQuantity: in.EstimatedQuantity,
		PickupDate:        in.PickupDate,
		PickupTime:        in.PickupTime,
		Status:            DonationStatusPending,
	}
}
