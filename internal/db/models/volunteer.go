package models

import (
	"time"
)

// Status values for a volunteer registration.
const (
	VolunteerStatusActive   = "active"
	VolunteerStatusInactive = "inactive"
)

var volunteerTransitions = map[string][]string{
	VolunteerStatusActive:   {VolunteerStatusInactive},
	VolunteerStatusInactive: {VolunteerStatusActive},
}

// Volunteer represents a registration submitted through the public
// volunteer form.
type Volunteer struct {
	ID          uint64 `gorm:"primaryKey" json:"id"`
	FullName    string `gorm:"size:255;not null" json:"fullName"`
	Email       string `gorm:"size:255;not null" json:"email"`
	PhoneNumber string `gorm:"size:50;not null" json:"phoneNumber"`
	// Institution is the volunteer's university, school or employer, optional.
	Institution string `gorm:"size:255" json:"institution"`
	// AreasOfInterest holds the activity areas the volunteer signed up for.
	AreasOfInterest    StringSlice `gorm:"type:text" json:"areasOfInterest"`
	Availability       string      `gorm:"size:255;not null" json:"availability"`
	AdditionalComments string      `gorm:"size:2000" json:"additionalComments"`
	Status             string      `gorm:"size:50;not null;default:'active'" json:"status"`
	CreatedAt          time.Time   `json:"createdAt"`
}

// IsVolunteerStatus reports whether s is a known volunteer status value.
func IsVolunteerStatus(s string) bool {
	return s == VolunteerStatusActive || s == VolunteerStatusInactive
}

// VolunteerTransitionAllowed reports whether a volunteer may move from one status to another.
func VolunteerTransitionAllowed(from, to string) bool {
	for _, next := range volunteerTransitions[from] {
		if next == to {
			return true
		}
	}

	return false
}

// VolunteerInput is the client submitted shape of a volunteer registration.
// When areasOfInterest is present it must contain at least one entry.
type VolunteerInput struct {
	FullName           string   `json:"fullName"           validate:"required"`
	Email              string   `json:"email"              validate:"required,email"`
	PhoneNumber        string   `json:"phoneNumber"        validate:"required"`
	Institution        string   `json:"institution"        validate:"omitempty"`
	AreasOfInterest    []string `json:"areasOfInterest"    validate:"omitempty,min=1,dive,required"`
	Availability       string   `json:"availability"       validate:"required"`
	AdditionalComments string   `json:"additionalComments" validate:"omitempty"`
}

// Record builds the storable volunteer from the validated input.
func (in *VolunteerInput) Record() *Volunteer {
	return &Volunteer{
		FullName:           in.FullName,
		Email:              in.Email,
		PhoneNumber:        in.PhoneNumber,
		Institution:        in.Institution,
		AreasOfInterest:    StringSlice(in.AreasOfInterest),
		Availability:       in.Availability,
		AdditionalComments: in.AdditionalComments,
		Status:             VolunteerStatusActive,
	}
}
