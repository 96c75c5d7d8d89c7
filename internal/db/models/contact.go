package models

import (
	"time"
)

// Status values for a contact message.
const (
	ContactStatusUnread = "unread"
	ContactStatusRead   = "read"
)

var contactTransitions = map[string][]string{
	ContactStatusUnread: {ContactStatusRead},
	ContactStatusRead:   {ContactStatusUnread},
}

// Contact represents a message submitted through the public contact form.
type Contact struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Subject   string    `gorm:"size:255;not null" json:"subject"`
	Message   string    `gorm:"size:5000;not null" json:"message"`
	Status    string    `gorm:"size:50;not null;default:'unread'" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// IsContactStatus reports whether s is a known contact status value.
func IsContactStatus(s string) bool {
	return s == ContactStatusUnread || s == ContactStatusRead
}

// ContactTransitionAllowed reports whether a contact message may move from one status to another.
func ContactTransitionAllowed(from, to string) bool {
	for _, next := range contactTransitions[from] {
		if next == to {
			return true
		}
	}

	return false
}

// ContactInput is the client submitted shape of a contact message.
type ContactInput struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// Record builds the storable contact message from the validated input.
func (in *ContactInput) Record() *Contact {
	return &Contact{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
		Status:  ContactStatusUnread,
	}
}
