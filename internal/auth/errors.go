package auth

import "errors"

var (
	// ErrInvalidCredentials is returned when the email and/or password do not match.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAccountDisabled is returned when the admin account is not active.
	ErrAccountDisabled = errors.New("account is disabled")

	// ErrSessionNotFound is returned when no session exists for a token.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionExpired is returned when the session has passed its expiry.
	ErrSessionExpired = errors.New("session expired")
)
