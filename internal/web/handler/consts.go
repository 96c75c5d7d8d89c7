// Package handler holds shared constants and response helpers for the
// API handler packages.
package handler

const (
	// APIPrefix is the path prefix of every API route.
	APIPrefix = "/api"

	// ErrNilACDFatalLogMsg is used if app or cfg or db var pointer is nil.
	ErrNilACDFatalLogMsg = "app, cfg or db is nil"
)
