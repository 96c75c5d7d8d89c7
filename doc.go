// Package main provides the entry point for the Re-Libas intake service.
// It initializes and runs a web server using the Fiber framework that accepts
// donation pickup requests, volunteer registrations and contact messages
// through a REST API, and exposes moderation endpoints for the admin
// dashboard. The application uses gorm for data persistence and seeds the
// Wall of Hope locations and news articles on first boot.
package main
