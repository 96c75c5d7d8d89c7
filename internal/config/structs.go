package config

import (
	"time"

	"github.com/re-libas/relibas-server/internal/logger"
)

const defaultSessionExpiry = 12 * time.Hour

// Admin holds the bootstrap admin account and session settings.
// The email/password pair is only used to seed the first admin user;
// authentication itself always runs against the database.
type Admin struct {
	Email         string
	Password      string
	SessionExpiry time.Duration
}

// Stats holds the fixed impact figures served by the stats endpoint.
type Stats struct {
	ClothesCollected int64
	FamiliesServed   int64
	LegacyVolunteers int64
}

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
	Admin     Admin
	Stats     Stats
}

// Webserver implement webserver settings.
type Webserver struct {
	DisableRecover bool   // disable recover middleware
	Domain         string // domain name for the webserver
	Port           int    // listening port for the webserver
	ShutDownTime   int    // wait time for shutdown
	URL            string // base url for the webserver
}
