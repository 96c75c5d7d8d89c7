package models

import (
	"time"
)

// Status values for a Wall of Hope location.
const (
	WallLocationStatusActive       = "active"
	WallLocationStatusNeedsRestock = "needs_restock"
)

// WallLocation represents a physical Wall of Hope donation station.
// Locations are seeded at boot and only read through the API.
type WallLocation struct {
	ID      uint64 `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:255;not null" json:"name"`
	Address string `gorm:"size:500;not null" json:"address"`
	// Latitude and Longitude are stored as strings, the map widget on the
	// site consumes them verbatim.
	Latitude      string    `gorm:"size:50" json:"latitude"`
	Longitude     string    `gorm:"size:50" json:"longitude"`
	Status        string    `gorm:"size:50;not null;default:'active'" json:"status"`
	LastRestocked time.Time `json:"lastRestocked"`
}
