package models

import (
	"time"
)

// NewsArticle represents a published news item shown on the public site.
// Articles are seeded at boot and only read through the API.
type NewsArticle struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Excerpt     string    `gorm:"size:1000;not null" json:"excerpt"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	Category    string    `gorm:"size:100;not null" json:"category"`
	ImageURL    string    `gorm:"size:500" json:"imageUrl"`
	PublishedAt time.Time `json:"publishedAt"`
}
