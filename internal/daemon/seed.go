package daemon

import (
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/re-libas/relibas-server/internal/config"
	"github.com/re-libas/relibas-server/internal/db/models"
)

const day = 24 * time.Hour

// seed inserts the bootstrap admin account and the reference data on an
// empty database. Every insert is guarded by a count check per table, so
// the seed is idempotent and safe to run on every process start.
func seed(cfg *config.Config, db *gorm.DB) error {
	if err := seedAdminUser(cfg, db); err != nil {
		return err
	}

	if err := seedWallLocations(db); err != nil {
		return err
	}

	return seedNewsArticles(db)
}

func seedAdminUser(cfg *config.Config, db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.AdminUser{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	log.Info().Str("email", cfg.Admin.Email).Msg("seeding bootstrap admin user")

	return db.Create(
		&models.AdminUser{
			Email:    cfg.Admin.Email,
			Password: models.HashPassword(cfg.Admin.Password),
			Active:   true,
		},
	).Error
}

func seedWallLocations(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.WallLocation{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	locations := []models.WallLocation{
		{
			Name:          "UET Main Campus",
			Address:       "GT Road, Lahore",
			Latitude:      "31.5804",
			Longitude:     "74.3587",
			Status:        models.WallLocationStatusActive,
			LastRestocked: time.Now().Add(-2 * day),
		},
		{
			Name:          "Jamia Mosque Gulberg",
			Address:       "Main Boulevard, Gulberg III",
			Latitude:      "31.5204",
			Longitude:     "74.3587",
			Status:        models.WallLocationStatusActive,
			LastRestocked: time.Now().Add(-1 * day),
		},
		{
			Name:          "Bus Stop Katchi Abadi",
			Address:       "Ravi Road, Near Shama Colony",
			Latitude:      "31.6340",
			Longitude:     "74.3723",
			Status:        models.WallLocationStatusNeedsRestock,
			LastRestocked: time.Now().Add(-5 * day),
		},
	}

	log.Info().Int("count", len(locations)).Msg("seeding wall locations")

	return db.Create(&locations).Error
}

func seedNewsArticles(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.NewsArticle{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	articles := []models.NewsArticle{
		{
			Title: "New Wall of Hope Opens at GCU Campus",
			Excerpt: "Students from Government College University Lahore partnered with Re-Libas to establish " +
				"the 13th Wall of Hope station, expanding our reach to serve more families...",
			Content:     "Full article content would go here...",
			Category:    "Installation",
			ImageURL:    "https://images.unsplash.com/photo-1488521787991-ed7bbaae773c?auto=format&fit=crop&w=400&h=250",
			PublishedAt: time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			Title: "1000+ Families Served in Winter Drive",
			Excerpt: "Our winter collection drive successfully provided warm clothing to over 1000 families " +
				"across Lahore, with special focus on children's winter wear and blankets...",
			Content:     "Full article content would go here...",
			Category:    "Impact Story",
			ImageURL:    "https://images.unsplash.com/photo-1469571486292-0ba58a3f068b?auto=format&fit=crop&w=400&h=250",
			PublishedAt: time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			Title: "Partnership with Local Mosques Expands",
			Excerpt: "Re-Libas announces new partnerships with 15 mosques across Lahore to establish permanent " +
				"Wall of Hope stations in underserved communities...",
			Content:     "Full article content would go here...",
			Category:    "Partnership",
			ImageURL:    "https://images.unsplash.com/photo-1509099836639-18ba1795216d?auto=format&fit=crop&w=400&h=250",
			PublishedAt: time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		},
	}

	log.Info().Int("count", len(articles)).Msg("seeding news articles")

	return db.Create(&articles).Error
}
