// Package daemon wires the configuration, database and web service together.
package daemon

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/re-libas/relibas-server/internal/config"
	"github.com/re-libas/relibas-server/internal/db/dsn"
	"github.com/re-libas/relibas-server/internal/db/models"
	"github.com/re-libas/relibas-server/internal/web"
)

// Daemon represents the main application daemon.
type Daemon struct {
	db         *gorm.DB
	webService *web.Service
}

// Run starts the web service and blocks until shutdown completes.
func (d *Daemon) Run() error {
	go d.webService.WaitShutdown()

	err := d.webService.Start()

	d.close()

	return err
}

// close releases the database connection.
func (d *Daemon) close() {
	sqlDB, err := d.db.DB()
	if err != nil {
		log.Error().Err(err).Msg("failed to get sql db handle")
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close database")
	}
}

// New creates a new Daemon instance with the provided configuration.
// It opens the database, runs the schema migration and the idempotent
// reference-data seed before constructing the web service.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err = db.AutoMigrate(
		&models.AdminUser{},
		&models.AdminSession{},
		&models.Donation{},
		&models.Volunteer{},
		&models.Contact{},
		&models.WallLocation{},
		&models.NewsArticle{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if err = seed(cfg, db); err != nil {
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}

	return &Daemon{
		db:         db,
		webService: web.New(cfg, db),
	}, nil
}

// openDatabase opens the gorm handle for the configured engine.
func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.DB.Engine {
	case config.EngineMySQL:
		dialector = gormmysql.Open(dsn.MySQL(cfg))
	case config.EnginePostgres:
		dialector = gormpostgres.Open(dsn.Postgres(cfg))
	case config.EngineSQLite:
		dialector = sqlite.Open(cfg.DB.File)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDBEngine, cfg.DB.Engine)
	}

	return gorm.Open(dialector, &gorm.Config{}) //nolint: wrapcheck
}
