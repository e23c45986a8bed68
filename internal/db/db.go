// Package db opens the gorm connection and migrates the schema.
package db

import (
	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/DoctorPortal/DoctorPortal/internal/config"
	"github.com/DoctorPortal/DoctorPortal/internal/db/dsn"
	"github.com/DoctorPortal/DoctorPortal/internal/db/models"
)

// Models lists every table managed by AutoMigrate, parents before children.
func Models() []any {
	return []any{
		&models.User{},
		&models.Setting{},
		&models.Doctor{},
		&models.Service{},
		&models.Testimonial{},
		&models.BlogPost{},
		&models.Translation{},
		&models.Appointment{},
	}
}

// Dialector returns the gorm dialector for the configured engine.
func Dialector(cfg *config.Config) gorm.Dialector {
	source := dsn.Create(cfg)

	switch cfg.DB.GormEngine {
	case config.EngineMySQL:
		return mysql.Open(source)
	case config.EnginePostgres:
		return postgres.Open(source)
	default:
		return sqlite.Open(source)
	}
}

// Open connects to the configured database and migrates the schema.
func Open(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(Dialector(cfg), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect database")
	}

	if err = Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates all tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return errors.Wrap(err, "failed to migrate database")
	}

	return nil
}
