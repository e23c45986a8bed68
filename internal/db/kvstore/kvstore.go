// Package kvstore provides the shared key/value storage backing the login
// rate limiter, so that counters survive restarts and are shared between
// instances.
package kvstore

import (
	"time"

	"github.com/gofiber/fiber/v2"
	storagemysql "github.com/gofiber/storage/mysql/v2"
	storagepostgres "github.com/gofiber/storage/postgres/v3"
	"github.com/rs/zerolog/log"

	"github.com/DoctorPortal/DoctorPortal/internal/config"
	"github.com/DoctorPortal/DoctorPortal/internal/db/dsn"
)

const (
	// Table is the name of the table holding limiter entries.
	Table = "rate_limits"

	gcInterval = 10 * time.Second
)

// New opens the storage matching the configured engine. For SQLite it
// returns nil and callers fall back to fiber's in-memory storage.
func New(cfg *config.Config) fiber.Storage {
	switch cfg.DB.GormEngine {
	case config.EngineMySQL:
		log.Debug().Str("table", Table).Msg("using mysql limiter storage")

		return storagemysql.New(storagemysql.Config{
			ConnectionURI: dsn.Create(cfg),
			Table:         Table,
			GCInterval:    gcInterval,
		})
	case config.EnginePostgres:
		log.Debug().Str("table", Table).Msg("using postgres limiter storage")

		return storagepostgres.New(storagepostgres.Config{
			Host:       cfg.DB.Host,
			Port:       cfg.DB.Port,
			Username:   cfg.DB.User,
			Password:   cfg.DB.Password,
			Database:   cfg.DB.Name,
			SSLMode:    sslMode(cfg.DB.Extras),
			Table:      Table,
			GCInterval: gcInterval,
		})
	default:
		log.Debug().Msg("using in-memory limiter storage")

		return nil
	}
}
