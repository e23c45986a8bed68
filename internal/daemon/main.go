// Package daemon wires the database, the bootstrap admin and the web service.
package daemon

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/DoctorPortal/DoctorPortal/internal/config"
	"github.com/DoctorPortal/DoctorPortal/internal/db"
	"github.com/DoctorPortal/DoctorPortal/internal/db/kvstore"
	"github.com/DoctorPortal/DoctorPortal/internal/web"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService *web.Service
}

// Start serves HTTP on the configured port until SIGINT or SIGTERM.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	addr := ":" + strconv.Itoa(d.cfg.Webserver.Port)
	log.Info().Str("addr", addr).Str("url", d.cfg.Webserver.URL).Msg("starting web service")

	return d.webService.Start(addr)
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, web.ErrConfigNil
	}

	gormDB, err := db.Open(cfg)
	if err != nil {
		return nil, err
	}

	log.Info().Str("engine", cfg.DB.GormEngine).Str("name", cfg.DB.Name).Msg("database ready")

	if err = seed(cfg, gormDB); err != nil {
		return nil, err
	}

	var limiterStorage fiber.Storage
	if cfg.Auth.LoginRateLimit > 0 {
		limiterStorage = kvstore.New(cfg)
	}

	webService, err := web.New(cfg, gormDB, limiterStorage)
	if err != nil {
		return nil, err
	}

	return &Daemon{
		cfg:        cfg,
		webService: webService,
	}, nil
}
