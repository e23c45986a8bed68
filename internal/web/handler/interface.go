package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/DoctorPortal/DoctorPortal/internal/auth"
	"github.com/DoctorPortal/DoctorPortal/internal/config"
	"github.com/DoctorPortal/DoctorPortal/internal/locale"
)

// Deps bundles what handlers need to serve requests.
type Deps struct {
	Cfg        *config.Config
	DB         *gorm.DB
	Issuer     *auth.Issuer
	Negotiator *locale.Negotiator
	Validate   *validator.Validate
	// LimiterStorage backs the login rate limiter. Nil selects fiber's
	// in-memory storage.
	LimiterStorage fiber.Storage
}

// Service is the interface for a web handler service.
type Service interface {
	Init(app *fiber.App, deps *Deps) error
}

// Valid reports whether the dependencies every handler relies on are set.
func (d *Deps) Valid() bool {
	return d != nil && d.Cfg != nil && d.DB != nil && d.Issuer != nil && d.Negotiator != nil && d.Validate != nil
}

// AdminOnly returns the middleware chain guarding write endpoints.
func (d *Deps) AdminOnly() []fiber.Handler {
	return []fiber.Handler{auth.RequireAuthenticated(d.Issuer), auth.RequireAdmin()}
}
