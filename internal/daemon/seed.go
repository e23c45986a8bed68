package daemon

import (
	"gorm.io/gorm"

	"github.com/DoctorPortal/DoctorPortal/internal/auth"
	"github.com/DoctorPortal/DoctorPortal/internal/config"
)

// seed creates the bootstrap admin when an email is configured.
func seed(cfg *config.Config, db *gorm.DB) error {
	if cfg.Auth.AdminEmail == "" {
		return nil
	}

	_, err := auth.EnsureAdmin(db, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword)

	return err
}
