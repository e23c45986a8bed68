package auth

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DoctorPortal/DoctorPortal/internal/db/models"
	"github.com/DoctorPortal/DoctorPortal/internal/randstr"
)

// EnsureAdmin creates an active admin account for email unless a user with
// that email exists. The insert relies on the unique email index, so
// concurrent starts create at most one row. When password is empty a random
// one is generated and logged once. It reports whether a row was created.
func EnsureAdmin(db *gorm.DB, email, password string) (bool, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return false, ErrEmailEmpty
	}

	generated := password == ""
	if generated {
		var err error
		if password, err = randstr.Password(); err != nil {
			return false, err
		}
	}

	hash, err := models.HashPassword(password)
	if err != nil {
		return false, errors.Wrap(err, "failed to hash admin password")
	}

	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(&models.User{
		Email:    email,
		Password: hash,
		Role:     models.RoleAdmin,
		Active:   true,
	})
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to create admin user")
	}

	if result.RowsAffected == 0 {
		log.Debug().Str("email", email).Msg("admin user already exists")
		return false, nil
	}

	event := log.Info().Str("email", email)
	if generated {
		event = log.Warn().Str("email", email).Str("password", password)
	}
	event.Msg("created admin user")

	return true, nil
}
