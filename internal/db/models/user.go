package models

import (
	"strings"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// bcryptPrefix marks hashes imported from the previous portal backend.
const bcryptPrefix = "$2"

// User represents an account able to sign in to the admin API.
type User struct {
	// ID is the unique identifier for the user.
	ID uint64 `gorm:"primaryKey" json:"id"`
	// Email is the unique login name.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	// Password is the Argon2id hash (bcrypt hashes are accepted for legacy accounts).
	Password string `gorm:"size:255;not null" json:"-"`
	// Role is the authorization level.
	Role Role `gorm:"type:varchar(20);not null;default:'editor'" json:"role"`
	// Active indicates whether the user may sign in.
	Active bool `gorm:"default:true" json:"-"`
	// CreatedAt is managed by GORM.
	CreatedAt time.Time `json:"-"`
	// UpdatedAt is managed by GORM.
	UpdatedAt time.Time `json:"-"`
}

// HashPassword hashes a plaintext password using the Argon2id algorithm.
func HashPassword(password string) (string, error) {
	return argon2id.CreateHash(password, argon2id.DefaultParams) //nolint:wrapcheck
}

// VerifyPassword verifies a plaintext password against the stored hash.
// Both comparisons run in constant time.
func (u *User) VerifyPassword(password string) bool {
	if strings.HasPrefix(u.Password, bcryptPrefix) {
		return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
	}

	match, err := argon2id.ComparePasswordAndHash(password, u.Password)
	if err != nil {
		log.Error().Err(err).Uint64("user_id", u.ID).Msg("failed to verify password")
		return false
	}

	return match
}
