package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/DoctorPortal/DoctorPortal/internal/db/dbtest"
	"github.com/DoctorPortal/DoctorPortal/internal/db/models"
)

func seedUser(t *testing.T, db *gorm.DB, email, password string, role models.Role, active bool) *models.User {
	t.Helper()

	hash, err := models.HashPassword(password)
	require.NoError(t, err)

	user := &models.User{Email: email, Password: hash, Role: role, Active: active}
	require.NoError(t, db.Create(user).Error)

	if !active {
		require.NoError(t, db.Model(user).Update("active", false).Error)
	}

	return user
}

func TestAuthenticate(t *testing.T) {
	db := dbtest.Open(t)
	provider := NewLocalProvider(db)

	seedUser(t, db, "admin@clinic.az", "s3cret", models.RoleAdmin, true)
	seedUser(t, db, "old@clinic.az", "s3cret", models.RoleEditor, false)

	legacy, err := bcrypt.GenerateFromPassword([]byte("legacy-pw"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.User{
		Email: "legacy@clinic.az", Password: string(legacy), Role: models.RoleEditor, Active: true,
	}).Error)

	testCases := []struct {
		name          string
		email         string
		password      string
		expectedError error
	}{
		{name: "success", email: "admin@clinic.az", password: "s3cret"},
		{name: "email is case insensitive", email: " Admin@Clinic.AZ ", password: "s3cret"},
		{name: "legacy bcrypt hash", email: "legacy@clinic.az", password: "legacy-pw"},
		{name: "unknown user", email: "nobody@clinic.az", password: "s3cret", expectedError: ErrUserNotFound},
		{name: "wrong password", email: "admin@clinic.az", password: "nope", expectedError: ErrInvalidPassword},
		{name: "disabled", email: "old@clinic.az", password: "s3cret", expectedError: ErrUserAccountDisabled},
		{name: "disabled with wrong password", email: "old@clinic.az", password: "x", expectedError: ErrInvalidPassword},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			user, err := provider.Authenticate(tc.email, tc.password)

			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.Equal(t, NormalizeEmail(tc.email), user.Email)
			}
		})
	}
}

func TestGetUserByID(t *testing.T) {
	db := dbtest.Open(t)
	provider := NewLocalProvider(db)
	user := seedUser(t, db, "admin@clinic.az", "pw", models.RoleAdmin, true)

	got, err := provider.GetUserByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)

	_, err = provider.GetUserByID(999)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestEnsureAdmin(t *testing.T) {
	db := dbtest.Open(t)

	created, err := EnsureAdmin(db, "Admin@Clinic.az", "first")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = EnsureAdmin(db, "admin@clinic.az", "second")
	require.NoError(t, err)
	assert.False(t, created)

	var users []models.User
	require.NoError(t, db.Find(&users).Error)
	require.Len(t, users, 1)
	assert.Equal(t, models.RoleAdmin, users[0].Role)
	assert.True(t, users[0].VerifyPassword("first"), "existing password must be kept")

	created, err = EnsureAdmin(db, "generated@clinic.az", "")
	require.NoError(t, err)
	assert.True(t, created)

	_, err = EnsureAdmin(db, " ", "pw")
	require.ErrorIs(t, err, ErrEmailEmpty)
}
