package daemon

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DoctorPortal/DoctorPortal/internal/config"
	"github.com/DoctorPortal/DoctorPortal/internal/db/models"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		Title: "Doctor Portal",
		DB: config.DB{
			GormEngine: config.EngineSQLite,
			Name:       filepath.Join(t.TempDir(), "portal.db"),
			Extras:     "_pragma=foreign_keys(1)",
		},
		Webserver: config.Webserver{Port: 8080, URL: "http://localhost:8080", ShutDownTime: 1},
		Auth: config.Auth{
			JWTSecret:      "secret",
			AdminEmail:     "Admin@Clinic.az",
			AdminPassword:  "initial-password",
			LoginRateLimit: 5,
		},
		Locale:     config.Locale{Default: "en", Supported: []string{"en", "az", "ru"}},
		Pagination: config.Pagination{DefaultPageSize: 10},
	}
}

func TestNew(t *testing.T) {
	cfg := testConfig(t)

	d, err := New(cfg)
	require.NoError(t, err)
	require.NotNil(t, d.webService)

	sqlDB, err := d.webService.DB().DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	var admin models.User
	require.NoError(t, d.webService.DB().Where("email = ?", "admin@clinic.az").Take(&admin).Error)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.True(t, admin.Active)
	assert.True(t, admin.VerifyPassword("initial-password"))
}

func TestNewNilConfig(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
}

func TestSeedWithoutAdminEmail(t *testing.T) {
	cfg := testConfig(t)
	cfg.Auth.AdminEmail = ""

	d, err := New(cfg)
	require.NoError(t, err)

	sqlDB, err := d.webService.DB().DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	var count int64
	require.NoError(t, d.webService.DB().Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)
}
