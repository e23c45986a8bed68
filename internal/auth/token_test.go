package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DoctorPortal/DoctorPortal/internal/config"
	"github.com/DoctorPortal/DoctorPortal/internal/db/models"
)

func newTestIssuer(t *testing.T, secret, iss string) *Issuer {
	t.Helper()

	issuer, err := NewIssuer(config.Auth{JWTSecret: secret, Issuer: iss, TokenTTL: time.Hour})
	require.NoError(t, err)

	return issuer
}

func TestNewIssuer(t *testing.T) {
	_, err := NewIssuer(config.Auth{})
	require.ErrorIs(t, err, ErrSecretEmpty)

	issuer, err := NewIssuer(config.Auth{JWTSecret: "s"})
	require.NoError(t, err)
	assert.Equal(t, defaultTTL, issuer.TTL())
}

func TestSignAndParse(t *testing.T) {
	issuer := newTestIssuer(t, "secret", "doctor-portal")
	user := &models.User{ID: 7, Email: "admin@clinic.az", Role: models.RoleAdmin}

	token, expires, err := issuer.Sign(user)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expires, time.Minute)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), claims.UID)
	assert.Equal(t, "admin@clinic.az", claims.Email)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.Equal(t, "7", claims.Subject)
}

func TestParseRejects(t *testing.T) {
	issuer := newTestIssuer(t, "secret", "doctor-portal")
	user := &models.User{ID: 7, Email: "admin@clinic.az", Role: models.RoleAdmin}

	valid, _, err := issuer.Sign(user)
	require.NoError(t, err)

	otherSecret, _, err := newTestIssuer(t, "other", "doctor-portal").Sign(user)
	require.NoError(t, err)

	otherIssuer, _, err := newTestIssuer(t, "secret", "someone-else").Sign(user)
	require.NoError(t, err)

	expiredIssuer := newTestIssuer(t, "secret", "doctor-portal")
	expiredIssuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, _, err := expiredIssuer.Sign(user)
	require.NoError(t, err)

	hs384, err := jwt.NewWithClaims(jwt.SigningMethodHS384, Claims{
		UID:              7,
		Role:             models.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{Issuer: "doctor-portal", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UID:              7,
		Role:             models.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{Issuer: "doctor-portal"},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "tampered", token: valid + "x"},
		{name: "other secret", token: otherSecret},
		{name: "other issuer", token: otherIssuer},
		{name: "expired", token: expired},
		{name: "unexpected algorithm", token: hs384},
		{name: "no expiry", token: noExpiry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := issuer.Parse(tt.token)
			require.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}
