package auth

import "errors"

var (
	// ErrUserAccountDisabled is returned when attempting to authenticate a disabled user account.
	ErrUserAccountDisabled = errors.New("user account is disabled")

	// ErrInvalidPassword is returned when the provided password is incorrect during authentication.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrUserNotFound is returned when a user cannot be found in the database.
	ErrUserNotFound = errors.New("user not found")

	// ErrMissingToken is returned when a request carries no bearer token.
	ErrMissingToken = errors.New("missing bearer token")

	// ErrInvalidToken is returned for a token with a bad signature, wrong issuer or past expiry.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrForbidden is returned when an authenticated user lacks the admin role.
	ErrForbidden = errors.New("admin role required")

	// ErrSecretEmpty is returned when no signing secret is configured.
	ErrSecretEmpty = errors.New("jwt secret is empty")

	// ErrEmailEmpty is returned when bootstrapping an admin without an email.
	ErrEmailEmpty = errors.New("admin email is empty")
)
