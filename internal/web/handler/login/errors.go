// Package login provides the token login endpoints.
//
// This file defines exported error values used throughout the login flow.
package login

import "errors"

var (
	// ErrInvalidCredentials is returned when the email is unknown or the
	// password does not match. Both cases share one message.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrTooManyAttempts is returned when the login rate limit was reached.
	ErrTooManyAttempts = errors.New("too many login attempts, try again later")
)
