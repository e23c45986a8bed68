package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrUnknownGormEngine error if db.gormEngine is not mysql, postgres or sqlite.
	ErrUnknownGormEngine = errors.New("toml config db.gormEngine must be mysql, postgres or sqlite")

	// ErrJWTSecretEmpty error if auth.jwtSecret is empty outside dev mode.
	ErrJWTSecretEmpty = errors.New("toml config auth.jwtSecret can not be empty")

	// ErrDefaultLanguageNotSupported error if locale.default is missing from locale.supported.
	ErrDefaultLanguageNotSupported = errors.New("toml config locale.default must be listed in locale.supported")

	// ErrFallbackLanguageNotSupported error if locale.fallback is set but not supported.
	ErrFallbackLanguageNotSupported = errors.New("toml config locale.fallback must be listed in locale.supported")
)
