package config

import (
	"time"

	"github.com/DoctorPortal/DoctorPortal/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode    bool // enable dev mode for development
	DB         DB
	Log        logger.Log
	Title      string
	Webserver  Webserver
	Auth       Auth
	Locale     Locale
	Pagination Pagination
}

// Webserver implement webserver settings.
type Webserver struct {
	DisableRecover bool     // disable recover middleware
	ExposeErrors   bool     // return raw storage errors in 500 responses
	Port           int      // listening port for the webserver
	ShutDownTime   int      // wait time for shutdown in seconds
	URL            string   // base url for the webserver
	AllowOrigins   []string // CORS origins of the frontend
	CheckAliveURI  string   // liveness endpoint, excluded from access logs when configured
}

// Auth holds token and bootstrap settings.
type Auth struct {
	JWTSecret       string        // HMAC secret for issued tokens
	Issuer          string        // iss claim
	TokenTTL        time.Duration // lifetime of issued tokens
	AdminEmail      string        // bootstrap admin account
	AdminPassword   string        // generated and logged once when empty
	LoginRateLimit  int           // max login attempts per window and IP, 0 disables
	LoginRateWindow time.Duration // limiter window
}

// Locale holds the supported content languages.
type Locale struct {
	Default   string   // used when negotiation finds nothing supported
	Supported []string // closed set of language codes
	Fallback  string   // optional backfill language for missing fields, empty disables
}

// Pagination holds list defaults.
type Pagination struct {
	DefaultPageSize int
	MaxPageSize     int // 0 means unbounded
}
