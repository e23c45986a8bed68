// Package config handles input from etc/*.toml files
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes environment overrides, e.g. DOCTOR_PORTAL_AUTH_JWTSECRET.
	EnvPrefix = "DOCTOR_PORTAL"

	// EnvConfigJSON holds a JSON document merged over the file config.
	EnvConfigJSON = EnvPrefix + "_CONFIG_JSON"

	defaultShutDownTime    = 5
	defaultPageSize        = 10
	defaultTokenTTL        = 24 * time.Hour
	defaultLoginRateWindow = time.Minute
)

// ReadConfig from config file.
func ReadConfig(path string) (Config, error) {
	var (
		c             Config
		JSONConfigEnv string
		err           error
	)

	// Read main configuration
	if path == "" {
		path = "./etc/"
	}

	v := viper.New()
	v.SetConfigFile(path + "main.toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err = v.ReadInConfig(); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	if err = v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode main config file")
	}

	// override it from env
	JSONConfigEnv = os.Getenv(EnvConfigJSON)

	if JSONConfigEnv != "" {
		c, err = decodeAndMergeConfig(c, JSONConfigEnv)
		if err != nil {
			return c, err
		}
	}

	return c, validate(&c)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read json config override")
	}

	return c, nil
}

const maskedValue = "********"

// Masked returns a copy of c with passwords and secrets replaced.
func Masked(c Config) Config {
	for _, secret := range []*string{&c.DB.Password, &c.Auth.JWTSecret, &c.Auth.AdminPassword} {
		if *secret != "" {
			*secret = maskedValue
		}
	}

	return c
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer
	t := toml.NewEncoder(&buffer)

	if err := t.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validate checks the settings the service cannot start without and fills defaults.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = defaultShutDownTime
	}

	switch c.DB.GormEngine {
	case "":
		c.DB.GormEngine = EngineSQLite
	case EngineMySQL, EnginePostgres, EngineSQLite:
	default:
		return errors.Wrap(ErrUnknownGormEngine, invalidErrMessage)
	}

	if c.Auth.JWTSecret == "" && !c.DevMode {
		return errors.Wrap(ErrJWTSecretEmpty, invalidErrMessage)
	}

	if c.Auth.TokenTTL == 0 {
		c.Auth.TokenTTL = defaultTokenTTL
	}

	if c.Auth.LoginRateWindow == 0 {
		c.Auth.LoginRateWindow = defaultLoginRateWindow
	}

	if c.Pagination.DefaultPageSize < 1 {
		c.Pagination.DefaultPageSize = defaultPageSize
	}

	return validateLocale(&c.Locale, invalidErrMessage)
}

func validateLocale(l *Locale, invalidErrMessage string) error {
	if len(l.Supported) == 0 {
		l.Supported = []string{"en", "az", "ru"}
	}

	for i := range l.Supported {
		l.Supported[i] = strings.ToLower(strings.TrimSpace(l.Supported[i]))
	}

	if l.Default == "" {
		l.Default = l.Supported[0]
	}

	l.Default = strings.ToLower(l.Default)
	l.Fallback = strings.ToLower(l.Fallback)

	if !slices.Contains(l.Supported, l.Default) {
		return errors.Wrap(ErrDefaultLanguageNotSupported, invalidErrMessage)
	}

	if l.Fallback != "" && !slices.Contains(l.Supported, l.Fallback) {
		return errors.Wrap(ErrFallbackLanguageNotSupported, invalidErrMessage)
	}

	return nil
}
