// Package fiber is the access log middleware. One JSON line per request is
// written through zerolog to the access log file and, optionally, stdout.
package fiber

import (
	"io"
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/DoctorPortal/DoctorPortal/internal/logger"
)

const performanceHeader = "X-Performance"

// Config for New.
type Config struct {
	// Next skips the middleware when it returns true.
	Next func(c *fiber.Ctx) bool

	// Config selects the access log writers.
	Config logger.Log

	// CheckAliveURI is not logged when Config.SkipCheckAlive is set.
	CheckAliveURI string

	// CacheControlError is sent when the app error handler itself fails.
	// Default "max-age=0".
	CacheControlError string

	// Output replaces the configured writers.
	Output io.Writer
}

func (cfg *Config) writers() []io.Writer {
	if cfg.Output != nil {
		return []io.Writer{cfg.Output}
	}

	var out []io.Writer

	if cfg.Config.Files.Enabled {
		out = append(out, newRollingAccessFile(cfg.Config.Files))
	}

	if !cfg.Config.Console.Enabled || !cfg.Config.AccessLogToConsole {
		return out
	}

	if cfg.Config.Console.Pretty {
		return append(out, zerolog.ConsoleWriter{
			Out:          os.Stdout,
			TimeFormat:   zerolog.TimeFieldFormat,
			PartsExclude: []string{zerolog.LevelFieldName},
		})
	}

	return append(out, os.Stdout)
}

func (cfg *Config) skip(c *fiber.Ctx) bool {
	return cfg.Config.SkipCheckAlive && cfg.CheckAliveURI != "" && c.Path() == cfg.CheckAliveURI
}

// New returns the access log handler. A chain error is resolved through the
// app error handler before logging, so the entry carries the final status and
// the error is not handled a second time further out.
func New(config ...Config) fiber.Handler {
	var cfg Config
	if len(config) > 0 {
		cfg = config[0]
	}

	if cfg.CacheControlError == "" {
		cfg.CacheControlError = "max-age=0"
	}

	writers := cfg.writers()
	access := zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()

	return func(c *fiber.Ctx) error {
		if cfg.Next != nil && cfg.Next(c) {
			return c.Next()
		}

		start := time.Now()

		chainErr := c.Next()
		if chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
				c.Set(fiber.HeaderCacheControl, cfg.CacheControlError)
			}
		}

		latency := time.Since(start).Seconds()
		c.Set(performanceHeader, strconv.FormatFloat(latency, 'f', 6, 64))

		if len(writers) == 0 || cfg.skip(c) {
			return nil
		}

		resp := c.Response()
		event := access.Log().
			Str("ip", c.IP()).
			Str("method", c.Method()).
			Bytes("host", c.Request().Host()).
			Str("uri", string(c.Request().RequestURI())). // raw, fasthttp normalises Path
			Int("status", resp.StatusCode()).
			Float64("latency", latency).
			Bytes("request_id", resp.Header.Peek(fiber.HeaderXRequestID)).
			Bytes("language", resp.Header.Peek(fiber.HeaderContentLanguage)).
			Str("forwarded_for", c.Get(fiber.HeaderXForwardedFor)).
			Str("user_agent", c.Get(fiber.HeaderUserAgent)).
			Str("origin", c.Get(fiber.HeaderOrigin))

		if chainErr != nil {
			event = event.Err(chainErr)
		}

		event.Send()

		return nil
	}
}

func newRollingAccessFile(f logger.Files) io.Writer {
	if err := logger.EnsureDir(f.Dir); err != nil {
		log.Error().Err(err).Msg("access log disabled")

		return io.Discard
	}

	return logger.NewRollingFile(f.Dir, f.Access)
}
