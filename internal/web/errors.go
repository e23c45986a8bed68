package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/DoctorPortal/DoctorPortal/internal/web/handler"
)

// ErrorHandler renders every error returned by a handler as JSON envelope.
// Server errors are logged with the raw error, their message reaches the
// client only when expose is set.
func ErrorHandler(expose bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, message := handler.Classify(err, expose)

		if status >= fiber.StatusInternalServerError {
			log.Error().Err(err).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Str("request_id", string(c.Response().Header.Peek(fiber.HeaderXRequestID))).
				Msg("request failed")
		}

		return handler.Fail(c, status, message)
	}
}
