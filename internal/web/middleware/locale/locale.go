// Package locale provides the middleware negotiating the content language.
package locale

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DoctorPortal/DoctorPortal/internal/db/models"
	"github.com/DoctorPortal/DoctorPortal/internal/locale"
)

const localsLanguage = "locale.language"

// New stores the negotiated language of each request and echoes it in the
// Content-Language response header. The query parameter language takes
// precedence over lang.
func New(negotiator *locale.Negotiator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := c.Query("language")
		if query == "" {
			query = c.Query("lang")
		}

		lang := negotiator.Negotiate(query, c.Get(fiber.HeaderAcceptLanguage))

		c.Locals(localsLanguage, lang)
		c.Set(fiber.HeaderContentLanguage, string(lang))

		return c.Next()
	}
}

// FromContext returns the language stored by New, or def when the
// middleware did not run.
func FromContext(c *fiber.Ctx, def models.Language) models.Language {
	if lang, ok := c.Locals(localsLanguage).(models.Language); ok && lang != "" {
		return lang
	}

	return def
}
