package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

const (
	localsClaims = "auth.claims"
	bearerPrefix = "bearer "
)

// RequireAuthenticated rejects requests without a valid bearer token and
// stores the token claims for later handlers.
func RequireAuthenticated(issuer *Issuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
			return fiber.NewError(fiber.StatusUnauthorized, ErrMissingToken.Error())
		}

		claims, err := issuer.Parse(strings.TrimSpace(header[len(bearerPrefix):]))
		if err != nil {
			log.Debug().Err(err).Str("ip", c.IP()).Msg("rejected bearer token")
			return fiber.NewError(fiber.StatusUnauthorized, ErrInvalidToken.Error())
		}

		c.Locals(localsClaims, claims)

		return c.Next()
	}
}

// RequireAdmin rejects authenticated users lacking the admin role. It must
// run after RequireAuthenticated.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := ClaimsFromContext(c)
		if claims == nil {
			return fiber.NewError(fiber.StatusUnauthorized, ErrMissingToken.Error())
		}

		if !claims.Role.IsAdmin() {
			log.Warn().Uint64("user_id", claims.UID).Str("role", string(claims.Role)).Str("path", c.Path()).
				Msg("user lacks admin role")

			return fiber.NewError(fiber.StatusForbidden, ErrForbidden.Error())
		}

		return c.Next()
	}
}

// ClaimsFromContext returns the claims stored by RequireAuthenticated, or nil.
func ClaimsFromContext(c *fiber.Ctx) *Claims {
	claims, _ := c.Locals(localsClaims).(*Claims)
	return claims
}
