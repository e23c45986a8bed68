package login

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/rs/zerolog/log"

	"github.com/DoctorPortal/DoctorPortal/internal/auth"
	"github.com/DoctorPortal/DoctorPortal/internal/db/models"
	"github.com/DoctorPortal/DoctorPortal/internal/web/handler"
)

const (
	// Path is the prefix of the auth endpoints below /api.
	Path = "/auth"

	loginPath = "/login"
	mePath    = "/me"
)

// Service is the login handler service.
type Service struct {
	handler.Service

	deps *handler.Deps
}

// Handler is the login handler.
var Handler = Service{}

// Request is the body of a login.
type Request struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,max=1024"`
}

// User is the public part of an account.
type User struct {
	ID    uint64      `json:"id"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

// Response is the data of a successful login.
type Response struct {
	Token     string    `json:"token"`
	User      User      `json:"user"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Init initializes the login handler.
func (s *Service) Init(app *fiber.App, deps *handler.Deps) error {
	if app == nil || !deps.Valid() {
		return handler.ErrNilDeps
	}

	h := &Service{deps: deps}

	loginHandlers := []fiber.Handler{h.Post}
	if limit := deps.Cfg.Auth.LoginRateLimit; limit > 0 {
		loginHandlers = append([]fiber.Handler{limiter.New(limiter.Config{
			Max:        limit,
			Expiration: deps.Cfg.Auth.LoginRateWindow,
			Storage:    deps.LimiterStorage,
			KeyGenerator: func(c *fiber.Ctx) string {
				return "login:" + c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				log.Warn().Str("ip", c.IP()).Msg("login rate limit reached")
				return fiber.NewError(fiber.StatusTooManyRequests, ErrTooManyAttempts.Error())
			},
		})}, loginHandlers...)
	}

	// register routes
	app.Route(handler.APIPath+Path, func(router fiber.Router) {
		router.Post(loginPath, loginHandlers...)
		router.Get(mePath, auth.RequireAuthenticated(deps.Issuer), h.Me)
	})

	return nil
}

// Post exchanges email and password for an access token.
func (s *Service) Post(c *fiber.Ctx) error {
	var req Request
	if err := handler.Bind(c, s.deps.Validate, &req); err != nil {
		return err
	}

	provider := auth.NewLocalProvider(s.deps.DB.WithContext(c.UserContext()))

	user, err := provider.Authenticate(req.Email, req.Password)
	switch {
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, auth.ErrInvalidPassword):
		log.Info().Str("email", auth.NormalizeEmail(req.Email)).Str("ip", c.IP()).Msg("login failed")
		return fiber.NewError(fiber.StatusUnauthorized, ErrInvalidCredentials.Error())
	case errors.Is(err, auth.ErrUserAccountDisabled):
		log.Info().Str("email", auth.NormalizeEmail(req.Email)).Msg("login of disabled account")
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	case err != nil:
		return err
	}

	token, expires, err := s.deps.Issuer.Sign(user)
	if err != nil {
		return err
	}

	log.Info().Uint64("user_id", user.ID).Str("role", string(user.Role)).Msg("login succeeded")

	return handler.OK(c, Response{
		Token:     token,
		User:      publicUser(user),
		ExpiresAt: expires.UTC(),
	})
}

// Me returns the account of the bearer token.
func (s *Service) Me(c *fiber.Ctx) error {
	claims := auth.ClaimsFromContext(c)
	if claims == nil {
		return fiber.NewError(fiber.StatusUnauthorized, auth.ErrMissingToken.Error())
	}

	provider := auth.NewLocalProvider(s.deps.DB.WithContext(c.UserContext()))

	user, err := provider.GetUserByID(claims.UID)
	if errors.Is(err, auth.ErrUserNotFound) {
		return fiber.NewError(fiber.StatusUnauthorized, auth.ErrInvalidToken.Error())
	}

	if err != nil {
		return err
	}

	return handler.OK(c, publicUser(user))
}

func publicUser(u *models.User) User {
	return User{ID: u.ID, Email: u.Email, Role: u.Role}
}
