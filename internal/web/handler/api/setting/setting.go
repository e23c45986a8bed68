// Package setting serves the site settings endpoints.
package setting

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/DoctorPortal/DoctorPortal/internal/auth"
	settingcontroller "github.com/DoctorPortal/DoctorPortal/internal/db/controller/setting"
	"github.com/DoctorPortal/DoctorPortal/internal/web/handler"
)

const (
	// Path is the collection path below /api.
	Path = "/settings"

	keyPath = "/:key"
)

// Handler is the settings handler.
var Handler = Service{}

// Service is the settings handler.
type Service struct {
	handler.Service

	deps *handler.Deps
}

// Payload is the body of an upsert.
type Payload struct {
	Value       string `json:"value" validate:"max=65535"`
	Description string `json:"description" validate:"max=255"`
}

// Init registers the settings routes.
func (s *Service) Init(app *fiber.App, deps *handler.Deps) error {
	if app == nil || !deps.Valid() {
		return handler.ErrNilDeps
	}

	h := &Service{deps: deps}

	app.Route(handler.APIPath+Path, func(router fiber.Router) {
		router.Get(handler.RootPath, h.list)
		router.Get(keyPath, h.get)
		router.Put(keyPath, append(deps.AdminOnly(), h.put)...)
		router.Delete(keyPath, append(deps.AdminOnly(), h.delete)...)
	})

	return nil
}

func (s *Service) list(c *fiber.Ctx) error {
	settings, err := settingcontroller.GetAll(s.deps.DB.WithContext(c.UserContext()))
	if err != nil {
		return err
	}

	return handler.OK(c, settings)
}

func (s *Service) get(c *fiber.Ctx) error {
	setting, err := settingcontroller.Get(s.deps.DB.WithContext(c.UserContext()), c.Params("key"))
	if err != nil {
		return err
	}

	return handler.OK(c, setting)
}

func (s *Service) put(c *fiber.Ctx) error {
	var payload Payload
	if err := handler.Bind(c, s.deps.Validate, &payload); err != nil {
		return err
	}

	key := c.Params("key")

	setting, err := settingcontroller.Set(s.deps.DB.WithContext(c.UserContext()), key, payload.Value, payload.Description)
	if err != nil {
		return err
	}

	log.Info().Str("key", key).Uint64("user_id", auth.ClaimsFromContext(c).UID).Msg("setting saved")

	return handler.OK(c, setting)
}

func (s *Service) delete(c *fiber.Ctx) error {
	key := c.Params("key")

	if err := settingcontroller.DeleteByKey(s.deps.DB.WithContext(c.UserContext()), key); err != nil {
		return err
	}

	log.Info().Str("key", key).Uint64("user_id", auth.ClaimsFromContext(c).UID).Msg("setting deleted")

	return handler.Deleted(c, "setting")
}
