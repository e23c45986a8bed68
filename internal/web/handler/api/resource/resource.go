// Package resource serves the JSON CRUD endpoints shared by every
// translatable entity.
package resource

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/DoctorPortal/DoctorPortal/internal/auth"
	"github.com/DoctorPortal/DoctorPortal/internal/content"
	"github.com/DoctorPortal/DoctorPortal/internal/db/controller/translation"
	"github.com/DoctorPortal/DoctorPortal/internal/db/models"
	"github.com/DoctorPortal/DoctorPortal/internal/web/handler"
	"github.com/DoctorPortal/DoctorPortal/internal/web/middleware/locale"
)

const (
	identifierPath   = "/:slugOrId"
	translationsPath = handler.IDPath + "/translations"
)

// Payload is the decoded body of a create or update request.
type Payload[PT any] interface {
	// Apply copies the attributes present in the request onto entity.
	Apply(entity PT) error
	// TranslationSet returns the translations of the request, nil when absent.
	TranslationSet() *[]translation.Input
}

// TranslationsPayload is the body of the translations replace endpoint.
type TranslationsPayload struct {
	Translations []translation.Input `json:"translations" validate:"dive"`
}

// Resource registers the routes of one entity type below /api.
type Resource[T any, PT content.Model[T]] struct {
	// Path is the collection path, e.g. /doctors.
	Path string
	// Name is used in confirmations and logs.
	Name string
	// Options configures the content service. Language and pagination
	// settings are taken from the config on Init.
	Options content.Options
	// New returns an entity with the defaults of a create request.
	New func() PT
	// NewPayload returns an empty request body.
	NewPayload func() Payload[PT]

	deps    *handler.Deps
	service *content.Service[T, PT]
}

// Init registers the resource routes.
func (r *Resource[T, PT]) Init(app *fiber.App, deps *handler.Deps) error {
	if app == nil || !deps.Valid() {
		return handler.ErrNilDeps
	}

	opts := r.Options
	opts.DefaultLanguage = deps.Negotiator.Default()
	opts.Resolver = content.Resolver{Fallback: models.Language(deps.Cfg.Locale.Fallback)}
	opts.Pagination = deps.Cfg.Pagination

	// Routes are bound to a copy so every app keeps its own dependencies.
	h := *r
	h.deps = deps
	h.service = content.NewService[T, PT](deps.DB, opts)

	return h.register(app)
}

func (r *Resource[T, PT]) register(app *fiber.App) error {
	admin := func(h fiber.Handler) []fiber.Handler {
		return append(r.deps.AdminOnly(), h)
	}

	group := app.Group(handler.APIPath + r.Path)

	group.Get(handler.RootPath, r.list)
	group.Get(translationsPath, admin(r.translations)...)
	group.Put(translationsPath, admin(r.replaceTranslations)...)
	group.Get(identifierPath, r.get)
	group.Post(handler.RootPath, admin(r.create)...)
	group.Put(handler.IDPath, admin(r.update)...)
	group.Delete(handler.IDPath, admin(r.delete)...)

	return nil
}

func (r *Resource[T, PT]) language(c *fiber.Ctx) models.Language {
	return locale.FromContext(c, r.deps.Negotiator.Default())
}

func (r *Resource[T, PT]) list(c *fiber.Ctx) error {
	page, pageSize := handler.PageParams(c)

	result, err := r.service.List(c.UserContext(), r.language(c), page, pageSize)
	if err != nil {
		return err
	}

	return handler.Paginated(c, result.Data, result.Pagination)
}

func (r *Resource[T, PT]) get(c *fiber.Ctx) error {
	entity, err := r.service.Get(c.UserContext(), c.Params("slugOrId"), r.language(c))
	if err != nil {
		return err
	}

	return handler.OK(c, entity)
}

func (r *Resource[T, PT]) translations(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return err
	}

	entity, err := r.service.Detail(c.UserContext(), id)
	if err != nil {
		return err
	}

	return handler.OK(c, entity)
}

func (r *Resource[T, PT]) create(c *fiber.Ctx) error {
	payload := r.NewPayload()
	if err := handler.Bind(c, r.deps.Validate, payload); err != nil {
		return err
	}

	var items []translation.Input
	if set := payload.TranslationSet(); set != nil {
		items = *set
	}

	if err := r.checkLanguages(items); err != nil {
		return err
	}

	entity := r.New()
	if err := payload.Apply(entity); err != nil {
		return err
	}

	out, err := r.service.Create(c.UserContext(), entity, items)
	if err != nil {
		return err
	}

	log.Info().Str("resource", r.Name).Interface("id", out["id"]).Uint64("user_id", userID(c)).Msg("created")

	return handler.Created(c, out)
}

func (r *Resource[T, PT]) update(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return err
	}

	payload := r.NewPayload()
	if err = handler.Bind(c, r.deps.Validate, payload); err != nil {
		return err
	}

	set := payload.TranslationSet()
	if set != nil {
		if err = r.checkLanguages(*set); err != nil {
			return err
		}
	}

	out, err := r.service.Update(c.UserContext(), id, content.Update[PT]{
		Apply:        payload.Apply,
		Translations: set,
	})
	if err != nil {
		return err
	}

	log.Info().Str("resource", r.Name).Uint64("id", id).Uint64("user_id", userID(c)).
		Bool("translations_replaced", set != nil).Msg("updated")

	return handler.OK(c, out)
}

func (r *Resource[T, PT]) replaceTranslations(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return err
	}

	var payload TranslationsPayload
	if err = handler.Bind(c, r.deps.Validate, &payload); err != nil {
		return err
	}

	if err = r.checkLanguages(payload.Translations); err != nil {
		return err
	}

	out, err := r.service.ReplaceAllTranslations(c.UserContext(), id, payload.Translations)
	if err != nil {
		return err
	}

	log.Info().Str("resource", r.Name).Uint64("id", id).Uint64("user_id", userID(c)).
		Int("count", len(payload.Translations)).Msg("translations replaced")

	return handler.OK(c, out)
}

func (r *Resource[T, PT]) delete(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return err
	}

	if err = r.service.Delete(c.UserContext(), id); err != nil {
		return err
	}

	log.Info().Str("resource", r.Name).Uint64("id", id).Uint64("user_id", userID(c)).Msg("deleted")

	return handler.Deleted(c, r.Name)
}

// checkLanguages rejects translations in languages the portal does not serve.
func (r *Resource[T, PT]) checkLanguages(items []translation.Input) error {
	for _, item := range items {
		lang := models.Language(strings.ToLower(strings.TrimSpace(string(item.Language))))
		if !r.deps.Negotiator.IsSupported(lang) {
			return fiber.NewError(fiber.StatusBadRequest, "unsupported language: "+string(item.Language))
		}
	}

	return nil
}

func userID(c *fiber.Ctx) uint64 {
	if claims := auth.ClaimsFromContext(c); claims != nil {
		return claims.UID
	}

	return 0
}
