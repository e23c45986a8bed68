// Package appointment serves visit requests submitted from the public site.
package appointment

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/DoctorPortal/DoctorPortal/internal/content"
	appointmentcontroller "github.com/DoctorPortal/DoctorPortal/internal/db/controller/appointment"
	"github.com/DoctorPortal/DoctorPortal/internal/db/models"
	"github.com/DoctorPortal/DoctorPortal/internal/web/handler"
	"github.com/DoctorPortal/DoctorPortal/internal/web/middleware/locale"
)

// Path is the collection path below /api.
const Path = "/appointments"

// Handler is the appointment handler.
var Handler = Service{}

// Service is the appointment handler.
type Service struct {
	handler.Service

	deps *handler.Deps
}

// Payload is the body of an appointment request.
type Payload struct {
	FullName      string     `json:"fullName" validate:"required,max=160"`
	Phone         string     `json:"phone" validate:"required,max=64"`
	Email         string     `json:"email" validate:"omitempty,email,max=255"`
	DoctorID      *uint64    `json:"doctorId" validate:"omitempty,gt=0"`
	ServiceID     *uint64    `json:"serviceId" validate:"omitempty,gt=0"`
	PreferredDate *time.Time `json:"preferredDate"`
	Message       string     `json:"message" validate:"max=4000"`
}

// Init registers the appointment routes. Submitting is public, reading and
// deleting requires an admin.
func (s *Service) Init(app *fiber.App, deps *handler.Deps) error {
	if app == nil || !deps.Valid() {
		return handler.ErrNilDeps
	}

	h := &Service{deps: deps}

	app.Route(handler.APIPath+Path, func(router fiber.Router) {
		router.Post(handler.RootPath, h.create)
		router.Get(handler.RootPath, append(deps.AdminOnly(), h.list)...)
		router.Get(handler.IDPath, append(deps.AdminOnly(), h.get)...)
		router.Delete(handler.IDPath, append(deps.AdminOnly(), h.delete)...)
	})

	return nil
}

func (s *Service) create(c *fiber.Ctx) error {
	var payload Payload
	if err := handler.Bind(c, s.deps.Validate, &payload); err != nil {
		return err
	}

	appointment := &models.Appointment{
		FullName:      strings.TrimSpace(payload.FullName),
		Phone:         strings.TrimSpace(payload.Phone),
		Email:         strings.TrimSpace(payload.Email),
		DoctorID:      payload.DoctorID,
		ServiceID:     payload.ServiceID,
		PreferredDate: payload.PreferredDate,
		Message:       payload.Message,
		Language:      locale.FromContext(c, s.deps.Negotiator.Default()),
	}

	if err := appointmentcontroller.Create(s.deps.DB.WithContext(c.UserContext()), appointment); err != nil {
		return err
	}

	log.Info().Uint64("id", appointment.ID).Str("language", string(appointment.Language)).
		Msg("appointment requested")

	return handler.Created(c, appointment)
}

func (s *Service) list(c *fiber.Ctx) error {
	page, pageSize := handler.PageParams(c)
	page, pageSize = content.PageRequest(page, pageSize,
		s.deps.Cfg.Pagination.DefaultPageSize, s.deps.Cfg.Pagination.MaxPageSize)

	appointments, total, err := appointmentcontroller.List(s.deps.DB.WithContext(c.UserContext()),
		(page-1)*pageSize, pageSize)
	if err != nil {
		return err
	}

	return handler.Paginated(c, appointments, content.NewPagination(total, page, pageSize))
}

func (s *Service) get(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return err
	}

	appointment, err := appointmentcontroller.Get(s.deps.DB.WithContext(c.UserContext()), id)
	if err != nil {
		return err
	}

	return handler.OK(c, appointment)
}

func (s *Service) delete(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return err
	}

	if err = appointmentcontroller.Delete(s.deps.DB.WithContext(c.UserContext()), id); err != nil {
		return err
	}

	return handler.Deleted(c, "appointment")
}
