package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/DoctorPortal/DoctorPortal/internal/content"
	"github.com/DoctorPortal/DoctorPortal/internal/db/controller/appointment"
	"github.com/DoctorPortal/DoctorPortal/internal/db/controller/setting"
	"github.com/DoctorPortal/DoctorPortal/internal/db/controller/translation"
)

// ErrNilDeps is returned by Init when the app or a dependency is missing.
var ErrNilDeps = errors.New("app, config or database is nil")

var (
	notFound = []error{
		content.ErrNotFound,
		setting.ErrSettingNotFound,
		appointment.ErrAppointmentNotFound,
	}
	conflict = []error{
		content.ErrSlugTaken,
		setting.ErrSettingAlreadyExists,
	}
	badRequest = []error{
		content.ErrSlugRequired,
		content.ErrInvalidSlug,
		translation.ErrInvalidField,
		translation.ErrInvalidLanguage,
		translation.ErrDuplicateField,
		translation.ErrReservedField,
		setting.ErrSettingKeyEmpty,
		setting.ErrSettingKeyTooLong,
		appointment.ErrDoctorNotFound,
		appointment.ErrServiceNotFound,
	}
)

// Classify maps err to a status code and a client message. Messages of
// unexpected errors are replaced unless expose is set.
func Classify(err error, expose bool) (int, string) {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code, fiberErr.Message
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return fiber.StatusBadRequest, validationErrs.Error()
	}

	for _, group := range []struct {
		status int
		errs   []error
	}{
		{fiber.StatusNotFound, notFound},
		{fiber.StatusConflict, conflict},
		{fiber.StatusBadRequest, badRequest},
	} {
		for _, target := range group.errs {
			if errors.Is(err, target) {
				return group.status, err.Error()
			}
		}
	}

	if expose {
		return fiber.StatusInternalServerError, err.Error()
	}

	return fiber.StatusInternalServerError, InternalErrorMessage
}
