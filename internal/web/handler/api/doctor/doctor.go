// Package doctor serves the doctor endpoints.
package doctor

import (
	"github.com/DoctorPortal/DoctorPortal/internal/content"
	"github.com/DoctorPortal/DoctorPortal/internal/db/controller/translation"
	"github.com/DoctorPortal/DoctorPortal/internal/db/models"
	"github.com/DoctorPortal/DoctorPortal/internal/web/handler/api/resource"
)

// Path is the collection path below /api.
const Path = "/doctors"

// Handler is the doctor resource.
var Handler = resource.Resource[models.Doctor, *models.Doctor]{
	Path:    Path,
	Name:    "doctor",
	Options: content.Options{Kind: models.KindDoctor},
	New: func() *models.Doctor {
		return &models.Doctor{Active: true}
	},
	NewPayload: func() resource.Payload[*models.Doctor] {
		return new(Payload)
	},
}

// Payload is the body of create and update requests. Absent fields are
// left unchanged on update.
type Payload struct {
	Slug            *string              `json:"slug" validate:"omitempty,max=160"`
	ImageURL        *string              `json:"imageUrl" validate:"omitempty,max=512"`
	ExperienceYears *int                 `json:"experienceYears" validate:"omitempty,min=0,max=80"`
	Specialties     *[]string            `json:"specialties" validate:"omitempty,dive,max=64"`
	Phone           *string              `json:"phone" validate:"omitempty,max=64"`
	Email           *string              `json:"email" validate:"omitempty,email,max=255"`
	SortOrder       *int                 `json:"sortOrder"`
	Active          *bool                `json:"active"`
	Translations    *[]translation.Input `json:"translations" validate:"omitempty,dive"`
}

// Apply implements resource.Payload.
func (p *Payload) Apply(d *models.Doctor) error {
	if p.Slug != nil {
		d.Slug = *p.Slug
	}

	if p.ImageURL != nil {
		d.ImageURL = *p.ImageURL
	}

	if p.ExperienceYears != nil {
		d.ExperienceYears = *p.ExperienceYears
	}

	if p.Specialties != nil {
		d.Specialties = *p.Specialties
	}

	if p.Phone != nil {
		d.Phone = *p.Phone
	}

	if p.Email != nil {
		d.Email = *p.Email
	}

	if p.SortOrder != nil {
		d.SortOrder = *p.SortOrder
	}

	if p.Active != nil {
		d.Active = *p.Active
	}

	return nil
}

// TranslationSet implements resource.Payload.
func (p *Payload) TranslationSet() *[]translation.Input {
	return p.Translations
}
