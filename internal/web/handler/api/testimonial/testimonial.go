// Package testimonial serves the patient feedback endpoints. Testimonials
// have no slug and are addressed by id.
package testimonial

import (
	"github.com/DoctorPortal/DoctorPortal/internal/content"
	"github.com/DoctorPortal/DoctorPortal/internal/db/controller/translation"
	"github.com/DoctorPortal/DoctorPortal/internal/db/models"
	"github.com/DoctorPortal/DoctorPortal/internal/web/handler/api/resource"
)

// Path is the collection path below /api.
const Path = "/testimonials"

const defaultRating = 5

// Handler is the testimonial resource.
var Handler = resource.Resource[models.Testimonial, *models.Testimonial]{
	Path:    Path,
	Name:    "testimonial",
	Options: content.Options{Kind: models.KindTestimonial},
	New: func() *models.Testimonial {
		return &models.Testimonial{Active: true, Rating: defaultRating}
	},
	NewPayload: func() resource.Payload[*models.Testimonial] {
		return new(Payload)
	},
}

// Payload is the body of create and update requests.
type Payload struct {
	AuthorImageURL *string              `json:"authorImageUrl" validate:"omitempty,max=512"`
	Rating         *int                 `json:"rating" validate:"omitempty,min=1,max=5"`
	DoctorID       *uint64              `json:"doctorId"`
	SortOrder      *int                 `json:"sortOrder"`
	Active         *bool                `json:"active"`
	Translations   *[]translation.Input `json:"translations" validate:"omitempty,dive"`
}

// Apply implements resource.Payload. A doctorId of 0 unlinks the doctor.
func (p *Payload) Apply(t *models.Testimonial) error {
	if p.AuthorImageURL != nil {
		t.AuthorImageURL = *p.AuthorImageURL
	}

	if p.Rating != nil {
		t.Rating = *p.Rating
	}

	if p.DoctorID != nil {
		if *p.DoctorID == 0 {
			t.DoctorID = nil
		} else {
			id := *p.DoctorID
			t.DoctorID = &id
		}
	}

	if p.SortOrder != nil {
		t.SortOrder = *p.SortOrder
	}

	if p.Active != nil {
		t.Active = *p.Active
	}

	return nil
}

// TranslationSet implements resource.Payload.
func (p *Payload) TranslationSet() *[]translation.Input {
	return p.Translations
}
