// Package service serves the medical service endpoints.
package service

import (
	"github.com/DoctorPortal/DoctorPortal/internal/content"
	"github.com/DoctorPortal/DoctorPortal/internal/db/controller/translation"
	"github.com/DoctorPortal/DoctorPortal/internal/db/models"
	"github.com/DoctorPortal/DoctorPortal/internal/web/handler/api/resource"
)

// Path is the collection path below /api.
const Path = "/services"

// Handler is the service resource.
var Handler = resource.Resource[models.Service, *models.Service]{
	Path:    Path,
	Name:    "service",
	Options: content.Options{Kind: models.KindService},
	New: func() *models.Service {
		return &models.Service{Active: true}
	},
	NewPayload: func() resource.Payload[*models.Service] {
		return new(Payload)
	},
}

// Payload is the body of create and update requests.
type Payload struct {
	Slug            *string              `json:"slug" validate:"omitempty,max=160"`
	Icon            *string              `json:"icon" validate:"omitempty,max=128"`
	ImageURL        *string              `json:"imageUrl" validate:"omitempty,max=512"`
	Price           *float64             `json:"price" validate:"omitempty,min=0"`
	DurationMinutes *int                 `json:"durationMinutes" validate:"omitempty,min=0"`
	SortOrder       *int                 `json:"sortOrder"`
	Active          *bool                `json:"active"`
	Translations    *[]translation.Input `json:"translations" validate:"omitempty,dive"`
}

// Apply implements resource.Payload.
func (p *Payload) Apply(s *models.Service) error {
	if p.Slug != nil {
		s.Slug = *p.Slug
	}

	if p.Icon != nil {
		s.Icon = *p.Icon
	}

	if p.ImageURL != nil {
		s.ImageURL = *p.ImageURL
	}

	if p.Price != nil {
		s.Price = *p.Price
	}

	if p.DurationMinutes != nil {
		s.DurationMinutes = *p.DurationMinutes
	}

	if p.SortOrder != nil {
		s.SortOrder = *p.SortOrder
	}

	if p.Active != nil {
		s.Active = *p.Active
	}

	return nil
}

// TranslationSet implements resource.Payload.
func (p *Payload) TranslationSet() *[]translation.Input {
	return p.Translations
}
