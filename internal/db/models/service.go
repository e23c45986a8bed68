package models

import "time"

// Service represents a medical service offered by the clinic.
type Service struct {
	ID              uint64  `gorm:"primaryKey"`
	Slug            string  `gorm:"uniqueIndex;size:160;not null"`
	Icon            string  `gorm:"size:128"`
	ImageURL        string  `gorm:"size:512"`
	Price           float64 `gorm:"default:0"`
	DurationMinutes int
	SortOrder       int           `gorm:"default:0"`
	Active          bool          `gorm:"not null"`
	Translations    []Translation `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Ref implements Translatable.
func (s *Service) Ref() EntityRef { return EntityRef{Kind: KindService, ID: s.ID} }

// GetSlug implements Slugged.
func (s *Service) GetSlug() string { return s.Slug }

// SetSlug implements Slugged.
func (s *Service) SetSlug(slug string) { s.Slug = slug }

// Attributes implements Translatable.
func (s *Service) Attributes() map[string]any {
	return map[string]any{
		"id":              s.ID,
		"slug":            s.Slug,
		"icon":            s.Icon,
		"imageUrl":        s.ImageURL,
		"price":           s.Price,
		"durationMinutes": s.DurationMinutes,
		"sortOrder":       s.SortOrder,
		"active":          s.Active,
		"createdAt":       s.CreatedAt,
		"updatedAt":       s.UpdatedAt,
	}
}
