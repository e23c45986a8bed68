package models

import "time"

// Doctor represents a physician presented on the portal.
// Localized text such as name or bio lives in Translations.
type Doctor struct {
	// ID is the unique identifier for the doctor.
	ID uint64 `gorm:"primaryKey"`
	// Slug is the unique URL identifier.
	Slug string `gorm:"uniqueIndex;size:160;not null"`
	// ImageURL points at the portrait.
	ImageURL string `gorm:"size:512"`
	// ExperienceYears is the number of years in practice.
	ExperienceYears int
	// Specialties lists specialty codes, stored as JSON.
	Specialties []string `gorm:"serializer:json;type:text"`
	// Phone is the public contact number.
	Phone string `gorm:"size:64"`
	// Email is the public contact address.
	Email string `gorm:"size:255"`
	// SortOrder controls list ordering, lowest first.
	SortOrder int `gorm:"default:0"`
	// Active hides the doctor from listings when false.
	Active bool `gorm:"not null"`
	// Translations holds the localized fields.
	Translations []Translation `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE"`
	// CreatedAt is managed by GORM.
	CreatedAt time.Time
	// UpdatedAt is managed by GORM.
	UpdatedAt time.Time
}

// Ref implements Translatable.
func (d *Doctor) Ref() EntityRef { return EntityRef{Kind: KindDoctor, ID: d.ID} }

// GetSlug implements Slugged.
func (d *Doctor) GetSlug() string { return d.Slug }

// SetSlug implements Slugged.
func (d *Doctor) SetSlug(slug string) { d.Slug = slug }

// Attributes implements Translatable.
func (d *Doctor) Attributes() map[string]any {
	specialties := d.Specialties
	if specialties == nil {
		specialties = []string{}
	}

	return map[string]any{
		"id":              d.ID,
		"slug":            d.Slug,
		"imageUrl":        d.ImageURL,
		"experienceYears": d.ExperienceYears,
		"specialties":     specialties,
		"phone":           d.Phone,
		"email":           d.Email,
		"sortOrder":       d.SortOrder,
		"active":          d.Active,
		"createdAt":       d.CreatedAt,
		"updatedAt":       d.UpdatedAt,
	}
}
