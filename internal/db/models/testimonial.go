package models

import "time"

// Testimonial is patient feedback shown on the portal.
// It has no slug and is addressed by id only.
type Testimonial struct {
	ID             uint64 `gorm:"primaryKey"`
	AuthorImageURL string `gorm:"size:512"`
	// Rating is a 1..5 star score.
	Rating int `gorm:"default:5"`
	// DoctorID optionally links the feedback to a doctor.
	DoctorID     *uint64
	SortOrder    int           `gorm:"default:0"`
	Active       bool          `gorm:"not null"`
	Translations []Translation `gorm:"foreignKey:TestimonialID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Ref implements Translatable.
func (t *Testimonial) Ref() EntityRef { return EntityRef{Kind: KindTestimonial, ID: t.ID} }

// Attributes implements Translatable.
func (t *Testimonial) Attributes() map[string]any {
	return map[string]any{
		"id":             t.ID,
		"authorImageUrl": t.AuthorImageURL,
		"rating":         t.Rating,
		"doctorId":       t.DoctorID,
		"sortOrder":      t.SortOrder,
		"active":         t.Active,
		"createdAt":      t.CreatedAt,
		"updatedAt":      t.UpdatedAt,
	}
}
