package models

// Translation stores one localized field value of a translatable entity.
// Exactly one of the foreign keys is set. Each foreign key forms a unique
// index together with Language and Field.
type Translation struct {
	// ID is the unique identifier for the translation row.
	ID uint64 `gorm:"primaryKey" json:"-"`
	// DoctorID references the owning doctor.
	DoctorID *uint64 `gorm:"uniqueIndex:idx_translations_doctor,priority:1" json:"-"`
	// ServiceID references the owning service.
	ServiceID *uint64 `gorm:"uniqueIndex:idx_translations_service,priority:1" json:"-"`
	// TestimonialID references the owning testimonial.
	TestimonialID *uint64 `gorm:"uniqueIndex:idx_translations_testimonial,priority:1" json:"-"`
	// BlogPostID references the owning blog post.
	BlogPostID *uint64 `gorm:"uniqueIndex:idx_translations_blog_post,priority:1" json:"-"`
	// Language is the locale of Value.
	Language Language `gorm:"size:8;not null;uniqueIndex:idx_translations_doctor,priority:2;uniqueIndex:idx_translations_service,priority:2;uniqueIndex:idx_translations_testimonial,priority:2;uniqueIndex:idx_translations_blog_post,priority:2" json:"language"` //nolint:lll
	// Field is the attribute name the value is rendered under.
	Field string `gorm:"size:64;not null;uniqueIndex:idx_translations_doctor,priority:3;uniqueIndex:idx_translations_service,priority:3;uniqueIndex:idx_translations_testimonial,priority:3;uniqueIndex:idx_translations_blog_post,priority:3" json:"field"` //nolint:lll
	// Value is the localized text.
	Value string `gorm:"type:text" json:"value"`
}

// SetOwner sets the foreign key matching ref and clears the others.
func (t *Translation) SetOwner(ref EntityRef) {
	id := ref.ID
	t.DoctorID, t.ServiceID, t.TestimonialID, t.BlogPostID = nil, nil, nil, nil

	switch ref.Kind {
	case KindDoctor:
		t.DoctorID = &id
	case KindService:
		t.ServiceID = &id
	case KindTestimonial:
		t.TestimonialID = &id
	case KindBlogPost:
		t.BlogPostID = &id
	}
}

// OwnerID returns the id of the owning entity, whichever kind it is.
func (t *Translation) OwnerID() uint64 {
	for _, id := range []*uint64{t.DoctorID, t.ServiceID, t.TestimonialID, t.BlogPostID} {
		if id != nil {
			return *id
		}
	}

	return 0
}
