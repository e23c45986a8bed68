// Package models contains database model definitions.
package models

// Language is a locale code such as "en", "az" or "ru".
type Language string

// EntityKind identifies a translatable table.
type EntityKind string

const (
	// KindDoctor is the kind of Doctor rows.
	KindDoctor EntityKind = "doctor"
	// KindService is the kind of Service rows.
	KindService EntityKind = "service"
	// KindTestimonial is the kind of Testimonial rows.
	KindTestimonial EntityKind = "testimonial"
	// KindBlogPost is the kind of BlogPost rows.
	KindBlogPost EntityKind = "blog_post"
)

// Column returns the translations foreign key column referencing this kind.
func (k EntityKind) Column() string {
	return string(k) + "_id"
}

// Table returns the table holding entities of this kind.
func (k EntityKind) Table() string {
	return string(k) + "s"
}

// EntityRef points at a single translatable entity.
type EntityRef struct {
	Kind EntityKind
	ID   uint64
}

// Translatable is implemented by every model that owns translation rows.
type Translatable interface {
	// Ref returns the reference used by the translation store.
	Ref() EntityRef
	// Attributes returns the language invariant fields keyed by their JSON name.
	Attributes() map[string]any
}

// Slugged is implemented by models addressable by slug.
type Slugged interface {
	GetSlug() string
	SetSlug(slug string)
}
