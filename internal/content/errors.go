package content

import "errors"

var (
	// ErrNotFound is returned when no entity matches the identifier.
	ErrNotFound = errors.New("not found")
	// ErrSlugTaken is returned when another entity already uses the slug.
	ErrSlugTaken = errors.New("slug already in use")
	// ErrSlugRequired is returned when no slug was given and none could be derived.
	ErrSlugRequired = errors.New("slug is required and could not be derived from a name or title translation")
	// ErrInvalidSlug is returned for a slug that is not lower-case, hyphenated ASCII.
	ErrInvalidSlug = errors.New("slug must be lower-case letters, digits and single hyphens and not only digits")
)
