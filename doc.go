// Package main provides the entry point of the Doctor Portal backend.
// It serves the JSON API of a multi-language clinic website: doctors,
// services, testimonials and blog posts carry their localized text as
// per-field translation rows, which are flattened onto the entity for the
// language negotiated per request. Site settings and appointment requests
// are stored alongside. Admin endpoints require a bearer token.
package main
