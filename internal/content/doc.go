// Package content turns translatable models into the flat, localized
// objects served by the public API and implements their CRUD lifecycle.
//
// A resolved entity is the map of language invariant attributes with the
// translation rows of one language laid over it. Fields without a row in
// that language are absent unless a fallback language is configured.
package content
