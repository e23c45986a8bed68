// Package locale selects the content language of a request from a closed
// set of supported languages.
package locale

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/DoctorPortal/DoctorPortal/internal/config"
	"github.com/DoctorPortal/DoctorPortal/internal/db/models"
)

// Resolve returns requested when it is one of supported and def otherwise.
// Matching ignores case, and a regional variant such as "az-AZ" resolves to
// its base language.
func Resolve(requested string, supported []models.Language, def models.Language) models.Language {
	if lang, ok := match(requested, supported); ok {
		return lang
	}

	return def
}

func match(requested string, supported []models.Language) (models.Language, bool) {
	requested = strings.ToLower(strings.TrimSpace(requested))
	if requested == "" {
		return "", false
	}

	candidates := []string{requested}
	if i := strings.IndexAny(requested, "-_"); i > 0 {
		candidates = append(candidates, requested[:i])
	}

	for _, candidate := range candidates {
		for _, lang := range supported {
			if string(lang) == candidate {
				return lang, true
			}
		}
	}

	return "", false
}

// Negotiator picks a language from the query string and the
// Accept-Language header.
type Negotiator struct {
	supported []models.Language
	def       models.Language
}

// NewNegotiator builds a Negotiator from the locale configuration.
func NewNegotiator(cfg config.Locale) *Negotiator {
	supported := make([]models.Language, 0, len(cfg.Supported))
	for _, s := range cfg.Supported {
		supported = append(supported, models.Language(strings.ToLower(s)))
	}

	return &Negotiator{
		supported: supported,
		def:       models.Language(strings.ToLower(cfg.Default)),
	}
}

// Supported returns the configured languages.
func (n *Negotiator) Supported() []models.Language {
	return n.supported
}

// Default returns the configured default language.
func (n *Negotiator) Default() models.Language {
	return n.def
}

// IsSupported reports whether lang is one of the configured languages,
// compared exactly.
func (n *Negotiator) IsSupported(lang models.Language) bool {
	for _, s := range n.supported {
		if s == lang {
			return true
		}
	}

	return false
}

// Negotiate returns the query language when supported, then the best
// supported entry of acceptLanguage by quality, then the default.
func (n *Negotiator) Negotiate(query, acceptLanguage string) models.Language {
	if lang, ok := match(query, n.supported); ok {
		return lang
	}

	if acceptLanguage != "" {
		// Tags come back sorted by descending quality.
		tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
		if err == nil {
			for _, tag := range tags {
				if lang, ok := match(tag.String(), n.supported); ok {
					return lang
				}
			}
		}
	}

	return n.def
}
