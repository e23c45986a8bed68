// Package slug derives URL identifiers from localized names.
package slug

import (
	"regexp"
	"strings"

	"github.com/mozillazg/go-unidecode"
)

// MaxLen is the longest slug produced, matching the slug columns.
const MaxLen = 160

var (
	nonSlugChars    = regexp.MustCompile(`[^a-z0-9-]+`)
	multipleHyphens = regexp.MustCompile(`-{2,}`)
	digitsOnly      = regexp.MustCompile(`^[0-9]+$`)
	validSlug       = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// Azerbaijani letters unidecode maps poorly.
var preMap = strings.NewReplacer("ə", "e", "Ə", "E")

// Make converts text such as "Dr. Əli Həsənov" or "Доктор Иванов" to an
// ASCII slug. It returns an empty string when nothing usable remains.
func Make(text string) string {
	s := unidecode.Unidecode(preMap.Replace(text))
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "-")
	s = nonSlugChars.ReplaceAllString(s, "-")
	s = multipleHyphens.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if len(s) > MaxLen {
		s = strings.TrimRight(s[:MaxLen], "-")
	}

	return s
}

// Valid reports whether s can be stored as a slug. Purely numeric values are
// rejected because they would be read back as ids.
func Valid(s string) bool {
	return len(s) <= MaxLen && validSlug.MatchString(s) && !digitsOnly.MatchString(s)
}

// IsNumeric reports whether s only holds digits.
func IsNumeric(s string) bool {
	return digitsOnly.MatchString(s)
}
