package content

import (
	"maps"

	"github.com/DoctorPortal/DoctorPortal/internal/db/models"
)

// Resolver overlays translation rows onto base attributes.
type Resolver struct {
	// Fallback, when set, is overlaid before the requested language so
	// missing fields are backfilled from it. Empty means no backfill.
	Fallback models.Language
}

// Resolve returns a copy of base with the values of rows in language set
// under their field names. Rows of other languages are ignored. With
// duplicate rows the last one wins.
func (r Resolver) Resolve(base map[string]any, rows []models.Translation, language models.Language) map[string]any {
	out := make(map[string]any, len(base)+len(rows))
	maps.Copy(out, base)

	if r.Fallback != "" && r.Fallback != language {
		overlay(out, rows, r.Fallback)
	}

	overlay(out, rows, language)

	return out
}

// Languages returns the languages whose rows Resolve reads for language.
func (r Resolver) Languages(language models.Language) []models.Language {
	if r.Fallback != "" && r.Fallback != language {
		return []models.Language{language, r.Fallback}
	}

	return []models.Language{language}
}

func overlay(out map[string]any, rows []models.Translation, language models.Language) {
	for _, row := range rows {
		if row.Language == language {
			out[row.Field] = row.Value
		}
	}
}
