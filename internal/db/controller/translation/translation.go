// Package translation stores field level localized values of doctors,
// services, testimonials and blog posts.
//
// Rows are keyed by (entity, language, field). The database enforces the
// uniqueness of that triple, so writes always replace the complete set of an
// entity inside a single transaction instead of inserting blindly.
package translation

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DoctorPortal/DoctorPortal/internal/db/models"
)

const (
	languageQueryPattern = "language = ?"
	orderPattern         = "language, id"
)

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrEntityNotFound is returned when the owning entity does not exist.
	ErrEntityNotFound = errors.New("entity not found")
	// ErrUnknownKind is returned for an entity kind without a translations column.
	ErrUnknownKind = errors.New("unknown entity kind")
	// ErrInvalidField is returned for an empty or malformed field name.
	ErrInvalidField = errors.New("invalid translation field")
	// ErrInvalidLanguage is returned for an empty or malformed language code.
	ErrInvalidLanguage = errors.New("invalid translation language")
	// ErrDuplicateField is returned when a set contains a (language, field) pair twice.
	ErrDuplicateField = errors.New("duplicate translation field")
	// ErrReservedField is returned when a field would shadow a base attribute.
	ErrReservedField = errors.New("reserved translation field")
)

var (
	fieldPattern    = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]{0,63}$`)
	languagePattern = regexp.MustCompile(`^[a-z]{2,3}$`)
)

// Input is one translation of a write payload.
type Input struct {
	Language models.Language `json:"language" validate:"required"`
	Field    string          `json:"field" validate:"required"`
	Value    string          `json:"value"`
}

// Field is a localized value of one language.
type Field struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// ReplaceAll swaps the complete translation set of ref for items.
//
// The owning row is locked for the duration of the transaction where the
// dialect supports it, so concurrent replaces of the same entity serialize
// and readers observe either the old or the new set. An empty items slice
// removes every translation.
func ReplaceAll(db *gorm.DB, ref models.EntityRef, items []Input) error {
	if db == nil {
		return ErrDBNil
	}

	owner, items, err := prepare(ref, items)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		return replace(tx, ref, owner, items)
	})
}

// ReplaceAllInTx is ReplaceAll for callers that already run a transaction,
// such as a combined attribute and translation update.
func ReplaceAllInTx(tx *gorm.DB, ref models.EntityRef, items []Input) error {
	if tx == nil {
		return ErrDBNil
	}

	owner, items, err := prepare(ref, items)
	if err != nil {
		return err
	}

	return replace(tx, ref, owner, items)
}

func prepare(ref models.EntityRef, items []Input) (models.Translatable, []Input, error) {
	owner, err := blank(ref.Kind)
	if err != nil {
		return nil, nil, err
	}

	items, err = Normalize(owner, items)
	if err != nil {
		return nil, nil, err
	}

	return owner, items, nil
}

func replace(tx *gorm.DB, ref models.EntityRef, owner models.Translatable, items []Input) error {
	err := tx.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Select("id").
		Where("id = ?", ref.ID).
		Take(owner).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.Wrapf(ErrEntityNotFound, "%s %d", ref.Kind, ref.ID)
		}

		return errors.Wrap(err, "failed to lock translation owner")
	}

	if err = tx.Where(ref.Kind.Column()+" = ?", ref.ID).Delete(&models.Translation{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete translations")
	}

	if len(items) == 0 {
		return nil
	}

	rows := make([]models.Translation, 0, len(items))
	for _, item := range items {
		row := models.Translation{Language: item.Language, Field: item.Field, Value: item.Value}
		row.SetOwner(ref)
		rows = append(rows, row)
	}

	if err = tx.Create(&rows).Error; err != nil {
		return errors.Wrap(err, "failed to insert translations")
	}

	return nil
}

// Normalize lower-cases languages, trims field names and validates the set
// against owner's attribute keys. It returns the cleaned copy of items.
func Normalize(owner models.Translatable, items []Input) ([]Input, error) {
	reserved := ReservedFields(owner)
	seen := make(map[string]struct{}, len(items))
	out := make([]Input, 0, len(items))

	for _, item := range items {
		item.Language = models.Language(strings.ToLower(strings.TrimSpace(string(item.Language))))
		item.Field = strings.TrimSpace(item.Field)

		if !languagePattern.MatchString(string(item.Language)) {
			return nil, errors.Wrapf(ErrInvalidLanguage, "%q", item.Language)
		}

		if !fieldPattern.MatchString(item.Field) {
			return nil, errors.Wrapf(ErrInvalidField, "%q", item.Field)
		}

		if _, ok := reserved[item.Field]; ok {
			return nil, errors.Wrapf(ErrReservedField, "%q", item.Field)
		}

		key := string(item.Language) + "\x00" + item.Field
		if _, ok := seen[key]; ok {
			return nil, errors.Wrapf(ErrDuplicateField, "%s/%s", item.Language, item.Field)
		}
		seen[key] = struct{}{}

		out = append(out, item)
	}

	return out, nil
}

// ReservedFields returns the names a translation may not use for owner.
func ReservedFields(owner models.Translatable) map[string]struct{} {
	attrs := owner.Attributes()
	reserved := make(map[string]struct{}, len(attrs)+2)

	for key := range attrs {
		reserved[key] = struct{}{}
	}

	reserved["translations"] = struct{}{}
	reserved["contentHtml"] = struct{}{}

	return reserved
}

// Get returns the fields of ref in one language. A language without rows
// yields an empty slice.
func Get(db *gorm.DB, ref models.EntityRef, language models.Language) ([]Field, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if _, err := blank(ref.Kind); err != nil {
		return nil, err
	}

	fields := []Field{}
	err := db.Model(&models.Translation{}).
		Select("field, value").
		Where(ref.Kind.Column()+" = ?", ref.ID).
		Where(languageQueryPattern, language).
		Order("id").
		Scan(&fields).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load translations")
	}

	return fields, nil
}

// GetAll returns every translation row of ref ordered by language.
func GetAll(db *gorm.DB, ref models.EntityRef) ([]models.Translation, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if _, err := blank(ref.Kind); err != nil {
		return nil, err
	}

	rows := []models.Translation{}
	err := db.Where(ref.Kind.Column()+" = ?", ref.ID).Order(orderPattern).Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load translations")
	}

	return rows, nil
}

// GetMany loads the translations of several entities of one kind at once,
// keyed by entity id. When languages is empty, every language is returned.
func GetMany(
	db *gorm.DB,
	kind models.EntityKind,
	ids []uint64,
	languages ...models.Language,
) (map[uint64][]models.Translation, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if _, err := blank(kind); err != nil {
		return nil, err
	}

	result := make(map[uint64][]models.Translation, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	query := db.Where(kind.Column()+" IN ?", ids)
	if len(languages) > 0 {
		query = query.Where("language IN ?", languages)
	}

	var rows []models.Translation
	if err := query.Order(orderPattern).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load translations")
	}

	for _, row := range rows {
		owner := row.OwnerID()
		result[owner] = append(result[owner], row)
	}

	return result, nil
}

// DeleteAll removes every translation of ref and reports how many rows went.
func DeleteAll(db *gorm.DB, ref models.EntityRef) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	if _, err := blank(ref.Kind); err != nil {
		return 0, err
	}

	result := db.Where(ref.Kind.Column()+" = ?", ref.ID).Delete(&models.Translation{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete translations")
	}

	return result.RowsAffected, nil
}

// blank returns an empty model of kind, used for locking and reserved keys.
func blank(kind models.EntityKind) (models.Translatable, error) {
	switch kind {
	case models.KindDoctor:
		return &models.Doctor{}, nil
	case models.KindService:
		return &models.Service{}, nil
	case models.KindTestimonial:
		return &models.Testimonial{}, nil
	case models.KindBlogPost:
		return &models.BlogPost{}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownKind, "%q", kind)
	}
}
