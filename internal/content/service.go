package content

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DoctorPortal/DoctorPortal/internal/config"
	"github.com/DoctorPortal/DoctorPortal/internal/db/controller/translation"
	"github.com/DoctorPortal/DoctorPortal/internal/db/models"
	"github.com/DoctorPortal/DoctorPortal/internal/slug"
)

const (
	defaultOrder   = "sort_order, id"
	maxSlugSuffix  = 50
	activeQuery    = "active = ?"
	slugQuery      = "slug = ?"
	slugOtherQuery = "slug = ? AND id <> ?"
)

// Fields a slug is derived from, in order of preference.
var slugSources = []string{"name", "title"}

// Model is satisfied by a pointer to a translatable gorm model.
type Model[T any] interface {
	*T
	models.Translatable
}

// Options configures a Service.
type Options struct {
	// Kind selects the translations foreign key.
	Kind models.EntityKind
	// Order is the list ORDER BY clause. Defaults to sort order then id.
	Order string
	// DefaultLanguage is the language slugs are derived from.
	DefaultLanguage models.Language
	// Resolver flattens translations for reads.
	Resolver Resolver
	// Pagination holds the page size defaults.
	Pagination config.Pagination
	// Decorate runs on every resolved entity, after translations were applied.
	Decorate func(map[string]any) error
}

// Update describes a change of an existing entity.
type Update[PT any] struct {
	// Apply changes the loaded entity in place.
	Apply func(PT) error
	// Translations, when not nil, replaces the complete translation set.
	// A pointer to an empty slice removes every translation.
	Translations *[]translation.Input
}

// Service implements list, read and write operations for one entity type.
type Service[T any, PT Model[T]] struct {
	db   *gorm.DB
	opts Options
}

// NewService creates a Service for the model T.
func NewService[T any, PT Model[T]](db *gorm.DB, opts Options) *Service[T, PT] {
	if opts.Order == "" {
		opts.Order = defaultOrder
	}

	return &Service[T, PT]{db: db, opts: opts}
}

// Kind returns the entity kind served.
func (s *Service[T, PT]) Kind() models.EntityKind {
	return s.opts.Kind
}

// List returns one page of active entities resolved for language.
func (s *Service[T, PT]) List(ctx context.Context, language models.Language, page, pageSize int) (*Page, error) {
	page, pageSize = PageRequest(page, pageSize, s.opts.Pagination.DefaultPageSize, s.opts.Pagination.MaxPageSize)
	db := s.db.WithContext(ctx)

	var total int64
	if err := db.Model(PT(new(T))).Where(activeQuery, true).Count(&total).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to count %s", s.opts.Kind.Table())
	}

	var items []T
	err := db.Where(activeQuery, true).
		Order(s.opts.Order).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&items).Error
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", s.opts.Kind.Table())
	}

	ids := make([]uint64, 0, len(items))
	for i := range items {
		ids = append(ids, PT(&items[i]).Ref().ID)
	}

	rows, err := translation.GetMany(db, s.opts.Kind, ids, s.opts.Resolver.Languages(language)...)
	if err != nil {
		return nil, err
	}

	data := make([]map[string]any, 0, len(items))
	for i := range items {
		entity := PT(&items[i])

		out, err := s.resolve(entity, rows[entity.Ref().ID], language)
		if err != nil {
			return nil, err
		}

		data = append(data, out)
	}

	return &Page{Data: data, Pagination: NewPagination(total, page, pageSize)}, nil
}

// Get returns the active entity addressed by a numeric id or a slug,
// resolved for language.
func (s *Service[T, PT]) Get(ctx context.Context, identifier string, language models.Language) (map[string]any, error) {
	db := s.db.WithContext(ctx)

	entity, err := s.find(db.Where(activeQuery, true), identifier)
	if err != nil {
		return nil, err
	}

	id := entity.Ref().ID

	rows, err := translation.GetMany(db, s.opts.Kind, []uint64{id}, s.opts.Resolver.Languages(language)...)
	if err != nil {
		return nil, err
	}

	return s.resolve(entity, rows[id], language)
}

// Detail returns the attributes and the raw translation rows of the entity
// with id, whether active or not.
func (s *Service[T, PT]) Detail(ctx context.Context, id uint64) (map[string]any, error) {
	db := s.db.WithContext(ctx)

	entity, err := s.byID(db, id)
	if err != nil {
		return nil, err
	}

	return detail(db, entity)
}

// Create inserts entity together with its translations. A missing slug is
// derived from the name or title translation of the default language.
func (s *Service[T, PT]) Create(ctx context.Context, entity PT, items []translation.Input) (map[string]any, error) {
	var out map[string]any

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.assignSlug(tx, entity, items, 0); err != nil {
			return err
		}

		if err := tx.Omit(clause.Associations).Create(entity).Error; err != nil {
			return s.writeError(err, "create")
		}

		if err := translation.ReplaceAllInTx(tx, entity.Ref(), items); err != nil {
			return err
		}

		var err error
		out, err = detail(tx, entity)

		return err
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Update changes the attributes of the entity with id and, when
// upd.Translations is set, replaces its translations in the same transaction.
func (s *Service[T, PT]) Update(ctx context.Context, id uint64, upd Update[PT]) (map[string]any, error) {
	var out map[string]any

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		entity, err := s.byID(tx.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
		if err != nil {
			return err
		}

		if upd.Apply != nil {
			if err = upd.Apply(entity); err != nil {
				return err
			}
		}

		if sl, ok := any(entity).(models.Slugged); ok && sl.GetSlug() == "" {
			return ErrSlugRequired
		}

		if err = s.assignSlug(tx, entity, nil, id); err != nil {
			return err
		}

		if err = tx.Omit(clause.Associations).Save(entity).Error; err != nil {
			return s.writeError(err, "update")
		}

		if upd.Translations != nil {
			if err = translation.ReplaceAllInTx(tx, entity.Ref(), *upd.Translations); err != nil {
				return err
			}
		}

		out, err = detail(tx, entity)

		return err
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// ReplaceAllTranslations swaps the complete translation set of the entity
// with id for items. Fields missing from items are deleted.
func (s *Service[T, PT]) ReplaceAllTranslations(
	ctx context.Context,
	id uint64,
	items []translation.Input,
) (map[string]any, error) {
	var out map[string]any

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := translation.ReplaceAllInTx(tx, models.EntityRef{Kind: s.opts.Kind, ID: id}, items)
		if errors.Is(err, translation.ErrEntityNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		entity, err := s.byID(tx, id)
		if err != nil {
			return err
		}

		out, err = detail(tx, entity)

		return err
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Delete removes the entity with id and its translations.
func (s *Service[T, PT]) Delete(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := translation.DeleteAll(tx, models.EntityRef{Kind: s.opts.Kind, ID: id}); err != nil {
			return err
		}

		result := tx.Delete(PT(new(T)), id)
		if result.Error != nil {
			return errors.Wrapf(result.Error, "failed to delete %s", s.opts.Kind)
		}

		if result.RowsAffected == 0 {
			return ErrNotFound
		}

		return nil
	})
}

func (s *Service[T, PT]) resolve(entity PT, rows []models.Translation, language models.Language) (map[string]any, error) {
	out := s.opts.Resolver.Resolve(entity.Attributes(), rows, language)

	if s.opts.Decorate != nil {
		if err := s.opts.Decorate(out); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func (s *Service[T, PT]) find(db *gorm.DB, identifier string) (PT, error) {
	entity := PT(new(T))

	var query *gorm.DB

	switch id, err := strconv.ParseUint(identifier, 10, 64); {
	case err == nil:
		query = db.Where("id = ?", id)
	case identifier != "" && isSlugged(entity):
		query = db.Where(slugQuery, identifier)
	default:
		return nil, ErrNotFound
	}

	if err := query.Take(entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}

		return nil, errors.Wrapf(err, "failed to load %s", s.opts.Kind)
	}

	return entity, nil
}

func (s *Service[T, PT]) byID(db *gorm.DB, id uint64) (PT, error) {
	entity := PT(new(T))

	if err := db.Take(entity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}

		return nil, errors.Wrapf(err, "failed to load %s", s.opts.Kind)
	}

	return entity, nil
}

// assignSlug validates the slug of entity, or derives one from items when
// it is empty. self is the id of the entity being updated, 0 on create.
func (s *Service[T, PT]) assignSlug(tx *gorm.DB, entity PT, items []translation.Input, self uint64) error {
	sl, ok := any(entity).(models.Slugged)
	if !ok {
		return nil
	}

	if sl.GetSlug() != "" {
		if !slug.Valid(sl.GetSlug()) {
			return ErrInvalidSlug
		}

		taken, err := s.slugTaken(tx, sl.GetSlug(), self)
		if err != nil {
			return err
		}

		if taken {
			return errors.Wrap(ErrSlugTaken, sl.GetSlug())
		}

		return nil
	}

	base := slug.Make(s.slugSource(items))
	if !slug.Valid(base) {
		return ErrSlugRequired
	}

	for n := 1; n <= maxSlugSuffix; n++ {
		candidate := base
		if n > 1 {
			candidate = fmt.Sprintf("%s-%d", base, n)
		}

		taken, err := s.slugTaken(tx, candidate, self)
		if err != nil {
			return err
		}

		if !taken {
			sl.SetSlug(candidate)
			return nil
		}
	}

	return errors.Wrap(ErrSlugTaken, base)
}

// slugSource picks the default language name or title, then the same
// fields of any other language.
func (s *Service[T, PT]) slugSource(items []translation.Input) string {
	for _, field := range slugSources {
		for _, item := range items {
			if strings.EqualFold(string(item.Language), string(s.opts.DefaultLanguage)) &&
				strings.TrimSpace(item.Field) == field && strings.TrimSpace(item.Value) != "" {
				return item.Value
			}
		}
	}

	for _, field := range slugSources {
		for _, item := range items {
			if strings.TrimSpace(item.Field) == field && strings.TrimSpace(item.Value) != "" {
				return item.Value
			}
		}
	}

	return ""
}

func (s *Service[T, PT]) slugTaken(tx *gorm.DB, value string, self uint64) (bool, error) {
	var count int64

	query := tx.Model(PT(new(T)))
	if self == 0 {
		query = query.Where(slugQuery, value)
	} else {
		query = query.Where(slugOtherQuery, value, self)
	}

	if err := query.Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check slug")
	}

	return count > 0, nil
}

func (s *Service[T, PT]) writeError(err error, op string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrSlugTaken
	}

	return errors.Wrapf(err, "failed to %s %s", op, s.opts.Kind)
}

func detail(db *gorm.DB, entity models.Translatable) (map[string]any, error) {
	rows, err := translation.GetAll(db, entity.Ref())
	if err != nil {
		return nil, err
	}

	out := entity.Attributes()
	out["translations"] = rows

	return out, nil
}

func isSlugged(entity any) bool {
	_, ok := entity.(models.Slugged)
	return ok
}
