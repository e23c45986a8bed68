// Package dashboard provides the admin overview of the portal content.
package dashboard

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/DoctorPortal/DoctorPortal/internal/auth"
	"github.com/DoctorPortal/DoctorPortal/internal/db/models"
	"github.com/DoctorPortal/DoctorPortal/internal/web/handler"
)

const (
	// Path is the path of the dashboard endpoint below /api.
	Path = "/dashboard"

	// RecentAppointments is the number of appointments listed.
	RecentAppointments = 5
)

// Kinds lists the translatable entity kinds in display order.
var Kinds = []models.EntityKind{
	models.KindDoctor,
	models.KindService,
	models.KindTestimonial,
	models.KindBlogPost,
}

// KindStats counts the entities of one kind.
type KindStats struct {
	Kind   models.EntityKind `json:"kind"`
	Total  int64             `json:"total"`
	Active int64             `json:"active"`
	// Translated counts the entities having at least one field per language.
	// Entities missing a language are the ones rendered without text there.
	Translated map[models.Language]int64 `json:"translated"`
}

// Data represents the complete dashboard data.
type Data struct {
	Languages          []models.Language    `json:"languages"`
	Content            []KindStats          `json:"content"`
	Settings           int64                `json:"settings"`
	Appointments       int64                `json:"appointments"`
	RecentAppointments []models.Appointment `json:"recentAppointments"`
}

// Service is the dashboard handler service.
type Service struct {
	handler.Service

	deps *handler.Deps
}

// Handler is the dashboard handler.
var Handler = Service{}

// Init initializes the dashboard handler. Every signed in user may read it.
func (s *Service) Init(app *fiber.App, deps *handler.Deps) error {
	if app == nil || !deps.Valid() {
		return handler.ErrNilDeps
	}

	h := &Service{deps: deps}

	app.Get(handler.APIPath+Path, auth.RequireAuthenticated(deps.Issuer), h.Get)

	return nil
}

// Get returns the content overview.
func (s *Service) Get(c *fiber.Ctx) error {
	db := s.deps.DB.WithContext(c.UserContext())
	languages := s.deps.Negotiator.Supported()

	data := Data{
		Languages:          languages,
		Content:            make([]KindStats, 0, len(Kinds)),
		RecentAppointments: []models.Appointment{},
	}

	for _, kind := range Kinds {
		stats, err := kindStats(db, kind, languages)
		if err != nil {
			return err
		}

		data.Content = append(data.Content, stats)
	}

	if err := db.Model(&models.Setting{}).Count(&data.Settings).Error; err != nil {
		return errors.Wrap(err, "failed to count settings")
	}

	if err := db.Model(&models.Appointment{}).Count(&data.Appointments).Error; err != nil {
		return errors.Wrap(err, "failed to count appointments")
	}

	err := db.Order("created_at DESC, id DESC").Limit(RecentAppointments).Find(&data.RecentAppointments).Error
	if err != nil {
		return errors.Wrap(err, "failed to load recent appointments")
	}

	return handler.OK(c, data)
}

func kindStats(db *gorm.DB, kind models.EntityKind, languages []models.Language) (KindStats, error) {
	stats := KindStats{
		Kind:       kind,
		Translated: make(map[models.Language]int64, len(languages)),
	}

	if err := db.Table(kind.Table()).Count(&stats.Total).Error; err != nil {
		return stats, errors.Wrapf(err, "failed to count %s", kind.Table())
	}

	if err := db.Table(kind.Table()).Where("active = ?", true).Count(&stats.Active).Error; err != nil {
		return stats, errors.Wrapf(err, "failed to count active %s", kind.Table())
	}

	var rows []struct {
		Language models.Language
		Entities int64
	}

	err := db.Model(&models.Translation{}).
		Select("language, COUNT(DISTINCT " + kind.Column() + ") AS entities").
		Where(kind.Column() + " IS NOT NULL").
		Group("language").
		Scan(&rows).Error
	if err != nil {
		return stats, errors.Wrapf(err, "failed to count %s translations", kind)
	}

	for _, lang := range languages {
		stats.Translated[lang] = 0
	}

	for _, row := range rows {
		stats.Translated[row.Language] = row.Entities
	}

	return stats, nil
}
