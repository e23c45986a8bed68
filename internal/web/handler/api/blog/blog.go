// Package blog serves the blog endpoints. The localized content field is
// markdown and is returned rendered as contentHtml as well.
package blog

import (
	"time"

	"github.com/DoctorPortal/DoctorPortal/internal/content"
	"github.com/DoctorPortal/DoctorPortal/internal/db/controller/translation"
	"github.com/DoctorPortal/DoctorPortal/internal/db/models"
	"github.com/DoctorPortal/DoctorPortal/internal/web/handler/api/resource"
)

// Path is the collection path below /api.
const Path = "/blog"

// Handler is the blog post resource. Newest posts are listed first.
var Handler = resource.Resource[models.BlogPost, *models.BlogPost]{
	Path: Path,
	Name: "blog post",
	Options: content.Options{
		Kind:     models.KindBlogPost,
		Order:    "COALESCE(published_at, created_at) DESC, id DESC",
		Decorate: content.MarkdownField("content"),
	},
	New: func() *models.BlogPost {
		return &models.BlogPost{Active: true}
	},
	NewPayload: func() resource.Payload[*models.BlogPost] {
		return new(Payload)
	},
}

// Payload is the body of create and update requests.
type Payload struct {
	Slug          *string              `json:"slug" validate:"omitempty,max=160"`
	CoverImageURL *string              `json:"coverImageUrl" validate:"omitempty,max=512"`
	PublishedAt   *time.Time           `json:"publishedAt"`
	Active        *bool                `json:"active"`
	Translations  *[]translation.Input `json:"translations" validate:"omitempty,dive"`
}

// Apply implements resource.Payload.
func (p *Payload) Apply(b *models.BlogPost) error {
	if p.Slug != nil {
		b.Slug = *p.Slug
	}

	if p.CoverImageURL != nil {
		b.CoverImageURL = *p.CoverImageURL
	}

	if p.PublishedAt != nil {
		published := p.PublishedAt.UTC()
		b.PublishedAt = &published
	}

	if p.Active != nil {
		b.Active = *p.Active
	}

	return nil
}

// TranslationSet implements resource.Payload.
func (p *Payload) TranslationSet() *[]translation.Input {
	return p.Translations
}
