package models

import "time"

// BlogPost is an article of the clinic blog. The localized body is markdown.
type BlogPost struct {
	ID            uint64 `gorm:"primaryKey"`
	Slug          string `gorm:"uniqueIndex;size:160;not null"`
	CoverImageURL string `gorm:"size:512"`
	PublishedAt   *time.Time
	Active        bool          `gorm:"not null"`
	Translations  []Translation `gorm:"foreignKey:BlogPostID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Ref implements Translatable.
func (b *BlogPost) Ref() EntityRef { return EntityRef{Kind: KindBlogPost, ID: b.ID} }

// GetSlug implements Slugged.
func (b *BlogPost) GetSlug() string { return b.Slug }

// SetSlug implements Slugged.
func (b *BlogPost) SetSlug(slug string) { b.Slug = slug }

// Attributes implements Translatable.
func (b *BlogPost) Attributes() map[string]any {
	return map[string]any{
		"id":            b.ID,
		"slug":          b.Slug,
		"coverImageUrl": b.CoverImageURL,
		"publishedAt":   b.PublishedAt,
		"active":        b.Active,
		"createdAt":     b.CreatedAt,
		"updatedAt":     b.UpdatedAt,
	}
}
