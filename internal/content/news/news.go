package news

import (
	"time"

	"github.com/manaracms/manara/internal/content/l10n"
	"github.com/manaracms/manara/internal/content/resource"
)

// News is a trilingual article, optionally promoted to the homepage.
type News struct {
	ID          resource.ID        `json:"id"`
	Title       l10n.LocalizedText `json:"title"`
	Paragraph   l10n.LocalizedText `json:"paragraph"`
	Image       *string            `json:"image"`
	YoutubeLink *string            `json:"youtubeLink"`
	IsFeatured  bool               `json:"isFeatured"`
	OwnerEmail  string             `json:"ownerEmail"`
	OwnerID     int64              `json:"-"`
	Version     int64              `json:"-"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// Input carries the mutable fields of a news record. Nil means the caller
// did not send the field, so the stored value is retained on update.
type Input struct {
	Title       *l10n.LocalizedText
	Paragraph   *l10n.LocalizedText
	Image       *string
	YoutubeLink *string
	IsFeatured  *bool
}

// Global field names for validation
const (
	FieldTitle       = "title"
	FieldParagraph   = "paragraph"
	FieldYoutubeLink = "youtubeLink"
	FieldIsFeatured  = "isFeatured"
)
