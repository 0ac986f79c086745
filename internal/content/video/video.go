package video

import (
	"time"

	"github.com/manaracms/manara/internal/content/l10n"
	"github.com/manaracms/manara/internal/content/resource"
)

// Video is an external YouTube embed with a trilingual title.
type Video struct {
	ID          resource.ID        `json:"id"`
	Title       l10n.LocalizedText `json:"title"`
	YoutubeLink string             `json:"youtubeLink"`
	OwnerEmail  string             `json:"ownerEmail"`
	OwnerID     int64              `json:"-"`
	Version     int64              `json:"-"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// Input is the JSON payload for add and update. Nil means the caller did not
// send the field, so the stored value is retained on update.
type Input struct {
	Title       *l10n.LocalizedText `json:"title"`
	YoutubeLink *string             `json:"youtubeLink"`
}

// Global field names for validation
const (
	FieldTitle       = "title"
	FieldYoutubeLink = "youtubeLink"
)
