package partnership

import (
	"time"

	"github.com/manaracms/manara/internal/content/resource"
)

// Partnership is a partner organization listing: a logo image plus a link to
// the partner's site.
type Partnership struct {
	ID         resource.ID `json:"id"`
	Image      *string     `json:"image"`
	WebsiteURL string      `json:"websiteUrl"`
	OwnerEmail string      `json:"ownerEmail"`
	OwnerID    int64       `json:"-"`
	Version    int64       `json:"-"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// Input carries the mutable fields. Nil means the caller did not send the
// field, so the stored value is retained on update.
type Input struct {
	Image      *string
	WebsiteURL *string
}

// Global field names for validation
const (
	FieldImage      = "image"
	FieldWebsiteURL = "websiteUrl"
)
