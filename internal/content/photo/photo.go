package photo

import (
	"time"

	"github.com/manaracms/manara/internal/content/resource"
)

// Photo is a single gallery image stored inline as base64.
type Photo struct {
	ID         resource.ID `json:"id"`
	Image      *string     `json:"image"`
	OwnerEmail string      `json:"ownerEmail"`
	OwnerID    int64       `json:"-"`
	Version    int64       `json:"-"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// Input carries the mutable fields. Nil means the caller did not send the
// field, so the stored value is retained on update.
type Input struct {
	Image *string
}

// Global field names for validation
const (
	FieldImage = "image"
)
