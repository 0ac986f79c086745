package partnership

import (
	"context"

	"github.com/manaracms/manara/internal/content/resource"
)

type Repository interface {
	ListPartnerships(context context.Context) ([]*Partnership, error)
	ListPartnershipsByOwner(context context.Context, ownerEmail string) ([]*Partnership, error)
	GetPartnership(context context.Context, id resource.ID) (*Partnership, error)
	CreatePartnership(context context.Context, item *Partnership) error
	// UpdatePartnership persists item if the stored version still matches
	// item.Version, incrementing it. A lost race fails with CONFLICT.
	UpdatePartnership(context context.Context, item *Partnership) error
	DeletePartnership(context context.Context, id resource.ID) error
}
