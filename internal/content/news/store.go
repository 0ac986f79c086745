package news

import (
	"context"

	"github.com/manaracms/manara/internal/content/resource"
)

type Repository interface {
	ListNews(context context.Context) ([]*News, error)
	ListNewsByOwner(context context.Context, ownerEmail string) ([]*News, error)
	ListFeaturedNews(context context.Context, limit int) ([]*News, error)
	GetNews(context context.Context, id resource.ID) (*News, error)
	CreateNews(context context.Context, item *News) error
	// UpdateNews persists item if the stored version still matches
	// item.Version, incrementing it. A lost race fails with CONFLICT.
	UpdateNews(context context.Context, item *News) error
	DeleteNews(context context.Context, id resource.ID) error
}
