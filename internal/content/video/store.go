package video

import (
	"context"

	"github.com/manaracms/manara/internal/content/resource"
)

type Repository interface {
	ListVideos(context context.Context) ([]*Video, error)
	ListVideosByOwner(context context.Context, ownerEmail string) ([]*Video, error)
	GetVideo(context context.Context, id resource.ID) (*Video, error)
	CreateVideo(context context.Context, item *Video) error
	// UpdateVideo persists item if the stored version still matches
	// item.Version, incrementing it. A lost race fails with CONFLICT.
	UpdateVideo(context context.Context, item *Video) error
	DeleteVideo(context context.Context, id resource.ID) error
}
