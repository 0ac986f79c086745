package photo

import (
	"context"

	"github.com/manaracms/manara/internal/content/resource"
)

type Repository interface {
	ListPhotos(context context.Context) ([]*Photo, error)
	ListPhotosByOwner(context context.Context, ownerEmail string) ([]*Photo, error)
	GetPhoto(context context.Context, id resource.ID) (*Photo, error)
	CreatePhoto(context context.Context, item *Photo) error
	// UpdatePhoto persists item if the stored version still matches
	// item.Version, incrementing it. A lost race fails with CONFLICT.
	UpdatePhoto(context context.Context, item *Photo) error
	DeletePhoto(context context.Context, id resource.ID) error
}
