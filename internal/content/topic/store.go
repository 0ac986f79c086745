package topic

import (
	"context"

	"github.com/manaracms/manara/internal/content/resource"
)

type Repository interface {
	ListTopics(context context.Context) ([]*Topic, error)
	ListTopicsByOwner(context context.Context, ownerEmail string) ([]*Topic, error)
	GetTopic(context context.Context, id resource.ID) (*Topic, error)
	CreateTopic(context context.Context, item *Topic) error
	// UpdateTopic persists item if the stored version still matches
	// item.Version, incrementing it. A lost race fails with CONFLICT.
	UpdateTopic(context context.Context, item *Topic) error
	DeleteTopic(context context.Context, id resource.ID) error
}
