package topic

import (
	"context"
	"sync"
	"time"

	"github.com/manaracms/manara/internal/content/resource"
	"github.com/manaracms/manara/internal/platform/apperr"
	"github.com/manaracms/manara/pkg/uuid"
)

// MemoryRepository is the document-store shaped adapter: string UUID keys,
// insertion order preserved. It backs tests and storeless runs.
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[resource.ID]*Topic
	order []resource.ID
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[resource.ID]*Topic)}
}

func (repository *MemoryRepository) ListTopics(_ context.Context) ([]*Topic, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	return repository.collect(func(*Topic) bool { return true }), nil
}

func (repository *MemoryRepository) ListTopicsByOwner(_ context.Context, ownerEmail string) ([]*Topic, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	return repository.collect(func(item *Topic) bool { return item.OwnerEmail == ownerEmail }), nil
}

func (repository *MemoryRepository) GetTopic(_ context.Context, id resource.ID) (*Topic, error) {
	if !uuid.IsValid(id.String()) {
		return nil, apperr.InvalidID("Topic")
	}

	repository.mu.RLock()
	defer repository.mu.RUnlock()

	item, ok := repository.items[id]
	if !ok {
		return nil, apperr.NotFound("Topic")
	}
	return clone(item), nil
}

func (repository *MemoryRepository) CreateTopic(_ context.Context, item *Topic) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	item.ID = resource.ID(uuid.New())
	item.Version = 1
	item.CreatedAt = time.Now().UTC()

	repository.items[item.ID] = clone(item)
	repository.order = append(repository.order, item.ID)
	return nil
}

func (repository *MemoryRepository) UpdateTopic(_ context.Context, item *Topic) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	stored, ok := repository.items[item.ID]
	if !ok {
		return apperr.NotFound("Topic")
	}
	if stored.Version != item.Version {
		return apperr.Conflict("Topic was modified concurrently, please retry")
	}

	item.Version++
	item.CreatedAt = stored.CreatedAt
	repository.items[item.ID] = clone(item)
	return nil
}

func (repository *MemoryRepository) DeleteTopic(_ context.Context, id resource.ID) error {
	if !uuid.IsValid(id.String()) {
		return apperr.InvalidID("Topic")
	}

	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.items[id]; !ok {
		return apperr.NotFound("Topic")
	}
	delete(repository.items, id)
	for index, storedID := range repository.order {
		if storedID == id {
			repository.order = append(repository.order[:index], repository.order[index+1:]...)
			break
		}
	}
	return nil
}

// collect walks insertion order newest-first.
func (repository *MemoryRepository) collect(keep func(*Topic) bool) []*Topic {
	results := []*Topic{}
	for index := len(repository.order) - 1; index >= 0; index-- {
		item := repository.items[repository.order[index]]
		if keep(item) {
			results = append(results, clone(item))
		}
	}
	return results
}

func clone(item *Topic) *Topic {
	copied := *item
	if item.Image != nil {
		image := *item.Image
		copied.Image = &image
	}
	if item.YoutubeLink != nil {
		link := *item.YoutubeLink
		copied.YoutubeLink = &link
	}
	return &copied
}
