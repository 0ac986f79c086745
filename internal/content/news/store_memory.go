package news

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
	items map[resource.ID]*News
	order []resource.ID
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[resource.ID]*News)}
}

func (repository *MemoryRepository) ListNews(_ context.Context) ([]*News, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	return repository.collect(func(*News) bool { return true }, 0), nil
}

func (repository *MemoryRepository) ListNewsByOwner(_ context.Context, ownerEmail string) ([]*News, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	return repository.collect(func(item *News) bool { return item.OwnerEmail == ownerEmail }, 0), nil
}

func (repository *MemoryRepository) ListFeaturedNews(_ context.Context, limit int) ([]*News, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	return repository.collect(func(item *News) bool { return item.IsFeatured }, limit), nil
}

func (repository *MemoryRepository) GetNews(_ context.Context, id resource.ID) (*News, error) {
	if !uuid.IsValid(id.String()) {
		return nil, apperr.InvalidID("News")
	}

	repository.mu.RLock()
	defer repository.mu.RUnlock()

	item, ok := repository.items[id]
	if !ok {
		return nil, apperr.NotFound("News")
	}
	return clone(item), nil
}

func (repository *MemoryRepository) CreateNews(_ context.Context, item *News) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	item.ID = resource.ID(uuid.New())
	item.Version = 1
	item.CreatedAt = time.Now().UTC()

	repository.items[item.ID] = clone(item)
	repository.order = append(repository.order, item.ID)
	return nil
}

func (repository *MemoryRepository) UpdateNews(_ context.Context, item *News) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	stored, ok := repository.items[item.ID]
	if !ok {
		return apperr.NotFound("News")
	}
	if stored.Version != item.Version {
		return apperr.Conflict("News was modified concurrently, please retry")
	}

	item.Version++
	item.CreatedAt = stored.CreatedAt
	repository.items[item.ID] = clone(item)
	return nil
}

func (repository *MemoryRepository) DeleteNews(_ context.Context, id resource.ID) error {
	if !uuid.IsValid(id.String()) {
		return apperr.InvalidID("News")
	}

	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.items[id]; !ok {
		return apperr.NotFound("News")
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

// collect walks insertion order newest-first. limit 0 means unbounded.
func (repository *MemoryRepository) collect(keep func(*News) bool, limit int) []*News {
	results := []*News{}
	for index := len(repository.order) - 1; index >= 0; index-- {
		item := repository.items[repository.order[index]]
		if !keep(item) {
			continue
		}
		results = append(results, clone(item))
		if limit > 0 && len(results) == limit {
			break
		}
	}
	return results
}

func clone(item *News) *News {
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
