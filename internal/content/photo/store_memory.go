package photo

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
	items map[resource.ID]*Photo
	order []resource.ID
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[resource.ID]*Photo)}
}

func (repository *MemoryRepository) ListPhotos(_ context.Context) ([]*Photo, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	return repository.collect(func(*Photo) bool { return true }), nil
}

func (repository *MemoryRepository) ListPhotosByOwner(_ context.Context, ownerEmail string) ([]*Photo, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	return repository.collect(func(item *Photo) bool { return item.OwnerEmail == ownerEmail }), nil
}

func (repository *MemoryRepository) GetPhoto(_ context.Context, id resource.ID) (*Photo, error) {
	if !uuid.IsValid(id.String()) {
		return nil, apperr.InvalidID("Photo")
	}

	repository.mu.RLock()
	defer repository.mu.RUnlock()

	item, ok := repository.items[id]
	if !ok {
		return nil, apperr.NotFound("Photo")
	}
	return clone(item), nil
}

func (repository *MemoryRepository) CreatePhoto(_ context.Context, item *Photo) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	item.ID = resource.ID(uuid.New())
	item.Version = 1
	item.CreatedAt = time.Now().UTC()

	repository.items[item.ID] = clone(item)
	repository.order = append(repository.order, item.ID)
	return nil
}

func (repository *MemoryRepository) UpdatePhoto(_ context.Context, item *Photo) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	stored, ok := repository.items[item.ID]
	if !ok {
		return apperr.NotFound("Photo")
	}
	if stored.Version != item.Version {
		return apperr.Conflict("Photo was modified concurrently, please retry")
	}

	item.Version++
	item.CreatedAt = stored.CreatedAt
	repository.items[item.ID] = clone(item)
	return nil
}

func (repository *MemoryRepository) DeletePhoto(_ context.Context, id resource.ID) error {
	if !uuid.IsValid(id.String()) {
		return apperr.InvalidID("Photo")
	}

	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.items[id]; !ok {
		return apperr.NotFound("Photo")
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
func (repository *MemoryRepository) collect(keep func(*Photo) bool) []*Photo {
	results := []*Photo{}
	for index := len(repository.order) - 1; index >= 0; index-- {
		item := repository.items[repository.order[index]]
		if keep(item) {
			results = append(results, clone(item))
		}
	}
	return results
}

func clone(item *Photo) *Photo {
	copied := *item
	if item.Image != nil {
		image := *item.Image
		copied.Image = &image
	}
	return &copied
}
