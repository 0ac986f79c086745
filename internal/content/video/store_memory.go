package video

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
	items map[resource.ID]*Video
	order []resource.ID
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[resource.ID]*Video)}
}

func (repository *MemoryRepository) ListVideos(_ context.Context) ([]*Video, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	return repository.collect(func(*Video) bool { return true }), nil
}

func (repository *MemoryRepository) ListVideosByOwner(_ context.Context, ownerEmail string) ([]*Video, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	return repository.collect(func(item *Video) bool { return item.OwnerEmail == ownerEmail }), nil
}

func (repository *MemoryRepository) GetVideo(_ context.Context, id resource.ID) (*Video, error) {
	if !uuid.IsValid(id.String()) {
		return nil, apperr.InvalidID("Video")
	}

	repository.mu.RLock()
	defer repository.mu.RUnlock()

	item, ok := repository.items[id]
	if !ok {
		return nil, apperr.NotFound("Video")
	}
	copied := *item
	return &copied, nil
}

func (repository *MemoryRepository) CreateVideo(_ context.Context, item *Video) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	item.ID = resource.ID(uuid.New())
	item.Version = 1
	item.CreatedAt = time.Now().UTC()

	copied := *item
	repository.items[item.ID] = &copied
	repository.order = append(repository.order, item.ID)
	return nil
}

func (repository *MemoryRepository) UpdateVideo(_ context.Context, item *Video) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	stored, ok := repository.items[item.ID]
	if !ok {
		return apperr.NotFound("Video")
	}
	if stored.Version != item.Version {
		return apperr.Conflict("Video was modified concurrently, please retry")
	}

	item.Version++
	item.CreatedAt = stored.CreatedAt
	copied := *item
	repository.items[item.ID] = &copied
	return nil
}

func (repository *MemoryRepository) DeleteVideo(_ context.Context, id resource.ID) error {
	if !uuid.IsValid(id.String()) {
		return apperr.InvalidID("Video")
	}

	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.items[id]; !ok {
		return apperr.NotFound("Video")
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
func (repository *MemoryRepository) collect(keep func(*Video) bool) []*Video {
	results := []*Video{}
	for index := len(repository.order) - 1; index >= 0; index-- {
		item := repository.items[repository.order[index]]
		if keep(item) {
			copied := *item
			results = append(results, &copied)
		}
	}
	return results
}
