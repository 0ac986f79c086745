package partnership

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
	items map[resource.ID]*Partnership
	order []resource.ID
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[resource.ID]*Partnership)}
}

func (repository *MemoryRepository) ListPartnerships(_ context.Context) ([]*Partnership, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	return repository.collect(func(*Partnership) bool { return true }), nil
}

func (repository *MemoryRepository) ListPartnershipsByOwner(_ context.Context, ownerEmail string) ([]*Partnership, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	return repository.collect(func(item *Partnership) bool { return item.OwnerEmail == ownerEmail }), nil
}

func (repository *MemoryRepository) GetPartnership(_ context.Context, id resource.ID) (*Partnership, error) {
	if !uuid.IsValid(id.String()) {
		return nil, apperr.InvalidID("Partnership")
	}

	repository.mu.RLock()
	defer repository.mu.RUnlock()

	item, ok := repository.items[id]
	if !ok {
		return nil, apperr.NotFound("Partnership")
	}
	return clone(item), nil
}

func (repository *MemoryRepository) CreatePartnership(_ context.Context, item *Partnership) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	item.ID = resource.ID(uuid.New())
	item.Version = 1
	item.CreatedAt = time.Now().UTC()

	repository.items[item.ID] = clone(item)
	repository.order = append(repository.order, item.ID)
	return nil
}

func (repository *MemoryRepository) UpdatePartnership(_ context.Context, item *Partnership) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	stored, ok := repository.items[item.ID]
	if !ok {
		return apperr.NotFound("Partnership")
	}
	if stored.Version != item.Version {
		return apperr.Conflict("Partnership was modified concurrently, please retry")
	}

	item.Version++
	item.CreatedAt = stored.CreatedAt
	repository.items[item.ID] = clone(item)
	return nil
}

func (repository *MemoryRepository) DeletePartnership(_ context.Context, id resource.ID) error {
	if !uuid.IsValid(id.String()) {
		return apperr.InvalidID("Partnership")
	}

	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.items[id]; !ok {
		return apperr.NotFound("Partnership")
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
func (repository *MemoryRepository) collect(keep func(*Partnership) bool) []*Partnership {
	results := []*Partnership{}
	for index := len(repository.order) - 1; index >= 0; index-- {
		item := repository.items[repository.order[index]]
		if keep(item) {
			results = append(results, clone(item))
		}
	}
	return results
}

func clone(item *Partnership) *Partnership {
	copied := *item
	if item.Image != nil {
		image := *item.Image
		copied.Image = &image
	}
	return &copied
}
