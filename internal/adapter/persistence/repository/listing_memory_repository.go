package repository

import (
	"context"
	"sync"

	"carmarket/internal/domain/entities"
	"carmarket/internal/usecase/interfaces"
)

// ListingMemoryRepository keeps seller listings in process memory. It is the
// default backend; see NewListingRepositoryFromEnv for the durable option.
type ListingMemoryRepository struct {
	mu       sync.RWMutex
	listings map[string]entities.Listing
	order    []string
}

var _ interfaces.IListingRepository = (*ListingMemoryRepository)(nil)

func NewListingMemoryRepository() *ListingMemoryRepository {
	return &ListingMemoryRepository{listings: make(map[string]entities.Listing)}
}

func (r *ListingMemoryRepository) Create(ctx context.Context, l entities.Listing) (entities.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.listings[l.ID]; !exists {
		r.order = append(r.order, l.ID)
	}
	r.listings[l.ID] = l
	return l, nil
}

func (r *ListingMemoryRepository) GetByID(ctx context.Context, id string) (entities.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.listings[id], nil
}

func (r *ListingMemoryRepository) List(ctx context.Context) ([]entities.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Listing, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.listings[id])
	}
	return out, nil
}
