package repository

import (
	"context"
	"sync"

	"carmarket/internal/usecase/interfaces"
)

// WishlistMemoryRepository keeps per-session wishlists in process memory.
type WishlistMemoryRepository struct {
	mu    sync.RWMutex
	lists map[string][]string
}

var _ interfaces.IWishlistRepository = (*WishlistMemoryRepository)(nil)

func NewWishlistMemoryRepository() *WishlistMemoryRepository {
	return &WishlistMemoryRepository{lists: make(map[string][]string)}
}

func (r *WishlistMemoryRepository) Get(ctx context.Context, sessionID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.lists[sessionID]...), nil
}

func (r *WishlistMemoryRepository) Save(ctx context.Context, sessionID string, vehicleIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lists[sessionID] = append([]string(nil), vehicleIDs...)
	return nil
}
