package repository

import (
	"context"
	"sync"

	"carmarket/internal/domain/entities"
	"carmarket/internal/usecase/interfaces"
)

// CartMemoryRepository keeps session carts in process memory for the
// lifetime of the application. Access is serialized so the cart keeps its
// single-writer guarantee under concurrent HTTP handlers.
type CartMemoryRepository struct {
	mu    sync.RWMutex
	carts map[string]entities.Cart
}

var _ interfaces.ICartRepository = (*CartMemoryRepository)(nil)

func NewCartMemoryRepository() *CartMemoryRepository {
	return &CartMemoryRepository{carts: make(map[string]entities.Cart)}
}

func (r *CartMemoryRepository) Get(ctx context.Context, sessionID string) (entities.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart := r.carts[sessionID]
	cart.Lines = append([]entities.CartLine(nil), cart.Lines...)
	return cart, nil
}

func (r *CartMemoryRepository) Save(ctx context.Context, cart entities.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.carts[cart.SessionID] = cart
	return nil
}

func (r *CartMemoryRepository) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, sessionID)
	return nil
}
