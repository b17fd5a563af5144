package repository

import (
	"context"
	"sync"

	"carmarket/internal/domain/entities"
	"carmarket/internal/usecase/interfaces"
)

// OrderMemoryRepository keeps checkout orders in process memory, ordered by
// creation within a session.
type OrderMemoryRepository struct {
	mu        sync.RWMutex
	orders    map[string]entities.Order
	bySession map[string][]string
}

var _ interfaces.IOrderRepository = (*OrderMemoryRepository)(nil)

func NewOrderMemoryRepository() *OrderMemoryRepository {
	return &OrderMemoryRepository{
		orders:    make(map[string]entities.Order),
		bySession: make(map[string][]string),
	}
}

func (r *OrderMemoryRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders[o.ID] = o
	r.bySession[o.SessionID] = append(r.bySession[o.SessionID], o.ID)
	return o, nil
}

func (r *OrderMemoryRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.orders[id], nil
}

func (r *OrderMemoryRepository) ListBySessionID(ctx context.Context, sessionID string) ([]entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.bySession[sessionID]
	out := make([]entities.Order, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.orders[id])
	}
	return out, nil
}
