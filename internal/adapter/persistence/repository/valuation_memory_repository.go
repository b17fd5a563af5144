package repository

import (
	"context"
	"sync"

	"carmarket/internal/domain/entities"
	"carmarket/internal/usecase/interfaces"
)

// ValuationMemoryRepository keeps computed valuations in process memory.
type ValuationMemoryRepository struct {
	mu         sync.RWMutex
	valuations map[string]entities.Valuation
}

var _ interfaces.IValuationRepository = (*ValuationMemoryRepository)(nil)

func NewValuationMemoryRepository() *ValuationMemoryRepository {
	return &ValuationMemoryRepository{valuations: make(map[string]entities.Valuation)}
}

func (r *ValuationMemoryRepository) Create(ctx context.Context, v entities.Valuation) (entities.Valuation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.valuations[v.ID] = v
	return v, nil
}

func (r *ValuationMemoryRepository) GetByID(ctx context.Context, id string) (entities.Valuation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.valuations[id], nil
}
