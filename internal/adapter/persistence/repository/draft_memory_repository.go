package repository

import (
	"context"
	"sync"

	"carmarket/internal/domain/wizard"
	"carmarket/internal/usecase/interfaces"
)

// DraftMemoryRepository keeps in-progress wizard drafts in process memory.
// Drafts are session-lifetime state and are never persisted elsewhere.
//
// Machines are stored as deep copies so a caller mutating its draft cannot
// bypass Save.
type DraftMemoryRepository struct {
	mu     sync.RWMutex
	drafts map[string]wizard.Draft
}

var _ interfaces.IDraftRepository = (*DraftMemoryRepository)(nil)

func NewDraftMemoryRepository() *DraftMemoryRepository {
	return &DraftMemoryRepository{drafts: make(map[string]wizard.Draft)}
}

func (r *DraftMemoryRepository) Save(ctx context.Context, d wizard.Draft) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	d.Machine = copyMachine(d.Machine)
	r.drafts[d.ID] = d
	return nil
}

func (r *DraftMemoryRepository) GetByID(ctx context.Context, id string) (wizard.Draft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.drafts[id]
	if !ok {
		return wizard.Draft{}, nil
	}
	d.Machine = copyMachine(d.Machine)
	return d, nil
}

func (r *DraftMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.drafts, id)
	return nil
}

func copyMachine(m *wizard.Machine) *wizard.Machine {
	if m == nil {
		return nil
	}
	out := &wizard.Machine{
		Steps:   append([]wizard.Step(nil), m.Steps...),
		Current: m.Current,
		Fields:  make(map[string]string, len(m.Fields)),
		Lists:   make(map[string][]string, len(m.Lists)),
		Done:    m.Done,
	}
	for k, v := range m.Fields {
		out.Fields[k] = v
	}
	for k, v := range m.Lists {
		out.Lists[k] = append([]string(nil), v...)
	}
	return out
}
