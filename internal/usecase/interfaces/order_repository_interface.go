package interfaces

import (
	"context"

	"carmarket/internal/domain/entities"
)

// IOrderRepository abstracts persistence for checkout orders.
type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListBySessionID(ctx context.Context, sessionID string) ([]entities.Order, error)
}
