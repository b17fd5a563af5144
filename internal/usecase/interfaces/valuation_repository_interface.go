package interfaces

import (
	"context"

	"carmarket/internal/domain/entities"
)

// IValuationRepository abstracts persistence for computed valuations.
type IValuationRepository interface {
	Create(ctx context.Context, v entities.Valuation) (entities.Valuation, error)
	GetByID(ctx context.Context, id string) (entities.Valuation, error)
}
