package interfaces

import (
	"context"

	"carmarket/internal/domain/entities"
)

// IListingRepository abstracts persistence for seller listings.
//
// Two implementations exist: the in-memory default and a DynamoDB backend
// for deployments that want submissions to survive restarts.
type IListingRepository interface {
	Create(ctx context.Context, l entities.Listing) (entities.Listing, error)
	GetByID(ctx context.Context, id string) (entities.Listing, error)
	List(ctx context.Context) ([]entities.Listing, error)
}
