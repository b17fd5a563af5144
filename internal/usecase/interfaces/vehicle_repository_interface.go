package interfaces

import (
	"context"

	"carmarket/internal/domain/entities"
)

// IVehicleRepository abstracts the catalog store: the immutable, seeded
// vehicle inventory plus the curated lookup data around it.
//
// Lookups return a zero-value Vehicle with a nil error when nothing matches;
// the use case layer maps that to its not-found error.
type IVehicleRepository interface {
	List(ctx context.Context, filter entities.VehicleFilter, order entities.SortOrder) ([]entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	Featured(ctx context.Context) ([]entities.Vehicle, error)
	Makes(ctx context.Context) ([]string, error)
	ModelsByMake(ctx context.Context, make string) ([]string, error)
	PriceBounds(ctx context.Context) (min, max float64, err error)
	YearBounds(ctx context.Context) (min, max int, err error)
}
