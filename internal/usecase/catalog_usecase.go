package usecase

import (
	"context"
	"errors"
	"strings"

	"carmarket/internal/domain/entities"
	"carmarket/internal/usecase/interfaces"
)

var (
	ErrVehicleNotFound   = errors.New("vehicle not found")
	ErrInvalidVehicleID  = errors.New("invalid vehicle id")
	ErrInvalidPriceRange = errors.New("invalid price range")
	ErrInvalidYearRange  = errors.New("invalid year range")
)

// FilterMetadata describes the bounds a filter surface can offer: the
// curated make list plus catalog-wide price and year extents.
type FilterMetadata struct {
	Makes    []string `json:"makes"`
	PriceMin float64  `json:"price_min"`
	PriceMax float64  `json:"price_max"`
	YearMin  int      `json:"year_min"`
	YearMax  int      `json:"year_max"`
}

// ICatalogUseCase exposes catalog browsing.
//
// Browse runs the two-stage filter/sort pipeline; GetByID distinguishes a
// stale or unknown ID from an empty result set with ErrVehicleNotFound.
type ICatalogUseCase interface {
	Browse(ctx context.Context, filter entities.VehicleFilter, order entities.SortOrder) ([]entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	Featured(ctx context.Context) ([]entities.Vehicle, error)
	Makes(ctx context.Context) ([]string, error)
	ModelsByMake(ctx context.Context, make string) ([]string, error)
	FilterMetadata(ctx context.Context) (FilterMetadata, error)
}

type CatalogUseCase struct {
	repo interfaces.IVehicleRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.IVehicleRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (u *CatalogUseCase) Browse(ctx context.Context, filter entities.VehicleFilter, order entities.SortOrder) ([]entities.Vehicle, error) {
	if filter.PriceMin != nil && filter.PriceMax != nil && *filter.PriceMin > *filter.PriceMax {
		return nil, ErrInvalidPriceRange
	}
	if filter.YearMin != nil && filter.YearMax != nil && *filter.YearMin > *filter.YearMax {
		return nil, ErrInvalidYearRange
	}
	return u.repo.List(ctx, filter, order)
}

func (u *CatalogUseCase) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Vehicle{}, ErrInvalidVehicleID
	}

	v, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if v.ID == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return v, nil
}

func (u *CatalogUseCase) Featured(ctx context.Context) ([]entities.Vehicle, error) {
	return u.repo.Featured(ctx)
}

func (u *CatalogUseCase) Makes(ctx context.Context) ([]string, error) {
	return u.repo.Makes(ctx)
}

// ModelsByMake returns the curated model choices for a make. An unknown make
// yields an empty list, not an error, so the sell form can degrade to free
// text.
func (u *CatalogUseCase) ModelsByMake(ctx context.Context, make string) ([]string, error) {
	return u.repo.ModelsByMake(ctx, strings.TrimSpace(make))
}

func (u *CatalogUseCase) FilterMetadata(ctx context.Context) (FilterMetadata, error) {
	makes, err := u.repo.Makes(ctx)
	if err != nil {
		return FilterMetadata{}, err
	}
	priceMin, priceMax, err := u.repo.PriceBounds(ctx)
	if err != nil {
		return FilterMetadata{}, err
	}
	yearMin, yearMax, err := u.repo.YearBounds(ctx)
	if err != nil {
		return FilterMetadata{}, err
	}
	return FilterMetadata{
		Makes:    makes,
		PriceMin: priceMin,
		PriceMax: priceMax,
		YearMin:  yearMin,
		YearMax:  yearMax,
	}, nil
}
