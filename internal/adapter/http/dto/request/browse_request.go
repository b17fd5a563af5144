package request

import (
	"strings"

	"carmarket/internal/domain/entities"
)

// BrowseVehiclesRequest captures the catalog query string. Repeated
// transmission and fuel_type params build multi-select facets; absent params
// leave their facet unconstrained.
type BrowseVehiclesRequest struct {
	Search        string   `form:"search"`
	Make          string   `form:"make"`
	Transmissions []string `form:"transmission"`
	FuelTypes     []string `form:"fuel_type"`
	PriceMin      *float64 `form:"price_min"`
	PriceMax      *float64 `form:"price_max"`
	YearMin       *int     `form:"year_min"`
	YearMax       *int     `form:"year_max"`
	Sort          string   `form:"sort"`
}

func (r BrowseVehiclesRequest) ToFilter() entities.VehicleFilter {
	f := entities.VehicleFilter{
		SearchTerm: strings.TrimSpace(r.Search),
		Make:       strings.TrimSpace(r.Make),
		PriceMin:   r.PriceMin,
		PriceMax:   r.PriceMax,
		YearMin:    r.YearMin,
		YearMax:    r.YearMax,
	}
	for _, t := range r.Transmissions {
		if t = strings.TrimSpace(t); t != "" {
			f.Transmissions = append(f.Transmissions, entities.Transmission(t))
		}
	}
	for _, ft := range r.FuelTypes {
		if ft = strings.TrimSpace(ft); ft != "" {
			f.FuelTypes = append(f.FuelTypes, entities.FuelType(ft))
		}
	}
	return f
}

func (r BrowseVehiclesRequest) ToSortOrder() entities.SortOrder {
	return entities.SortOrder(strings.TrimSpace(r.Sort))
}
