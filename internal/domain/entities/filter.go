package entities

import (
	"sort"
	"strings"
)

// SortOrder selects the ordering of browse results.
type SortOrder string

const (
	SortNewest    SortOrder = "newest"
	SortOldest    SortOrder = "oldest"
	SortPriceAsc  SortOrder = "price_asc"
	SortPriceDesc SortOrder = "price_desc"
)

// VehicleFilter narrows the catalog to a result set.
//
// Facets combine with AND; the values inside a multi-select facet combine
// with OR. An empty selection or a nil bound means the facet is
// unconstrained, never "match nothing". Search is case-insensitive substring
// containment over make, model and description.
type VehicleFilter struct {
	SearchTerm    string
	Make          string
	Transmissions []Transmission
	FuelTypes     []FuelType
	PriceMin      *float64
	PriceMax      *float64
	YearMin       *int
	YearMax       *int
}

// Matches reports whether v satisfies every facet of the filter.
func (f VehicleFilter) Matches(v Vehicle) bool {
	if term := strings.ToLower(strings.TrimSpace(f.SearchTerm)); term != "" {
		if !strings.Contains(strings.ToLower(v.Make), term) &&
			!strings.Contains(strings.ToLower(v.Model), term) &&
			!strings.Contains(strings.ToLower(v.Description), term) {
			return false
		}
	}
	if f.Make != "" && v.Make != f.Make {
		return false
	}
	if len(f.Transmissions) > 0 && !containsTransmission(f.Transmissions, v.Transmission) {
		return false
	}
	if len(f.FuelTypes) > 0 && !containsFuelType(f.FuelTypes, v.FuelType) {
		return false
	}
	if f.PriceMin != nil && v.Price < *f.PriceMin {
		return false
	}
	if f.PriceMax != nil && v.Price > *f.PriceMax {
		return false
	}
	if f.YearMin != nil && v.Year < *f.YearMin {
		return false
	}
	if f.YearMax != nil && v.Year > *f.YearMax {
		return false
	}
	return true
}

// FilterVehicles returns the vehicles matching f, preserving input order.
// Filtering and ordering are separate stages; see SortVehicles.
func FilterVehicles(vehicles []Vehicle, f VehicleFilter) []Vehicle {
	out := make([]Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if f.Matches(v) {
			out = append(out, v)
		}
	}
	return out
}

// SortVehicles orders vehicles in place. Unknown orders fall back to
// newest-first. Ties keep their relative input order.
func SortVehicles(vehicles []Vehicle, order SortOrder) {
	switch order {
	case SortOldest:
		sort.SliceStable(vehicles, func(i, j int) bool { return vehicles[i].Year < vehicles[j].Year })
	case SortPriceAsc:
		sort.SliceStable(vehicles, func(i, j int) bool { return vehicles[i].Price < vehicles[j].Price })
	case SortPriceDesc:
		sort.SliceStable(vehicles, func(i, j int) bool { return vehicles[i].Price > vehicles[j].Price })
	default:
		sort.SliceStable(vehicles, func(i, j int) bool { return vehicles[i].Year > vehicles[j].Year })
	}
}

func containsTransmission(set []Transmission, t Transmission) bool {
	for _, s := range set {
		if s == t {
			return true
		}
	}
	return false
}

func containsFuelType(set []FuelType, ft FuelType) bool {
	for _, s := range set {
		if s == ft {
			return true
		}
	}
	return false
}
