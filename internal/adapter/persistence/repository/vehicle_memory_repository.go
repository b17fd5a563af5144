package repository

import (
	"context"

	"carmarket/internal/domain/entities"
	"carmarket/internal/usecase/interfaces"
)

// VehicleMemoryRepository serves the immutable catalog from memory.
//
// The backing slice is seeded once and never mutated, so reads need no
// locking; List copies before sorting to keep the canonical order intact.
type VehicleMemoryRepository struct {
	vehicles []entities.Vehicle
	byID     map[string]entities.Vehicle
}

var _ interfaces.IVehicleRepository = (*VehicleMemoryRepository)(nil)

func NewVehicleMemoryRepository(seed []entities.Vehicle) *VehicleMemoryRepository {
	byID := make(map[string]entities.Vehicle, len(seed))
	for _, v := range seed {
		byID[v.ID] = v
	}
	return &VehicleMemoryRepository{vehicles: seed, byID: byID}
}

func (r *VehicleMemoryRepository) List(ctx context.Context, filter entities.VehicleFilter, order entities.SortOrder) ([]entities.Vehicle, error) {
	out := entities.FilterVehicles(r.vehicles, filter)
	entities.SortVehicles(out, order)
	return out, nil
}

func (r *VehicleMemoryRepository) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	return r.byID[id], nil
}

func (r *VehicleMemoryRepository) Featured(ctx context.Context) ([]entities.Vehicle, error) {
	n := featuredCount
	if n > len(r.vehicles) {
		n = len(r.vehicles)
	}
	return append([]entities.Vehicle(nil), r.vehicles[:n]...), nil
}

func (r *VehicleMemoryRepository) Makes(ctx context.Context) ([]string, error) {
	return append([]string(nil), vehicleMakes...), nil
}

func (r *VehicleMemoryRepository) ModelsByMake(ctx context.Context, make string) ([]string, error) {
	return append([]string(nil), vehicleModels[make]...), nil
}

func (r *VehicleMemoryRepository) PriceBounds(ctx context.Context) (float64, float64, error) {
	if len(r.vehicles) == 0 {
		return 0, 0, nil
	}
	min, max := r.vehicles[0].Price, r.vehicles[0].Price
	for _, v := range r.vehicles[1:] {
		if v.Price < min {
			min = v.Price
		}
		if v.Price > max {
			max = v.Price
		}
	}
	return min, max, nil
}

func (r *VehicleMemoryRepository) YearBounds(ctx context.Context) (int, int, error) {
	if len(r.vehicles) == 0 {
		return 0, 0, nil
	}
	min, max := r.vehicles[0].Year, r.vehicles[0].Year
	for _, v := range r.vehicles[1:] {
		if v.Year < min {
			min = v.Year
		}
		if v.Year > max {
			max = v.Year
		}
	}
	return min, max, nil
}
