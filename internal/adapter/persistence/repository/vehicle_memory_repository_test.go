package repository

import (
	"context"
	"testing"

	"carmarket/internal/domain/entities"
)

func TestVehicleMemoryRepository_List(t *testing.T) {
	repo := NewVehicleMemoryRepository(SeedVehicles())

	t.Run("empty filter returns full catalog in seed order", func(t *testing.T) {
		got, err := repo.List(context.Background(), entities.VehicleFilter{}, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 15 {
			t.Fatalf("expected 15 vehicles, got %d", len(got))
		}
	})

	t.Run("filter then sort", func(t *testing.T) {
		max := 25000.0
		got, err := repo.List(context.Background(), entities.VehicleFilter{PriceMax: &max}, entities.SortPriceAsc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) == 0 {
			t.Fatalf("expected matches under %0.f", max)
		}
		for i := range got {
			if got[i].Price > max {
				t.Fatalf("vehicle %s above price cap: %v", got[i].ID, got[i].Price)
			}
			if i > 0 && got[i].Price < got[i-1].Price {
				t.Fatalf("not sorted ascending at index %d", i)
			}
		}
	})

	t.Run("sorting does not mutate seed order", func(t *testing.T) {
		if _, err := repo.List(context.Background(), entities.VehicleFilter{}, entities.SortPriceDesc); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		again, _ := repo.List(context.Background(), entities.VehicleFilter{}, "")
		if again[0].ID != "1" {
			t.Fatalf("seed order mutated, first id %s", again[0].ID)
		}
	})
}

func TestVehicleMemoryRepository_GetByID(t *testing.T) {
	repo := NewVehicleMemoryRepository(SeedVehicles())

	v, err := repo.GetByID(context.Background(), "3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Make != "BMW" || v.Model != "3 Series" {
		t.Fatalf("unexpected vehicle: %+v", v)
	}

	missing, err := repo.GetByID(context.Background(), "999")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if missing.ID != "" {
		t.Fatalf("expected zero value for unknown id, got %+v", missing)
	}
}

func TestVehicleMemoryRepository_Featured(t *testing.T) {
	repo := NewVehicleMemoryRepository(SeedVehicles())

	got, err := repo.Featured(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != featuredCount {
		t.Fatalf("expected %d featured vehicles, got %d", featuredCount, len(got))
	}
	if got[0].ID != "1" {
		t.Fatalf("expected seed order, first id %s", got[0].ID)
	}

	small := NewVehicleMemoryRepository(SeedVehicles()[:3])
	got, _ = small.Featured(context.Background())
	if len(got) != 3 {
		t.Fatalf("expected capped featured list, got %d", len(got))
	}
}

func TestVehicleMemoryRepository_Lookups(t *testing.T) {
	repo := NewVehicleMemoryRepository(SeedVehicles())

	makes, _ := repo.Makes(context.Background())
	if len(makes) != len(vehicleMakes) {
		t.Fatalf("expected %d makes, got %d", len(vehicleMakes), len(makes))
	}

	models, _ := repo.ModelsByMake(context.Background(), "Toyota")
	if len(models) == 0 || models[0] != "Camry" {
		t.Fatalf("unexpected models: %v", models)
	}

	unknown, _ := repo.ModelsByMake(context.Background(), "Ferrari")
	if len(unknown) != 0 {
		t.Fatalf("expected empty model list for unknown make, got %v", unknown)
	}
}

func TestVehicleMemoryRepository_Bounds(t *testing.T) {
	repo := NewVehicleMemoryRepository(SeedVehicles())

	priceMin, priceMax, err := repo.PriceBounds(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if priceMin != 22500 || priceMax != 98500 {
		t.Fatalf("unexpected price bounds: %v %v", priceMin, priceMax)
	}

	yearMin, yearMax, err := repo.YearBounds(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if yearMin != 2019 || yearMax != 2022 {
		t.Fatalf("unexpected year bounds: %d %d", yearMin, yearMax)
	}

	empty := NewVehicleMemoryRepository(nil)
	pm, px, _ := empty.PriceBounds(context.Background())
	if pm != 0 || px != 0 {
		t.Fatalf("expected zero bounds for empty catalog")
	}
}
