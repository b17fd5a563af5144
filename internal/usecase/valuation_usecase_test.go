package usecase

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"carmarket/internal/adapter/persistence/repository"
	"carmarket/internal/domain/entities"
	"carmarket/internal/domain/wizard"
)

func newValuationUseCaseForTest() (*ValuationUseCase, *repository.ValuationMemoryRepository) {
	valuations := repository.NewValuationMemoryRepository()
	uc := NewValuationUseCase(
		repository.NewDraftMemoryRepository(),
		valuations,
		NewEstimator(rand.NewSource(1)),
		0,
	)
	return uc, valuations
}

func fillValuationStep(t *testing.T, uc *ValuationUseCase, id string, fields map[string]string) {
	t.Helper()
	if _, err := uc.SetFields(context.Background(), id, fields, nil); err != nil {
		t.Fatalf("set fields: %v", err)
	}
}

func walkToContact(t *testing.T, uc *ValuationUseCase) wizard.Draft {
	t.Helper()
	d, err := uc.StartDraft(context.Background())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	fillValuationStep(t, uc, d.ID, map[string]string{"make": "Toyota", "model": "Camry", "year": "2022"})
	if _, err := uc.Advance(context.Background(), d.ID); err != nil {
		t.Fatalf("advance: %v", err)
	}
	fillValuationStep(t, uc, d.ID, map[string]string{"mileage": "15000", "condition": "good"})
	got, err := uc.Advance(context.Background(), d.ID)
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	return got
}

func TestValuationUseCase_StartDraft(t *testing.T) {
	uc, _ := newValuationUseCaseForTest()

	d, err := uc.StartDraft(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Flow != "valuation" || len(d.Machine.Steps) != 4 {
		t.Fatalf("unexpected draft: %+v", d)
	}
}

func TestValuationUseCase_ResultStepRequiresSubmit(t *testing.T) {
	uc, _ := newValuationUseCaseForTest()
	d := walkToContact(t, uc)

	fillValuationStep(t, uc, d.ID, map[string]string{"contactName": "Ada", "contactEmail": "ada@example.com", "contactPhone": "555-0100"})

	_, err := uc.Advance(context.Background(), d.ID)
	if !errors.Is(err, ErrSubmitRequired) {
		t.Fatalf("expected ErrSubmitRequired, got %v", err)
	}
}

func TestValuationUseCase_Submit(t *testing.T) {
	t.Run("requires contact step", func(t *testing.T) {
		uc, _ := newValuationUseCaseForTest()
		d, _ := uc.StartDraft(context.Background())

		_, _, err := uc.Submit(context.Background(), d.ID)
		if !errors.Is(err, ErrDraftNotAtReview) {
			t.Fatalf("expected ErrDraftNotAtReview, got %v", err)
		}
	})

	t.Run("missing contact details", func(t *testing.T) {
		uc, _ := newValuationUseCaseForTest()
		d := walkToContact(t, uc)

		_, _, err := uc.Submit(context.Background(), d.ID)
		var vErr *wizard.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("success lands on terminal result step", func(t *testing.T) {
		uc, valuations := newValuationUseCaseForTest()
		d := walkToContact(t, uc)
		fillValuationStep(t, uc, d.ID, map[string]string{"contactName": "Ada", "contactEmail": "ada@example.com", "contactPhone": "555-0100"})

		got, valuation, err := uc.Submit(context.Background(), d.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Machine.Current != 4 || !got.Machine.Done {
			t.Fatalf("expected terminal completed draft, got %+v", got.Machine)
		}
		if got.Machine.Field("valuationId") != valuation.ID {
			t.Fatalf("draft should reference the valuation")
		}
		if valuation.EstimatedValue <= 0 {
			t.Fatalf("expected positive estimate, got %d", valuation.EstimatedValue)
		}
		if valuation.Condition != entities.ConditionGood || valuation.Year != 2022 {
			t.Fatalf("unexpected valuation: %+v", valuation)
		}

		stored, err := valuations.GetByID(context.Background(), valuation.ID)
		if err != nil || stored.ID != valuation.ID {
			t.Fatalf("expected persisted valuation, got %+v err=%v", stored, err)
		}

		// The completed draft rejects further submits.
		if _, _, err := uc.Submit(context.Background(), d.ID); !errors.Is(err, ErrDraftCompleted) {
			t.Fatalf("expected ErrDraftCompleted, got %v", err)
		}
	})

	t.Run("cancelled context aborts before writing", func(t *testing.T) {
		valuations := repository.NewValuationMemoryRepository()
		drafts := repository.NewDraftMemoryRepository()
		uc := NewValuationUseCase(drafts, valuations, NewEstimator(rand.NewSource(1)), 50)

		d, _ := uc.StartDraft(context.Background())
		fillValuationStep(t, uc, d.ID, map[string]string{"make": "Toyota", "model": "Camry", "year": "2022"})
		uc.Advance(context.Background(), d.ID)
		fillValuationStep(t, uc, d.ID, map[string]string{"mileage": "15000", "condition": "good"})
		uc.Advance(context.Background(), d.ID)
		fillValuationStep(t, uc, d.ID, map[string]string{"contactName": "Ada", "contactEmail": "ada@example.com", "contactPhone": "555-0100"})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, _, err := uc.Submit(ctx, d.ID)
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}

		got, _ := uc.GetDraft(context.Background(), d.ID)
		if got.Machine.Done || got.Machine.Current != 3 {
			t.Fatalf("draft must be untouched after cancellation: %+v", got.Machine)
		}
	})
}

func TestEstimator(t *testing.T) {
	t.Run("same seed is reproducible", func(t *testing.T) {
		a := NewEstimator(rand.NewSource(7)).Estimate(2022, 15000, entities.ConditionGood)
		b := NewEstimator(rand.NewSource(7)).Estimate(2022, 15000, entities.ConditionGood)
		if a != b {
			t.Fatalf("expected identical estimates, got %d and %d", a, b)
		}
	})

	t.Run("condition scales the estimate", func(t *testing.T) {
		excellent := NewEstimator(rand.NewSource(7)).Estimate(2022, 15000, entities.ConditionExcellent)
		good := NewEstimator(rand.NewSource(7)).Estimate(2022, 15000, entities.ConditionGood)
		poor := NewEstimator(rand.NewSource(7)).Estimate(2022, 15000, entities.ConditionPoor)
		if !(excellent > good && good > poor) {
			t.Fatalf("expected excellent > good > poor, got %d %d %d", excellent, good, poor)
		}
	})

	t.Run("unknown condition prices as poor", func(t *testing.T) {
		unknown := NewEstimator(rand.NewSource(7)).Estimate(2022, 15000, "pristine")
		poor := NewEstimator(rand.NewSource(7)).Estimate(2022, 15000, entities.ConditionPoor)
		if unknown != poor {
			t.Fatalf("expected unknown to price as poor, got %d vs %d", unknown, poor)
		}
	})

	t.Run("absurd mileage floors at zero", func(t *testing.T) {
		got := NewEstimator(rand.NewSource(7)).Estimate(2010, 10_000_000, entities.ConditionPoor)
		if got != 0 {
			t.Fatalf("expected floor at 0, got %d", got)
		}
	})
}
