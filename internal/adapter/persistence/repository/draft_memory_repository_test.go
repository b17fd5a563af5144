package repository

import (
	"context"
	"testing"
	"time"

	"carmarket/internal/domain/wizard"
)

func testDraft(id string) wizard.Draft {
	m := wizard.New([]wizard.Step{
		{Number: 1, Title: "Basics", Required: []string{"make"}},
		{Number: 2, Title: "Review"},
	})
	m.SetField("make", "Toyota")
	m.AppendList("photos", "https://example.com/1.jpg")
	return wizard.Draft{
		ID:        id,
		Flow:      "sell",
		Machine:   m,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
}

func TestDraftMemoryRepository_SaveAndGet(t *testing.T) {
	repo := NewDraftMemoryRepository()
	ctx := context.Background()

	if err := repo.Save(ctx, testDraft("d-1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.GetByID(ctx, "d-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "d-1" || got.Flow != "sell" {
		t.Fatalf("unexpected draft: %+v", got)
	}
	if got.Machine.Field("make") != "Toyota" {
		t.Fatalf("expected field to survive round trip, got %q", got.Machine.Field("make"))
	}
	if len(got.Machine.List("photos")) != 1 {
		t.Fatalf("expected one photo, got %d", len(got.Machine.List("photos")))
	}
}

func TestDraftMemoryRepository_GetUnknownReturnsZero(t *testing.T) {
	repo := NewDraftMemoryRepository()

	got, err := repo.GetByID(context.Background(), "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "" || got.Machine != nil {
		t.Fatalf("expected zero draft, got %+v", got)
	}
}

func TestDraftMemoryRepository_CopiesIsolateCallers(t *testing.T) {
	repo := NewDraftMemoryRepository()
	ctx := context.Background()

	d := testDraft("d-1")
	if err := repo.Save(ctx, d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Mutating the draft the caller handed to Save must not leak into the
	// stored copy.
	d.Machine.SetField("make", "Honda")
	d.Machine.Current = 2

	stored, err := repo.GetByID(ctx, "d-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Machine.Field("make") != "Toyota" {
		t.Fatalf("save copy leaked: got %q", stored.Machine.Field("make"))
	}
	if stored.Machine.Current != 1 {
		t.Fatalf("save copy leaked current step: got %d", stored.Machine.Current)
	}

	// Likewise mutating a read result must not change the store.
	stored.Machine.AppendList("photos", "https://example.com/2.jpg")
	stored.Machine.Done = true

	again, err := repo.GetByID(ctx, "d-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(again.Machine.List("photos")) != 1 {
		t.Fatalf("read copy leaked: got %d photos", len(again.Machine.List("photos")))
	}
	if again.Machine.Done {
		t.Fatalf("read copy leaked done flag")
	}
}

func TestDraftMemoryRepository_Delete(t *testing.T) {
	repo := NewDraftMemoryRepository()
	ctx := context.Background()

	if err := repo.Save(ctx, testDraft("d-1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Delete(ctx, "d-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.GetByID(ctx, "d-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "" {
		t.Fatalf("expected draft gone, got %+v", got)
	}

	// Deleting twice is a no-op.
	if err := repo.Delete(ctx, "d-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
