package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"imagine_hub/internal/domain/entities"
)

func newTestOrder(id string) entities.Order {
	return entities.NewOrder(id, entities.Contact{Phone: "(83) 99391-3523"}, time.Now().UTC())
}

func TestMemoryOrderRepository_CreateAndGet(t *testing.T) {
	repo := NewMemoryOrderRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, newTestOrder("o-1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != "o-1" {
		t.Fatalf("unexpected created order: %+v", created)
	}

	got, err := repo.GetByID(ctx, "o-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "o-1" || len(got.Extras) != 2 {
		t.Fatalf("unexpected stored order: %+v", got)
	}

	if repo.Len() != 1 {
		t.Fatalf("expected 1 session, got %d", repo.Len())
	}
}

func TestMemoryOrderRepository_DuplicateCreate(t *testing.T) {
	repo := NewMemoryOrderRepository()
	ctx := context.Background()

	if _, err := repo.Create(ctx, newTestOrder("o-1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.Create(ctx, newTestOrder("o-1")); !errors.Is(err, ErrDuplicateOrderID) {
		t.Fatalf("expected ErrDuplicateOrderID, got %v", err)
	}
}

func TestMemoryOrderRepository_MissingOrder(t *testing.T) {
	repo := NewMemoryOrderRepository()

	got, err := repo.GetByID(context.Background(), "missing")
	if err != nil {
		t.Fatalf("expected nil error for missing order, got %v", err)
	}
	if got.ID != "" {
		t.Fatalf("expected zero order, got %+v", got)
	}
}

func TestMemoryOrderRepository_SaveOverwrites(t *testing.T) {
	repo := NewMemoryOrderRepository()
	ctx := context.Background()

	o := newTestOrder("o-1")
	if _, err := repo.Create(ctx, o); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	o.ClientName = "Maria"
	if _, err := repo.Save(ctx, o); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := repo.GetByID(ctx, "o-1")
	if got.ClientName != "Maria" {
		t.Fatalf("save did not overwrite: %+v", got)
	}
}

func TestMemoryOrderRepository_Delete(t *testing.T) {
	repo := NewMemoryOrderRepository()
	ctx := context.Background()

	if _, err := repo.Create(ctx, newTestOrder("o-1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Delete(ctx, "o-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.Len() != 0 {
		t.Fatalf("expected empty store, got %d", repo.Len())
	}

	// Deleting an absent id is not an error.
	if err := repo.Delete(ctx, "o-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMemoryOrderRepository_Isolation(t *testing.T) {
	repo := NewMemoryOrderRepository()
	ctx := context.Background()

	o := newTestOrder("o-1")
	if _, err := repo.Create(ctx, o); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Mutating the caller's copy must not leak into the store.
	o.Extras[0].Description = "changed"

	got, _ := repo.GetByID(ctx, "o-1")
	if got.Extras[0].Description == "changed" {
		t.Fatalf("store shares extras slice with caller")
	}

	// Mutating a read result must not leak either.
	got.Extras[0].Description = "changed again"
	again, _ := repo.GetByID(ctx, "o-1")
	if again.Extras[0].Description == "changed again" {
		t.Fatalf("reads share extras slice")
	}
}
