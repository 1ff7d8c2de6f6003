package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/DavidTranLe/Dinner-and-a-Movie/internal/database/models"
	"github.com/DavidTranLe/Dinner-and-a-Movie/internal/repository"
)

func newMenuItemService(t *testing.T) *MenuItemService {
	t.Helper()
	return NewMenuItemService(repository.NewMenuItemRepository(newTestDB(t)), newTestRedis(t))
}

func TestMenuItemCreateDefaults(t *testing.T) {
	svc := newMenuItemService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, models.MenuItem{
		Name:     "Popcorn",
		Category: "snacks",
		Price:    decimal.RequireFromString("6.50"),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected a store-assigned id")
	}
	if created.Available {
		t.Error("available should default to false")
	}
}

func TestMenuItemUpdateReplacesAllFields(t *testing.T) {
	svc := newMenuItemService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, models.MenuItem{
		Name:        "Nachos",
		Description: strPtr("With cheese"),
		Category:    "snacks",
		Price:       decimal.RequireFromString("8.00"),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(ctx, created.ID, MenuItemUpdate{
		Name:      "Nachos Grande",
		Category:  "snacks",
		Price:     decimal.RequireFromString("9.25"),
		Available: true,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "Nachos Grande" {
		t.Errorf("Name = %q", got.Name)
	}
	if !got.Price.Equal(decimal.RequireFromString("9.25")) {
		t.Errorf("Price = %s, want 9.25", got.Price)
	}
	if !got.Available {
		t.Error("Available should be true after update")
	}
	if got.Description != nil {
		t.Errorf("Description should have been cleared, got %v", *got.Description)
	}
	if updated.ID != created.ID {
		t.Errorf("ID changed: %d != %d", updated.ID, created.ID)
	}
}

func TestMenuItemListInvalidatedOnUpdate(t *testing.T) {
	svc := newMenuItemService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, models.MenuItem{
		Name:     "Soda",
		Category: "drinks",
		Price:    decimal.RequireFromString("3.00"),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Prime the list cache, then mutate.
	if _, err := svc.List(ctx); err != nil {
		t.Fatalf("List: %v", err)
	}
	if _, err := svc.Update(ctx, created.ID, MenuItemUpdate{
		Name:      "Soda",
		Category:  "drinks",
		Price:     decimal.RequireFromString("3.50"),
		Available: true,
	}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	items, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 1 || !items[0].Price.Equal(decimal.RequireFromString("3.50")) {
		t.Errorf("stale list after update: %+v", items)
	}
}

func TestMenuItemDeleteNotFound(t *testing.T) {
	svc := newMenuItemService(t)

	if err := svc.Delete(context.Background(), 9); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
