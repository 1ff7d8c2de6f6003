package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/DavidTranLe/Dinner-and-a-Movie/internal/database/models"
	"github.com/DavidTranLe/Dinner-and-a-Movie/internal/repository"
)

func newItemService(t *testing.T) *ItemService {
	t.Helper()
	return NewItemService(repository.NewItemRepository(newTestDB(t)))
}

func TestBulkCreateForcesOrderID(t *testing.T) {
	svc := newItemService(t)
	ctx := context.Background()

	created, err := svc.BulkCreate(ctx, 5, []models.Item{
		{OrderId: 1, ItemId: 10, Price: decimal.RequireFromString("6.50")},
		{OrderId: 2, ItemId: 11, Price: decimal.RequireFromString("3.00")},
	})
	if err != nil {
		t.Fatalf("BulkCreate: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("len = %d, want 2", len(created))
	}
	for _, item := range created {
		if item.OrderId != 5 {
			t.Errorf("orderid = %d, want 5 (payload value must be overridden)", item.OrderId)
		}
		if item.ID == 0 {
			t.Error("expected a store-assigned id")
		}
	}

	items, err := svc.ListByOrder(ctx, 5)
	if err != nil {
		t.Fatalf("ListByOrder: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("len = %d, want 2", len(items))
	}
}

func TestDeleteByOrderIsAtomicAndIdempotent(t *testing.T) {
	svc := newItemService(t)
	ctx := context.Background()

	if _, err := svc.BulkCreate(ctx, 3, []models.Item{
		{ItemId: 1, Price: decimal.RequireFromString("1.00")},
		{ItemId: 2, Price: decimal.RequireFromString("2.00")},
	}); err != nil {
		t.Fatalf("BulkCreate: %v", err)
	}
	if _, err := svc.BulkCreate(ctx, 4, []models.Item{
		{ItemId: 3, Price: decimal.RequireFromString("3.00")},
	}); err != nil {
		t.Fatalf("BulkCreate: %v", err)
	}

	if err := svc.DeleteByOrder(ctx, 3); err != nil {
		t.Fatalf("DeleteByOrder: %v", err)
	}
	items, err := svc.ListByOrder(ctx, 3)
	if err != nil {
		t.Fatalf("ListByOrder: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("order 3 should have no items, got %d", len(items))
	}

	// A second delete, and a delete for an order that never existed, are
	// successful no-ops.
	if err := svc.DeleteByOrder(ctx, 3); err != nil {
		t.Fatalf("second DeleteByOrder: %v", err)
	}
	if err := svc.DeleteByOrder(ctx, 999); err != nil {
		t.Fatalf("DeleteByOrder on unknown order: %v", err)
	}

	// Other orders' items are untouched.
	items, err = svc.ListByOrder(ctx, 4)
	if err != nil {
		t.Fatalf("ListByOrder: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("order 4 should still have 1 item, got %d", len(items))
	}
}

func TestItemUpdateWhitelist(t *testing.T) {
	svc := newItemService(t)
	ctx := context.Background()

	created, err := svc.BulkCreate(ctx, 8, []models.Item{
		{ItemId: 21, Price: decimal.RequireFromString("4.00"), Notes: strPtr("no salt")},
	})
	if err != nil {
		t.Fatalf("BulkCreate: %v", err)
	}

	got, err := svc.Update(ctx, created[0].ID, ItemUpdate{
		Price:     decimal.RequireFromString("4.50"),
		Firstname: strPtr("Ada"),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !got.Price.Equal(decimal.RequireFromString("4.50")) {
		t.Errorf("Price = %s, want 4.50", got.Price)
	}
	if got.Firstname == nil || *got.Firstname != "Ada" {
		t.Errorf("Firstname = %v", got.Firstname)
	}
	if got.Notes != nil {
		t.Errorf("Notes should have been cleared, got %v", *got.Notes)
	}
	if got.OrderId != 8 || got.ItemId != 21 {
		t.Errorf("references changed: orderid=%d itemid=%d", got.OrderId, got.ItemId)
	}
}

func TestItemNotFound(t *testing.T) {
	svc := newItemService(t)
	ctx := context.Background()

	if _, err := svc.Get(ctx, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get: expected ErrNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Delete: expected ErrNotFound, got %v", err)
	}
}

// Full checkout flow: a user places an order, two items are attached to it,
// and the explicit delete-by-order clears them. Deleting the order itself
// never touches its items.
func TestOrderItemLifecycle(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	users := NewUserService(repository.NewUserRepository(db))
	orders := NewOrderService(repository.NewOrderRepository(db))
	items := NewItemService(repository.NewItemRepository(db))

	admin, err := users.Create(ctx, models.User{
		Username: "admin",
		Password: "pw",
		First:    "Ada",
		Last:     "Lovelace",
		Roles:    "ROLE_ADMIN",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	order, err := orders.Create(ctx, testOrder(admin.ID))
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	if _, err := items.BulkCreate(ctx, order.ID, []models.Item{
		{ItemId: 1, Price: decimal.RequireFromString("6.50")},
		{ItemId: 2, Price: decimal.RequireFromString("12.00")},
	}); err != nil {
		t.Fatalf("bulk create items: %v", err)
	}

	got, err := items.ListByOrder(ctx, order.ID)
	if err != nil {
		t.Fatalf("ListByOrder: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Price.Equal(got[1].Price) {
		t.Error("expected distinct prices")
	}

	// Deleting the order leaves its items in place.
	if err := orders.Delete(ctx, order.ID); err != nil {
		t.Fatalf("delete order: %v", err)
	}
	got, err = items.ListByOrder(ctx, order.ID)
	if err != nil {
		t.Fatalf("ListByOrder: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("order deletion must not cascade to items, got %d items", len(got))
	}

	if err := items.DeleteByOrder(ctx, order.ID); err != nil {
		t.Fatalf("DeleteByOrder: %v", err)
	}
	got, err = items.ListByOrder(ctx, order.ID)
	if err != nil {
		t.Fatalf("ListByOrder: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("items remain after delete-by-order: %d", len(got))
	}
}
