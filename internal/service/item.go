package service

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/DavidTranLe/Dinner-and-a-Movie/internal/database/models"
	"github.com/DavidTranLe/Dinner-and-a-Movie/internal/repository"
)

// ItemUpdate is the whitelist for PUT /api/items/:id. The orderid and itemid
// references are fixed at creation.
type ItemUpdate struct {
	Price     decimal.Decimal `json:"price"`
	Notes     *string         `json:"notes"`
	Firstname *string         `json:"firstname"`
}

type ItemService struct {
	repo repository.ItemRepository
}

func NewItemService(repo repository.ItemRepository) *ItemService {
	return &ItemService{repo: repo}
}

func (s *ItemService) List(ctx context.Context) ([]models.Item, error) {
	return s.repo.FindAll(ctx)
}

func (s *ItemService) Get(ctx context.Context, id int64) (models.Item, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Item{}, &NotFoundError{Entity: "Item", ID: id}
		}
		return models.Item{}, err
	}
	return item, nil
}

// ListByOrder returns the order's items; an unknown orderid yields an empty
// list, not an error.
func (s *ItemService) ListByOrder(ctx context.Context, orderid int64) ([]models.Item, error) {
	return s.repo.FindByOrderID(ctx, orderid)
}

// BulkCreate persists the batch as new rows with every item's orderid forced
// to the path parameter, overriding whatever the payload carried. The orderid
// is not checked against orders.
func (s *ItemService) BulkCreate(ctx context.Context, orderid int64, items []models.Item) ([]models.Item, error) {
	for i := range items {
		items[i].ID = 0
		items[i].OrderId = orderid
	}
	return s.repo.SaveAll(ctx, items)
}

func (s *ItemService) Update(ctx context.Context, id int64, upd ItemUpdate) (models.Item, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Item{}, &NotFoundError{Entity: "Item", ID: id}
		}
		return models.Item{}, err
	}

	item.Price = upd.Price
	item.Notes = upd.Notes
	item.Firstname = upd.Firstname

	if err := s.repo.Save(ctx, &item); err != nil {
		return models.Item{}, err
	}
	return item, nil
}

func (s *ItemService) Delete(ctx context.Context, id int64) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return &NotFoundError{Entity: "Item", ID: id}
	}
	return s.repo.DeleteByID(ctx, id)
}

// DeleteByOrder removes all of an order's items atomically. Deleting for an
// order with no items succeeds, which also makes the call idempotent.
func (s *ItemService) DeleteByOrder(ctx context.Context, orderid int64) error {
	return s.repo.DeleteByOrderID(ctx, orderid)
}
