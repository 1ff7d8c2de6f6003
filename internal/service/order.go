package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/DavidTranLe/Dinner-and-a-Movie/internal/database/models"
	"github.com/DavidTranLe/Dinner-and-a-Movie/internal/repository"
)

// OrderUpdate is the whitelist for PUT /api/orders/:id. The placing user,
// the totals and the payment snapshot are immutable after creation.
type OrderUpdate struct {
	PickupTime *time.Time `json:"pickuptime"`
	Area       *string    `json:"area"`
	Location   *string    `json:"location"`
	Status     *string    `json:"status"`
}

type OrderService struct {
	repo repository.OrderRepository
}

func NewOrderService(repo repository.OrderRepository) *OrderService {
	return &OrderService{repo: repo}
}

func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	return s.repo.FindAll(ctx)
}

func (s *OrderService) Get(ctx context.Context, id int64) (models.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Order{}, &NotFoundError{Entity: "Order", ID: id}
		}
		return models.Order{}, err
	}
	return order, nil
}

// ListByUser returns the user's orders; an unknown userid yields an empty
// list, not an error.
func (s *OrderService) ListByUser(ctx context.Context, userid int64) ([]models.Order, error) {
	return s.repo.FindByUserID(ctx, userid)
}

// Create persists a new order, stamping ordertime when the payload omits it.
// The userid is a logical reference and is not checked against users.
func (s *OrderService) Create(ctx context.Context, order models.Order) (models.Order, error) {
	order.ID = 0
	if order.OrderTime.IsZero() {
		order.OrderTime = time.Now()
	}
	if err := s.repo.Save(ctx, &order); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

func (s *OrderService) Update(ctx context.Context, id int64, upd OrderUpdate) (models.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Order{}, &NotFoundError{Entity: "Order", ID: id}
		}
		return models.Order{}, err
	}

	order.PickupTime = upd.PickupTime
	order.Area = upd.Area
	order.Location = upd.Location
	order.Status = upd.Status

	if err := s.repo.Save(ctx, &order); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// Delete removes the order row only. Its items are untouched; they are
// removed solely through the explicit delete-by-order operation on items.
func (s *OrderService) Delete(ctx context.Context, id int64) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return &NotFoundError{Entity: "Order", ID: id}
	}
	return s.repo.DeleteByID(ctx, id)
}
