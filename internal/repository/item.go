package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/DavidTranLe/Dinner-and-a-Movie/internal/database/models"
)

type ItemRepository interface {
	FindAll(ctx context.Context) ([]models.Item, error)
	FindByID(ctx context.Context, id int64) (models.Item, error)
	FindByOrderID(ctx context.Context, orderid int64) ([]models.Item, error)
	Save(ctx context.Context, item *models.Item) error
	SaveAll(ctx context.Context, items []models.Item) ([]models.Item, error)
	DeleteByID(ctx context.Context, id int64) error
	DeleteByOrderID(ctx context.Context, orderid int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

type itemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) FindAll(ctx context.Context) ([]models.Item, error) {
	items := []models.Item{}
	if err := r.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) FindByID(ctx context.Context, id int64) (models.Item, error) {
	var item models.Item
	err := r.db.WithContext(ctx).First(&item, id).Error
	return item, err
}

func (r *itemRepository) FindByOrderID(ctx context.Context, orderid int64) ([]models.Item, error) {
	items := []models.Item{}
	err := r.db.WithContext(ctx).Where("orderid = ?", orderid).Find(&items).Error
	return items, err
}

func (r *itemRepository) Save(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// SaveAll inserts the batch in a single statement; identities are assigned by
// the store and written back into the returned slice.
func (r *itemRepository) SaveAll(ctx context.Context, items []models.Item) ([]models.Item, error) {
	if len(items) == 0 {
		return items, nil
	}
	if err := r.db.WithContext(ctx).Create(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) DeleteByID(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.Item{}, id).Error
}

// DeleteByOrderID removes every item of the order inside one transaction, so
// a concurrent reader never observes a partially deleted set. Zero matching
// rows is a successful no-op.
func (r *itemRepository) DeleteByOrderID(ctx context.Context, orderid int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Where("orderid = ?", orderid).Delete(&models.Item{}).Error
	})
}

func (r *itemRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Item{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
