package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/DavidTranLe/Dinner-and-a-Movie/internal/database/models"
)

type MenuItemRepository interface {
	FindAll(ctx context.Context) ([]models.MenuItem, error)
	FindByID(ctx context.Context, id int64) (models.MenuItem, error)
	Save(ctx context.Context, item *models.MenuItem) error
	DeleteByID(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

type menuItemRepository struct {
	db *gorm.DB
}

func NewMenuItemRepository(db *gorm.DB) MenuItemRepository {
	return &menuItemRepository{db: db}
}

func (r *menuItemRepository) FindAll(ctx context.Context) ([]models.MenuItem, error) {
	items := []models.MenuItem{}
	if err := r.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *menuItemRepository) FindByID(ctx context.Context, id int64) (models.MenuItem, error) {
	var item models.MenuItem
	err := r.db.WithContext(ctx).First(&item, id).Error
	return item, err
}

func (r *menuItemRepository) Save(ctx context.Context, item *models.MenuItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *menuItemRepository) DeleteByID(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.MenuItem{}, id).Error
}

func (r *menuItemRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.MenuItem{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
