package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/DavidTranLe/Dinner-and-a-Movie/internal/database/models"
	"github.com/DavidTranLe/Dinner-and-a-Movie/internal/repository"
)

// MenuItemUpdate is the whitelist for PUT /api/menuitems/:id. Menu items are
// fully replaceable apart from their identity.
type MenuItemUpdate struct {
	Name        string          `json:"name" binding:"required"`
	Description *string         `json:"description"`
	Category    string          `json:"category" binding:"required"`
	Price       decimal.Decimal `json:"price"`
	ImageUrl    *string         `json:"imageurl"`
	Available   bool            `json:"available"`
}

type MenuItemService struct {
	repo  repository.MenuItemRepository
	redis *redis.Client
}

func NewMenuItemService(repo repository.MenuItemRepository, redisClient *redis.Client) *MenuItemService {
	return &MenuItemService{
		repo:  repo,
		redis: redisClient,
	}
}

func (s *MenuItemService) List(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if cacheGet(ctx, s.redis, MENU_CACHE_KEY, &items) {
		return items, nil
	}

	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	cacheSet(ctx, s.redis, MENU_CACHE_KEY, items, CACHE_TTL_MEDIUM)
	return items, nil
}

func (s *MenuItemService) Get(ctx context.Context, id int64) (models.MenuItem, error) {
	var item models.MenuItem
	cacheKey := fmt.Sprintf("%s%d", MENU_CACHE_PREFIX, id)
	if cacheGet(ctx, s.redis, cacheKey, &item) {
		return item, nil
	}

	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.MenuItem{}, &NotFoundError{Entity: "MenuItem", ID: id}
		}
		return models.MenuItem{}, err
	}

	cacheSet(ctx, s.redis, cacheKey, item, CACHE_TTL_SHORT)
	return item, nil
}

func (s *MenuItemService) Create(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	item.ID = 0
	if err := s.repo.Save(ctx, &item); err != nil {
		return models.MenuItem{}, err
	}
	s.invalidateCaches(ctx, item.ID)
	return item, nil
}

func (s *MenuItemService) Update(ctx context.Context, id int64, upd MenuItemUpdate) (models.MenuItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.MenuItem{}, &NotFoundError{Entity: "MenuItem", ID: id}
		}
		return models.MenuItem{}, err
	}

	item.Name = upd.Name
	item.Description = upd.Description
	item.Category = upd.Category
	item.Price = upd.Price
	item.ImageUrl = upd.ImageUrl
	item.Available = upd.Available

	if err := s.repo.Save(ctx, &item); err != nil {
		return models.MenuItem{}, err
	}
	s.invalidateCaches(ctx, item.ID)
	return item, nil
}

func (s *MenuItemService) Delete(ctx context.Context, id int64) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return &NotFoundError{Entity: "MenuItem", ID: id}
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.invalidateCaches(ctx, id)
	return nil
}

func (s *MenuItemService) invalidateCaches(ctx context.Context, ids ...int64) {
	cacheDel(ctx, s.redis, MENU_CACHE_KEY)
	for _, id := range ids {
		cacheDel(ctx, s.redis, fmt.Sprintf("%s%d", MENU_CACHE_PREFIX, id))
	}
}
