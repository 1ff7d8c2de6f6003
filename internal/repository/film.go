package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/DavidTranLe/Dinner-and-a-Movie/internal/database/models"
)

type FilmRepository interface {
	FindAll(ctx context.Context) ([]models.Film, error)
	FindByID(ctx context.Context, id int64) (models.Film, error)
	Save(ctx context.Context, film *models.Film) error
	DeleteByID(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

type filmRepository struct {
	db *gorm.DB
}

func NewFilmRepository(db *gorm.DB) FilmRepository {
	return &filmRepository{db: db}
}

func (r *filmRepository) FindAll(ctx context.Context) ([]models.Film, error) {
	films := []models.Film{}
	if err := r.db.WithContext(ctx).Find(&films).Error; err != nil {
		return nil, err
	}
	return films, nil
}

func (r *filmRepository) FindByID(ctx context.Context, id int64) (models.Film, error) {
	var film models.Film
	err := r.db.WithContext(ctx).First(&film, id).Error
	return film, err
}

func (r *filmRepository) Save(ctx context.Context, film *models.Film) error {
	return r.db.WithContext(ctx).Save(film).Error
}

func (r *filmRepository) DeleteByID(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.Film{}, id).Error
}

func (r *filmRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Film{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
