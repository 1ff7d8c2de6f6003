package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/DavidTranLe/Dinner-and-a-Movie/internal/database/models"
	"github.com/DavidTranLe/Dinner-and-a-Movie/internal/repository"
)

// FilmUpdate is the whitelist for PUT /api/films/:id. Title is the only
// mutable film column; every other field in the payload is ignored.
type FilmUpdate struct {
	Title string `json:"title" binding:"required"`
}

type FilmService struct {
	repo  repository.FilmRepository
	redis *redis.Client
}

func NewFilmService(repo repository.FilmRepository, redisClient *redis.Client) *FilmService {
	return &FilmService{
		repo:  repo,
		redis: redisClient,
	}
}

func (s *FilmService) List(ctx context.Context) ([]models.Film, error) {
	var films []models.Film
	if cacheGet(ctx, s.redis, FILM_CACHE_KEY, &films) {
		return films, nil
	}

	films, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	cacheSet(ctx, s.redis, FILM_CACHE_KEY, films, CACHE_TTL_MEDIUM)
	return films, nil
}

func (s *FilmService) Get(ctx context.Context, id int64) (models.Film, error) {
	var film models.Film
	cacheKey := fmt.Sprintf("%s%d", FILM_CACHE_PREFIX, id)
	if cacheGet(ctx, s.redis, cacheKey, &film) {
		return film, nil
	}

	film, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Film{}, &NotFoundError{Entity: "Film", ID: id}
		}
		return models.Film{}, err
	}

	cacheSet(ctx, s.redis, cacheKey, film, CACHE_TTL_SHORT)
	return film, nil
}

func (s *FilmService) Create(ctx context.Context, film models.Film) (models.Film, error) {
	film.ID = 0
	if err := s.repo.Save(ctx, &film); err != nil {
		return models.Film{}, err
	}
	s.invalidateCaches(ctx, film.ID)
	return film, nil
}

func (s *FilmService) Update(ctx context.Context, id int64, upd FilmUpdate) (models.Film, error) {
	film, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Film{}, &NotFoundError{Entity: "Film", ID: id}
		}
		return models.Film{}, err
	}

	film.Title = upd.Title

	if err := s.repo.Save(ctx, &film); err != nil {
		return models.Film{}, err
	}
	s.invalidateCaches(ctx, film.ID)
	return film, nil
}

func (s *FilmService) Delete(ctx context.Context, id int64) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return &NotFoundError{Entity: "Film", ID: id}
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.invalidateCaches(ctx, id)
	return nil
}

func (s *FilmService) invalidateCaches(ctx context.Context, ids ...int64) {
	cacheDel(ctx, s.redis, FILM_CACHE_KEY)
	for _, id := range ids {
		cacheDel(ctx, s.redis, fmt.Sprintf("%s%d", FILM_CACHE_PREFIX, id))
	}
}
