package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/DavidTranLe/Dinner-and-a-Movie/internal/database/models"
	"github.com/DavidTranLe/Dinner-and-a-Movie/internal/repository"
)

// UserUpdate is the whitelist for PUT /api/users/:id. Users are the one
// entity whose whole field set is replaceable; an omitted optional field
// clears the stored value.
type UserUpdate struct {
	Username    string  `json:"username" binding:"required"`
	Password    string  `json:"password" binding:"required"`
	First       string  `json:"first" binding:"required"`
	Last        string  `json:"last" binding:"required"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	ImageUrl    *string `json:"imageUrl"`
	Pan         *string `json:"pan"`
	ExpiryMonth *int    `json:"expiryMonth"`
	ExpiryYear  *int    `json:"expiryYear"`
	Roles       string  `json:"roles" binding:"required"`
}

type UserService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *UserService) Get(ctx context.Context, id int64) (models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, &NotFoundError{Entity: "User", ID: id}
		}
		return models.User{}, err
	}
	return user, nil
}

// Create persists a new user. Username uniqueness is enforced only by the
// store's unique index; a duplicate surfaces as a store error, not a
// pre-checked domain error.
func (s *UserService) Create(ctx context.Context, user models.User) (models.User, error) {
	user.ID = 0
	if err := s.repo.Save(ctx, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id int64, upd UserUpdate) (models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, &NotFoundError{Entity: "User", ID: id}
		}
		return models.User{}, err
	}

	user.Username = upd.Username
	user.Password = upd.Password
	user.First = upd.First
	user.Last = upd.Last
	user.Phone = upd.Phone
	user.Email = upd.Email
	user.ImageUrl = upd.ImageUrl
	user.Pan = upd.Pan
	user.ExpiryMonth = upd.ExpiryMonth
	user.ExpiryYear = upd.ExpiryYear
	user.Roles = upd.Roles

	if err := s.repo.Save(ctx, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return &NotFoundError{Entity: "User", ID: id}
	}
	return s.repo.DeleteByID(ctx, id)
}
