package models

type User struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username" binding:"required"`
	Password string `gorm:"not null" json:"password" binding:"required"`
	First    string `gorm:"column:first;not null" json:"first" binding:"required"`
	Last     string `gorm:"column:last;not null" json:"last" binding:"required"`

	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	ImageUrl    *string `gorm:"column:image_url" json:"imageUrl"`
	Pan         *string `json:"pan"`
	ExpiryMonth *int    `json:"expiryMonth"`
	ExpiryYear  *int    `json:"expiryYear"`

	Roles string `gorm:"not null" json:"roles" binding:"required"`
}

func (User) TableName() string { return "users" }
