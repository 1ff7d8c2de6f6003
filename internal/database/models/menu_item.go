package models

import "github.com/shopspring/decimal"

type MenuItem struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"not null" json:"name" binding:"required"`
	Description *string         `gorm:"type:varchar(1024)" json:"description"`
	Category    string          `gorm:"not null" json:"category" binding:"required"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price" binding:"required"`
	ImageUrl    *string         `gorm:"column:imageurl" json:"imageurl"`
	Available   bool            `gorm:"not null;default:false" json:"available"`
}

func (MenuItem) TableName() string { return "menu_item" }
