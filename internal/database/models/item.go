package models

import "github.com/shopspring/decimal"

// Item.OrderId references orders.id and Item.ItemId references menu_item.id;
// both are logical references without foreign key constraints. Price is the
// per-item price snapshot at order time, independent of the current
// menu_item.price.
type Item struct {
	ID      int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderId int64 `gorm:"column:orderid;index;not null" json:"orderid"`
	ItemId  int64 `gorm:"column:itemid;not null" json:"itemid" binding:"required"`

	Price     decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price" binding:"required"`
	Notes     *string         `json:"notes"`
	Firstname *string         `json:"firstname"`
}

func (Item) TableName() string { return "item" }
