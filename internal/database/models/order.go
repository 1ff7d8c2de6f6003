package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order.UserId is a logical reference to users.id; it is indexed but not
// enforced with a foreign key constraint.
// Pan/ExpiryMonth/ExpiryYear are the payment snapshot taken at order time
// and are immutable after creation, as are UserId, OrderTime, Tax and Tip.
type Order struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserId    int64      `gorm:"column:userid;index;not null" json:"userid" binding:"required"`
	OrderTime time.Time  `gorm:"column:ordertime;not null" json:"ordertime"`
	PickupTime *time.Time `gorm:"column:pickuptime" json:"pickuptime"`

	Area     *string `json:"area"`
	Location *string `json:"location"`

	Tax decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"tax" binding:"required"`
	Tip decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"tip" binding:"required"`

	Pan         string `gorm:"not null" json:"pan" binding:"required"`
	ExpiryMonth int    `gorm:"not null" json:"expiryMonth" binding:"required"`
	ExpiryYear  int    `gorm:"not null" json:"expiryYear" binding:"required"`

	Status *string `json:"status"`
}

func (Order) TableName() string { return "orders" }
