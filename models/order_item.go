package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderItem belongs to exactly one order. DishID is kept without a
// foreign-key constraint: a dish can be deleted from the menu while
// historical items still reference it, so the reference may dangle.
// Price is a snapshot of the dish price at order time and is never
// re-derived from the menu.
type OrderItem struct {
	ID       string `gorm:"type:varchar(36);primaryKey" json:"id"`
	OrderID  string `gorm:"type:varchar(36);not null;index" json:"orderId"`
	DishID   string `gorm:"type:varchar(36);not null;index" json:"dishId"`
	Quantity int    `gorm:"not null" json:"quantity"`
	Price    string `gorm:"type:decimal(10,2);not null" json:"price"`
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == "" {
		oi.ID = uuid.NewString()
	}
	return nil
}

// OrderItemWithDish adds the current dish record to an item for API
// responses. Dish is nil when the dish was deleted after the order was
// taken; consumers treat that as displayable-but-incomplete.
type OrderItemWithDish struct {
	OrderItem
	Dish *Dish `json:"dish"`
}

// OrderWithItems is the denormalized view returned by the API: an order
// with its items eagerly joined.
type OrderWithItems struct {
	Order
	Items []OrderItemWithDish `json:"items"`
}
