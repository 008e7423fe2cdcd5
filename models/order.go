package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	OrderStatusActive    = "active"
	OrderStatusCompleted = "completed"

	PaymentMethodCash = "cash"
	PaymentMethodPos  = "pos"
)

type Order struct {
	ID           string `gorm:"type:varchar(36);primaryKey" json:"id"`
	TableNumber  string `gorm:"type:varchar(50);not null" json:"tableNumber"`
	CustomerName string `gorm:"type:varchar(255);not null" json:"customerName"`
	// Number of people at the table
	Covers        int       `gorm:"not null;default:1" json:"covers"`
	Total         string    `gorm:"type:decimal(10,2);not null" json:"total"`
	PaymentMethod string    `gorm:"type:varchar(10);not null" json:"paymentMethod"`
	Status        string    `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt     time.Time `gorm:"not null" json:"createdAt"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
