package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Dish struct {
	ID       string `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name     string `gorm:"type:varchar(255);not null" json:"name"`
	Price    string `gorm:"type:decimal(10,2);not null" json:"price"`
	Category string `gorm:"type:varchar(20);not null;default:'primi'" json:"category"`
}

// BeforeCreate -> id is assigned by the storage layer, never by the caller
func (d *Dish) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
