package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product represents a catalog item.
// Price is required when IsPremium is true; the handler layer enforces that
// before the record reaches persistence.
type Product struct {
	ID          uuid.UUID        `json:"id" gorm:"type:char(36);primaryKey"`
	Name        string           `json:"name" gorm:"size:255;not null"`
	Description *string          `json:"description,omitempty" gorm:"type:text"`
	IsPremium   bool             `json:"is_premium" gorm:"not null;default:false"`
	Price       *decimal.Decimal `json:"price,omitempty" gorm:"type:decimal(10,2)"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// ProductUpdate carries a partial update; nil fields are left untouched.
type ProductUpdate struct {
	Name        *string
	Description *string
	IsPremium   *bool
	Price       *decimal.Decimal
}

// Apply copies the non-nil fields onto the product.
func (u *ProductUpdate) Apply(p *Product) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Description != nil {
		p.Description = u.Description
	}
	if u.IsPremium != nil {
		p.IsPremium = *u.IsPremium
	}
	if u.Price != nil {
		p.Price = u.Price
	}
}
