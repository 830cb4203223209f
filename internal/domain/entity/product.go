package entity

import (
	"encoding/json"
	"time"

	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents an item in the shop's catalog
type Product struct {
	ID           uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	Name         string           `gorm:"size:255;not null" json:"name"`
	Category     string           `gorm:"size:255;index" json:"category"`
	Unit         enum.ProductUnit `gorm:"size:20;not null;default:'piece'" json:"unit"`
	PricePerUnit int64            `gorm:"not null;default:0" json:"-"` // Stored in cents
	CostPerUnit  *int64           `gorm:"default:null" json:"-"`       // Stored in cents, owner-only
	Stock        int              `gorm:"not null;default:0" json:"stock"`
	Watts        *string          `gorm:"size:50" json:"watts,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	DeletedAt    gorm.DeletedAt   `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// GetPriceDecimal returns the selling price as a decimal (for display)
func (p *Product) GetPriceDecimal() float64 {
	return float64(p.PricePerUnit) / 100
}

// GetCostDecimal returns the unit cost as a decimal, or nil if not set
func (p *Product) GetCostDecimal() *float64 {
	if p.CostPerUnit == nil {
		return nil
	}
	c := float64(*p.CostPerUnit) / 100
	return &c
}

// SetPriceFromDecimal sets the selling price from a decimal value
func (p *Product) SetPriceFromDecimal(price float64) {
	p.PricePerUnit = toCents(price)
}

// SetCostFromDecimal sets the unit cost from a decimal value
func (p *Product) SetCostFromDecimal(cost float64) {
	c := toCents(cost)
	p.CostPerUnit = &c
}

// MarshalJSON converts Product to JSON with a decimal price. CostPerUnit is
// deliberately excluded here; owner-facing views add it back (see the
// response package).
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	return json.Marshal(&struct {
		Alias
		PricePerUnit float64 `json:"price_per_unit"`
	}{
		Alias:        Alias(p),
		PricePerUnit: p.GetPriceDecimal(),
	})
}
