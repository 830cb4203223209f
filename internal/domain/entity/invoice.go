package entity

import (
	"encoding/json"
	"time"

	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Invoice represents a sale. Items are owned by the invoice and carry
// product attributes snapshotted at sale time; later product edits never
// change a historical invoice.
//
// Due always equals Total - Paid (floored at zero on creation), and Status
// is always enum.InvoiceStatusFor(Paid, Total). Only ledger operations
// mutate Paid, Due and Status.
type Invoice struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceNumber string             `gorm:"size:100;not null;index" json:"invoice_number"`
	CustomerID    *uuid.UUID         `gorm:"type:uuid;index" json:"customer_id,omitempty"` // nil for walk-in sales
	CustomerName  string             `gorm:"size:255;not null" json:"customer_name"`
	CustomerPhone *string            `gorm:"size:50" json:"customer_phone,omitempty"`
	Subtotal      int64              `gorm:"not null;default:0" json:"-"` // Stored in cents
	Tax           int64              `gorm:"not null;default:0" json:"-"` // Stored in cents
	Total         int64              `gorm:"not null;default:0" json:"-"` // Stored in cents
	Paid          int64              `gorm:"not null;default:0" json:"-"` // Stored in cents
	Due           int64              `gorm:"not null;default:0" json:"-"` // Stored in cents
	PaymentMethod enum.PaymentMethod `gorm:"size:20;not null" json:"payment_method"`
	Status        enum.InvoiceStatus `gorm:"size:20;not null;index" json:"status"`
	CreatedBy     uuid.UUID          `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt     time.Time          `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`

	// Relationships
	Customer *Customer     `gorm:"foreignKey:CustomerID" json:"-"`
	Items    []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// GetTotalDecimal returns the total as a decimal
func (i *Invoice) GetTotalDecimal() float64 {
	return FromCents(i.Total)
}

// GetDueDecimal returns the outstanding amount as a decimal
func (i *Invoice) GetDueDecimal() float64 {
	return FromCents(i.Due)
}

// MarshalJSON converts cents to decimals for API responses
func (i Invoice) MarshalJSON() ([]byte, error) {
	type Alias Invoice
	return json.Marshal(&struct {
		Alias
		Subtotal float64 `json:"subtotal"`
		Tax      float64 `json:"tax"`
		Total    float64 `json:"total"`
		Paid     float64 `json:"paid"`
		Due      float64 `json:"due"`
	}{
		Alias:    Alias(i),
		Subtotal: FromCents(i.Subtotal),
		Tax:      FromCents(i.Tax),
		Total:    FromCents(i.Total),
		Paid:     FromCents(i.Paid),
		Due:      FromCents(i.Due),
	})
}

// InvoiceItem is a line item owned by an invoice. ProductName, Unit,
// PricePerUnit and CostPerUnit are value copies taken when the invoice was
// created, not live joins to the product.
type InvoiceItem struct {
	ID           uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID    uuid.UUID        `gorm:"type:uuid;not null;index" json:"invoice_id"`
	ProductID    uuid.UUID        `gorm:"type:uuid;not null;index" json:"product_id"`
	ProductName  string           `gorm:"size:255;not null" json:"product_name"`
	Unit         enum.ProductUnit `gorm:"size:20;not null" json:"unit"`
	Quantity     int              `gorm:"not null" json:"quantity"`
	PricePerUnit int64            `gorm:"not null" json:"-"` // Stored in cents
	CostPerUnit  *int64           `gorm:"default:null" json:"-"` // Stored in cents, owner-only
	Total        int64            `gorm:"not null" json:"-"` // Stored in cents
	CreatedAt    time.Time        `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new invoice item
func (it *InvoiceItem) BeforeCreate(tx *gorm.DB) error {
	if it.ID == uuid.Nil {
		it.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InvoiceItem model
func (InvoiceItem) TableName() string {
	return "invoice_items"
}

// MarshalJSON converts cents to decimals for API responses. CostPerUnit is
// excluded; owner-facing views add it back.
func (it InvoiceItem) MarshalJSON() ([]byte, error) {
	type Alias InvoiceItem
	return json.Marshal(&struct {
		Alias
		PricePerUnit float64 `json:"price_per_unit"`
		Total        float64 `json:"total"`
	}{
		Alias:        Alias(it),
		PricePerUnit: FromCents(it.PricePerUnit),
		Total:        FromCents(it.Total),
	})
}
