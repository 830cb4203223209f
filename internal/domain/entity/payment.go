package entity

import (
	"encoding/json"
	"time"

	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment is an append-only journal entry against an invoice. Payments are
// never updated or deleted; an invoice's Paid amount must equal the sum of
// its payments.
type Payment struct {
	ID         uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID  uuid.UUID          `gorm:"type:uuid;not null;index" json:"invoice_id"`
	CustomerID *uuid.UUID         `gorm:"type:uuid;index" json:"customer_id,omitempty"` // denormalised from the invoice
	Amount     int64              `gorm:"not null" json:"-"` // Stored in cents
	Method     enum.PaymentMethod `gorm:"size:20;not null" json:"method"`
	CreatedBy  uuid.UUID          `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt  time.Time          `json:"created_at"`

	// Relationships
	Invoice Invoice `gorm:"foreignKey:InvoiceID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new payment
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}

// GetAmountDecimal returns the amount as a decimal
func (p *Payment) GetAmountDecimal() float64 {
	return FromCents(p.Amount)
}

// MarshalJSON converts cents to decimals for API responses
func (p Payment) MarshalJSON() ([]byte, error) {
	type Alias Payment
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(p),
		Amount: p.GetAmountDecimal(),
	})
}
