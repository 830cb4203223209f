package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer represents a customer with a running balance owed to the shop.
// TotalDue is maintained incrementally by the ledger: invoice creation adds
// the invoice's due, a payment subtracts its amount. Nothing else writes it.
type Customer struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Phone     string         `gorm:"size:50;not null;uniqueIndex" json:"phone"`
	Email     *string        `gorm:"size:255" json:"email,omitempty"`
	Address   *string        `gorm:"type:text" json:"address,omitempty"`
	TotalDue  int64          `gorm:"not null;default:0" json:"-"` // Stored in cents
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Invoices []Invoice `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}

// GetTotalDueDecimal returns the running balance as a decimal
func (c *Customer) GetTotalDueDecimal() float64 {
	return FromCents(c.TotalDue)
}

// MarshalJSON converts Customer to JSON with a decimal balance
func (c Customer) MarshalJSON() ([]byte, error) {
	type Alias Customer
	return json.Marshal(&struct {
		Alias
		TotalDue float64 `json:"total_due"`
	}{
		Alias:    Alias(c),
		TotalDue: c.GetTotalDueDecimal(),
	})
}
