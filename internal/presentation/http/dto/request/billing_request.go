package request

import "github.com/google/uuid"

// InvoiceItemRequest is one line of a new invoice. Prices always come from
// the catalog at creation time; the client cannot set them.
type InvoiceItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
}

// CreateInvoiceRequest represents the create invoice request payload.
// CustomerID identifies a registered customer; for walk-in sales leave it
// empty and optionally supply a name and phone for the receipt.
type CreateInvoiceRequest struct {
	CustomerID    *uuid.UUID           `json:"customer_id"`
	CustomerName  string               `json:"customer_name"`
	CustomerPhone *string              `json:"customer_phone"`
	Items         []InvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
	Paid          float64              `json:"paid" binding:"min=0"`
	PaymentMethod string               `json:"payment_method" binding:"required"`
}

// RecordPaymentRequest represents the record payment request payload
type RecordPaymentRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Method string  `json:"method" binding:"required"`
}
