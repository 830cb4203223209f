package repository

import (
	"context"

	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/domain/entity"
	"github.com/google/uuid"
)

// PaymentRepository defines read access to the payment journal. Payments
// are appended only through the LedgerRepository and never mutated.
type PaymentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]entity.Payment, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Payment, error)
	// SumByInvoice returns the sum (in cents) of all payments against an
	// invoice; it must equal the invoice's paid amount.
	SumByInvoice(ctx context.Context, invoiceID uuid.UUID) (int64, error)
}
