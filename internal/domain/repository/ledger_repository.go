package repository

import (
	"context"
	"errors"

	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/domain/entity"
	"github.com/google/uuid"
)

// Ledger errors surfaced from transactional operations. The billing service
// maps them to API errors.
var (
	// ErrInvoiceNotFound is returned when a payment targets a nonexistent invoice.
	ErrInvoiceNotFound = errors.New("invoice not found")
	// ErrInvoiceSettled is returned when a payment targets an invoice already paid in full.
	ErrInvoiceSettled = errors.New("invoice already paid in full")
	// ErrPaymentExceedsDue is returned when a payment is larger than the outstanding due.
	ErrPaymentExceedsDue = errors.New("payment exceeds outstanding due")
	// ErrCustomerNotFound is returned when the customer row referenced by an
	// invoice disappears before its balance can be updated.
	ErrCustomerNotFound = errors.New("customer not found")
)

// LedgerRepository performs the two multi-record writes of the system. Each
// method executes as a single transaction: either every constituent write
// commits or none does.
type LedgerRepository interface {
	// CreateInvoice persists the invoice with its items, decrements stock
	// per item (guarded against going negative), and, when the invoice
	// belongs to a customer and carries a due amount, increments that
	// customer's running balance. Returns the IDs of products whose stock
	// guard rejected the decrement; a non-empty result means the whole
	// transaction was rolled back.
	CreateInvoice(ctx context.Context, invoice *entity.Invoice, decrements map[uuid.UUID]int) (failedIDs []uuid.UUID, err error)

	// ApplyPayment appends the payment, recomputes the invoice's paid/due/
	// status under a row lock, and decrements the customer balance when the
	// invoice references a customer. Returns the updated invoice.
	// Fails with ErrInvoiceNotFound, ErrInvoiceSettled or
	// ErrPaymentExceedsDue; on any error nothing is committed.
	ApplyPayment(ctx context.Context, payment *entity.Payment) (*entity.Invoice, error)
}
