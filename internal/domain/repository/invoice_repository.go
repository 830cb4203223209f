package repository

import (
	"context"
	"time"

	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/domain/entity"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/domain/enum"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/pkg/pagination"
	"github.com/google/uuid"
)

// InvoiceRepository defines read access to invoices. Invoices are created
// and mutated only through the LedgerRepository.
type InvoiceRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	GetByInvoiceNumber(ctx context.Context, number string) (*entity.Invoice, error)
	List(ctx context.Context, params *InvoiceFilterParams) ([]entity.Invoice, int64, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, params *pagination.PaginationParams) ([]entity.Invoice, int64, error)
	GetPending(ctx context.Context, params *pagination.PaginationParams) ([]entity.Invoice, int64, error)
	Count(ctx context.Context) (int64, error)
	// SumOutstandingByCustomer returns the sum (in cents) of due over the
	// customer's invoices with due > 0. Used to detect drift between the
	// incrementally-maintained customer balance and the invoice ledger.
	SumOutstandingByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error)
}

// InvoiceFilterParams contains filtering parameters for invoice queries
type InvoiceFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string // matches invoice number or customer name
	Status     *enum.InvoiceStatus
	CustomerID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}
