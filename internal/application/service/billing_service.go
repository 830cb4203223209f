package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/domain/entity"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/domain/enum"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/domain/repository"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/pkg/apperror"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/pkg/pagination"
	"github.com/google/uuid"
)

// BillingService handles invoice creation and payment recording. Every
// multi-record write goes through the ledger repository, which runs it as
// one transaction.
type BillingService struct {
	ledgerRepo     repository.LedgerRepository
	invoiceRepo    repository.InvoiceRepository
	paymentRepo    repository.PaymentRepository
	productRepo    repository.ProductRepository
	customerRepo   repository.CustomerRepository
	taxRatePercent float64
}

// NewBillingService creates a new billing service
func NewBillingService(
	ledgerRepo repository.LedgerRepository,
	invoiceRepo repository.InvoiceRepository,
	paymentRepo repository.PaymentRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	taxRatePercent float64,
) *BillingService {
	return &BillingService{
		ledgerRepo:     ledgerRepo,
		invoiceRepo:    invoiceRepo,
		paymentRepo:    paymentRepo,
		productRepo:    productRepo,
		customerRepo:   customerRepo,
		taxRatePercent: taxRatePercent,
	}
}

// InvoiceItemInput is one line of a new invoice
type InvoiceItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CreateInvoiceInput represents the create invoice input. CustomerID is nil
// for walk-in sales; CustomerName/CustomerPhone are used only then.
type CreateInvoiceInput struct {
	CustomerID    *uuid.UUID
	CustomerName  string
	CustomerPhone *string
	Items         []InvoiceItemInput
	Paid          float64
	PaymentMethod string
	CreatedBy     uuid.UUID
}

// GenerateInvoiceNumber produces a short human-readable invoice number
func GenerateInvoiceNumber(now time.Time) string {
	millis := now.UnixMilli()
	return fmt.Sprintf("INV-%06d", millis%1000000)
}

// CreateInvoice prices the cart from the catalog, snapshots every line,
// and commits the invoice, its items, the stock decrements, an optional
// initial payment and the customer balance change atomically.
func (s *BillingService) CreateInvoice(ctx context.Context, input *CreateInvoiceInput) (*entity.Invoice, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewValidationError("Invoice must have at least one item")
	}
	method := enum.PaymentMethod(input.PaymentMethod)
	if !method.Valid() {
		return nil, apperror.NewValidationError("Invalid payment method")
	}
	if input.Paid < 0 {
		return nil, apperror.NewValidationError("Paid amount cannot be negative")
	}

	ids := make([]uuid.UUID, 0, len(input.Items))
	quantities := make(map[uuid.UUID]int, len(input.Items))
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, apperror.NewValidationError("Item quantity must be positive")
		}
		if _, dup := quantities[item.ProductID]; dup {
			return nil, apperror.NewValidationError("Duplicate product in invoice items")
		}
		ids = append(ids, item.ProductID)
		quantities[item.ProductID] = item.Quantity
	}

	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	for _, id := range ids {
		if _, ok := byID[id]; !ok {
			return nil, apperror.NewNotFoundError("Product " + id.String())
		}
	}

	invoice := &entity.Invoice{
		PaymentMethod: method,
		CreatedBy:     input.CreatedBy,
	}

	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
		invoice.CustomerID = input.CustomerID
		invoice.CustomerName = customer.Name
		invoice.CustomerPhone = &customer.Phone
	} else {
		name := strings.TrimSpace(input.CustomerName)
		if name == "" {
			name = "Walk-in Customer"
		}
		invoice.CustomerName = name
		invoice.CustomerPhone = input.CustomerPhone
	}

	var subtotal int64
	for _, id := range ids {
		product := byID[id]
		qty := quantities[id]
		lineTotal := product.PricePerUnit * int64(qty)
		subtotal += lineTotal

		item := entity.InvoiceItem{
			ProductID:    product.ID,
			ProductName:  product.Name,
			Unit:         product.Unit,
			Quantity:     qty,
			PricePerUnit: product.PricePerUnit,
			Total:        lineTotal,
		}
		if product.CostPerUnit != nil {
			cost := *product.CostPerUnit
			item.CostPerUnit = &cost
		}
		invoice.Items = append(invoice.Items, item)
	}

	tax := int64(math.Round(float64(subtotal) * s.taxRatePercent / 100))
	total := subtotal + tax
	paid := entity.ToCents(input.Paid)
	if paid > total {
		return nil, apperror.NewValidationError("Paid amount cannot exceed the invoice total")
	}

	invoice.InvoiceNumber = GenerateInvoiceNumber(time.Now())
	invoice.Subtotal = subtotal
	invoice.Tax = tax
	invoice.Total = total
	invoice.Paid = paid
	invoice.Due = total - paid
	invoice.Status = enum.InvoiceStatusFor(paid, total)

	failed, err := s.ledgerRepo.CreateInvoice(ctx, invoice, quantities)
	if err != nil {
		// The existence check above ran outside the transaction; the
		// customer can still vanish before the balance update commits.
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, apperror.NewNotFoundError("Customer")
		}
		return nil, err
	}
	if len(failed) > 0 {
		names := make([]string, 0, len(failed))
		for _, id := range failed {
			names = append(names, byID[id].Name)
		}
		return nil, apperror.NewValidationError("Insufficient stock for: " + strings.Join(names, ", "))
	}

	return invoice, nil
}

// RecordPaymentInput represents the record payment input
type RecordPaymentInput struct {
	InvoiceID uuid.UUID
	Amount    float64
	Method    string
	CreatedBy uuid.UUID
}

// RecordPayment applies a payment against a pending invoice. Overpayment
// and payments on settled invoices are rejected.
func (s *BillingService) RecordPayment(ctx context.Context, input *RecordPaymentInput) (*entity.Invoice, *entity.Payment, error) {
	method := enum.PaymentMethod(input.Method)
	if !method.Valid() {
		return nil, nil, apperror.NewValidationError("Invalid payment method")
	}
	amount := entity.ToCents(input.Amount)
	if amount <= 0 {
		return nil, nil, apperror.NewValidationError("Payment amount must be positive")
	}

	payment := &entity.Payment{
		InvoiceID: input.InvoiceID,
		Amount:    amount,
		Method:    method,
		CreatedBy: input.CreatedBy,
	}

	invoice, err := s.ledgerRepo.ApplyPayment(ctx, payment)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInvoiceNotFound):
			return nil, nil, apperror.NewNotFoundError("Invoice")
		case errors.Is(err, repository.ErrInvoiceSettled):
			return nil, nil, apperror.NewConflictError("Invoice is already paid in full")
		case errors.Is(err, repository.ErrPaymentExceedsDue):
			return nil, nil, apperror.NewValidationError("Payment exceeds the outstanding due")
		}
		return nil, nil, err
	}

	return invoice, payment, nil
}

// GetInvoice retrieves an invoice with its items
func (s *BillingService) GetInvoice(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// GetInvoiceByNumber retrieves an invoice by its human-readable number
func (s *BillingService) GetInvoiceByNumber(ctx context.Context, number string) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByInvoiceNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// ListInvoices lists invoices with filtering and pagination
func (s *BillingService) ListInvoices(ctx context.Context, params *repository.InvoiceFilterParams) ([]entity.Invoice, int64, error) {
	return s.invoiceRepo.List(ctx, params)
}

// GetPendingInvoices lists invoices that still carry a due amount
func (s *BillingService) GetPendingInvoices(ctx context.Context, params *pagination.PaginationParams) ([]entity.Invoice, int64, error) {
	return s.invoiceRepo.GetPending(ctx, params)
}

// ListInvoicePayments returns the payment journal of an invoice, oldest first
func (s *BillingService) ListInvoicePayments(ctx context.Context, invoiceID uuid.UUID) ([]entity.Payment, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return s.paymentRepo.ListByInvoice(ctx, invoiceID)
}
