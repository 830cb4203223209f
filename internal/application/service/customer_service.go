package service

import (
	"context"

	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/domain/entity"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/domain/repository"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/pkg/apperror"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/pkg/pagination"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/pkg/utils"
	"github.com/google/uuid"
)

// CustomerService handles customer ledger operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
	invoiceRepo  repository.InvoiceRepository
	paymentRepo  repository.PaymentRepository
	phoneRegion  string
}

// NewCustomerService creates a new customer service
func NewCustomerService(
	customerRepo repository.CustomerRepository,
	invoiceRepo repository.InvoiceRepository,
	paymentRepo repository.PaymentRepository,
	phoneRegion string,
) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		invoiceRepo:  invoiceRepo,
		paymentRepo:  paymentRepo,
		phoneRegion:  phoneRegion,
	}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	Name    string
	Phone   string
	Email   *string
	Address *string
}

// CreateCustomer registers a new customer. Phone numbers are normalized to
// E.164 before the uniqueness check.
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	phone, err := utils.NormalizePhone(input.Phone, s.phoneRegion)
	if err != nil {
		return nil, apperror.NewValidationError(err.Error())
	}

	existing, err := s.customerRepo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A customer with this phone number already exists")
	}

	customer := &entity.Customer{
		Name:    input.Name,
		Phone:   phone,
		Email:   input.Email,
		Address: input.Address,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// UpdateCustomerInput represents the update customer input; nil fields are left unchanged
type UpdateCustomerInput struct {
	Name    *string
	Phone   *string
	Email   *string
	Address *string
}

// UpdateCustomer updates customer contact details. The running balance is
// owned by the ledger and cannot be edited here.
func (s *CustomerService) UpdateCustomer(ctx context.Context, id uuid.UUID, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Phone != nil {
		phone, err := utils.NormalizePhone(*input.Phone, s.phoneRegion)
		if err != nil {
			return nil, apperror.NewValidationError(err.Error())
		}
		if phone != customer.Phone {
			existing, err := s.customerRepo.GetByPhone(ctx, phone)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != customer.ID {
				return nil, apperror.NewConflictError("A customer with this phone number already exists")
			}
			customer.Phone = phone
		}
	}
	if input.Email != nil {
		customer.Email = input.Email
	}
	if input.Address != nil {
		customer.Address = input.Address
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers lists customers with search and pagination
func (s *CustomerService) ListCustomers(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	return s.customerRepo.List(ctx, params, search)
}

// DeleteCustomer soft-deletes a customer with no outstanding balance
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}
	if customer.TotalDue > 0 {
		return apperror.NewConflictError("Customer has an outstanding balance and cannot be deleted")
	}
	return s.customerRepo.Delete(ctx, id)
}

// ListCustomerInvoices returns the customer's invoices, newest first
func (s *CustomerService) ListCustomerInvoices(ctx context.Context, id uuid.UUID, params *pagination.PaginationParams) ([]entity.Invoice, int64, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, 0, err
	}
	if customer == nil {
		return nil, 0, apperror.NewNotFoundError("Customer")
	}
	return s.invoiceRepo.ListByCustomer(ctx, id, params)
}

// ListCustomerPayments returns the customer's payment journal
func (s *CustomerService) ListCustomerPayments(ctx context.Context, id uuid.UUID) ([]entity.Payment, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return s.paymentRepo.ListByCustomer(ctx, id)
}

// BalanceCheck compares a customer's incrementally-maintained balance with
// the sum of outstanding invoice dues.
type BalanceCheck struct {
	Customer    *entity.Customer `json:"customer"`
	LedgerSum   float64          `json:"ledger_sum"`
	Consistent  bool             `json:"consistent"`
	DriftAmount float64          `json:"drift_amount"`
}

// CheckBalance verifies that the customer's running balance matches the
// invoice ledger. A mismatch indicates a bug or out-of-band data edit and
// surfaces as a consistency error carrying both figures.
func (s *CustomerService) CheckBalance(ctx context.Context, id uuid.UUID) (*BalanceCheck, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	ledgerSum, err := s.invoiceRepo.SumOutstandingByCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	check := &BalanceCheck{
		Customer:    customer,
		LedgerSum:   entity.FromCents(ledgerSum),
		Consistent:  ledgerSum == customer.TotalDue,
		DriftAmount: entity.FromCents(customer.TotalDue - ledgerSum),
	}
	if !check.Consistent {
		return nil, apperror.NewConsistencyError("Customer balance does not match the invoice ledger", check)
	}
	return check, nil
}
