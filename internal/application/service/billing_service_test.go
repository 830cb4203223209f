package service

import (
	"context"
	"testing"
	"time"

	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/domain/entity"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/domain/enum"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/domain/repository"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/pkg/apperror"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/pkg/pagination"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory fakes for the repository interfaces. The ledger fake records
// the write it was asked to perform instead of touching a database.

type fakeProductRepo struct {
	products map[uuid.UUID]entity.Product
}

func newFakeProductRepo(products ...entity.Product) *fakeProductRepo {
	m := make(map[uuid.UUID]entity.Product, len(products))
	for _, p := range products {
		m[p.ID] = p
	}
	return &fakeProductRepo{products: m}
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	f.products[p.ID] = *p
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakeProductRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	var out []entity.Product
	for _, id := range ids {
		if p, ok := f.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	f.products[p.ID] = *p
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) List(context.Context, *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	return nil, 0, nil
}

func (f *fakeProductRepo) GetLowStock(context.Context, int) ([]entity.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) Count(context.Context) (int64, error) { return int64(len(f.products)), nil }

func (f *fakeProductRepo) AdjustStock(_ context.Context, id uuid.UUID, delta int) (int, bool, error) {
	p, ok := f.products[id]
	if !ok || p.Stock+delta < 0 {
		return 0, false, nil
	}
	p.Stock += delta
	f.products[id] = p
	return p.Stock, true, nil
}

type fakeCustomerRepo struct {
	customers map[uuid.UUID]entity.Customer
}

func newFakeCustomerRepo(customers ...entity.Customer) *fakeCustomerRepo {
	m := make(map[uuid.UUID]entity.Customer, len(customers))
	for _, c := range customers {
		m[c.ID] = c
	}
	return &fakeCustomerRepo{customers: m}
}

func (f *fakeCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	f.customers[c.ID] = *c
	return nil
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (f *fakeCustomerRepo) GetByPhone(_ context.Context, phone string) (*entity.Customer, error) {
	for _, c := range f.customers {
		if c.Phone == phone {
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) Update(_ context.Context, c *entity.Customer) error {
	f.customers[c.ID] = *c
	return nil
}

func (f *fakeCustomerRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.customers, id)
	return nil
}

func (f *fakeCustomerRepo) List(context.Context, *pagination.PaginationParams, string) ([]entity.Customer, int64, error) {
	return nil, 0, nil
}

func (f *fakeCustomerRepo) Count(context.Context) (int64, error) {
	return int64(len(f.customers)), nil
}

type fakeLedgerRepo struct {
	lastInvoice    *entity.Invoice
	lastDecrements map[uuid.UUID]int
	failedIDs      []uuid.UUID
	createErr      error
	paymentErr     error
	invoiceAfter   *entity.Invoice
}

func (f *fakeLedgerRepo) CreateInvoice(_ context.Context, invoice *entity.Invoice, decrements map[uuid.UUID]int) ([]uuid.UUID, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.lastInvoice = invoice
	f.lastDecrements = decrements
	return f.failedIDs, nil
}

func (f *fakeLedgerRepo) ApplyPayment(_ context.Context, payment *entity.Payment) (*entity.Invoice, error) {
	if f.paymentErr != nil {
		return nil, f.paymentErr
	}
	return f.invoiceAfter, nil
}

type fakeInvoiceRepo struct {
	invoices map[uuid.UUID]entity.Invoice
}

func (f *fakeInvoiceRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Invoice, error) {
	if f.invoices == nil {
		return nil, nil
	}
	inv, ok := f.invoices[id]
	if !ok {
		return nil, nil
	}
	return &inv, nil
}

func (f *fakeInvoiceRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeInvoiceRepo) GetByInvoiceNumber(context.Context, string) (*entity.Invoice, error) {
	return nil, nil
}

func (f *fakeInvoiceRepo) List(context.Context, *repository.InvoiceFilterParams) ([]entity.Invoice, int64, error) {
	return nil, 0, nil
}

func (f *fakeInvoiceRepo) ListByCustomer(context.Context, uuid.UUID, *pagination.PaginationParams) ([]entity.Invoice, int64, error) {
	return nil, 0, nil
}

func (f *fakeInvoiceRepo) GetPending(context.Context, *pagination.PaginationParams) ([]entity.Invoice, int64, error) {
	return nil, 0, nil
}

func (f *fakeInvoiceRepo) Count(context.Context) (int64, error) { return 0, nil }

func (f *fakeInvoiceRepo) SumOutstandingByCustomer(context.Context, uuid.UUID) (int64, error) {
	return 0, nil
}

type fakePaymentRepo struct{}

func (fakePaymentRepo) GetByID(context.Context, uuid.UUID) (*entity.Payment, error) {
	return nil, nil
}
func (fakePaymentRepo) ListByInvoice(context.Context, uuid.UUID) ([]entity.Payment, error) {
	return nil, nil
}
func (fakePaymentRepo) ListByCustomer(context.Context, uuid.UUID) ([]entity.Payment, error) {
	return nil, nil
}
func (fakePaymentRepo) SumByInvoice(context.Context, uuid.UUID) (int64, error) { return 0, nil }

func newBillingService(ledger *fakeLedgerRepo, products *fakeProductRepo, customers *fakeCustomerRepo, taxRate float64) *BillingService {
	return NewBillingService(ledger, &fakeInvoiceRepo{}, fakePaymentRepo{}, products, customers, taxRate)
}

func testProduct(name string, priceCents int64, stock int) entity.Product {
	cost := priceCents / 2
	return entity.Product{
		ID:           uuid.New(),
		Name:         name,
		Unit:         enum.ProductUnitPiece,
		PricePerUnit: priceCents,
		CostPerUnit:  &cost,
		Stock:        stock,
	}
}

func TestCreateInvoiceFullyPaid(t *testing.T) {
	bulb := testProduct("LED Bulb 12W", 25000, 10)
	wire := testProduct("Copper Wire", 12050, 50)
	products := newFakeProductRepo(bulb, wire)
	ledger := &fakeLedgerRepo{}
	svc := newBillingService(ledger, products, newFakeCustomerRepo(), 0)

	invoice, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		Items: []InvoiceItemInput{
			{ProductID: bulb.ID, Quantity: 2},
			{ProductID: wire.ID, Quantity: 3},
		},
		Paid:          861.50,
		PaymentMethod: "cash",
		CreatedBy:     uuid.New(),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2*25000+3*12050), invoice.Subtotal)
	assert.Equal(t, int64(0), invoice.Tax)
	assert.Equal(t, invoice.Subtotal, invoice.Total)
	assert.Equal(t, invoice.Total, invoice.Paid)
	assert.Equal(t, int64(0), invoice.Due)
	assert.Equal(t, enum.InvoiceStatusPaid, invoice.Status)
	assert.Equal(t, "Walk-in Customer", invoice.CustomerName)
	assert.Len(t, invoice.Items, 2)

	// Item snapshots carry the catalog values of the moment.
	assert.Equal(t, bulb.PricePerUnit, invoice.Items[0].PricePerUnit)
	require.NotNil(t, invoice.Items[0].CostPerUnit)
	assert.Equal(t, *bulb.CostPerUnit, *invoice.Items[0].CostPerUnit)

	assert.Equal(t, map[uuid.UUID]int{bulb.ID: 2, wire.ID: 3}, ledger.lastDecrements)
}

func TestCreateInvoicePartialForCustomer(t *testing.T) {
	fan := testProduct("Ceiling Fan", 850000, 5)
	customer := entity.Customer{ID: uuid.New(), Name: "Ahmed Khan", Phone: "+923001234567"}
	ledger := &fakeLedgerRepo{}
	svc := newBillingService(ledger, newFakeProductRepo(fan), newFakeCustomerRepo(customer), 0)

	invoice, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		CustomerID:    &customer.ID,
		Items:         []InvoiceItemInput{{ProductID: fan.ID, Quantity: 1}},
		Paid:          5000,
		PaymentMethod: "cash",
		CreatedBy:     uuid.New(),
	})
	require.NoError(t, err)

	assert.Equal(t, enum.InvoiceStatusPartial, invoice.Status)
	assert.Equal(t, int64(500000), invoice.Paid)
	assert.Equal(t, int64(350000), invoice.Due)
	assert.Equal(t, "Ahmed Khan", invoice.CustomerName)
	require.NotNil(t, invoice.CustomerPhone)
	assert.Equal(t, customer.Phone, *invoice.CustomerPhone)
}

func TestCreateInvoiceTax(t *testing.T) {
	bulb := testProduct("LED Bulb", 10000, 10)
	svc := newBillingService(&fakeLedgerRepo{}, newFakeProductRepo(bulb), newFakeCustomerRepo(), 17)

	invoice, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		Items:         []InvoiceItemInput{{ProductID: bulb.ID, Quantity: 1}},
		Paid:          0,
		PaymentMethod: "cash",
		CreatedBy:     uuid.New(),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(10000), invoice.Subtotal)
	assert.Equal(t, int64(1700), invoice.Tax)
	assert.Equal(t, int64(11700), invoice.Total)
	assert.Equal(t, enum.InvoiceStatusUnpaid, invoice.Status)
}

func TestCreateInvoiceRejectsOverpayment(t *testing.T) {
	bulb := testProduct("LED Bulb", 10000, 10)
	svc := newBillingService(&fakeLedgerRepo{}, newFakeProductRepo(bulb), newFakeCustomerRepo(), 0)

	_, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		Items:         []InvoiceItemInput{{ProductID: bulb.ID, Quantity: 1}},
		Paid:          150,
		PaymentMethod: "cash",
		CreatedBy:     uuid.New(),
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestCreateInvoiceInsufficientStock(t *testing.T) {
	bulb := testProduct("LED Bulb", 10000, 1)
	ledger := &fakeLedgerRepo{failedIDs: []uuid.UUID{bulb.ID}}
	svc := newBillingService(ledger, newFakeProductRepo(bulb), newFakeCustomerRepo(), 0)

	_, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		Items:         []InvoiceItemInput{{ProductID: bulb.ID, Quantity: 5}},
		PaymentMethod: "cash",
		CreatedBy:     uuid.New(),
	})
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 400, appErr.Code)
	assert.Contains(t, appErr.Message, "LED Bulb")
}

func TestCreateInvoiceValidation(t *testing.T) {
	bulb := testProduct("LED Bulb", 10000, 10)
	svc := newBillingService(&fakeLedgerRepo{}, newFakeProductRepo(bulb), newFakeCustomerRepo(), 0)
	ctx := context.Background()

	_, err := svc.CreateInvoice(ctx, &CreateInvoiceInput{PaymentMethod: "cash"})
	assert.Error(t, err, "empty items")

	_, err = svc.CreateInvoice(ctx, &CreateInvoiceInput{
		Items:         []InvoiceItemInput{{ProductID: bulb.ID, Quantity: 0}},
		PaymentMethod: "cash",
	})
	assert.Error(t, err, "zero quantity")

	_, err = svc.CreateInvoice(ctx, &CreateInvoiceInput{
		Items:         []InvoiceItemInput{{ProductID: bulb.ID, Quantity: 1}},
		PaymentMethod: "cheque",
	})
	assert.Error(t, err, "unknown payment method")

	_, err = svc.CreateInvoice(ctx, &CreateInvoiceInput{
		Items:         []InvoiceItemInput{{ProductID: uuid.New(), Quantity: 1}},
		PaymentMethod: "cash",
	})
	assert.Equal(t, 404, apperror.GetAppError(err).Code, "unknown product")
}

func TestCreateInvoiceMapsMissingCustomer(t *testing.T) {
	fan := testProduct("Ceiling Fan", 850000, 5)
	customer := entity.Customer{ID: uuid.New(), Name: "Ahmed Khan", Phone: "+923001234567"}
	ledger := &fakeLedgerRepo{createErr: repository.ErrCustomerNotFound}
	svc := newBillingService(ledger, newFakeProductRepo(fan), newFakeCustomerRepo(customer), 0)

	// The customer passes the pre-check but is gone by the time the
	// ledger transaction runs; the API reports the customer, not a 500.
	_, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		CustomerID:    &customer.ID,
		Items:         []InvoiceItemInput{{ProductID: fan.ID, Quantity: 1}},
		PaymentMethod: "cash",
		CreatedBy:     uuid.New(),
	})
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 404, appErr.Code)
	assert.Contains(t, appErr.Message, "Customer")
}

func TestRecordPaymentMapsLedgerErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"missing invoice", repository.ErrInvoiceNotFound, 404},
		{"settled invoice", repository.ErrInvoiceSettled, 409},
		{"overpayment", repository.ErrPaymentExceedsDue, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newBillingService(&fakeLedgerRepo{paymentErr: tt.err}, newFakeProductRepo(), newFakeCustomerRepo(), 0)
			_, _, err := svc.RecordPayment(context.Background(), &RecordPaymentInput{
				InvoiceID: uuid.New(),
				Amount:    10,
				Method:    "cash",
				CreatedBy: uuid.New(),
			})
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, apperror.GetAppError(err).Code)
		})
	}
}

func TestRecordPaymentValidation(t *testing.T) {
	svc := newBillingService(&fakeLedgerRepo{}, newFakeProductRepo(), newFakeCustomerRepo(), 0)
	ctx := context.Background()

	_, _, err := svc.RecordPayment(ctx, &RecordPaymentInput{Amount: 0, Method: "cash"})
	assert.Error(t, err, "zero amount")

	_, _, err = svc.RecordPayment(ctx, &RecordPaymentInput{Amount: -5, Method: "cash"})
	assert.Error(t, err, "negative amount")

	_, _, err = svc.RecordPayment(ctx, &RecordPaymentInput{Amount: 10, Method: "barter"})
	assert.Error(t, err, "unknown method")
}

func TestGenerateInvoiceNumber(t *testing.T) {
	n := GenerateInvoiceNumber(time.UnixMilli(1724800123456))
	assert.Equal(t, "INV-123456", n)
}
