package repository

import (
	"context"
	"testing"

	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/domain/entity"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/domain/enum"
	domainRepo "github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/domain/repository"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Product{},
		&entity.Customer{},
		&entity.Invoice{},
		&entity.InvoiceItem{},
		&entity.Payment{},
		&entity.IdempotencyKey{},
	))

	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name string, priceCents int64, stock int) *entity.Product {
	t.Helper()
	p := &entity.Product{
		Name:         name,
		Unit:         enum.ProductUnitPiece,
		PricePerUnit: priceCents,
		Stock:        stock,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func seedCustomer(t *testing.T, db *gorm.DB, name, phone string) *entity.Customer {
	t.Helper()
	c := &entity.Customer{Name: name, Phone: phone}
	require.NoError(t, db.Create(c).Error)
	return c
}

func buildInvoice(customer *entity.Customer, product *entity.Product, qty int, paidCents int64) *entity.Invoice {
	total := product.PricePerUnit * int64(qty)
	inv := &entity.Invoice{
		InvoiceNumber: "INV-000001",
		CustomerName:  "Walk-in Customer",
		PaymentMethod: enum.PaymentMethodCash,
		Subtotal:      total,
		Total:         total,
		Paid:          paidCents,
		Due:           total - paidCents,
		Status:        enum.InvoiceStatusFor(paidCents, total),
		CreatedBy:     uuid.New(),
		Items: []entity.InvoiceItem{{
			ProductID:    product.ID,
			ProductName:  product.Name,
			Unit:         product.Unit,
			Quantity:     qty,
			PricePerUnit: product.PricePerUnit,
			Total:        total,
		}},
	}
	if customer != nil {
		inv.CustomerID = &customer.ID
		inv.CustomerName = customer.Name
	}
	return inv
}

func TestCreateInvoiceCommitsAllRecords(t *testing.T) {
	db := setupTestDB(t)
	ledger := NewLedgerRepository(db)
	ctx := context.Background()

	product := seedProduct(t, db, "LED Bulb", 10000, 10)
	customer := seedCustomer(t, db, "Ahmed Khan", "+923001234567")

	invoice := buildInvoice(customer, product, 3, 10000) // 300.00 total, 100.00 paid
	failed, err := ledger.CreateInvoice(ctx, invoice, map[uuid.UUID]int{product.ID: 3})
	require.NoError(t, err)
	assert.Empty(t, failed)

	var got entity.Invoice
	require.NoError(t, db.Preload("Items").First(&got, "id = ?", invoice.ID).Error)
	assert.Equal(t, enum.InvoiceStatusPartial, got.Status)
	assert.Len(t, got.Items, 1)

	var stocked entity.Product
	require.NoError(t, db.First(&stocked, "id = ?", product.ID).Error)
	assert.Equal(t, 7, stocked.Stock)

	var balance entity.Customer
	require.NoError(t, db.First(&balance, "id = ?", customer.ID).Error)
	assert.Equal(t, int64(20000), balance.TotalDue)

	// The cash taken at the counter lands in the payment journal.
	var paymentSum int64
	require.NoError(t, db.Model(&entity.Payment{}).
		Where("invoice_id = ?", invoice.ID).
		Select("COALESCE(SUM(amount), 0)").Scan(&paymentSum).Error)
	assert.Equal(t, invoice.Paid, paymentSum)
}

func TestCreateInvoiceWalkInSkipsBalance(t *testing.T) {
	db := setupTestDB(t)
	ledger := NewLedgerRepository(db)
	ctx := context.Background()

	product := seedProduct(t, db, "Copper Wire", 5000, 20)
	bystander := seedCustomer(t, db, "Unrelated", "+923009999999")

	invoice := buildInvoice(nil, product, 2, 0)
	failed, err := ledger.CreateInvoice(ctx, invoice, map[uuid.UUID]int{product.ID: 2})
	require.NoError(t, err)
	assert.Empty(t, failed)

	var c entity.Customer
	require.NoError(t, db.First(&c, "id = ?", bystander.ID).Error)
	assert.Equal(t, int64(0), c.TotalDue)
}

func TestCreateInvoiceInsufficientStockRollsBack(t *testing.T) {
	db := setupTestDB(t)
	ledger := NewLedgerRepository(db)
	ctx := context.Background()

	product := seedProduct(t, db, "Ceiling Fan", 850000, 2)
	customer := seedCustomer(t, db, "Ahmed Khan", "+923001234567")

	invoice := buildInvoice(customer, product, 5, 0)
	failed, err := ledger.CreateInvoice(ctx, invoice, map[uuid.UUID]int{product.ID: 5})
	require.NoError(t, err)
	require.Equal(t, []uuid.UUID{product.ID}, failed)

	// Nothing from the rejected sale may persist.
	var invoiceCount, itemCount int64
	require.NoError(t, db.Model(&entity.Invoice{}).Count(&invoiceCount).Error)
	require.NoError(t, db.Model(&entity.InvoiceItem{}).Count(&itemCount).Error)
	assert.Equal(t, int64(0), invoiceCount)
	assert.Equal(t, int64(0), itemCount)

	var p entity.Product
	require.NoError(t, db.First(&p, "id = ?", product.ID).Error)
	assert.Equal(t, 2, p.Stock)

	var c entity.Customer
	require.NoError(t, db.First(&c, "id = ?", customer.ID).Error)
	assert.Equal(t, int64(0), c.TotalDue)
}

func TestCreateInvoiceMissingCustomerRollsBack(t *testing.T) {
	db := setupTestDB(t)
	ledger := NewLedgerRepository(db)
	ctx := context.Background()

	product := seedProduct(t, db, "LED Bulb", 10000, 10)

	// Reference a customer row that does not exist; the balance update
	// hits zero rows and the whole sale must be undone.
	invoice := buildInvoice(nil, product, 2, 0)
	ghost := uuid.New()
	invoice.CustomerID = &ghost
	invoice.CustomerName = "Ahmed Khan"

	_, err := ledger.CreateInvoice(ctx, invoice, map[uuid.UUID]int{product.ID: 2})
	assert.ErrorIs(t, err, domainRepo.ErrCustomerNotFound)

	var invoiceCount int64
	require.NoError(t, db.Model(&entity.Invoice{}).Count(&invoiceCount).Error)
	assert.Equal(t, int64(0), invoiceCount)

	var p entity.Product
	require.NoError(t, db.First(&p, "id = ?", product.ID).Error)
	assert.Equal(t, 10, p.Stock)
}

func TestApplyPaymentSettlesInvoice(t *testing.T) {
	db := setupTestDB(t)
	ledger := NewLedgerRepository(db)
	ctx := context.Background()

	product := seedProduct(t, db, "LED Bulb", 10000, 10)
	customer := seedCustomer(t, db, "Ahmed Khan", "+923001234567")

	invoice := buildInvoice(customer, product, 3, 0) // 300.00 due
	_, err := ledger.CreateInvoice(ctx, invoice, map[uuid.UUID]int{product.ID: 3})
	require.NoError(t, err)

	// First payment leaves the invoice partial.
	after, err := ledger.ApplyPayment(ctx, &entity.Payment{
		InvoiceID: invoice.ID,
		Amount:    10000,
		Method:    enum.PaymentMethodCash,
		CreatedBy: uuid.New(),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10000), after.Paid)
	assert.Equal(t, int64(20000), after.Due)
	assert.Equal(t, enum.InvoiceStatusPartial, after.Status)

	// Second payment settles it.
	after, err = ledger.ApplyPayment(ctx, &entity.Payment{
		InvoiceID: invoice.ID,
		Amount:    20000,
		Method:    enum.PaymentMethodJazzcash,
		CreatedBy: uuid.New(),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), after.Due)
	assert.Equal(t, enum.InvoiceStatusPaid, after.Status)

	var c entity.Customer
	require.NoError(t, db.First(&c, "id = ?", customer.ID).Error)
	assert.Equal(t, int64(0), c.TotalDue)

	// Paid equals the journal sum.
	var paymentSum int64
	require.NoError(t, db.Model(&entity.Payment{}).
		Where("invoice_id = ?", invoice.ID).
		Select("COALESCE(SUM(amount), 0)").Scan(&paymentSum).Error)
	assert.Equal(t, after.Paid, paymentSum)

	// The payment rows carry the denormalised customer reference.
	var journaled []entity.Payment
	require.NoError(t, db.Where("invoice_id = ?", invoice.ID).Find(&journaled).Error)
	for _, p := range journaled {
		require.NotNil(t, p.CustomerID)
		assert.Equal(t, customer.ID, *p.CustomerID)
	}
}

func TestApplyPaymentRejections(t *testing.T) {
	db := setupTestDB(t)
	ledger := NewLedgerRepository(db)
	ctx := context.Background()

	product := seedProduct(t, db, "LED Bulb", 10000, 10)

	invoice := buildInvoice(nil, product, 1, 0) // 100.00 due
	_, err := ledger.CreateInvoice(ctx, invoice, map[uuid.UUID]int{product.ID: 1})
	require.NoError(t, err)

	// Overpayment is rejected, not clamped.
	_, err = ledger.ApplyPayment(ctx, &entity.Payment{
		InvoiceID: invoice.ID,
		Amount:    15000,
		Method:    enum.PaymentMethodCash,
		CreatedBy: uuid.New(),
	})
	assert.ErrorIs(t, err, domainRepo.ErrPaymentExceedsDue)

	// Settle exactly, then any further payment fails.
	_, err = ledger.ApplyPayment(ctx, &entity.Payment{
		InvoiceID: invoice.ID,
		Amount:    10000,
		Method:    enum.PaymentMethodCash,
		CreatedBy: uuid.New(),
	})
	require.NoError(t, err)

	_, err = ledger.ApplyPayment(ctx, &entity.Payment{
		InvoiceID: invoice.ID,
		Amount:    1,
		Method:    enum.PaymentMethodCash,
		CreatedBy: uuid.New(),
	})
	assert.ErrorIs(t, err, domainRepo.ErrInvoiceSettled)

	// A rejected payment leaves no journal row behind.
	var count int64
	require.NoError(t, db.Model(&entity.Payment{}).
		Where("invoice_id = ?", invoice.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	_, err = ledger.ApplyPayment(ctx, &entity.Payment{
		InvoiceID: uuid.New(),
		Amount:    100,
		Method:    enum.PaymentMethodCash,
		CreatedBy: uuid.New(),
	})
	assert.ErrorIs(t, err, domainRepo.ErrInvoiceNotFound)
}

func TestCustomerUpdateCannotTouchBalance(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	customer := seedCustomer(t, db, "Ahmed Khan", "+923001234567")
	require.NoError(t, db.Model(&entity.Customer{}).
		Where("id = ?", customer.ID).
		Update("total_due", 5000).Error)

	// Simulate an edit from a stale form carrying total_due = 0.
	customer.Name = "Ahmed K."
	customer.TotalDue = 0
	require.NoError(t, repo.Update(ctx, customer))

	var got entity.Customer
	require.NoError(t, db.First(&got, "id = ?", customer.ID).Error)
	assert.Equal(t, "Ahmed K.", got.Name)
	assert.Equal(t, int64(5000), got.TotalDue)
}
