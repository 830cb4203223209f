package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardTotalDueIncludesWalkIns(t *testing.T) {
	db := setupTestDB(t)
	ledger := NewLedgerRepository(db)
	reports := NewReportRepository(db)
	ctx := context.Background()

	product := seedProduct(t, db, "LED Bulb", 10000, 50)
	customer := seedCustomer(t, db, "Ahmed Khan", "+923001234567")

	// A registered customer owes 100.00 and an anonymous counter sale
	// leaves 200.00 unpaid.
	credit := buildInvoice(customer, product, 1, 0)
	_, err := ledger.CreateInvoice(ctx, credit, map[uuid.UUID]int{product.ID: 1})
	require.NoError(t, err)

	walkIn := buildInvoice(nil, product, 2, 0)
	walkIn.InvoiceNumber = "INV-000002"
	_, err = ledger.CreateInvoice(ctx, walkIn, map[uuid.UUID]int{product.ID: 2})
	require.NoError(t, err)

	stats, err := reports.GetDashboardStats(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)

	// 100.00 + 200.00: the walk-in due counts even though no customer
	// balance tracks it.
	assert.Equal(t, 300.0, stats.TotalDue)
	assert.Equal(t, int64(2), stats.PendingInvoices)
	assert.Equal(t, int64(1), stats.PendingCustomers)
	assert.Equal(t, 300.0, stats.TodaySales)
}

func TestTopProductsOrderedByRevenue(t *testing.T) {
	db := setupTestDB(t)
	ledger := NewLedgerRepository(db)
	reports := NewReportRepository(db)
	ctx := context.Background()

	bulbs := seedProduct(t, db, "LED Bulb", 10000, 50)   // 100.00 each
	fan := seedProduct(t, db, "Ceiling Fan", 850000, 10) // 8500.00 each

	// Five bulbs sell for 500.00, one fan for 8500.00: the fan tops the
	// report despite the lower quantity.
	bulbSale := buildInvoice(nil, bulbs, 5, 0)
	_, err := ledger.CreateInvoice(ctx, bulbSale, map[uuid.UUID]int{bulbs.ID: 5})
	require.NoError(t, err)

	fanSale := buildInvoice(nil, fan, 1, 0)
	fanSale.InvoiceNumber = "INV-000002"
	_, err = ledger.CreateInvoice(ctx, fanSale, map[uuid.UUID]int{fan.ID: 1})
	require.NoError(t, err)

	from := time.Now().Add(-time.Hour)
	to := time.Now().Add(time.Hour)
	results, err := reports.GetTopProducts(ctx, from, to, 10)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "Ceiling Fan", results[0].ProductName)
	assert.Equal(t, 8500.0, results[0].Revenue)
	assert.Equal(t, int64(1), results[0].QuantitySold)
	assert.Equal(t, "LED Bulb", results[1].ProductName)
	assert.Equal(t, 500.0, results[1].Revenue)
	assert.Equal(t, int64(5), results[1].QuantitySold)
}

func TestRevenueSummaryProfitFromItemCosts(t *testing.T) {
	db := setupTestDB(t)
	ledger := NewLedgerRepository(db)
	reports := NewReportRepository(db)
	ctx := context.Background()

	product := seedProduct(t, db, "Copper Wire", 5000, 20)
	cost := int64(3000)

	invoice := buildInvoice(nil, product, 4, 20000) // 200.00 total, fully paid
	invoice.Items[0].CostPerUnit = &cost
	_, err := ledger.CreateInvoice(ctx, invoice, map[uuid.UUID]int{product.ID: 4})
	require.NoError(t, err)

	from := time.Now().Add(-time.Hour)
	to := time.Now().Add(time.Hour)
	summary, err := reports.GetRevenueSummary(ctx, from, to)
	require.NoError(t, err)

	assert.Equal(t, 200.0, summary.Revenue)
	assert.Equal(t, 200.0, summary.Received)
	assert.Equal(t, 120.0, summary.Cost)
	assert.Equal(t, 80.0, summary.Profit)
	assert.Equal(t, int64(1), summary.Invoices)
}
