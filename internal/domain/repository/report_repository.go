package repository

import (
	"context"
	"time"
)

// RevenueSummary aggregates invoice figures over a date range. Amounts are
// decimals, ready for display.
type RevenueSummary struct {
	Revenue  float64 `json:"revenue"`  // sum of invoice totals
	Received float64 `json:"received"` // sum of invoice paid amounts
	Cost     float64 `json:"cost"`     // sum of item cost x quantity
	Profit   float64 `json:"profit"`   // revenue - cost
	Invoices int64   `json:"invoices"`
}

// TopProductResult is one row of the top-products report
type TopProductResult struct {
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	QuantitySold int64   `json:"quantity_sold"`
	Revenue      float64 `json:"revenue"`
}

// DashboardStats holds the counters shown on the dashboard
type DashboardStats struct {
	Products         int64   `json:"products"`
	Customers        int64   `json:"customers"`
	Invoices         int64   `json:"invoices"`
	PendingInvoices  int64   `json:"pending_invoices"`
	PendingCustomers int64   `json:"pending_customers"`
	TotalDue         float64 `json:"total_due"`
	TodaySales       float64 `json:"today_sales"`
}

// ReportRepository defines aggregate queries for reporting. Revenue figures
// are owner-only; the route layer enforces that.
type ReportRepository interface {
	GetRevenueSummary(ctx context.Context, from, to time.Time) (*RevenueSummary, error)
	GetTopProducts(ctx context.Context, from, to time.Time, limit int) ([]TopProductResult, error)
	GetDashboardStats(ctx context.Context, startOfToday time.Time) (*DashboardStats, error)
}
