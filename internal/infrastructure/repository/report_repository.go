package repository

import (
	"context"
	"time"

	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/domain/entity"
	domainRepo "github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/domain/repository"
	"gorm.io/gorm"
)

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) domainRepo.ReportRepository {
	return &reportRepository{db: db}
}

// All aggregates here run in cents and are converted to decimals at the
// end, so the SQL stays integer-only and portable across backends.

func (r *reportRepository) GetRevenueSummary(ctx context.Context, from, to time.Time) (*domainRepo.RevenueSummary, error) {
	var totals struct {
		Revenue  int64
		Received int64
		Invoices int64
	}
	err := r.db.WithContext(ctx).Model(&entity.Invoice{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Select("COALESCE(SUM(total), 0) AS revenue, COALESCE(SUM(paid), 0) AS received, COUNT(*) AS invoices").
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}

	// Cost comes from the item snapshots; items without a recorded cost
	// contribute zero rather than skewing profit.
	var cost int64
	err = r.db.WithContext(ctx).Model(&entity.InvoiceItem{}).
		Joins("JOIN invoices ON invoices.id = invoice_items.invoice_id").
		Where("invoices.created_at >= ? AND invoices.created_at < ?", from, to).
		Select("COALESCE(SUM(COALESCE(invoice_items.cost_per_unit, 0) * invoice_items.quantity), 0)").
		Scan(&cost).Error
	if err != nil {
		return nil, err
	}

	return &domainRepo.RevenueSummary{
		Revenue:  entity.FromCents(totals.Revenue),
		Received: entity.FromCents(totals.Received),
		Cost:     entity.FromCents(cost),
		Profit:   entity.FromCents(totals.Revenue - cost),
		Invoices: totals.Invoices,
	}, nil
}

func (r *reportRepository) GetTopProducts(ctx context.Context, from, to time.Time, limit int) ([]domainRepo.TopProductResult, error) {
	if limit <= 0 {
		limit = 10
	}

	var rows []struct {
		ProductID    string
		ProductName  string
		QuantitySold int64
		Revenue      int64
	}
	err := r.db.WithContext(ctx).Model(&entity.InvoiceItem{}).
		Joins("JOIN invoices ON invoices.id = invoice_items.invoice_id").
		Where("invoices.created_at >= ? AND invoices.created_at < ?", from, to).
		Select("invoice_items.product_id AS product_id, invoice_items.product_name AS product_name, SUM(invoice_items.quantity) AS quantity_sold, SUM(invoice_items.total) AS revenue").
		Group("invoice_items.product_id, invoice_items.product_name").
		Order("revenue DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	results := make([]domainRepo.TopProductResult, 0, len(rows))
	for _, row := range rows {
		results = append(results, domainRepo.TopProductResult{
			ProductID:    row.ProductID,
			ProductName:  row.ProductName,
			QuantitySold: row.QuantitySold,
			Revenue:      entity.FromCents(row.Revenue),
		})
	}
	return results, nil
}

func (r *reportRepository) GetDashboardStats(ctx context.Context, startOfToday time.Time) (*domainRepo.DashboardStats, error) {
	stats := &domainRepo.DashboardStats{}

	if err := r.db.WithContext(ctx).Model(&entity.Product{}).Count(&stats.Products).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&entity.Customer{}).Count(&stats.Customers).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&entity.Invoice{}).Count(&stats.Invoices).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&entity.Invoice{}).
		Where("due > 0").Count(&stats.PendingInvoices).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&entity.Customer{}).
		Where("total_due > 0").Count(&stats.PendingCustomers).Error; err != nil {
		return nil, err
	}

	// Outstanding due across all invoices, walk-ins included. Summing
	// customers.total_due would miss invoices without a customer.
	var totalDue int64
	if err := r.db.WithContext(ctx).Model(&entity.Invoice{}).
		Select("COALESCE(SUM(due), 0)").Scan(&totalDue).Error; err != nil {
		return nil, err
	}
	stats.TotalDue = entity.FromCents(totalDue)

	var todaySales int64
	if err := r.db.WithContext(ctx).Model(&entity.Invoice{}).
		Where("created_at >= ?", startOfToday).
		Select("COALESCE(SUM(total), 0)").Scan(&todaySales).Error; err != nil {
		return nil, err
	}
	stats.TodaySales = entity.FromCents(todaySales)

	return stats, nil
}
