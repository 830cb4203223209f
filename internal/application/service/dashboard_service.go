package service

import (
	"context"
	"time"

	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/domain/entity"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/domain/repository"
)

// DashboardService assembles the counters shown on the dashboard. Unlike
// the reports, the dashboard is visible to every operator and carries no
// cost or profit figures.
type DashboardService struct {
	reportRepo  repository.ReportRepository
	productRepo repository.ProductRepository
	location    *time.Location
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(reportRepo repository.ReportRepository, productRepo repository.ProductRepository, location *time.Location) *DashboardService {
	if location == nil {
		location = time.Local
	}
	return &DashboardService{
		reportRepo:  reportRepo,
		productRepo: productRepo,
		location:    location,
	}
}

// GetStats returns the dashboard counters, with "today" resolved in the
// shop's timezone
func (s *DashboardService) GetStats(ctx context.Context) (*repository.DashboardStats, error) {
	now := time.Now().In(s.location)
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location)
	return s.reportRepo.GetDashboardStats(ctx, startOfToday)
}

// GetLowStockProducts returns products at or below the given threshold
func (s *DashboardService) GetLowStockProducts(ctx context.Context, threshold int) ([]entity.Product, error) {
	return s.productRepo.GetLowStock(ctx, threshold)
}
