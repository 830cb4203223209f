package service

import (
	"context"
	"time"

	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/domain/repository"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/pkg/apperror"
)

// ReportService produces revenue and sales reports. Everything here is
// owner-only; the route layer enforces the role.
type ReportService struct {
	reportRepo repository.ReportRepository
	location   *time.Location
}

// NewReportService creates a new report service
func NewReportService(reportRepo repository.ReportRepository, location *time.Location) *ReportService {
	if location == nil {
		location = time.Local
	}
	return &ReportService{
		reportRepo: reportRepo,
		location:   location,
	}
}

// ResolvePeriod turns a named period into a concrete [from, to) range in
// the shop's timezone. Supported names: today, week, month, year. An empty
// period with explicit dates uses those instead (to is inclusive, so the
// range extends to the end of that day).
func (s *ReportService) ResolvePeriod(period, fromStr, toStr string) (time.Time, time.Time, error) {
	now := time.Now().In(s.location)
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location)

	switch period {
	case "today":
		return startOfDay, startOfDay.AddDate(0, 0, 1), nil
	case "week":
		// Week starts on Monday.
		offset := (int(now.Weekday()) + 6) % 7
		start := startOfDay.AddDate(0, 0, -offset)
		return start, start.AddDate(0, 0, 7), nil
	case "month":
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, s.location)
		return start, start.AddDate(0, 1, 0), nil
	case "year":
		start := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, s.location)
		return start, start.AddDate(1, 0, 0), nil
	case "":
		if fromStr == "" || toStr == "" {
			return time.Time{}, time.Time{}, apperror.NewValidationError("Provide a period or both from and to dates")
		}
		from, err := time.ParseInLocation("2006-01-02", fromStr, s.location)
		if err != nil {
			return time.Time{}, time.Time{}, apperror.NewValidationError("Invalid from date, expected YYYY-MM-DD")
		}
		to, err := time.ParseInLocation("2006-01-02", toStr, s.location)
		if err != nil {
			return time.Time{}, time.Time{}, apperror.NewValidationError("Invalid to date, expected YYYY-MM-DD")
		}
		if to.Before(from) {
			return time.Time{}, time.Time{}, apperror.NewValidationError("to date must not be before from date")
		}
		return from, to.AddDate(0, 0, 1), nil
	}
	return time.Time{}, time.Time{}, apperror.NewValidationError("Invalid period: must be today, week, month or year")
}

// GetRevenueSummary returns revenue, received, cost and profit over a range
func (s *ReportService) GetRevenueSummary(ctx context.Context, from, to time.Time) (*repository.RevenueSummary, error) {
	return s.reportRepo.GetRevenueSummary(ctx, from, to)
}

// GetTopProducts returns the best-selling products over a range
func (s *ReportService) GetTopProducts(ctx context.Context, from, to time.Time, limit int) ([]repository.TopProductResult, error) {
	return s.reportRepo.GetTopProducts(ctx, from, to, limit)
}
