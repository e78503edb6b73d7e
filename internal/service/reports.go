package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/MZidanFI/Bioskop-Project/internal/identity"
	"github.com/MZidanFI/Bioskop-Project/internal/models"
	"github.com/MZidanFI/Bioskop-Project/internal/report"
)

// SalesStore is the slice of the booking repository the reporter needs.
type SalesStore interface {
	SalesByDate(ctx context.Context, date time.Time) ([]models.SalesRow, error)
	RevenueByDate(ctx context.Context, date time.Time) (int64, error)
	TicketCounts(ctx context.Context) ([]models.TicketCount, error)
}

// MovieLister is the slice of the movie repository the admin panel needs.
type MovieLister interface {
	List(ctx context.Context, status, titleQuery string) ([]models.Movie, error)
}

type ReportService struct {
	sales  SalesStore
	movies MovieLister
}

func NewReportService(sales SalesStore, movies MovieLister) *ReportService {
	return &ReportService{
		sales:  sales,
		movies: movies,
	}
}

// DailyReport returns every booking of the calendar date joined with its
// user and movie, in booking id order.
func (s *ReportService) DailyReport(ctx context.Context, id identity.Identity, date time.Time) ([]models.SalesRow, error) {
	if err := identity.RequireAdmin(id); err != nil {
		return nil, err
	}

	rows, err := s.sales.SalesByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily sales: %w", err)
	}
	return rows, nil
}

// DailyRevenue sums movie prices over the date's bookings. Both booked
// and history rows count: a history row is a consumed but valid sale.
func (s *ReportService) DailyRevenue(ctx context.Context, id identity.Identity, date time.Time) (int64, error) {
	if err := identity.RequireAdmin(id); err != nil {
		return 0, err
	}

	revenue, err := s.sales.RevenueByDate(ctx, date)
	if err != nil {
		return 0, fmt.Errorf("failed to get daily revenue: %w", err)
	}
	return revenue, nil
}

// AdminPanel assembles everything the dashboard shows for one date.
func (s *ReportService) AdminPanel(ctx context.Context, id identity.Identity, date time.Time) (*models.AdminPanelResponse, error) {
	if err := identity.RequireAdmin(id); err != nil {
		return nil, err
	}

	movies, err := s.movies.List(ctx, "", "")
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}

	sales, err := s.sales.SalesByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily sales: %w", err)
	}

	revenue, err := s.sales.RevenueByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily revenue: %w", err)
	}

	counts, err := s.sales.TicketCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket counts: %w", err)
	}

	if sales == nil {
		sales = []models.SalesRow{}
	}

	return &models.AdminPanelResponse{
		Date:         date.Format("2006-01-02"),
		Movies:       movies,
		DailySales:   sales,
		DailyRevenue: revenue,
		TicketCounts: counts,
	}, nil
}

// WriteCSV streams the downloadable report for a date and returns the
// filename to serve it under.
func (s *ReportService) WriteCSV(ctx context.Context, id identity.Identity, date time.Time, w io.Writer) (string, error) {
	rows, err := s.DailyReport(ctx, id, date)
	if err != nil {
		return "", err
	}

	if err := report.WriteCSV(w, rows); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	return report.Filename(date), nil
}
