package repositories

import (
	"context"

	"github.com/contafacil/contafacil-backend/internal/core/domain"
)

// ReportRepository defines persistence operations for stored financial reports.
type ReportRepository interface {
	SaveReport(ctx context.Context, report domain.FinancialReport) error
	FindReportByID(ctx context.Context, ownerID string, reportID string) (*domain.FinancialReport, error)
	ListReports(ctx context.Context, ownerID string) ([]domain.FinancialReport, error)
	UpdateReport(ctx context.Context, report domain.FinancialReport) error
	DeleteReport(ctx context.Context, ownerID string, reportID string) error
}
