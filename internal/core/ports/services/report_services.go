package services

import (
	"context"

	"github.com/contafacil/contafacil-backend/internal/core/domain"
	"github.com/contafacil/contafacil-backend/internal/dto"
)

// ReportReaderSvc defines read operations for stored financial reports
type ReportReaderSvc interface {
	// GetReportByID retrieves a specific report owned by the user.
	GetReportByID(ctx context.Context, ownerID string, reportID string) (*domain.FinancialReport, error)

	// ListReports retrieves all reports owned by the user.
	ListReports(ctx context.Context, ownerID string) ([]domain.FinancialReport, error)
}

// ReportWriterSvc defines write operations for stored financial reports
type ReportWriterSvc interface {
	// CreateReport persists a report with caller-supplied data.
	CreateReport(ctx context.Context, ownerID string, req dto.CreateReportRequest) (*domain.FinancialReport, error)

	// UpdateReport updates a stored report.
	UpdateReport(ctx context.Context, ownerID string, reportID string, req dto.UpdateReportRequest) (*domain.FinancialReport, error)

	// DeleteReport removes a stored report.
	DeleteReport(ctx context.Context, ownerID string, reportID string) error
}

// ReportGeneratorSvc computes reports from the user's transactions and persists them
type ReportGeneratorSvc interface {
	// GenerateIncomeStatement builds an income statement for the period and stores it.
	GenerateIncomeStatement(ctx context.Context, ownerID string, req dto.GenerateReportRequest) (*domain.FinancialReport, error)

	// GenerateBalanceSheet builds a balance sheet as of the period end and stores it.
	GenerateBalanceSheet(ctx context.Context, ownerID string, req dto.GenerateReportRequest) (*domain.FinancialReport, error)

	// GenerateCashFlow builds a cash flow statement for the period and stores it.
	GenerateCashFlow(ctx context.Context, ownerID string, req dto.GenerateReportRequest) (*domain.FinancialReport, error)
}

// ReportSvcFacade combines all report-related service interfaces
type ReportSvcFacade interface {
	ReportReaderSvc
	ReportWriterSvc
	ReportGeneratorSvc
}
