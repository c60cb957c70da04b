package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/contafacil/contafacil-backend/internal/apperrors"
	"github.com/contafacil/contafacil-backend/internal/core/domain"
	portsrepo "github.com/contafacil/contafacil-backend/internal/core/ports/repositories"
	portssvc "github.com/contafacil/contafacil-backend/internal/core/ports/services"
	"github.com/contafacil/contafacil-backend/internal/dto"
	"github.com/contafacil/contafacil-backend/internal/utils/finance"
)

// reportService implements the ReportSvcFacade interface
type reportService struct {
	BaseService
	reportRepo  portsrepo.ReportRepository
	txnRepo     portsrepo.TransactionReader
	accountRepo portsrepo.AccountReader
}

// NewReportService creates a new report service
func NewReportService(reportRepo portsrepo.ReportRepository, txnRepo portsrepo.TransactionReader, accountRepo portsrepo.AccountReader) portssvc.ReportSvcFacade {
	return &reportService{
		reportRepo:  reportRepo,
		txnRepo:     txnRepo,
		accountRepo: accountRepo,
	}
}

// Ensure reportService implements the ReportSvcFacade interface
var _ portssvc.ReportSvcFacade = (*reportService)(nil)

func parseReportPeriod(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := time.Parse(domain.DateFormat, startDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start date: %w", apperrors.ErrValidation)
	}
	end, err := time.Parse(domain.DateFormat, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end date: %w", apperrors.ErrValidation)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("end date must not precede start date: %w", apperrors.ErrValidation)
	}
	return start, end, nil
}

func decodeReportPayload(reportType domain.ReportType, payload map[string]any) (domain.ReportData, error) {
	if payload == nil {
		return domain.ReportData{}, nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return domain.ReportData{}, fmt.Errorf("invalid report data: %w", apperrors.ErrValidation)
	}
	data, err := domain.DecodeReportData(reportType, raw)
	if err != nil {
		return domain.ReportData{}, fmt.Errorf("%s: %w", err.Error(), apperrors.ErrValidation)
	}
	return data, nil
}

func (s *reportService) CreateReport(ctx context.Context, ownerID string, req dto.CreateReportRequest) (*domain.FinancialReport, error) {
	start, end, err := parseReportPeriod(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	data, err := decodeReportPayload(req.ReportType, req.Data)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	report := domain.FinancialReport{
		ReportID:   uuid.NewString(),
		Name:       req.Name,
		ReportType: req.ReportType,
		StartDate:  start,
		EndDate:    end,
		Data:       data,
		OwnerID:    ownerID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.reportRepo.SaveReport(ctx, report); err != nil {
		s.LogError(ctx, err, "Failed to save report",
			slog.String("report_id", report.ReportID))
		return nil, err
	}

	s.LogInfo(ctx, "Report created successfully",
		slog.String("report_id", report.ReportID),
		slog.String("report_type", string(report.ReportType)))
	return &report, nil
}

func (s *reportService) GetReportByID(ctx context.Context, ownerID string, reportID string) (*domain.FinancialReport, error) {
	report, err := s.reportRepo.FindReportByID(ctx, ownerID, reportID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find report by ID",
				slog.String("report_id", reportID))
		}
		return nil, err
	}
	return report, nil
}

func (s *reportService) ListReports(ctx context.Context, ownerID string) ([]domain.FinancialReport, error) {
	reports, err := s.reportRepo.ListReports(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list reports")
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	if reports == nil {
		return []domain.FinancialReport{}, nil
	}
	return reports, nil
}

func (s *reportService) UpdateReport(ctx context.Context, ownerID string, reportID string, req dto.UpdateReportRequest) (*domain.FinancialReport, error) {
	report, err := s.GetReportByID(ctx, ownerID, reportID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		report.Name = *req.Name
	}
	if req.StartDate != nil {
		start, err := time.Parse(domain.DateFormat, *req.StartDate)
		if err != nil {
			return nil, fmt.Errorf("invalid start date: %w", apperrors.ErrValidation)
		}
		report.StartDate = start
	}
	if req.EndDate != nil {
		end, err := time.Parse(domain.DateFormat, *req.EndDate)
		if err != nil {
			return nil, fmt.Errorf("invalid end date: %w", apperrors.ErrValidation)
		}
		report.EndDate = end
	}
	if report.EndDate.Before(report.StartDate) {
		return nil, fmt.Errorf("end date must not precede start date: %w", apperrors.ErrValidation)
	}
	if req.Data != nil {
		data, err := decodeReportPayload(report.ReportType, req.Data)
		if err != nil {
			return nil, err
		}
		report.Data = data
	}

	report.LastUpdatedAt = time.Now()

	if err := s.reportRepo.UpdateReport(ctx, *report); err != nil {
		s.LogError(ctx, err, "Failed to update report",
			slog.String("report_id", reportID))
		return nil, err
	}

	s.LogInfo(ctx, "Report updated successfully",
		slog.String("report_id", reportID))
	return report, nil
}

func (s *reportService) DeleteReport(ctx context.Context, ownerID string, reportID string) error {
	if _, err := s.GetReportByID(ctx, ownerID, reportID); err != nil {
		return err
	}

	if err := s.reportRepo.DeleteReport(ctx, ownerID, reportID); err != nil {
		s.LogError(ctx, err, "Failed to delete report",
			slog.String("report_id", reportID))
		return err
	}

	s.LogInfo(ctx, "Report deleted successfully",
		slog.String("report_id", reportID))
	return nil
}

// generate computes the payload for the requested type over the period's
// transactions and stores the resulting report.
func (s *reportService) generate(ctx context.Context, ownerID string, reportType domain.ReportType, defaultName string, req dto.GenerateReportRequest) (*domain.FinancialReport, error) {
	start, end, err := parseReportPeriod(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	txns, err := s.txnRepo.FindTransactionsInRange(ctx, ownerID, start, end)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for report",
			slog.String("report_type", string(reportType)))
		return nil, err
	}

	var data domain.ReportData
	switch reportType {
	case domain.ReportIncomeStatement:
		payload := finance.BuildIncomeStatement(txns)
		data.IncomeStatement = &payload
	case domain.ReportBalanceSheet:
		accounts, err := s.accountRepo.ListAccounts(ctx, ownerID)
		if err != nil {
			s.LogError(ctx, err, "Failed to load accounts for balance sheet")
			return nil, err
		}
		payload := finance.BuildBalanceSheet(accounts, txns)
		data.BalanceSheet = &payload
	case domain.ReportCashFlow:
		payload := finance.BuildCashFlow(txns)
		data.CashFlow = &payload
	default:
		return nil, fmt.Errorf("unknown report type %q: %w", reportType, apperrors.ErrValidation)
	}

	name := req.Name
	if name == "" {
		name = fmt.Sprintf("%s %s - %s", defaultName, req.StartDate, req.EndDate)
	}

	now := time.Now()
	report := domain.FinancialReport{
		ReportID:   uuid.NewString(),
		Name:       name,
		ReportType: reportType,
		StartDate:  start,
		EndDate:    end,
		Data:       data,
		OwnerID:    ownerID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.reportRepo.SaveReport(ctx, report); err != nil {
		s.LogError(ctx, err, "Failed to save generated report",
			slog.String("report_id", report.ReportID))
		return nil, err
	}

	s.LogInfo(ctx, "Report generated successfully",
		slog.String("report_id", report.ReportID),
		slog.String("report_type", string(reportType)),
		slog.Int("transactions", len(txns)))
	return &report, nil
}

func (s *reportService) GenerateIncomeStatement(ctx context.Context, ownerID string, req dto.GenerateReportRequest) (*domain.FinancialReport, error) {
	return s.generate(ctx, ownerID, domain.ReportIncomeStatement, "Income Statement", req)
}

func (s *reportService) GenerateBalanceSheet(ctx context.Context, ownerID string, req dto.GenerateReportRequest) (*domain.FinancialReport, error) {
	return s.generate(ctx, ownerID, domain.ReportBalanceSheet, "Balance Sheet", req)
}

func (s *reportService) GenerateCashFlow(ctx context.Context, ownerID string, req dto.GenerateReportRequest) (*domain.FinancialReport, error) {
	return s.generate(ctx, ownerID, domain.ReportCashFlow, "Cash Flow Statement", req)
}
