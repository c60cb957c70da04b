package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/contafacil/contafacil-backend/internal/apperrors"
	"github.com/contafacil/contafacil-backend/internal/core/domain"
	portsrepo "github.com/contafacil/contafacil-backend/internal/core/ports/repositories"
	"github.com/contafacil/contafacil-backend/internal/models"
)

type PgxReportRepository struct {
	pool *pgxpool.Pool
}

// newPgxReportRepository creates a new repository for stored financial reports.
func newPgxReportRepository(pool *pgxpool.Pool) portsrepo.ReportRepository {
	return &PgxReportRepository{pool: pool}
}

// Ensure PgxReportRepository implements portsrepo.ReportRepository
var _ portsrepo.ReportRepository = (*PgxReportRepository)(nil)

func toModelReport(d domain.FinancialReport) (models.FinancialReport, error) {
	data, err := json.Marshal(d.Data)
	if err != nil {
		return models.FinancialReport{}, fmt.Errorf("failed to encode report data: %w", err)
	}
	return models.FinancialReport{
		ReportID:   d.ReportID,
		Name:       d.Name,
		ReportType: models.ReportType(d.ReportType),
		StartDate:  d.StartDate,
		EndDate:    d.EndDate,
		Data:       data,
		OwnerID:    d.OwnerID,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}, nil
}

func toDomainReport(m models.FinancialReport) (domain.FinancialReport, error) {
	data, err := domain.DecodeReportData(domain.ReportType(m.ReportType), m.Data)
	if err != nil {
		return domain.FinancialReport{}, fmt.Errorf("failed to decode report %s: %w", m.ReportID, err)
	}
	return domain.FinancialReport{
		ReportID:   m.ReportID,
		Name:       m.Name,
		ReportType: domain.ReportType(m.ReportType),
		StartDate:  m.StartDate,
		EndDate:    m.EndDate,
		Data:       data,
		OwnerID:    m.OwnerID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}, nil
}

// SaveReport inserts a new report row with its JSONB payload.
func (r *PgxReportRepository) SaveReport(ctx context.Context, report domain.FinancialReport) error {
	m, err := toModelReport(report)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO financial_reports (report_id, name, report_type, start_date, end_date, data, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = r.pool.Exec(ctx, query,
		m.ReportID,
		m.Name,
		m.ReportType,
		m.StartDate,
		m.EndDate,
		m.Data,
		m.OwnerID,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: report with ID %s already exists", apperrors.ErrDuplicate, m.ReportID)
		}
		return fmt.Errorf("failed to save report %s: %w", m.ReportID, err)
	}
	return nil
}

// FindReportByID retrieves an owned report by its ID.
func (r *PgxReportRepository) FindReportByID(ctx context.Context, ownerID string, reportID string) (*domain.FinancialReport, error) {
	query := `
		SELECT report_id, name, report_type, start_date, end_date, data, owner_id, created_at, updated_at
		FROM financial_reports
		WHERE report_id = $1 AND owner_id = $2;
	`
	var m models.FinancialReport
	err := r.pool.QueryRow(ctx, query, reportID, ownerID).Scan(
		&m.ReportID,
		&m.Name,
		&m.ReportType,
		&m.StartDate,
		&m.EndDate,
		&m.Data,
		&m.OwnerID,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find report by ID %s: %w", reportID, err)
	}

	report, err := toDomainReport(m)
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// ListReports retrieves every report owned by the user, newest first.
func (r *PgxReportRepository) ListReports(ctx context.Context, ownerID string) ([]domain.FinancialReport, error) {
	query := `
		SELECT report_id, name, report_type, start_date, end_date, data, owner_id, created_at, updated_at
		FROM financial_reports
		WHERE owner_id = $1
		ORDER BY created_at DESC, report_id;
	`
	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}
	defer rows.Close()

	reports := []domain.FinancialReport{}
	for rows.Next() {
		var m models.FinancialReport
		err := rows.Scan(
			&m.ReportID,
			&m.Name,
			&m.ReportType,
			&m.StartDate,
			&m.EndDate,
			&m.Data,
			&m.OwnerID,
			&m.CreatedAt,
			&m.LastUpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		report, err := toDomainReport(m)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating report rows: %w", err)
	}
	return reports, nil
}

// UpdateReport updates an existing owned report.
func (r *PgxReportRepository) UpdateReport(ctx context.Context, report domain.FinancialReport) error {
	m, err := toModelReport(report)
	if err != nil {
		return err
	}

	query := `
		UPDATE financial_reports
		SET name = $1, start_date = $2, end_date = $3, data = $4, updated_at = $5
		WHERE report_id = $6 AND owner_id = $7;
	`
	tag, err := r.pool.Exec(ctx, query,
		m.Name,
		m.StartDate,
		m.EndDate,
		m.Data,
		m.LastUpdatedAt,
		m.ReportID,
		m.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update report %s: %w", m.ReportID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteReport hard-deletes an owned report.
func (r *PgxReportRepository) DeleteReport(ctx context.Context, ownerID string, reportID string) error {
	query := `DELETE FROM financial_reports WHERE report_id = $1 AND owner_id = $2;`

	tag, err := r.pool.Exec(ctx, query, reportID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete report %s: %w", reportID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
