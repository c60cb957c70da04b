package dto

import (
	"time"

	"github.com/contafacil/contafacil-backend/internal/core/domain"
)

// CreateReportRequest defines the data needed to store a report directly.
// The data payload must match the report type; the service decodes it against
// the shape the type selects.
type CreateReportRequest struct {
	Name       string            `json:"name" binding:"required"`
	ReportType domain.ReportType `json:"type" binding:"required,oneof=INCOME_STATEMENT BALANCE_SHEET CASH_FLOW"`
	StartDate  string            `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate    string            `json:"endDate" binding:"required,datetime=2006-01-02"`
	Data       map[string]any    `json:"data"`
}

// UpdateReportRequest defines the data allowed for updating a stored report.
// The report type itself is immutable.
type UpdateReportRequest struct {
	Name      *string        `json:"name"`
	StartDate *string        `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   *string        `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
	Data      map[string]any `json:"data"`
}

// GenerateReportRequest defines the inputs for the report generation endpoints.
type GenerateReportRequest struct {
	Name      string `json:"name"`
	StartDate string `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" binding:"required,datetime=2006-01-02"`
}

// ReportResponse defines the data returned for a financial report.
// Data is the type-selected payload object.
type ReportResponse struct {
	ReportID   string            `json:"id"`
	Name       string            `json:"name"`
	ReportType domain.ReportType `json:"type"`
	StartDate  string            `json:"startDate"`
	EndDate    string            `json:"endDate"`
	Data       domain.ReportData `json:"data"`
	OwnerID    string            `json:"ownerId"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

// ToReportResponse converts a domain.FinancialReport to ReportResponse DTO.
func ToReportResponse(report *domain.FinancialReport) ReportResponse {
	return ReportResponse{
		ReportID:   report.ReportID,
		Name:       report.Name,
		ReportType: report.ReportType,
		StartDate:  report.StartDate.Format(domain.DateFormat),
		EndDate:    report.EndDate.Format(domain.DateFormat),
		Data:       report.Data,
		OwnerID:    report.OwnerID,
		CreatedAt:  report.CreatedAt,
		UpdatedAt:  report.LastUpdatedAt,
	}
}

// ToReportResponses converts a slice of domain.FinancialReport to DTOs.
func ToReportResponses(reports []domain.FinancialReport) []ReportResponse {
	responses := make([]ReportResponse, len(reports))
	for i, report := range reports {
		responses[i] = ToReportResponse(&report)
	}
	return responses
}
