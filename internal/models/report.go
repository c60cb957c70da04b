package models

import "time"

// ReportType selects the payload shape of a stored report.
type ReportType string

const (
	ReportIncomeStatement ReportType = "INCOME_STATEMENT"
	ReportBalanceSheet    ReportType = "BALANCE_SHEET"
	ReportCashFlow        ReportType = "CASH_FLOW"
)

// FinancialReport is the database representation of a report row.
// Data is the raw JSONB payload; its shape is keyed by ReportType and decoded
// into the domain tagged union on load.
type FinancialReport struct {
	ReportID   string     `db:"report_id"`
	Name       string     `db:"name"`
	ReportType ReportType `db:"report_type"`
	StartDate  time.Time  `db:"start_date"`
	EndDate    time.Time  `db:"end_date"`
	Data       []byte     `db:"data"`
	OwnerID    string     `db:"owner_id"`
	AuditFields
}
