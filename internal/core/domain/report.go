package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ReportType selects which payload shape a financial report carries.
type ReportType string

const (
	ReportIncomeStatement ReportType = "INCOME_STATEMENT"
	ReportBalanceSheet    ReportType = "BALANCE_SHEET"
	ReportCashFlow        ReportType = "CASH_FLOW"
)

// CategoryTotals is a total with its per-category breakdown.
type CategoryTotals struct {
	Total      decimal.Decimal            `json:"total"`
	Categories map[string]decimal.Decimal `json:"categories"`
}

// IncomeStatementData is the payload of an INCOME_STATEMENT report.
type IncomeStatementData struct {
	Income    CategoryTotals  `json:"income"`
	Expenses  CategoryTotals  `json:"expenses"`
	NetIncome decimal.Decimal `json:"netIncome"`
}

// BalanceSheetData is the payload of a BALANCE_SHEET report.
// Equity is derived and always equals assets.total - liabilities.total.
type BalanceSheetData struct {
	Assets      CategoryTotals  `json:"assets"`
	Liabilities CategoryTotals  `json:"liabilities"`
	Equity      decimal.Decimal `json:"equity"`
}

// CashFlowData is the payload of a CASH_FLOW report. Transfers are excluded;
// only completed income/expense transactions move cash here.
type CashFlowData struct {
	Inflows     CategoryTotals  `json:"inflows"`
	Outflows    CategoryTotals  `json:"outflows"`
	NetCashFlow decimal.Decimal `json:"netCashFlow"`
}

// ReportData is a tagged union over the three payload shapes. Exactly one
// branch is non-nil, matching the owning report's type.
type ReportData struct {
	IncomeStatement *IncomeStatementData
	BalanceSheet    *BalanceSheetData
	CashFlow        *CashFlowData
}

// MarshalJSON emits the active branch as the raw payload object.
func (d ReportData) MarshalJSON() ([]byte, error) {
	switch {
	case d.IncomeStatement != nil:
		return json.Marshal(d.IncomeStatement)
	case d.BalanceSheet != nil:
		return json.Marshal(d.BalanceSheet)
	case d.CashFlow != nil:
		return json.Marshal(d.CashFlow)
	default:
		return []byte("null"), nil
	}
}

// DecodeReportData parses a raw payload into the branch selected by reportType.
// Unknown fields fail the decode so a payload cannot silently carry the wrong
// shape for its type.
func DecodeReportData(reportType ReportType, raw []byte) (ReportData, error) {
	var data ReportData
	if len(raw) == 0 {
		return data, nil
	}
	decode := func(target any) error {
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.DisallowUnknownFields()
		return dec.Decode(target)
	}
	switch reportType {
	case ReportIncomeStatement:
		payload := &IncomeStatementData{}
		if err := decode(payload); err != nil {
			return data, fmt.Errorf("failed to decode income statement payload: %w", err)
		}
		data.IncomeStatement = payload
	case ReportBalanceSheet:
		payload := &BalanceSheetData{}
		if err := decode(payload); err != nil {
			return data, fmt.Errorf("failed to decode balance sheet payload: %w", err)
		}
		data.BalanceSheet = payload
	case ReportCashFlow:
		payload := &CashFlowData{}
		if err := decode(payload); err != nil {
			return data, fmt.Errorf("failed to decode cash flow payload: %w", err)
		}
		data.CashFlow = payload
	default:
		return data, fmt.Errorf("unknown report type %q", reportType)
	}
	return data, nil
}

// FinancialReport is a stored, generated report over a date range.
type FinancialReport struct {
	ReportID   string     `json:"id"`
	Name       string     `json:"name"`
	ReportType ReportType `json:"type"`
	StartDate  time.Time  `json:"startDate"`
	EndDate    time.Time  `json:"endDate"`
	Data       ReportData `json:"data"`
	OwnerID    string     `json:"ownerId"`
	AuditFields
}
