package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget groups a set of spending categories over a date range.
// EndDate is always on or after StartDate.
type Budget struct {
	BudgetID   string           `json:"id"`
	Name       string           `json:"name"`
	StartDate  time.Time        `json:"startDate"`
	EndDate    time.Time        `json:"endDate"`
	OwnerID    string           `json:"ownerId"`
	Categories []BudgetCategory `json:"categories,omitempty"`
	AuditFields
}

// BudgetCategory tracks planned versus actual spend for one category of a budget.
// Planned and Actual are non-negative.
type BudgetCategory struct {
	CategoryID string          `json:"id"`
	BudgetID   string          `json:"budgetId"`
	Name       string          `json:"name"`
	Planned    decimal.Decimal `json:"planned"`
	Actual     decimal.Decimal `json:"actual"`
	AuditFields
}
