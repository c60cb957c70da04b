package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is the database representation of a budget row.
type Budget struct {
	BudgetID  string    `db:"budget_id"`
	Name      string    `db:"name"`
	StartDate time.Time `db:"start_date"`
	EndDate   time.Time `db:"end_date"`
	OwnerID   string    `db:"owner_id"`
	AuditFields
}

// BudgetCategory is the database representation of one category of a budget.
type BudgetCategory struct {
	CategoryID string          `db:"category_id"`
	BudgetID   string          `db:"budget_id"`
	Name       string          `db:"name"`
	Planned    decimal.Decimal `db:"planned"`
	Actual     decimal.Decimal `db:"actual"`
	AuditFields
}
