package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoalPriority ranks a financial goal.
type GoalPriority string

const (
	PriorityLow    GoalPriority = "LOW"
	PriorityMedium GoalPriority = "MEDIUM"
	PriorityHigh   GoalPriority = "HIGH"
)

// FinancialGoal is the database representation of a goal row.
type FinancialGoal struct {
	GoalID        string          `db:"goal_id"`
	Name          string          `db:"name"`
	TargetAmount  decimal.Decimal `db:"target_amount"`
	CurrentAmount decimal.Decimal `db:"current_amount"`
	Deadline      time.Time       `db:"deadline"`
	Priority      GoalPriority    `db:"priority"`
	OwnerID       string          `db:"owner_id"`
	AuditFields
}
