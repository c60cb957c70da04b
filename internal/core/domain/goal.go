package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoalPriority ranks a financial goal for display ordering.
type GoalPriority string

const (
	PriorityLow    GoalPriority = "LOW"
	PriorityMedium GoalPriority = "MEDIUM"
	PriorityHigh   GoalPriority = "HIGH"
)

// FinancialGoal is a savings target with a deadline. TargetAmount is strictly
// positive; CurrentAmount is non-negative and may exceed the target.
type FinancialGoal struct {
	GoalID        string          `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Deadline      time.Time       `json:"deadline"`
	Priority      GoalPriority    `json:"priority"`
	OwnerID       string          `json:"ownerId"`
	AuditFields
}

// Progress returns currentAmount/targetAmount as a percentage, unclamped.
// A goal at 120% of target reports 120.
func (g FinancialGoal) Progress() decimal.Decimal {
	if g.TargetAmount.IsZero() {
		return decimal.Zero
	}
	return g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100))
}
