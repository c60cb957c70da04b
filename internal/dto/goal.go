package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/contafacil/contafacil-backend/internal/core/domain"
)

// CreateGoalRequest defines the data needed to create a financial goal.
// targetAmount must be positive; the service enforces the amount rules.
type CreateGoalRequest struct {
	Name          string              `json:"name" binding:"required"`
	TargetAmount  decimal.Decimal     `json:"targetAmount" binding:"required"`
	CurrentAmount decimal.Decimal     `json:"currentAmount"`
	Deadline      string              `json:"deadline" binding:"required,datetime=2006-01-02"`
	Priority      domain.GoalPriority `json:"priority" binding:"required,oneof=LOW MEDIUM HIGH"`
}

// UpdateGoalRequest defines the data allowed for a full goal update.
type UpdateGoalRequest struct {
	Name          *string              `json:"name"`
	TargetAmount  *decimal.Decimal     `json:"targetAmount"`
	CurrentAmount *decimal.Decimal     `json:"currentAmount"`
	Deadline      *string              `json:"deadline" binding:"omitempty,datetime=2006-01-02"`
	Priority      *domain.GoalPriority `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
}

// UpdateGoalProgressRequest defines the partial update of a goal's progress.
type UpdateGoalProgressRequest struct {
	CurrentAmount decimal.Decimal `json:"currentAmount" binding:"required"`
}

// GoalResponse defines the data returned for a financial goal.
// Progress is unclamped and may exceed 100.
type GoalResponse struct {
	GoalID        string              `json:"id"`
	Name          string              `json:"name"`
	TargetAmount  decimal.Decimal     `json:"targetAmount"`
	CurrentAmount decimal.Decimal     `json:"currentAmount"`
	Deadline      string              `json:"deadline"`
	Priority      domain.GoalPriority `json:"priority"`
	Progress      decimal.Decimal     `json:"progress"`
	OwnerID       string              `json:"ownerId"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

// ToGoalResponse converts a domain.FinancialGoal to GoalResponse DTO.
func ToGoalResponse(goal *domain.FinancialGoal) GoalResponse {
	return GoalResponse{
		GoalID:        goal.GoalID,
		Name:          goal.Name,
		TargetAmount:  goal.TargetAmount,
		CurrentAmount: goal.CurrentAmount,
		Deadline:      goal.Deadline.Format(domain.DateFormat),
		Priority:      goal.Priority,
		Progress:      goal.Progress(),
		OwnerID:       goal.OwnerID,
		CreatedAt:     goal.CreatedAt,
		UpdatedAt:     goal.LastUpdatedAt,
	}
}

// ToGoalResponses converts a slice of domain.FinancialGoal to DTOs.
func ToGoalResponses(goals []domain.FinancialGoal) []GoalResponse {
	responses := make([]GoalResponse, len(goals))
	for i, goal := range goals {
		responses[i] = ToGoalResponse(&goal)
	}
	return responses
}
