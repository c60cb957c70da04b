package repositories

import (
	"context"

	"github.com/contafacil/contafacil-backend/internal/core/domain"
)

// GoalRepository defines persistence operations for financial goals.
type GoalRepository interface {
	SaveGoal(ctx context.Context, goal domain.FinancialGoal) error
	FindGoalByID(ctx context.Context, ownerID string, goalID string) (*domain.FinancialGoal, error)
	ListGoals(ctx context.Context, ownerID string) ([]domain.FinancialGoal, error)
	UpdateGoal(ctx context.Context, goal domain.FinancialGoal) error
	DeleteGoal(ctx context.Context, ownerID string, goalID string) error
}
