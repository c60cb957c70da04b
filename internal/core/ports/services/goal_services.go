package services

import (
	"context"

	"github.com/contafacil/contafacil-backend/internal/core/domain"
	"github.com/contafacil/contafacil-backend/internal/dto"
)

// GoalReaderSvc defines read operations for financial goal data
type GoalReaderSvc interface {
	// GetGoalByID retrieves a specific goal owned by the user.
	GetGoalByID(ctx context.Context, ownerID string, goalID string) (*domain.FinancialGoal, error)

	// ListGoals retrieves all goals owned by the user.
	ListGoals(ctx context.Context, ownerID string) ([]domain.FinancialGoal, error)
}

// GoalWriterSvc defines write operations for financial goal data
type GoalWriterSvc interface {
	// CreateGoal persists a new financial goal.
	CreateGoal(ctx context.Context, ownerID string, req dto.CreateGoalRequest) (*domain.FinancialGoal, error)

	// UpdateGoal updates an existing goal's details.
	UpdateGoal(ctx context.Context, ownerID string, goalID string, req dto.UpdateGoalRequest) (*domain.FinancialGoal, error)

	// UpdateGoalProgress sets the goal's current amount.
	UpdateGoalProgress(ctx context.Context, ownerID string, goalID string, req dto.UpdateGoalProgressRequest) (*domain.FinancialGoal, error)

	// DeleteGoal removes a goal.
	DeleteGoal(ctx context.Context, ownerID string, goalID string) error
}

// GoalSvcFacade combines all goal-related service interfaces
type GoalSvcFacade interface {
	GoalReaderSvc
	GoalWriterSvc
}
