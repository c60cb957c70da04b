package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/contafacil/contafacil-backend/internal/apperrors"
	"github.com/contafacil/contafacil-backend/internal/core/domain"
	portsrepo "github.com/contafacil/contafacil-backend/internal/core/ports/repositories"
	portssvc "github.com/contafacil/contafacil-backend/internal/core/ports/services"
	"github.com/contafacil/contafacil-backend/internal/dto"
)

// goalService implements the GoalSvcFacade interface
type goalService struct {
	BaseService
	goalRepo portsrepo.GoalRepository
}

// NewGoalService creates a new goal service
func NewGoalService(repo portsrepo.GoalRepository) portssvc.GoalSvcFacade {
	return &goalService{
		goalRepo: repo,
	}
}

// Ensure goalService implements the GoalSvcFacade interface
var _ portssvc.GoalSvcFacade = (*goalService)(nil)

func validateGoalAmounts(target, current decimal.Decimal) error {
	if !target.IsPositive() {
		return fmt.Errorf("target amount must be positive: %w", apperrors.ErrValidation)
	}
	if current.IsNegative() {
		return fmt.Errorf("current amount cannot be negative: %w", apperrors.ErrValidation)
	}
	return nil
}

func (s *goalService) CreateGoal(ctx context.Context, ownerID string, req dto.CreateGoalRequest) (*domain.FinancialGoal, error) {
	if err := validateGoalAmounts(req.TargetAmount, req.CurrentAmount); err != nil {
		return nil, err
	}

	deadline, err := time.Parse(domain.DateFormat, req.Deadline)
	if err != nil {
		return nil, fmt.Errorf("invalid deadline: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	goal := domain.FinancialGoal{
		GoalID:        uuid.NewString(),
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		Deadline:      deadline,
		Priority:      req.Priority,
		OwnerID:       ownerID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.goalRepo.SaveGoal(ctx, goal); err != nil {
		s.LogError(ctx, err, "Failed to save goal",
			slog.String("goal_id", goal.GoalID))
		return nil, err
	}

	s.LogInfo(ctx, "Goal created successfully",
		slog.String("goal_id", goal.GoalID))
	return &goal, nil
}

func (s *goalService) GetGoalByID(ctx context.Context, ownerID string, goalID string) (*domain.FinancialGoal, error) {
	goal, err := s.goalRepo.FindGoalByID(ctx, ownerID, goalID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find goal by ID",
				slog.String("goal_id", goalID))
		}
		return nil, err
	}
	return goal, nil
}

func (s *goalService) ListGoals(ctx context.Context, ownerID string) ([]domain.FinancialGoal, error) {
	goals, err := s.goalRepo.ListGoals(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list goals")
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	if goals == nil {
		return []domain.FinancialGoal{}, nil
	}
	return goals, nil
}

func (s *goalService) UpdateGoal(ctx context.Context, ownerID string, goalID string, req dto.UpdateGoalRequest) (*domain.FinancialGoal, error) {
	goal, err := s.GetGoalByID(ctx, ownerID, goalID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil {
		goal.Name = *req.Name
		updated = true
	}
	if req.TargetAmount != nil {
		goal.TargetAmount = *req.TargetAmount
		updated = true
	}
	if req.CurrentAmount != nil {
		goal.CurrentAmount = *req.CurrentAmount
		updated = true
	}
	if req.Deadline != nil {
		deadline, err := time.Parse(domain.DateFormat, *req.Deadline)
		if err != nil {
			return nil, fmt.Errorf("invalid deadline: %w", apperrors.ErrValidation)
		}
		goal.Deadline = deadline
		updated = true
	}
	if req.Priority != nil {
		goal.Priority = *req.Priority
		updated = true
	}
	if !updated {
		s.LogDebug(ctx, "No fields provided for goal update",
			slog.String("goal_id", goalID))
		return goal, nil
	}

	if err := validateGoalAmounts(goal.TargetAmount, goal.CurrentAmount); err != nil {
		return nil, err
	}

	goal.LastUpdatedAt = time.Now()

	if err := s.goalRepo.UpdateGoal(ctx, *goal); err != nil {
		s.LogError(ctx, err, "Failed to update goal",
			slog.String("goal_id", goalID))
		return nil, err
	}

	s.LogInfo(ctx, "Goal updated successfully",
		slog.String("goal_id", goalID))
	return goal, nil
}

func (s *goalService) UpdateGoalProgress(ctx context.Context, ownerID string, goalID string, req dto.UpdateGoalProgressRequest) (*domain.FinancialGoal, error) {
	goal, err := s.GetGoalByID(ctx, ownerID, goalID)
	if err != nil {
		return nil, err
	}

	if req.CurrentAmount.IsNegative() {
		return nil, fmt.Errorf("current amount cannot be negative: %w", apperrors.ErrValidation)
	}

	goal.CurrentAmount = req.CurrentAmount
	goal.LastUpdatedAt = time.Now()

	if err := s.goalRepo.UpdateGoal(ctx, *goal); err != nil {
		s.LogError(ctx, err, "Failed to update goal progress",
			slog.String("goal_id", goalID))
		return nil, err
	}

	s.LogInfo(ctx, "Goal progress updated",
		slog.String("goal_id", goalID),
		slog.String("current_amount", goal.CurrentAmount.String()))
	return goal, nil
}

func (s *goalService) DeleteGoal(ctx context.Context, ownerID string, goalID string) error {
	if _, err := s.GetGoalByID(ctx, ownerID, goalID); err != nil {
		return err
	}

	if err := s.goalRepo.DeleteGoal(ctx, ownerID, goalID); err != nil {
		s.LogError(ctx, err, "Failed to delete goal",
			slog.String("goal_id", goalID))
		return err
	}

	s.LogInfo(ctx, "Goal deleted successfully",
		slog.String("goal_id", goalID))
	return nil
}
