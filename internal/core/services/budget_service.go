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

// budgetService implements the BudgetSvcFacade interface
type budgetService struct {
	BaseService
	budgetRepo portsrepo.BudgetRepository
}

// NewBudgetService creates a new budget service
func NewBudgetService(repo portsrepo.BudgetRepository) portssvc.BudgetSvcFacade {
	return &budgetService{
		budgetRepo: repo,
	}
}

// Ensure budgetService implements the BudgetSvcFacade interface
var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

func validateCategoryAmounts(planned, actual decimal.Decimal) error {
	if planned.IsNegative() {
		return fmt.Errorf("planned amount cannot be negative: %w", apperrors.ErrValidation)
	}
	if actual.IsNegative() {
		return fmt.Errorf("actual amount cannot be negative: %w", apperrors.ErrValidation)
	}
	return nil
}

func (s *budgetService) CreateBudget(ctx context.Context, ownerID string, req dto.CreateBudgetRequest) (*domain.Budget, error) {
	startDate, err := time.Parse(domain.DateFormat, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date: %w", apperrors.ErrValidation)
	}
	endDate, err := time.Parse(domain.DateFormat, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date: %w", apperrors.ErrValidation)
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("end date must not precede start date: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	budget := domain.Budget{
		BudgetID:  uuid.NewString(),
		Name:      req.Name,
		StartDate: startDate,
		EndDate:   endDate,
		OwnerID:   ownerID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	categories := make([]domain.BudgetCategory, 0, len(req.Categories))
	for _, catReq := range req.Categories {
		if err := validateCategoryAmounts(catReq.Planned, catReq.Actual); err != nil {
			return nil, err
		}
		categories = append(categories, domain.BudgetCategory{
			CategoryID: uuid.NewString(),
			BudgetID:   budget.BudgetID,
			Name:       catReq.Name,
			Planned:    catReq.Planned,
			Actual:     catReq.Actual,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				LastUpdatedAt: now,
			},
		})
	}

	budget.Categories = categories
	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		s.LogError(ctx, err, "Failed to save budget",
			slog.String("budget_id", budget.BudgetID))
		return nil, err
	}

	s.LogInfo(ctx, "Budget created successfully",
		slog.String("budget_id", budget.BudgetID),
		slog.Int("categories", len(categories)))
	return &budget, nil
}

func (s *budgetService) GetBudgetByID(ctx context.Context, ownerID string, budgetID string) (*domain.Budget, error) {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, ownerID, budgetID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find budget by ID",
				slog.String("budget_id", budgetID))
		}
		return nil, err
	}
	return budget, nil
}

func (s *budgetService) ListBudgets(ctx context.Context, ownerID string) ([]domain.Budget, error) {
	budgets, err := s.budgetRepo.ListBudgets(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budgets")
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	if budgets == nil {
		return []domain.Budget{}, nil
	}
	return budgets, nil
}

func (s *budgetService) UpdateBudget(ctx context.Context, ownerID string, budgetID string, req dto.UpdateBudgetRequest) (*domain.Budget, error) {
	budget, err := s.GetBudgetByID(ctx, ownerID, budgetID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil {
		budget.Name = *req.Name
		updated = true
	}
	if req.StartDate != nil {
		startDate, err := time.Parse(domain.DateFormat, *req.StartDate)
		if err != nil {
			return nil, fmt.Errorf("invalid start date: %w", apperrors.ErrValidation)
		}
		budget.StartDate = startDate
		updated = true
	}
	if req.EndDate != nil {
		endDate, err := time.Parse(domain.DateFormat, *req.EndDate)
		if err != nil {
			return nil, fmt.Errorf("invalid end date: %w", apperrors.ErrValidation)
		}
		budget.EndDate = endDate
		updated = true
	}
	if budget.EndDate.Before(budget.StartDate) {
		return nil, fmt.Errorf("end date must not precede start date: %w", apperrors.ErrValidation)
	}
	if !updated {
		s.LogDebug(ctx, "No fields provided for budget update",
			slog.String("budget_id", budgetID))
		return budget, nil
	}

	budget.LastUpdatedAt = time.Now()

	if err := s.budgetRepo.UpdateBudget(ctx, *budget); err != nil {
		s.LogError(ctx, err, "Failed to update budget",
			slog.String("budget_id", budgetID))
		return nil, err
	}

	s.LogInfo(ctx, "Budget updated successfully",
		slog.String("budget_id", budgetID))
	return budget, nil
}

func (s *budgetService) DeleteBudget(ctx context.Context, ownerID string, budgetID string) error {
	if _, err := s.GetBudgetByID(ctx, ownerID, budgetID); err != nil {
		return err
	}

	if err := s.budgetRepo.DeleteBudget(ctx, ownerID, budgetID); err != nil {
		s.LogError(ctx, err, "Failed to delete budget",
			slog.String("budget_id", budgetID))
		return err
	}

	s.LogInfo(ctx, "Budget deleted successfully",
		slog.String("budget_id", budgetID))
	return nil
}

func (s *budgetService) ListCategories(ctx context.Context, ownerID string, budgetID string) ([]domain.BudgetCategory, error) {
	// The budget lookup doubles as the ownership check
	if _, err := s.GetBudgetByID(ctx, ownerID, budgetID); err != nil {
		return nil, err
	}

	categories, err := s.budgetRepo.ListBudgetCategories(ctx, budgetID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budget categories",
			slog.String("budget_id", budgetID))
		return nil, fmt.Errorf("failed to list budget categories: %w", err)
	}
	if categories == nil {
		return []domain.BudgetCategory{}, nil
	}
	return categories, nil
}

func (s *budgetService) AddCategory(ctx context.Context, ownerID string, budgetID string, req dto.CreateBudgetCategoryRequest) (*domain.BudgetCategory, error) {
	// The budget lookup doubles as the ownership check
	if _, err := s.GetBudgetByID(ctx, ownerID, budgetID); err != nil {
		return nil, err
	}

	if err := validateCategoryAmounts(req.Planned, req.Actual); err != nil {
		return nil, err
	}

	now := time.Now()
	category := domain.BudgetCategory{
		CategoryID: uuid.NewString(),
		BudgetID:   budgetID,
		Name:       req.Name,
		Planned:    req.Planned,
		Actual:     req.Actual,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.budgetRepo.SaveBudgetCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save budget category",
			slog.String("budget_id", budgetID),
			slog.String("category_id", category.CategoryID))
		return nil, err
	}

	s.LogInfo(ctx, "Budget category added successfully",
		slog.String("budget_id", budgetID),
		slog.String("category_id", category.CategoryID))
	return &category, nil
}

func (s *budgetService) UpdateCategory(ctx context.Context, ownerID string, budgetID string, categoryID string, req dto.UpdateBudgetCategoryRequest) (*domain.BudgetCategory, error) {
	if _, err := s.GetBudgetByID(ctx, ownerID, budgetID); err != nil {
		return nil, err
	}

	category, err := s.budgetRepo.FindBudgetCategoryByID(ctx, budgetID, categoryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find budget category",
				slog.String("budget_id", budgetID),
				slog.String("category_id", categoryID))
		}
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Planned != nil {
		category.Planned = *req.Planned
	}
	if req.Actual != nil {
		category.Actual = *req.Actual
	}
	if err := validateCategoryAmounts(category.Planned, category.Actual); err != nil {
		return nil, err
	}

	category.LastUpdatedAt = time.Now()

	if err := s.budgetRepo.UpdateBudgetCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to update budget category",
			slog.String("budget_id", budgetID),
			slog.String("category_id", categoryID))
		return nil, err
	}

	s.LogInfo(ctx, "Budget category updated successfully",
		slog.String("budget_id", budgetID),
		slog.String("category_id", categoryID))
	return category, nil
}

func (s *budgetService) RemoveCategory(ctx context.Context, ownerID string, budgetID string, categoryID string) error {
	if _, err := s.GetBudgetByID(ctx, ownerID, budgetID); err != nil {
		return err
	}

	if _, err := s.budgetRepo.FindBudgetCategoryByID(ctx, budgetID, categoryID); err != nil {
		return err
	}

	if err := s.budgetRepo.DeleteBudgetCategory(ctx, budgetID, categoryID); err != nil {
		s.LogError(ctx, err, "Failed to delete budget category",
			slog.String("budget_id", budgetID),
			slog.String("category_id", categoryID))
		return err
	}

	s.LogInfo(ctx, "Budget category removed successfully",
		slog.String("budget_id", budgetID),
		slog.String("category_id", categoryID))
	return nil
}
