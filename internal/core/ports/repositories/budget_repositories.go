package repositories

import (
	"context"

	"github.com/contafacil/contafacil-backend/internal/core/domain"
)

// BudgetRepository defines persistence operations for budgets and their categories.
type BudgetRepository interface {
	// SaveBudget persists the budget and any categories it carries atomically.
	SaveBudget(ctx context.Context, budget domain.Budget) error
	FindBudgetByID(ctx context.Context, ownerID string, budgetID string) (*domain.Budget, error)
	ListBudgets(ctx context.Context, ownerID string) ([]domain.Budget, error)
	UpdateBudget(ctx context.Context, budget domain.Budget) error
	DeleteBudget(ctx context.Context, ownerID string, budgetID string) error

	// Categories are always addressed through their owning budget.
	SaveBudgetCategory(ctx context.Context, category domain.BudgetCategory) error
	FindBudgetCategoryByID(ctx context.Context, budgetID string, categoryID string) (*domain.BudgetCategory, error)
	ListBudgetCategories(ctx context.Context, budgetID string) ([]domain.BudgetCategory, error)
	UpdateBudgetCategory(ctx context.Context, category domain.BudgetCategory) error
	DeleteBudgetCategory(ctx context.Context, budgetID string, categoryID string) error
}
