package services

import (
	"context"

	"github.com/contafacil/contafacil-backend/internal/core/domain"
	"github.com/contafacil/contafacil-backend/internal/dto"
)

// BudgetReaderSvc defines read operations for budget data
type BudgetReaderSvc interface {
	// GetBudgetByID retrieves a budget with its categories.
	GetBudgetByID(ctx context.Context, ownerID string, budgetID string) (*domain.Budget, error)

	// ListBudgets retrieves all budgets owned by the user, categories included.
	ListBudgets(ctx context.Context, ownerID string) ([]domain.Budget, error)
}

// BudgetWriterSvc defines write operations for budget data
type BudgetWriterSvc interface {
	// CreateBudget persists a new budget together with any initial categories.
	CreateBudget(ctx context.Context, ownerID string, req dto.CreateBudgetRequest) (*domain.Budget, error)

	// UpdateBudget updates a budget's own fields. Categories are managed separately.
	UpdateBudget(ctx context.Context, ownerID string, budgetID string, req dto.UpdateBudgetRequest) (*domain.Budget, error)

	// DeleteBudget removes a budget and its categories.
	DeleteBudget(ctx context.Context, ownerID string, budgetID string) error
}

// BudgetCategorySvc defines operations on the categories within a budget
type BudgetCategorySvc interface {
	// ListCategories retrieves the categories of an owned budget.
	ListCategories(ctx context.Context, ownerID string, budgetID string) ([]domain.BudgetCategory, error)

	// AddCategory appends a category to an existing budget.
	AddCategory(ctx context.Context, ownerID string, budgetID string, req dto.CreateBudgetCategoryRequest) (*domain.BudgetCategory, error)

	// UpdateCategory updates a category within a budget.
	UpdateCategory(ctx context.Context, ownerID string, budgetID string, categoryID string, req dto.UpdateBudgetCategoryRequest) (*domain.BudgetCategory, error)

	// RemoveCategory deletes a category from a budget.
	RemoveCategory(ctx context.Context, ownerID string, budgetID string, categoryID string) error
}

// BudgetSvcFacade combines all budget-related service interfaces
type BudgetSvcFacade interface {
	BudgetReaderSvc
	BudgetWriterSvc
	BudgetCategorySvc
}
