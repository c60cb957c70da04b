package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/contafacil/contafacil-backend/internal/core/domain"
	"github.com/contafacil/contafacil-backend/internal/utils/finance"
)

// CreateBudgetRequest defines the data needed to create a budget.
// endDate must be on or after startDate; the service enforces the ordering.
type CreateBudgetRequest struct {
	Name       string                        `json:"name" binding:"required"`
	StartDate  string                        `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate    string                        `json:"endDate" binding:"required,datetime=2006-01-02"`
	Categories []CreateBudgetCategoryRequest `json:"categories" binding:"omitempty,dive"`
}

// UpdateBudgetRequest defines the data allowed for updating a budget.
type UpdateBudgetRequest struct {
	Name      *string `json:"name"`
	StartDate *string `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
}

// CreateBudgetCategoryRequest defines the data for one category of a budget.
type CreateBudgetCategoryRequest struct {
	Name    string          `json:"name" binding:"required"`
	Planned decimal.Decimal `json:"planned"`
	Actual  decimal.Decimal `json:"actual"`
}

// UpdateBudgetCategoryRequest defines the data allowed for updating a category.
type UpdateBudgetCategoryRequest struct {
	Name    *string          `json:"name"`
	Planned *decimal.Decimal `json:"planned"`
	Actual  *decimal.Decimal `json:"actual"`
}

// BudgetCategoryResponse defines the data returned for a budget category.
// Utilization is actual/planned as a percentage, unclamped; clients clamp for
// progress bars themselves.
type BudgetCategoryResponse struct {
	CategoryID  string          `json:"id"`
	BudgetID    string          `json:"budgetId"`
	Name        string          `json:"name"`
	Planned     decimal.Decimal `json:"planned"`
	Actual      decimal.Decimal `json:"actual"`
	Utilization decimal.Decimal `json:"utilization"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// BudgetResponse defines the data returned for a budget with its categories.
type BudgetResponse struct {
	BudgetID    string                   `json:"id"`
	Name        string                   `json:"name"`
	StartDate   string                   `json:"startDate"`
	EndDate     string                   `json:"endDate"`
	OwnerID     string                   `json:"ownerId"`
	Categories  []BudgetCategoryResponse `json:"categories"`
	Utilization decimal.Decimal          `json:"utilization"`
	CreatedAt   time.Time                `json:"createdAt"`
	UpdatedAt   time.Time                `json:"updatedAt"`
}

// ToBudgetCategoryResponse converts a domain.BudgetCategory to its DTO.
func ToBudgetCategoryResponse(cat *domain.BudgetCategory) BudgetCategoryResponse {
	return BudgetCategoryResponse{
		CategoryID:  cat.CategoryID,
		BudgetID:    cat.BudgetID,
		Name:        cat.Name,
		Planned:     cat.Planned,
		Actual:      cat.Actual,
		Utilization: finance.CategoryUtilization(*cat),
		CreatedAt:   cat.CreatedAt,
		UpdatedAt:   cat.LastUpdatedAt,
	}
}

// ToBudgetCategoryResponses converts a slice of categories to DTOs.
func ToBudgetCategoryResponses(cats []domain.BudgetCategory) []BudgetCategoryResponse {
	responses := make([]BudgetCategoryResponse, len(cats))
	for i, cat := range cats {
		responses[i] = ToBudgetCategoryResponse(&cat)
	}
	return responses
}

// ToBudgetResponse converts a domain.Budget to BudgetResponse DTO.
func ToBudgetResponse(budget *domain.Budget) BudgetResponse {
	return BudgetResponse{
		BudgetID:    budget.BudgetID,
		Name:        budget.Name,
		StartDate:   budget.StartDate.Format(domain.DateFormat),
		EndDate:     budget.EndDate.Format(domain.DateFormat),
		OwnerID:     budget.OwnerID,
		Categories:  ToBudgetCategoryResponses(budget.Categories),
		Utilization: finance.OverallUtilization(budget.Categories),
		CreatedAt:   budget.CreatedAt,
		UpdatedAt:   budget.LastUpdatedAt,
	}
}

// ToBudgetResponses converts a slice of domain.Budget to DTOs.
func ToBudgetResponses(budgets []domain.Budget) []BudgetResponse {
	responses := make([]BudgetResponse, len(budgets))
	for i, budget := range budgets {
		responses[i] = ToBudgetResponse(&budget)
	}
	return responses
}
