package dto

import (
	"time"

	"github.com/contafacil/contafacil-backend/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name        string             `json:"name" binding:"required"`
	AccountType domain.AccountType `json:"type" binding:"required,oneof=ASSET LIABILITY EQUITY INCOME EXPENSE"`
	ParentID    *string            `json:"parentId"` // Optional, use pointer for nullability
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	Name        *string             `json:"name"`
	AccountType *domain.AccountType `json:"type" binding:"omitempty,oneof=ASSET LIABILITY EQUITY INCOME EXPENSE"`
	ParentID    *string             `json:"parentId"` // Set to empty string to detach from the parent
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID   string             `json:"id"`
	Name        string             `json:"name"`
	AccountType domain.AccountType `json:"type"`
	ParentID    string             `json:"parentId,omitempty"`
	OwnerID     string             `json:"ownerId"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// FlattenedAccountResponse is one selection-list row of the flattened account tree.
type FlattenedAccountResponse struct {
	AccountID   string             `json:"id"`
	Path        string             `json:"path"`
	AccountType domain.AccountType `json:"type"`
	Depth       int                `json:"depth"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:   acc.AccountID,
		Name:        acc.Name,
		AccountType: acc.AccountType,
		ParentID:    acc.ParentID,
		OwnerID:     acc.OwnerID,
		CreatedAt:   acc.CreatedAt,
		UpdatedAt:   acc.LastUpdatedAt,
	}
}

// ToAccountResponses converts a slice of domain.Account to AccountResponse DTOs.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}

// ToFlattenedAccountResponses converts flattened tree rows to DTOs.
func ToFlattenedAccountResponses(rows []domain.FlattenedAccount) []FlattenedAccountResponse {
	res := make([]FlattenedAccountResponse, len(rows))
	for i, row := range rows {
		res[i] = FlattenedAccountResponse{
			AccountID:   row.AccountID,
			Path:        row.Path,
			AccountType: row.AccountType,
			Depth:       row.Depth,
		}
	}
	return res
}
