package services

import (
	"context"

	"github.com/contafacil/contafacil-backend/internal/core/domain"
	"github.com/contafacil/contafacil-backend/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account owned by the user.
	GetAccountByID(ctx context.Context, ownerID string, accountID string) (*domain.Account, error)

	// ListAccounts retrieves all accounts owned by the user.
	ListAccounts(ctx context.Context, ownerID string) ([]domain.Account, error)

	// GetAccountTree returns the user's accounts flattened into hierarchy order,
	// each entry carrying its full "Parent > Child" path.
	GetAccountTree(ctx context.Context, ownerID string) ([]domain.FlattenedAccount, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount persists a new account.
	CreateAccount(ctx context.Context, ownerID string, req dto.CreateAccountRequest) (*domain.Account, error)

	// UpdateAccount updates an existing account's details.
	UpdateAccount(ctx context.Context, ownerID string, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)

	// DeleteAccount removes an account. Accounts that still have children cannot be deleted.
	DeleteAccount(ctx context.Context, ownerID string, accountID string) error
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
