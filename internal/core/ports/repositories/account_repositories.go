package repositories

import (
	"context"

	"github.com/contafacil/contafacil-backend/internal/core/domain"
)

// AccountReader defines read operations for account data.
// Every query is scoped to an owner; a row belonging to another owner behaves
// as if it did not exist.
type AccountReader interface {
	// FindAccountByID retrieves a specific owned account by its identifier.
	FindAccountByID(ctx context.Context, ownerID string, accountID string) (*domain.Account, error)

	// ListAccounts retrieves every account owned by the user.
	ListAccounts(ctx context.Context, ownerID string) ([]domain.Account, error)

	// HasChildAccounts reports whether any owned account names accountID as parent.
	HasChildAccounts(ctx context.Context, ownerID string, accountID string) (bool, error)
}

// AccountWriter defines write operations for account data.
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates an existing owned account's details.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount hard-deletes an owned account.
	DeleteAccount(ctx context.Context, ownerID string, accountID string) error
}

// AccountRepositoryFacade combines all account-related repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
