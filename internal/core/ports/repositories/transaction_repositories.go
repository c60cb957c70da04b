package repositories

import (
	"context"
	"time"

	"github.com/contafacil/contafacil-backend/internal/core/domain"
)

// TransactionFilter is the conjunction of optional listing filters plus the
// pagination window. Nil/empty members are not applied.
type TransactionFilter struct {
	StartDate *time.Time // inclusive lower bound on date
	EndDate   *time.Time // inclusive upper bound on date
	Type      domain.TransactionType
	AccountID string
	Category  string
	Status    domain.TransactionStatus
	Limit     int
	Offset    int
}

// TransactionReader defines read operations for transaction data.
type TransactionReader interface {
	// FindTransactionByID retrieves a specific owned transaction.
	FindTransactionByID(ctx context.Context, ownerID string, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves the filtered window sorted by date descending,
	// together with the total number of matching rows.
	ListTransactions(ctx context.Context, ownerID string, filter TransactionFilter) ([]domain.Transaction, int, error)

	// FindTransactionsInRange retrieves every owned transaction with a date in
	// [start, end], unpaginated, for report aggregation.
	FindTransactionsInRange(ctx context.Context, ownerID string, start, end time.Time) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction updates an existing owned transaction.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction hard-deletes an owned transaction.
	DeleteTransaction(ctx context.Context, ownerID string, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
