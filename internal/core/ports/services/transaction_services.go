package services

import (
	"context"

	"github.com/contafacil/contafacil-backend/internal/core/domain"
	"github.com/contafacil/contafacil-backend/internal/core/ports/repositories"
	"github.com/contafacil/contafacil-backend/internal/dto"
)

// TransactionReaderSvc defines read operations for transaction data
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a specific transaction owned by the user.
	GetTransactionByID(ctx context.Context, ownerID string, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a filtered, paginated list of the user's transactions
	// along with the total number of matches before pagination.
	ListTransactions(ctx context.Context, ownerID string, filter repositories.TransactionFilter) ([]domain.Transaction, int, error)

	// GetTransactionSummary aggregates the user's completed transactions into
	// income/expense totals and per-category breakdowns.
	GetTransactionSummary(ctx context.Context, ownerID string, filter repositories.TransactionFilter) (*dto.TransactionSummaryResponse, error)
}

// TransactionWriterSvc defines write operations for transaction data
type TransactionWriterSvc interface {
	// CreateTransaction persists a new transaction after validating its account references.
	CreateTransaction(ctx context.Context, ownerID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// UpdateTransaction updates an existing transaction, re-validating account
	// references for the resulting state.
	UpdateTransaction(ctx context.Context, ownerID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction.
	DeleteTransaction(ctx context.Context, ownerID string, transactionID string) error
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
