package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/contafacil/contafacil-backend/internal/apperrors"
	"github.com/contafacil/contafacil-backend/internal/core/domain"
	portsrepo "github.com/contafacil/contafacil-backend/internal/core/ports/repositories"
	portssvc "github.com/contafacil/contafacil-backend/internal/core/ports/services"
	"github.com/contafacil/contafacil-backend/internal/dto"
	"github.com/contafacil/contafacil-backend/internal/utils/finance"
)

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	BaseService
	txnRepo     portsrepo.TransactionRepositoryFacade
	accountRepo portsrepo.AccountReader
}

// NewTransactionService creates a new transaction service
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade, accountRepo portsrepo.AccountReader) portssvc.TransactionSvcFacade {
	return &transactionService{
		txnRepo:     txnRepo,
		accountRepo: accountRepo,
	}
}

// Ensure transactionService implements the TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// validateTransaction checks the business rules every transaction state must
// satisfy, on create and update alike: a positive amount, an owned source
// account, and for transfers an owned destination distinct from the source.
func (s *transactionService) validateTransaction(ctx context.Context, ownerID string, txn *domain.Transaction) error {
	if !txn.Amount.IsPositive() {
		return fmt.Errorf("amount must be positive: %w", apperrors.ErrValidation)
	}

	if _, err := s.accountRepo.FindAccountByID(ctx, ownerID, txn.AccountID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("account not found: %w", apperrors.ErrValidation)
		}
		return err
	}

	if txn.IsTransfer() {
		if txn.DestinationAccountID == "" {
			return fmt.Errorf("transfer requires a destination account: %w", apperrors.ErrValidation)
		}
		if txn.DestinationAccountID == txn.AccountID {
			return fmt.Errorf("transfer source and destination must differ: %w", apperrors.ErrValidation)
		}
		if _, err := s.accountRepo.FindAccountByID(ctx, ownerID, txn.DestinationAccountID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("destination account not found: %w", apperrors.ErrValidation)
			}
			return err
		}
	} else if txn.DestinationAccountID != "" {
		return fmt.Errorf("only transfers may carry a destination account: %w", apperrors.ErrValidation)
	}

	return nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, ownerID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID:        uuid.NewString(),
		Date:                 date,
		Description:          req.Description,
		Amount:               req.Amount,
		TransactionType:      req.TransactionType,
		AccountID:            req.AccountID,
		DestinationAccountID: req.DestinationAccountID,
		Category:             req.Category,
		Tags:                 req.Tags,
		PaymentMethod:        req.PaymentMethod,
		Status:               req.Status,
		OwnerID:              ownerID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.validateTransaction(ctx, ownerID, &txn); err != nil {
		return nil, err
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction",
			slog.String("transaction_id", txn.TransactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction created successfully",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.TransactionType)))
	return &txn, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, ownerID string, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, ownerID, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction by ID",
				slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	return txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, ownerID string, filter portsrepo.TransactionFilter) ([]domain.Transaction, int, error) {
	txns, total, err := s.txnRepo.ListTransactions(ctx, ownerID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}
	return txns, total, nil
}

func (s *transactionService) GetTransactionSummary(ctx context.Context, ownerID string, filter portsrepo.TransactionFilter) (*dto.TransactionSummaryResponse, error) {
	// The summary aggregates every match, so disable the pagination window.
	filter.Limit = 0
	filter.Offset = 0

	txns, _, err := s.txnRepo.ListTransactions(ctx, ownerID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for summary")
		return nil, err
	}

	return &dto.TransactionSummaryResponse{
		TotalIncome:       finance.TotalIncome(txns),
		TotalExpenses:     finance.TotalExpenses(txns),
		Balance:           finance.Balance(txns),
		IncomeByCategory:  finance.CategoryBreakdown(txns, domain.TransactionIncome),
		ExpenseByCategory: finance.CategoryBreakdown(txns, domain.TransactionExpense),
	}, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, ownerID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.GetTransactionByID(ctx, ownerID, transactionID)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		date, err := time.Parse(domain.DateFormat, *req.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date: %w", apperrors.ErrValidation)
		}
		txn.Date = date
	}
	if req.Description != nil {
		txn.Description = *req.Description
	}
	if req.Amount != nil {
		txn.Amount = *req.Amount
	}
	if req.TransactionType != nil {
		txn.TransactionType = *req.TransactionType
		if !txn.IsTransfer() {
			// Leaving TRANSFER drops the destination unless one is re-supplied below
			txn.DestinationAccountID = ""
		}
	}
	if req.AccountID != nil {
		txn.AccountID = *req.AccountID
	}
	if req.DestinationAccountID != nil {
		txn.DestinationAccountID = *req.DestinationAccountID
	}
	if req.Category != nil {
		txn.Category = *req.Category
	}
	if req.Tags != nil {
		txn.Tags = req.Tags
	}
	if req.PaymentMethod != nil {
		txn.PaymentMethod = *req.PaymentMethod
	}
	if req.Status != nil {
		txn.Status = *req.Status
	}

	// The merged state must satisfy the same rules as a fresh create
	if err := s.validateTransaction(ctx, ownerID, txn); err != nil {
		return nil, err
	}

	txn.LastUpdatedAt = time.Now()

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction",
			slog.String("transaction_id", transactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction updated successfully",
		slog.String("transaction_id", transactionID))
	return txn, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, ownerID string, transactionID string) error {
	if _, err := s.GetTransactionByID(ctx, ownerID, transactionID); err != nil {
		return err
	}

	if err := s.txnRepo.DeleteTransaction(ctx, ownerID, transactionID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction",
			slog.String("transaction_id", transactionID))
		return err
	}

	s.LogInfo(ctx, "Transaction deleted successfully",
		slog.String("transaction_id", transactionID))
	return nil
}
