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

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account service
func NewAccountService(repo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo: repo,
	}
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, ownerID string, req dto.CreateAccountRequest) (*domain.Account, error) {
	parentID := ""
	if req.ParentID != nil && *req.ParentID != "" {
		parentID = *req.ParentID
		// Parent must exist and belong to the same owner
		if _, err := s.accountRepo.FindAccountByID(ctx, ownerID, parentID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("parent account not found: %w", apperrors.ErrValidation)
			}
			s.LogError(ctx, err, "Failed to find parent account",
				slog.String("parent_id", parentID))
			return nil, err
		}
	}

	now := time.Now()
	account := domain.Account{
		AccountID:   uuid.NewString(),
		Name:        req.Name,
		AccountType: req.AccountType,
		ParentID:    parentID,
		OwnerID:     ownerID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account",
			slog.String("account_id", account.AccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.String("account_id", account.AccountID),
		slog.String("account_type", string(account.AccountType)))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, ownerID string, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, ownerID, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID",
				slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, ownerID string) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

func (s *accountService) GetAccountTree(ctx context.Context, ownerID string) ([]domain.FlattenedAccount, error) {
	accounts, err := s.ListAccounts(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return finance.FlattenAccountTree(accounts), nil
}

func (s *accountService) UpdateAccount(ctx context.Context, ownerID string, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	account, err := s.GetAccountByID(ctx, ownerID, accountID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil {
		account.Name = *req.Name
		updated = true
	}
	if req.AccountType != nil {
		account.AccountType = *req.AccountType
		updated = true
	}
	if req.ParentID != nil {
		newParentID := *req.ParentID
		if newParentID != "" {
			if _, err := s.accountRepo.FindAccountByID(ctx, ownerID, newParentID); err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					return nil, fmt.Errorf("parent account not found: %w", apperrors.ErrValidation)
				}
				return nil, err
			}
			// Reject parents that would close a cycle in the tree
			all, err := s.accountRepo.ListAccounts(ctx, ownerID)
			if err != nil {
				s.LogError(ctx, err, "Failed to list accounts for cycle check",
					slog.String("account_id", accountID))
				return nil, err
			}
			if finance.IsSelfOrDescendant(all, accountID, newParentID) {
				return nil, fmt.Errorf("account cannot be its own ancestor: %w", apperrors.ErrValidation)
			}
		}
		account.ParentID = newParentID
		updated = true
	}
	if !updated {
		s.LogDebug(ctx, "No fields provided for account update",
			slog.String("account_id", accountID))
		return account, nil
	}

	account.LastUpdatedAt = time.Now()

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account",
			slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account updated successfully",
		slog.String("account_id", account.AccountID))
	return account, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, ownerID string, accountID string) error {
	if _, err := s.GetAccountByID(ctx, ownerID, accountID); err != nil {
		return err
	}

	hasChildren, err := s.accountRepo.HasChildAccounts(ctx, ownerID, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check for child accounts",
			slog.String("account_id", accountID))
		return err
	}
	if hasChildren {
		return fmt.Errorf("account still has child accounts: %w", apperrors.ErrConflict)
	}

	if err := s.accountRepo.DeleteAccount(ctx, ownerID, accountID); err != nil {
		s.LogError(ctx, err, "Failed to delete account",
			slog.String("account_id", accountID))
		return err
	}

	s.LogInfo(ctx, "Account deleted successfully",
		slog.String("account_id", accountID))
	return nil
}
