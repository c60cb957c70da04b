package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/contafacil/contafacil-backend/internal/apperrors"
	"github.com/contafacil/contafacil-backend/internal/core/domain"
	portsrepo "github.com/contafacil/contafacil-backend/internal/core/ports/repositories"
	"github.com/contafacil/contafacil-backend/internal/models"
)

type PgxAccountRepository struct {
	pool *pgxpool.Pool
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{pool: pool}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

// Helper to convert domain.Account to models.Account for DB storage
func toModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:   d.AccountID,
		Name:        d.Name,
		AccountType: models.AccountType(d.AccountType),
		ParentID:    d.ParentID,
		OwnerID:     d.OwnerID,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// Helper to convert models.Account from DB to domain.Account
func toDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:   m.AccountID,
		Name:        m.Name,
		AccountType: domain.AccountType(m.AccountType),
		ParentID:    m.ParentID,
		OwnerID:     m.OwnerID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

func nullableID(id string) sql.NullString {
	if id == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: id, Valid: true}
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	modelAcc := toModelAccount(account)

	query := `
		INSERT INTO accounts (account_id, name, account_type, parent_id, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, query,
		modelAcc.AccountID,
		modelAcc.Name,
		modelAcc.AccountType,
		nullableID(modelAcc.ParentID),
		modelAcc.OwnerID,
		modelAcc.CreatedAt,
		modelAcc.LastUpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // Unique violation
				return fmt.Errorf("%w: account with ID %s already exists", apperrors.ErrDuplicate, modelAcc.AccountID)
			}
		}
		return fmt.Errorf("failed to save account %s: %w", modelAcc.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves an owned account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, ownerID string, accountID string) (*domain.Account, error) {
	query := `
		SELECT account_id, name, account_type, parent_id, owner_id, created_at, updated_at
		FROM accounts
		WHERE account_id = $1 AND owner_id = $2;
	`
	var modelAcc models.Account
	var parentID sql.NullString

	err := r.pool.QueryRow(ctx, query, accountID, ownerID).Scan(
		&modelAcc.AccountID,
		&modelAcc.Name,
		&modelAcc.AccountType,
		&parentID,
		&modelAcc.OwnerID,
		&modelAcc.CreatedAt,
		&modelAcc.LastUpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by ID %s: %w", accountID, err)
	}

	modelAcc.ParentID = parentID.String
	domainAcc := toDomainAccount(modelAcc)
	return &domainAcc, nil
}

// ListAccounts retrieves every account owned by the user, oldest first so
// parents come before the children created under them.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, ownerID string) ([]domain.Account, error) {
	query := `
		SELECT account_id, name, account_type, parent_id, owner_id, created_at, updated_at
		FROM accounts
		WHERE owner_id = $1
		ORDER BY created_at, account_id;
	`
	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		var modelAcc models.Account
		var parentID sql.NullString
		err := rows.Scan(
			&modelAcc.AccountID,
			&modelAcc.Name,
			&modelAcc.AccountType,
			&parentID,
			&modelAcc.OwnerID,
			&modelAcc.CreatedAt,
			&modelAcc.LastUpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		modelAcc.ParentID = parentID.String
		accounts = append(accounts, toDomainAccount(modelAcc))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}

// HasChildAccounts reports whether any owned account names accountID as parent.
func (r *PgxAccountRepository) HasChildAccounts(ctx context.Context, ownerID string, accountID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM accounts WHERE owner_id = $1 AND parent_id = $2
		);
	`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, ownerID, accountID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check child accounts for %s: %w", accountID, err)
	}
	return exists, nil
}

// UpdateAccount updates an existing owned account's details.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	modelAcc := toModelAccount(account)

	query := `
		UPDATE accounts
		SET name = $1, account_type = $2, parent_id = $3, updated_at = $4
		WHERE account_id = $5 AND owner_id = $6;
	`
	tag, err := r.pool.Exec(ctx, query,
		modelAcc.Name,
		modelAcc.AccountType,
		nullableID(modelAcc.ParentID),
		modelAcc.LastUpdatedAt,
		modelAcc.AccountID,
		modelAcc.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update account %s: %w", modelAcc.AccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteAccount hard-deletes an owned account.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, ownerID string, accountID string) error {
	query := `DELETE FROM accounts WHERE account_id = $1 AND owner_id = $2;`

	tag, err := r.pool.Exec(ctx, query, accountID, ownerID)
	if err != nil {
		return classifyAccountDeleteError(err, accountID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// classifyAccountDeleteError maps a failed account delete to a domain error.
// Transactions keep foreign keys onto accounts, so a foreign key violation
// means dependent records block the delete.
func classifyAccountDeleteError(err error, accountID string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return fmt.Errorf("%w: account %s is referenced by existing transactions", apperrors.ErrConflict, accountID)
	}
	return fmt.Errorf("failed to delete account %s: %w", accountID, err)
}
