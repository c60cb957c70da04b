package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/contafacil/contafacil-backend/internal/apperrors"
	"github.com/contafacil/contafacil-backend/internal/core/domain"
	portsrepo "github.com/contafacil/contafacil-backend/internal/core/ports/repositories"
	"github.com/contafacil/contafacil-backend/internal/models"
)

type PgxTransactionRepository struct {
	pool *pgxpool.Pool
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{pool: pool}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func toModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:        d.TransactionID,
		Date:                 d.Date,
		Description:          d.Description,
		Amount:               d.Amount,
		TransactionType:      models.TransactionType(d.TransactionType),
		AccountID:            d.AccountID,
		DestinationAccountID: d.DestinationAccountID,
		Category:             d.Category,
		Tags:                 d.Tags,
		PaymentMethod:        d.PaymentMethod,
		Status:               models.TransactionStatus(d.Status),
		OwnerID:              d.OwnerID,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

func toDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:        m.TransactionID,
		Date:                 m.Date,
		Description:          m.Description,
		Amount:               m.Amount,
		TransactionType:      domain.TransactionType(m.TransactionType),
		AccountID:            m.AccountID,
		DestinationAccountID: m.DestinationAccountID,
		Category:             m.Category,
		Tags:                 m.Tags,
		PaymentMethod:        m.PaymentMethod,
		Status:               domain.TransactionStatus(m.Status),
		OwnerID:              m.OwnerID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

const transactionColumns = `transaction_id, date, description, amount, transaction_type, account_id, destination_account_id, category, tags, payment_method, status, owner_id, created_at, updated_at`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	var destinationID sql.NullString
	err := row.Scan(
		&m.TransactionID,
		&m.Date,
		&m.Description,
		&m.Amount,
		&m.TransactionType,
		&m.AccountID,
		&destinationID,
		&m.Category,
		&m.Tags,
		&m.PaymentMethod,
		&m.Status,
		&m.OwnerID,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return m, err
	}
	m.DestinationAccountID = destinationID.String
	return m, nil
}

// SaveTransaction inserts a new transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := toModelTransaction(txn)

	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.pool.Exec(ctx, query,
		m.TransactionID,
		m.Date,
		m.Description,
		m.Amount,
		m.TransactionType,
		m.AccountID,
		nullableID(m.DestinationAccountID),
		m.Category,
		m.Tags,
		m.PaymentMethod,
		m.Status,
		m.OwnerID,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

// FindTransactionByID retrieves an owned transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, ownerID string, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE transaction_id = $1 AND owner_id = $2;
	`
	m, err := scanTransaction(r.pool.QueryRow(ctx, query, transactionID, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	txn := toDomainTransaction(m)
	return &txn, nil
}

// buildFilterClauses assembles the WHERE conjunction for the filter, starting
// after the owner_id placeholder ($1).
func buildFilterClauses(filter portsrepo.TransactionFilter) (string, []any) {
	clauses := []string{"owner_id = $1"}
	args := []any{}
	idx := 2

	add := func(clause string, value any) {
		clauses = append(clauses, fmt.Sprintf(clause, idx))
		args = append(args, value)
		idx++
	}

	if filter.StartDate != nil {
		add("date >= $%d", *filter.StartDate)
	}
	if filter.EndDate != nil {
		add("date <= $%d", *filter.EndDate)
	}
	if filter.Type != "" {
		add("transaction_type = $%d", string(filter.Type))
	}
	if filter.AccountID != "" {
		// Source account only; a transfer shows up under the account it left
		add("account_id = $%d", filter.AccountID)
	}
	if filter.Category != "" {
		add("category = $%d", filter.Category)
	}
	if filter.Status != "" {
		add("status = $%d", string(filter.Status))
	}

	return strings.Join(clauses, " AND "), args
}

// ListTransactions retrieves the filtered window sorted by date descending,
// newest first, together with the total number of matching rows.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, ownerID string, filter portsrepo.TransactionFilter) ([]domain.Transaction, int, error) {
	where, filterArgs := buildFilterClauses(filter)
	args := append([]any{ownerID}, filterArgs...)

	countQuery := `SELECT COUNT(*) FROM transactions WHERE ` + where + `;`
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE ` + where + `
		ORDER BY date DESC, created_at DESC`
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET %d", filter.Offset)
	}
	query += ";"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, toDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	return txns, total, nil
}

// FindTransactionsInRange retrieves every owned transaction dated within
// [start, end], unpaginated, for report aggregation.
func (r *PgxTransactionRepository) FindTransactionsInRange(ctx context.Context, ownerID string, start, end time.Time) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE owner_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date, created_at;
	`
	rows, err := r.pool.Query(ctx, query, ownerID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions in range: %w", err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, toDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return txns, nil
}

// UpdateTransaction updates an existing owned transaction.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := toModelTransaction(txn)

	query := `
		UPDATE transactions
		SET date = $1, description = $2, amount = $3, transaction_type = $4,
			account_id = $5, destination_account_id = $6, category = $7,
			tags = $8, payment_method = $9, status = $10, updated_at = $11
		WHERE transaction_id = $12 AND owner_id = $13;
	`
	tag, err := r.pool.Exec(ctx, query,
		m.Date,
		m.Description,
		m.Amount,
		m.TransactionType,
		m.AccountID,
		nullableID(m.DestinationAccountID),
		m.Category,
		m.Tags,
		m.PaymentMethod,
		m.Status,
		m.LastUpdatedAt,
		m.TransactionID,
		m.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", m.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTransaction hard-deletes an owned transaction.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, ownerID string, transactionID string) error {
	query := `DELETE FROM transactions WHERE transaction_id = $1 AND owner_id = $2;`

	tag, err := r.pool.Exec(ctx, query, transactionID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
