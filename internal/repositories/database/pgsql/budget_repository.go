package pgsql

import (
	"context"
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

type PgxBudgetRepository struct {
	BaseRepository
	pool *pgxpool.Pool
}

// newPgxBudgetRepository creates a new repository for budget data.
func newPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepository {
	return &PgxBudgetRepository{
		BaseRepository: BaseRepository{Pool: pool},
		pool:           pool,
	}
}

// Ensure PgxBudgetRepository implements portsrepo.BudgetRepository
var _ portsrepo.BudgetRepository = (*PgxBudgetRepository)(nil)

func toModelBudget(d domain.Budget) models.Budget {
	return models.Budget{
		BudgetID:  d.BudgetID,
		Name:      d.Name,
		StartDate: d.StartDate,
		EndDate:   d.EndDate,
		OwnerID:   d.OwnerID,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

func toDomainBudget(m models.Budget) domain.Budget {
	return domain.Budget{
		BudgetID:  m.BudgetID,
		Name:      m.Name,
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
		OwnerID:   m.OwnerID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

func toModelBudgetCategory(d domain.BudgetCategory) models.BudgetCategory {
	return models.BudgetCategory{
		CategoryID: d.CategoryID,
		BudgetID:   d.BudgetID,
		Name:       d.Name,
		Planned:    d.Planned,
		Actual:     d.Actual,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

func toDomainBudgetCategory(m models.BudgetCategory) domain.BudgetCategory {
	return domain.BudgetCategory{
		CategoryID: m.CategoryID,
		BudgetID:   m.BudgetID,
		Name:       m.Name,
		Planned:    m.Planned,
		Actual:     m.Actual,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// SaveBudget inserts a new budget row together with any categories it
// carries, in one transaction.
func (r *PgxBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	m := toModelBudget(budget)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO budgets (budget_id, name, start_date, end_date, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = tx.Exec(ctx, query,
		m.BudgetID,
		m.Name,
		m.StartDate,
		m.EndDate,
		m.OwnerID,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: budget with ID %s already exists", apperrors.ErrDuplicate, m.BudgetID)
		}
		return fmt.Errorf("failed to save budget %s: %w", m.BudgetID, err)
	}

	catQuery := `
		INSERT INTO budget_categories (category_id, budget_id, name, planned, actual, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for _, cat := range budget.Categories {
		cm := toModelBudgetCategory(cat)
		if _, err := tx.Exec(ctx, catQuery,
			cm.CategoryID,
			cm.BudgetID,
			cm.Name,
			cm.Planned,
			cm.Actual,
			cm.CreatedAt,
			cm.LastUpdatedAt,
		); err != nil {
			return fmt.Errorf("failed to save budget category %s: %w", cm.CategoryID, err)
		}
	}

	return r.Commit(ctx, tx)
}

// FindBudgetByID retrieves an owned budget with its categories.
func (r *PgxBudgetRepository) FindBudgetByID(ctx context.Context, ownerID string, budgetID string) (*domain.Budget, error) {
	query := `
		SELECT budget_id, name, start_date, end_date, owner_id, created_at, updated_at
		FROM budgets
		WHERE budget_id = $1 AND owner_id = $2;
	`
	var m models.Budget
	err := r.pool.QueryRow(ctx, query, budgetID, ownerID).Scan(
		&m.BudgetID,
		&m.Name,
		&m.StartDate,
		&m.EndDate,
		&m.OwnerID,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find budget by ID %s: %w", budgetID, err)
	}

	budget := toDomainBudget(m)
	categories, err := r.ListBudgetCategories(ctx, budgetID)
	if err != nil {
		return nil, err
	}
	budget.Categories = categories
	return &budget, nil
}

// ListBudgets retrieves every budget owned by the user, categories included.
func (r *PgxBudgetRepository) ListBudgets(ctx context.Context, ownerID string) ([]domain.Budget, error) {
	query := `
		SELECT budget_id, name, start_date, end_date, owner_id, created_at, updated_at
		FROM budgets
		WHERE owner_id = $1
		ORDER BY start_date DESC, budget_id;
	`
	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer rows.Close()

	budgets := []domain.Budget{}
	for rows.Next() {
		var m models.Budget
		err := rows.Scan(
			&m.BudgetID,
			&m.Name,
			&m.StartDate,
			&m.EndDate,
			&m.OwnerID,
			&m.CreatedAt,
			&m.LastUpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan budget row: %w", err)
		}
		budgets = append(budgets, toDomainBudget(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budget rows: %w", err)
	}

	for i := range budgets {
		categories, err := r.ListBudgetCategories(ctx, budgets[i].BudgetID)
		if err != nil {
			return nil, err
		}
		budgets[i].Categories = categories
	}
	return budgets, nil
}

// UpdateBudget updates an owned budget's own fields.
func (r *PgxBudgetRepository) UpdateBudget(ctx context.Context, budget domain.Budget) error {
	m := toModelBudget(budget)

	query := `
		UPDATE budgets
		SET name = $1, start_date = $2, end_date = $3, updated_at = $4
		WHERE budget_id = $5 AND owner_id = $6;
	`
	tag, err := r.pool.Exec(ctx, query,
		m.Name,
		m.StartDate,
		m.EndDate,
		m.LastUpdatedAt,
		m.BudgetID,
		m.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update budget %s: %w", m.BudgetID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteBudget removes a budget; its categories go with it via ON DELETE CASCADE.
func (r *PgxBudgetRepository) DeleteBudget(ctx context.Context, ownerID string, budgetID string) error {
	query := `DELETE FROM budgets WHERE budget_id = $1 AND owner_id = $2;`

	tag, err := r.pool.Exec(ctx, query, budgetID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete budget %s: %w", budgetID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SaveBudgetCategory inserts a new category row for a budget.
func (r *PgxBudgetRepository) SaveBudgetCategory(ctx context.Context, category domain.BudgetCategory) error {
	m := toModelBudgetCategory(category)

	query := `
		INSERT INTO budget_categories (category_id, budget_id, name, planned, actual, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, query,
		m.CategoryID,
		m.BudgetID,
		m.Name,
		m.Planned,
		m.Actual,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: category with ID %s already exists", apperrors.ErrDuplicate, m.CategoryID)
		}
		return fmt.Errorf("failed to save budget category %s: %w", m.CategoryID, err)
	}
	return nil
}

// FindBudgetCategoryByID retrieves one category of a budget.
func (r *PgxBudgetRepository) FindBudgetCategoryByID(ctx context.Context, budgetID string, categoryID string) (*domain.BudgetCategory, error) {
	query := `
		SELECT category_id, budget_id, name, planned, actual, created_at, updated_at
		FROM budget_categories
		WHERE category_id = $1 AND budget_id = $2;
	`
	var m models.BudgetCategory
	err := r.pool.QueryRow(ctx, query, categoryID, budgetID).Scan(
		&m.CategoryID,
		&m.BudgetID,
		&m.Name,
		&m.Planned,
		&m.Actual,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find budget category %s: %w", categoryID, err)
	}

	category := toDomainBudgetCategory(m)
	return &category, nil
}

// ListBudgetCategories retrieves every category of a budget.
func (r *PgxBudgetRepository) ListBudgetCategories(ctx context.Context, budgetID string) ([]domain.BudgetCategory, error) {
	query := `
		SELECT category_id, budget_id, name, planned, actual, created_at, updated_at
		FROM budget_categories
		WHERE budget_id = $1
		ORDER BY created_at, category_id;
	`
	rows, err := r.pool.Query(ctx, query, budgetID)
	if err != nil {
		return nil, fmt.Errorf("failed to query budget categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.BudgetCategory{}
	for rows.Next() {
		var m models.BudgetCategory
		err := rows.Scan(
			&m.CategoryID,
			&m.BudgetID,
			&m.Name,
			&m.Planned,
			&m.Actual,
			&m.CreatedAt,
			&m.LastUpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan budget category row: %w", err)
		}
		categories = append(categories, toDomainBudgetCategory(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budget category rows: %w", err)
	}
	return categories, nil
}

// UpdateBudgetCategory updates a category within a budget.
func (r *PgxBudgetRepository) UpdateBudgetCategory(ctx context.Context, category domain.BudgetCategory) error {
	m := toModelBudgetCategory(category)

	query := `
		UPDATE budget_categories
		SET name = $1, planned = $2, actual = $3, updated_at = $4
		WHERE category_id = $5 AND budget_id = $6;
	`
	tag, err := r.pool.Exec(ctx, query,
		m.Name,
		m.Planned,
		m.Actual,
		m.LastUpdatedAt,
		m.CategoryID,
		m.BudgetID,
	)
	if err != nil {
		return fmt.Errorf("failed to update budget category %s: %w", m.CategoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteBudgetCategory deletes a category from a budget.
func (r *PgxBudgetRepository) DeleteBudgetCategory(ctx context.Context, budgetID string, categoryID string) error {
	query := `DELETE FROM budget_categories WHERE category_id = $1 AND budget_id = $2;`

	tag, err := r.pool.Exec(ctx, query, categoryID, budgetID)
	if err != nil {
		return fmt.Errorf("failed to delete budget category %s: %w", categoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
