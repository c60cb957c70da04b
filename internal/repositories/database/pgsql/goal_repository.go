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

type PgxGoalRepository struct {
	pool *pgxpool.Pool
}

// newPgxGoalRepository creates a new repository for financial goal data.
func newPgxGoalRepository(pool *pgxpool.Pool) portsrepo.GoalRepository {
	return &PgxGoalRepository{pool: pool}
}

// Ensure PgxGoalRepository implements portsrepo.GoalRepository
var _ portsrepo.GoalRepository = (*PgxGoalRepository)(nil)

func toModelGoal(d domain.FinancialGoal) models.FinancialGoal {
	return models.FinancialGoal{
		GoalID:        d.GoalID,
		Name:          d.Name,
		TargetAmount:  d.TargetAmount,
		CurrentAmount: d.CurrentAmount,
		Deadline:      d.Deadline,
		Priority:      models.GoalPriority(d.Priority),
		OwnerID:       d.OwnerID,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

func toDomainGoal(m models.FinancialGoal) domain.FinancialGoal {
	return domain.FinancialGoal{
		GoalID:        m.GoalID,
		Name:          m.Name,
		TargetAmount:  m.TargetAmount,
		CurrentAmount: m.CurrentAmount,
		Deadline:      m.Deadline,
		Priority:      domain.GoalPriority(m.Priority),
		OwnerID:       m.OwnerID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// SaveGoal inserts a new goal row.
func (r *PgxGoalRepository) SaveGoal(ctx context.Context, goal domain.FinancialGoal) error {
	m := toModelGoal(goal)

	query := `
		INSERT INTO financial_goals (goal_id, name, target_amount, current_amount, deadline, priority, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		m.GoalID,
		m.Name,
		m.TargetAmount,
		m.CurrentAmount,
		m.Deadline,
		m.Priority,
		m.OwnerID,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: goal with ID %s already exists", apperrors.ErrDuplicate, m.GoalID)
		}
		return fmt.Errorf("failed to save goal %s: %w", m.GoalID, err)
	}
	return nil
}

// FindGoalByID retrieves an owned goal by its ID.
func (r *PgxGoalRepository) FindGoalByID(ctx context.Context, ownerID string, goalID string) (*domain.FinancialGoal, error) {
	query := `
		SELECT goal_id, name, target_amount, current_amount, deadline, priority, owner_id, created_at, updated_at
		FROM financial_goals
		WHERE goal_id = $1 AND owner_id = $2;
	`
	var m models.FinancialGoal
	err := r.pool.QueryRow(ctx, query, goalID, ownerID).Scan(
		&m.GoalID,
		&m.Name,
		&m.TargetAmount,
		&m.CurrentAmount,
		&m.Deadline,
		&m.Priority,
		&m.OwnerID,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find goal by ID %s: %w", goalID, err)
	}

	goal := toDomainGoal(m)
	return &goal, nil
}

// ListGoals retrieves every goal owned by the user, nearest deadline first.
func (r *PgxGoalRepository) ListGoals(ctx context.Context, ownerID string) ([]domain.FinancialGoal, error) {
	query := `
		SELECT goal_id, name, target_amount, current_amount, deadline, priority, owner_id, created_at, updated_at
		FROM financial_goals
		WHERE owner_id = $1
		ORDER BY deadline, goal_id;
	`
	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}
	defer rows.Close()

	goals := []domain.FinancialGoal{}
	for rows.Next() {
		var m models.FinancialGoal
		err := rows.Scan(
			&m.GoalID,
			&m.Name,
			&m.TargetAmount,
			&m.CurrentAmount,
			&m.Deadline,
			&m.Priority,
			&m.OwnerID,
			&m.CreatedAt,
			&m.LastUpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal row: %w", err)
		}
		goals = append(goals, toDomainGoal(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating goal rows: %w", err)
	}
	return goals, nil
}

// UpdateGoal updates an existing owned goal.
func (r *PgxGoalRepository) UpdateGoal(ctx context.Context, goal domain.FinancialGoal) error {
	m := toModelGoal(goal)

	query := `
		UPDATE financial_goals
		SET name = $1, target_amount = $2, current_amount = $3, deadline = $4, priority = $5, updated_at = $6
		WHERE goal_id = $7 AND owner_id = $8;
	`
	tag, err := r.pool.Exec(ctx, query,
		m.Name,
		m.TargetAmount,
		m.CurrentAmount,
		m.Deadline,
		m.Priority,
		m.LastUpdatedAt,
		m.GoalID,
		m.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update goal %s: %w", m.GoalID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteGoal hard-deletes an owned goal.
func (r *PgxGoalRepository) DeleteGoal(ctx context.Context, ownerID string, goalID string) error {
	query := `DELETE FROM financial_goals WHERE goal_id = $1 AND owner_id = $2;`

	tag, err := r.pool.Exec(ctx, query, goalID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete goal %s: %w", goalID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
