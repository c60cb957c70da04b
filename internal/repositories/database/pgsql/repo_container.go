package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/contafacil/contafacil-backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx-backed repository to the shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:     newPgxAccountRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		BudgetRepo:      newPgxBudgetRepository(dbPool),
		GoalRepo:        newPgxGoalRepository(dbPool),
		ReportRepo:      newPgxReportRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
	}
}
