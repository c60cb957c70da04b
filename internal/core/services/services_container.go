package services

import (
	portsrepo "github.com/contafacil/contafacil-backend/internal/core/ports/repositories"
	portssvc "github.com/contafacil/contafacil-backend/internal/core/ports/services"
	"github.com/contafacil/contafacil-backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.AccountRepo)
	container.Budget = NewBudgetService(repos.BudgetRepo)
	container.Goal = NewGoalService(repos.GoalRepo)
	container.Report = NewReportService(repos.ReportRepo, repos.TransactionRepo, repos.AccountRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)

	return container
}
