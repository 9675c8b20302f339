package services

import (
	portsrepo "github.com/SscSPs/budget_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/budget_ledger/internal/core/ports/services"
	"github.com/SscSPs/budget_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, notifier portssvc.InvitationNotifier) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Initialize workspace service first since every other service authorizes through it
	container.Workspace = NewWorkspaceService(repos.WorkspaceRepo, repos.ProfileRepo, notifier)
	authorizer := container.Workspace.(portssvc.WorkspaceAuthorizerSvc)

	container.Profile = NewProfileService(repos.ProfileRepo, container.Workspace)
	container.Month = NewMonthService(repos.MonthRepo, authorizer)
	container.Budget = NewBudgetService(
		repos.BudgetRepo,
		repos.MonthRepo,
		authorizer,
		WithSavingToggleConfirmation(cfg.RequireSavingToggleConfirmation),
	)
	container.Expense = NewExpenseService(repos.ExpenseRepo, repos.MonthRepo, repos.WorkspaceRepo, authorizer)
	container.Reimbursement = NewReimbursementService(
		repos.ReimbursementRepo,
		repos.WorkspaceRepo,
		authorizer,
		WithReimburseToLock(cfg.ReimburseToLockAfterDecision),
	)

	return container
}
