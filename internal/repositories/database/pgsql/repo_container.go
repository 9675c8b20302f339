package pgsql

import (
	portsrepo "github.com/SscSPs/budget_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ProfileRepo:       newPgxProfileRepository(dbPool),
		WorkspaceRepo:     newPgxWorkspaceRepository(dbPool),
		MonthRepo:         newPgxMonthRepository(dbPool),
		BudgetRepo:        newPgxBudgetRepository(dbPool),
		ExpenseRepo:       newPgxExpenseRepository(dbPool),
		ReimbursementRepo: newPgxReimbursementRepository(dbPool),
	}
}
