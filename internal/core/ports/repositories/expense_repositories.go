package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/budget_ledger/internal/core/domain"
	"github.com/SscSPs/budget_ledger/internal/utils/pagination"
)

// ExpenseStatusPosted filters expenses having at least one non-reimbursable line.
const ExpenseStatusPosted = "POSTED"

// ExpenseFilter selects expenses of one month. Soft-deleted expenses are
// excluded unless IncludeDeleted is set.
type ExpenseFilter struct {
	MonthID string
	// Query matches name or note, case-insensitively.
	Query string
	// Status is ExpenseStatusPosted or a ReimburseStatus that at least one line must have.
	Status         string
	Limit          int
	After          *pagination.Cursor
	IncludeDeleted bool
}

// ExpenseReader defines read operations for expenses
type ExpenseReader interface {
	FindExpenseByID(ctx context.Context, expenseID string, includeDeleted bool) (*domain.Expense, error)

	// ListExpenses returns expenses ordered by date, creation time and id, newest first,
	// with their items, attachments and creator identity.
	ListExpenses(ctx context.Context, filter ExpenseFilter) ([]domain.Expense, error)
}

// ExpenseWriter defines write operations for expenses
type ExpenseWriter interface {
	// SaveExpense persists the expense with its items and attachments atomically.
	// Every item must reference a budget item of the expense's month.
	SaveExpense(ctx context.Context, expense domain.Expense) error

	SoftDeleteExpense(ctx context.Context, expenseID string, deletedAt time.Time) error
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
