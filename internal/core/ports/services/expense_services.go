package services

import (
	"context"

	"github.com/SscSPs/budget_ledger/internal/core/domain"
	"github.com/SscSPs/budget_ledger/internal/dto"
)

// ExpenseSvcFacade defines operations on expenses of a month
type ExpenseSvcFacade interface {
	// CreateExpense validates and persists an expense with its lines and attachments atomically.
	CreateExpense(ctx context.Context, monthID, requestingUserID string, req dto.CreateExpenseRequest) (*domain.Expense, error)

	// ListExpenses returns one page of live expenses, newest first.
	ListExpenses(ctx context.Context, monthID, requestingUserID string, params dto.ListExpensesParams) (*dto.ListExpensesResponse, error)

	// DeleteExpense soft-deletes an expense; its lines stop counting towards aggregates.
	DeleteExpense(ctx context.Context, expenseID, requestingUserID string) error
}
