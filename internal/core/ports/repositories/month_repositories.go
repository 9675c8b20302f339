package repositories

import (
	"context"

	"github.com/SscSPs/budget_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MonthReader defines read operations for months
type MonthReader interface {
	FindMonthByID(ctx context.Context, monthID string) (*domain.Month, error)

	// ListMonthsByWorkspace returns months newest first.
	ListMonthsByWorkspace(ctx context.Context, workspaceID string) ([]domain.Month, error)

	// LoadMonthLedger loads the month, its budget and the lines of live
	// expenses from one consistent snapshot.
	LoadMonthLedger(ctx context.Context, monthID string) (*domain.MonthLedger, error)
}

// MonthWriter defines write operations for months
type MonthWriter interface {
	// SaveMonth fails with a duplicate error when the workspace already has the year/month.
	SaveMonth(ctx context.Context, month domain.Month) error

	// UpdateMonthFunds changes income and/or carry-over in a single statement
	// that only succeeds while the month has no budget types. Nil leaves a field unchanged.
	UpdateMonthFunds(ctx context.Context, monthID string, income, carryOver *decimal.Decimal) (*domain.Month, error)

	// DeleteMonth fails with a conflict while the month owns budget types.
	DeleteMonth(ctx context.Context, monthID string) error

	// DuplicateMonth saves target and copies the budget types and items of
	// sourceMonthID into it, in one transaction.
	DuplicateMonth(ctx context.Context, sourceMonthID string, target domain.Month) error
}

// MonthRepositoryFacade combines all month-related repository interfaces
type MonthRepositoryFacade interface {
	MonthReader
	MonthWriter
}
