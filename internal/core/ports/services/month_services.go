package services

import (
	"context"

	"github.com/SscSPs/budget_ledger/internal/core/domain"
	"github.com/SscSPs/budget_ledger/internal/dto"
)

// MonthReaderSvc defines read operations for months and their aggregates
type MonthReaderSvc interface {
	GetMonth(ctx context.Context, monthID, requestingUserID string) (*domain.Month, error)
	ListMonths(ctx context.Context, workspaceID, requestingUserID string) ([]domain.Month, error)

	// GetBudgetView returns the month budget with computed spend per item.
	GetBudgetView(ctx context.Context, monthID, requestingUserID string) (*domain.BudgetView, error)

	// GetMonthTotals returns the month-level aggregates.
	GetMonthTotals(ctx context.Context, monthID, requestingUserID string) (*domain.MonthTotals, error)
}

// MonthWriterSvc defines write operations for months
type MonthWriterSvc interface {
	CreateMonth(ctx context.Context, workspaceID, requestingUserID string, req dto.CreateMonthRequest) (*domain.Month, error)

	// UpdateMonthFunds changes income and carry-over while the month has no budget types.
	UpdateMonthFunds(ctx context.Context, monthID, requestingUserID string, req dto.UpdateMonthFundsRequest) (*domain.Month, error)

	DeleteMonth(ctx context.Context, monthID, requestingUserID string) error

	// DuplicateMonth clones the budget of a month into a new period with fresh funds.
	DuplicateMonth(ctx context.Context, monthID, requestingUserID string, req dto.DuplicateMonthRequest) (*domain.Month, error)
}

// MonthSvcFacade combines all month-related service interfaces
type MonthSvcFacade interface {
	MonthReaderSvc
	MonthWriterSvc
}
