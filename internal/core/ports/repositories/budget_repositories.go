package repositories

import (
	"context"

	"github.com/SscSPs/budget_ledger/internal/core/domain"
)

// BudgetTypeRepository manages budget types
type BudgetTypeRepository interface {
	// SaveBudgetType locks the owning month row while inserting.
	SaveBudgetType(ctx context.Context, budgetType domain.BudgetType) error
	FindBudgetTypeByID(ctx context.Context, budgetTypeID string) (*domain.BudgetType, error)
	// UpdateBudgetType applies only the non-nil fields of patch in a single
	// statement and returns the stored row.
	UpdateBudgetType(ctx context.Context, budgetTypeID string, patch domain.BudgetTypePatch) (*domain.BudgetType, error)

	// DeleteBudgetType removes the type and its items; it fails with a
	// conflict while any expense line references one of those items.
	DeleteBudgetType(ctx context.Context, budgetTypeID string) error
}

// BudgetItemRepository manages budget items
type BudgetItemRepository interface {
	SaveBudgetItem(ctx context.Context, item domain.BudgetItem) error
	FindBudgetItemByID(ctx context.Context, budgetItemID string) (*domain.BudgetItem, error)
	// UpdateBudgetItem applies only the non-nil fields of patch in a single
	// statement and returns the stored row.
	UpdateBudgetItem(ctx context.Context, budgetItemID string, patch domain.BudgetItemPatch) (*domain.BudgetItem, error)

	// DeleteBudgetItem fails with a conflict while any expense line references the item.
	DeleteBudgetItem(ctx context.Context, budgetItemID string) error
}

// BudgetRepositoryFacade combines all budget-related repository interfaces
type BudgetRepositoryFacade interface {
	BudgetTypeRepository
	BudgetItemRepository
}
