package services

import (
	"context"

	"github.com/SscSPs/budget_ledger/internal/core/domain"
	"github.com/SscSPs/budget_ledger/internal/dto"
)

// BudgetTypeSvc manages budget types of a month
type BudgetTypeSvc interface {
	CreateBudgetType(ctx context.Context, monthID, requestingUserID string, req dto.CreateBudgetTypeRequest) (*domain.BudgetType, error)
	UpdateBudgetType(ctx context.Context, budgetTypeID, requestingUserID string, req dto.UpdateBudgetTypeRequest) (*domain.BudgetType, error)
	DeleteBudgetType(ctx context.Context, budgetTypeID, requestingUserID string) error
}

// BudgetItemSvc manages budget items of a budget type
type BudgetItemSvc interface {
	CreateBudgetItem(ctx context.Context, budgetTypeID, requestingUserID string, req dto.CreateBudgetItemRequest) (*domain.BudgetItem, error)
	UpdateBudgetItem(ctx context.Context, budgetItemID, requestingUserID string, req dto.UpdateBudgetItemRequest) (*domain.BudgetItem, error)
	DeleteBudgetItem(ctx context.Context, budgetItemID, requestingUserID string) error

	// PreviewSavingToggle reports the effect of flipping IsSaving without changing anything.
	PreviewSavingToggle(ctx context.Context, budgetItemID, requestingUserID string) (*domain.SavingTogglePreview, error)
}

// BudgetSvcFacade combines all budget-related service interfaces
type BudgetSvcFacade interface {
	BudgetTypeSvc
	BudgetItemSvc
}
