package repositories

import (
	"context"

	"github.com/SscSPs/budget_ledger/internal/core/domain"
)

// ReimbursementFilter selects reimbursement lines of a workspace.
// An empty Status matches any status.
type ReimbursementFilter struct {
	WorkspaceID string
	MonthID     string
	Status      domain.ReimburseStatus
}

// ReimbursementReader defines read operations for reimbursement lines
type ReimbursementReader interface {
	FindReimbursementByItemID(ctx context.Context, expenseItemID string) (*domain.ReimbursementEntry, error)

	// ListReimbursements returns lines of live expenses that need reimbursement, newest first.
	ListReimbursements(ctx context.Context, filter ReimbursementFilter) ([]domain.ReimbursementEntry, error)
}

// ReimbursementWriter defines write operations for reimbursement lines
type ReimbursementWriter interface {
	// TransitionReimbursement moves a PENDING line to next in one conditional
	// update. It fails with a conflict when the line is no longer PENDING.
	TransitionReimbursement(ctx context.Context, expenseItemID string, next domain.ReimburseStatus) (*domain.ReimbursementEntry, error)

	// UpdateReimburseTo sets or clears the member to reimburse. With onlyPending
	// the update fails with a conflict once the line has been decided.
	UpdateReimburseTo(ctx context.Context, expenseItemID string, reimburseTo *string, onlyPending bool) (*domain.ReimbursementEntry, error)
}

// ReimbursementRepositoryFacade combines all reimbursement-related repository interfaces
type ReimbursementRepositoryFacade interface {
	ReimbursementReader
	ReimbursementWriter
}
