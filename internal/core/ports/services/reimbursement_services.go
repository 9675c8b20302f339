package services

import (
	"context"

	"github.com/SscSPs/budget_ledger/internal/core/domain"
	"github.com/SscSPs/budget_ledger/internal/dto"
)

// ReimbursementSvcFacade drives the reimbursement workflow of expense lines
type ReimbursementSvcFacade interface {
	ListReimbursements(ctx context.Context, workspaceID, requestingUserID string, params dto.ListReimbursementsParams) ([]domain.ReimbursementEntry, error)

	// ApproveReimbursement moves a PENDING line to APPROVED. OWNER only.
	ApproveReimbursement(ctx context.Context, expenseItemID, requestingUserID string) (*domain.ReimbursementEntry, error)

	// RejectReimbursement moves a PENDING line to REJECTED. OWNER only.
	RejectReimbursement(ctx context.Context, expenseItemID, requestingUserID string) (*domain.ReimbursementEntry, error)

	// ReassignReimburseTo sets or clears the member to reimburse.
	ReassignReimburseTo(ctx context.Context, expenseItemID, requestingUserID string, reimburseTo *string) (*domain.ReimbursementEntry, error)
}
