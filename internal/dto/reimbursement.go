package dto

import (
	"github.com/SscSPs/budget_ledger/internal/core/domain"
)

// ReimbursementStatusAll lists reimbursements in any status.
const ReimbursementStatusAll = "ALL"

// ListReimbursementsParams defines query parameters for listing reimbursements.
// Status defaults to PENDING.
type ListReimbursementsParams struct {
	Status  string `form:"status" binding:"omitempty,oneof=ALL PENDING APPROVED REJECTED"`
	MonthID string `form:"monthId" binding:"omitempty,uuid"`
}

// ReassignReimburseToRequest sets or clears (null) the member to reimburse.
type ReassignReimburseToRequest struct {
	ReimburseTo *string `json:"reimburseTo" binding:"omitempty,uuid"`
}

// ReimbursementResponse defines data returned for a reimbursement line.
type ReimbursementResponse struct {
	ExpenseItemResponse
	ExpenseID      string `json:"expenseID"`
	ExpenseName    string `json:"expenseName"`
	ExpenseDate    string `json:"expenseDate"`
	MonthID        string `json:"monthID"`
	WorkspaceID    string `json:"workspaceID"`
	CreatedBy      string `json:"createdBy"`
	CreatedByEmail string `json:"createdByEmail,omitempty"`
}

// ToReimbursementResponse converts domain.ReimbursementEntry to DTO.
func ToReimbursementResponse(r *domain.ReimbursementEntry) ReimbursementResponse {
	return ReimbursementResponse{
		ExpenseItemResponse: ToExpenseItemResponse(&r.ExpenseItem),
		ExpenseID:           r.ExpenseID,
		ExpenseName:         r.ExpenseName,
		ExpenseDate:         r.ExpenseDate.Format(ExpenseDateLayout),
		MonthID:             r.MonthID,
		WorkspaceID:         r.WorkspaceID,
		CreatedBy:           r.CreatedBy,
		CreatedByEmail:      r.CreatedByEmail,
	}
}

// ListReimbursementsResponse wraps a list of reimbursement lines.
type ListReimbursementsResponse struct {
	Reimbursements []ReimbursementResponse `json:"reimbursements"`
}

// ToListReimbursementsResponse converts a slice of domain.ReimbursementEntry to DTO.
func ToListReimbursementsResponse(rs []domain.ReimbursementEntry) ListReimbursementsResponse {
	list := make([]ReimbursementResponse, len(rs))
	for i, r := range rs {
		list[i] = ToReimbursementResponse(&r)
	}
	return ListReimbursementsResponse{Reimbursements: list}
}
