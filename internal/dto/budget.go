package dto

import (
	"github.com/SscSPs/budget_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// --- Budget type DTOs ---

// CreateBudgetTypeRequest defines data for creating a budget type.
type CreateBudgetTypeRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100"`
	Order int    `json:"order" binding:"gte=0"`
}

// UpdateBudgetTypeRequest defines a partial update of a budget type.
type UpdateBudgetTypeRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1,max=100"`
	Order *int    `json:"order" binding:"omitempty,gte=0"`
}

// BudgetTypeResponse defines data returned for a budget type.
type BudgetTypeResponse struct {
	BudgetTypeID string `json:"budgetTypeID"`
	MonthID      string `json:"monthID"`
	Name         string `json:"name"`
	Order        int    `json:"order"`
}

// ToBudgetTypeResponse converts domain.BudgetType to DTO.
func ToBudgetTypeResponse(bt *domain.BudgetType) BudgetTypeResponse {
	return BudgetTypeResponse{
		BudgetTypeID: bt.BudgetTypeID,
		MonthID:      bt.MonthID,
		Name:         bt.Name,
		Order:        bt.Order,
	}
}

// --- Budget item DTOs ---

// CreateBudgetItemRequest defines data for creating a budget item.
type CreateBudgetItemRequest struct {
	Name         string          `json:"name" binding:"required,min=1,max=100"`
	BudgetAmount decimal.Decimal `json:"budgetAmount" binding:"gte=0"`
	Order        int             `json:"order" binding:"gte=0"`
	IsSaving     bool            `json:"isSaving"`
}

// UpdateBudgetItemRequest defines a partial update of a budget item.
// ConfirmDestructive acknowledges turning IsSaving off on an item that already has spend.
type UpdateBudgetItemRequest struct {
	Name               *string          `json:"name" binding:"omitempty,min=1,max=100"`
	BudgetAmount       *decimal.Decimal `json:"budgetAmount" binding:"omitempty,gte=0"`
	Order              *int             `json:"order" binding:"omitempty,gte=0"`
	IsSaving           *bool            `json:"isSaving"`
	ConfirmDestructive bool             `json:"confirmDestructive"`
}

// BudgetItemResponse defines data returned for a budget item.
type BudgetItemResponse struct {
	BudgetItemID string          `json:"budgetItemID"`
	BudgetTypeID string          `json:"budgetTypeID"`
	Name         string          `json:"name"`
	BudgetAmount decimal.Decimal `json:"budgetAmount"`
	Order        int             `json:"order"`
	IsSaving     bool            `json:"isSaving"`
}

// ToBudgetItemResponse converts domain.BudgetItem to DTO.
func ToBudgetItemResponse(it *domain.BudgetItem) BudgetItemResponse {
	return BudgetItemResponse{
		BudgetItemID: it.BudgetItemID,
		BudgetTypeID: it.BudgetTypeID,
		Name:         it.Name,
		BudgetAmount: it.BudgetAmount,
		Order:        it.Order,
		IsSaving:     it.IsSaving,
	}
}

// --- Budget view DTOs ---

// BudgetItemViewResponse is a budget item with its computed spend.
type BudgetItemViewResponse struct {
	BudgetItemResponse
	PostedSpend             decimal.Decimal `json:"postedSpend"`
	ApprovedReimbursedSpend decimal.Decimal `json:"approvedReimbursedSpend"`
	Remaining               decimal.Decimal `json:"remaining"`
	OverBudget              bool            `json:"overBudget"`
}

// BudgetTypeViewResponse is a budget type with its computed items.
type BudgetTypeViewResponse struct {
	BudgetTypeResponse
	Items []BudgetItemViewResponse `json:"items"`
}

// BudgetViewResponse is the month budget view.
type BudgetViewResponse struct {
	Month MonthResponse            `json:"month"`
	Types []BudgetTypeViewResponse `json:"types"`
}

// ToBudgetViewResponse converts domain.BudgetView to DTO.
func ToBudgetViewResponse(v *domain.BudgetView) BudgetViewResponse {
	types := make([]BudgetTypeViewResponse, len(v.Types))
	for i, bt := range v.Types {
		items := make([]BudgetItemViewResponse, len(bt.Items))
		for j, it := range bt.Items {
			items[j] = BudgetItemViewResponse{
				BudgetItemResponse:      ToBudgetItemResponse(&it.BudgetItem),
				PostedSpend:             it.PostedSpend,
				ApprovedReimbursedSpend: it.ApprovedReimbursedSpend,
				Remaining:               it.Remaining,
				OverBudget:              it.OverBudget,
			}
		}
		types[i] = BudgetTypeViewResponse{
			BudgetTypeResponse: ToBudgetTypeResponse(&bt.BudgetType),
			Items:              items,
		}
	}
	return BudgetViewResponse{Month: ToMonthResponse(&v.Month), Types: types}
}
