package dto

import (
	"time"

	"github.com/SscSPs/budget_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExpenseDateLayout is the wire format of expense dates.
const ExpenseDateLayout = "2006-01-02"

// --- Expense DTOs ---

// CreateExpenseItemRequest defines one line of a new expense.
type CreateExpenseItemRequest struct {
	Name                string           `json:"name" binding:"required,min=1,max=200"`
	BudgetItemID        string           `json:"budgetItemID" binding:"required,uuid"`
	Amount              decimal.Decimal  `json:"amount" binding:"gte=0"`
	NeedReimburse       bool             `json:"needReimburse"`
	ReimbursementAmount *decimal.Decimal `json:"reimbursementAmount" binding:"omitempty,gte=0"`
	ReimburseTo         *string          `json:"reimburseTo" binding:"omitempty,uuid"`
}

// CreateAttachmentRequest defines metadata of a file already uploaded to blob storage.
type CreateAttachmentRequest struct {
	FileURL   string `json:"fileURL" binding:"required,url"`
	Filename  string `json:"filename" binding:"required,max=255"`
	SizeBytes *int64 `json:"sizeBytes" binding:"omitempty,gte=0"`
}

// CreateExpenseRequest defines data for creating an expense with its lines.
type CreateExpenseRequest struct {
	Date        string                     `json:"date" binding:"required,datetime=2006-01-02"`
	Name        string                     `json:"name" binding:"required,min=1,max=200"`
	Note        *string                    `json:"note" binding:"omitempty,max=1000"`
	Items       []CreateExpenseItemRequest `json:"items" binding:"required,min=1,dive"`
	Attachments []CreateAttachmentRequest  `json:"attachments" binding:"omitempty,dive"`
}

// ListExpensesParams defines query parameters for listing expenses.
type ListExpensesParams struct {
	Query     string `form:"q" binding:"omitempty,max=200"`
	Status    string `form:"status" binding:"omitempty,oneof=POSTED PENDING APPROVED REJECTED"`
	Limit     int    `form:"limit" binding:"omitempty,gte=1,lte=100"`
	NextToken string `form:"nextToken"`
}

// ExpenseItemResponse defines data returned for an expense line.
type ExpenseItemResponse struct {
	ExpenseItemID       string                 `json:"expenseItemID"`
	Name                string                 `json:"name"`
	BudgetItemID        string                 `json:"budgetItemID"`
	BudgetItemName      string                 `json:"budgetItemName,omitempty"`
	Amount              decimal.Decimal        `json:"amount"`
	NeedReimburse       bool                   `json:"needReimburse"`
	ReimbursementAmount *decimal.Decimal       `json:"reimbursementAmount,omitempty"`
	ReimburseTo         *string                `json:"reimburseTo,omitempty"`
	ReimburseStatus     domain.ReimburseStatus `json:"reimburseStatus"`
}

// AttachmentResponse defines data returned for an attachment.
type AttachmentResponse struct {
	AttachmentID string `json:"attachmentID"`
	FileURL      string `json:"fileURL"`
	Filename     string `json:"filename"`
	SizeBytes    *int64 `json:"sizeBytes,omitempty"`
}

// ExpenseResponse defines data returned for an expense.
type ExpenseResponse struct {
	ExpenseID      string                `json:"expenseID"`
	MonthID        string                `json:"monthID"`
	Date           string                `json:"date"`
	Name           string                `json:"name"`
	Note           *string               `json:"note,omitempty"`
	TotalAmount    decimal.Decimal       `json:"totalAmount"`
	CreatedAt      time.Time             `json:"createdAt"`
	CreatedBy      string                `json:"createdBy"`
	CreatedByEmail string                `json:"createdByEmail,omitempty"`
	CreatedByName  *string               `json:"createdByName,omitempty"`
	Items          []ExpenseItemResponse `json:"items"`
	Attachments    []AttachmentResponse  `json:"attachments"`
}

// ToExpenseItemResponse converts domain.ExpenseItem to DTO.
func ToExpenseItemResponse(it *domain.ExpenseItem) ExpenseItemResponse {
	return ExpenseItemResponse{
		ExpenseItemID:       it.ExpenseItemID,
		Name:                it.Name,
		BudgetItemID:        it.BudgetItemID,
		BudgetItemName:      it.BudgetItemName,
		Amount:              it.Amount,
		NeedReimburse:       it.NeedReimburse,
		ReimbursementAmount: it.ReimbursementAmount,
		ReimburseTo:         it.ReimburseTo,
		ReimburseStatus:     it.ReimburseStatus,
	}
}

// ToExpenseResponse converts domain.Expense to DTO.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	items := make([]ExpenseItemResponse, len(e.Items))
	for i, it := range e.Items {
		items[i] = ToExpenseItemResponse(&it)
	}
	attachments := make([]AttachmentResponse, len(e.Attachments))
	for i, a := range e.Attachments {
		attachments[i] = AttachmentResponse{
			AttachmentID: a.AttachmentID,
			FileURL:      a.FileURL,
			Filename:     a.Filename,
			SizeBytes:    a.SizeBytes,
		}
	}
	return ExpenseResponse{
		ExpenseID:      e.ExpenseID,
		MonthID:        e.MonthID,
		Date:           e.Date.Format(ExpenseDateLayout),
		Name:           e.Name,
		Note:           e.Note,
		TotalAmount:    e.TotalAmount,
		CreatedAt:      e.CreatedAt,
		CreatedBy:      e.CreatedBy,
		CreatedByEmail: e.CreatedByEmail,
		CreatedByName:  e.CreatedByName,
		Items:          items,
		Attachments:    attachments,
	}
}

// ListExpensesResponse wraps a page of expenses.
type ListExpensesResponse struct {
	Expenses  []ExpenseResponse `json:"expenses"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToListExpensesResponse converts a page of domain.Expense to DTO.
func ToListExpensesResponse(es []domain.Expense, nextToken *string) ListExpensesResponse {
	list := make([]ExpenseResponse, len(es))
	for i, e := range es {
		list[i] = ToExpenseResponse(&e)
	}
	return ListExpensesResponse{Expenses: list, NextToken: nextToken}
}
