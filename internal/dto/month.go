package dto

import (
	"time"

	"github.com/SscSPs/budget_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// --- Month DTOs ---

// CreateMonthRequest defines data for creating a month.
type CreateMonthRequest struct {
	Year      int             `json:"year" binding:"required,gte=2000,lte=2100"`
	Month     int             `json:"month" binding:"required,gte=1,lte=12"`
	Title     *string         `json:"title" binding:"omitempty,max=100"`
	Income    decimal.Decimal `json:"income" binding:"gte=0"`
	CarryOver decimal.Decimal `json:"carryOver" binding:"gte=0"`
}

// UpdateMonthFundsRequest defines a partial update of income and carry-over.
type UpdateMonthFundsRequest struct {
	Income    *decimal.Decimal `json:"income" binding:"omitempty,gte=0"`
	CarryOver *decimal.Decimal `json:"carryOver" binding:"omitempty,gte=0"`
}

// DuplicateMonthRequest defines the target period of a duplicated month.
type DuplicateMonthRequest struct {
	TargetYear  int             `json:"targetYear" binding:"required,gte=2000,lte=2100"`
	TargetMonth int             `json:"targetMonth" binding:"required,gte=1,lte=12"`
	Title       *string         `json:"title" binding:"omitempty,max=100"`
	Income      decimal.Decimal `json:"income" binding:"gte=0"`
	CarryOver   decimal.Decimal `json:"carryOver" binding:"gte=0"`
}

// MonthResponse defines data returned for a month.
type MonthResponse struct {
	MonthID     string          `json:"monthID"`
	WorkspaceID string          `json:"workspaceID"`
	Year        int             `json:"year"`
	Month       int             `json:"month"`
	Title       *string         `json:"title,omitempty"`
	Income      decimal.Decimal `json:"income"`
	CarryOver   decimal.Decimal `json:"carryOver"`
	CreatedAt   time.Time       `json:"createdAt"`
	CreatedBy   string          `json:"createdBy"`
}

// ToMonthResponse converts domain.Month to DTO.
func ToMonthResponse(m *domain.Month) MonthResponse {
	return MonthResponse{
		MonthID:     m.MonthID,
		WorkspaceID: m.WorkspaceID,
		Year:        m.Year,
		Month:       m.Month,
		Title:       m.Title,
		Income:      m.Income,
		CarryOver:   m.CarryOver,
		CreatedAt:   m.CreatedAt,
		CreatedBy:   m.CreatedBy,
	}
}

// ListMonthsResponse wraps a list of months.
type ListMonthsResponse struct {
	Months []MonthResponse `json:"months"`
}

// ToListMonthsResponse converts a slice of domain.Month to DTO.
func ToListMonthsResponse(ms []domain.Month) ListMonthsResponse {
	list := make([]MonthResponse, len(ms))
	for i, m := range ms {
		list[i] = ToMonthResponse(&m)
	}
	return ListMonthsResponse{Months: list}
}

// MonthTotalsResponse defines the month-level aggregates.
type MonthTotalsResponse struct {
	MonthID           string          `json:"monthID"`
	TotalIncome       decimal.Decimal `json:"totalIncome"`
	TotalBudget       decimal.Decimal `json:"totalBudget"`
	Posted            decimal.Decimal `json:"posted"`
	ApprovedReimburse decimal.Decimal `json:"approvedReimburse"`
	TotalSpending     decimal.Decimal `json:"totalSpending"`
	Remaining         decimal.Decimal `json:"remaining"`
	Unallocated       decimal.Decimal `json:"unallocated"`
	TotalSaving       decimal.Decimal `json:"totalSaving"`
	ExpenseCount      int             `json:"expenseCount"`
}

// ToMonthTotalsResponse converts domain.MonthTotals to DTO.
func ToMonthTotalsResponse(monthID string, t *domain.MonthTotals) MonthTotalsResponse {
	return MonthTotalsResponse{
		MonthID:           monthID,
		TotalIncome:       t.TotalIncome,
		TotalBudget:       t.TotalBudget,
		Posted:            t.Posted,
		ApprovedReimburse: t.ApprovedReimburse,
		TotalSpending:     t.TotalSpending,
		Remaining:         t.Remaining,
		Unallocated:       t.Unallocated,
		TotalSaving:       t.TotalSaving,
		ExpenseCount:      t.ExpenseCount,
	}
}
