package domain

import "github.com/shopspring/decimal"

// BudgetItemSpend is a BudgetItem together with its computed spend.
type BudgetItemSpend struct {
	BudgetItem
	PostedSpend             decimal.Decimal `json:"postedSpend"`
	ApprovedReimbursedSpend decimal.Decimal `json:"approvedReimbursedSpend"`
	Remaining               decimal.Decimal `json:"remaining"`
	OverBudget              bool            `json:"overBudget"`
}

// BudgetTypeView groups the computed items of one BudgetType.
type BudgetTypeView struct {
	BudgetType
	Items []BudgetItemSpend `json:"items"`
}

// BudgetView is the month budget with per-item computed spend.
type BudgetView struct {
	Month Month            `json:"month"`
	Types []BudgetTypeView `json:"types"`
}

// MonthTotals are the month-level aggregates.
type MonthTotals struct {
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

// SavingTogglePreview describes the effect of flipping IsSaving on one item.
type SavingTogglePreview struct {
	BudgetItemID         string          `json:"budgetItemId"`
	BudgetItemName       string          `json:"budgetItemName"`
	BudgetItemAmount     decimal.Decimal `json:"budgetItemAmount"`
	CurrentIsSaving      bool            `json:"currentIsSaving"`
	HasExpenses          bool            `json:"hasExpenses"`
	ExpenseCount         int             `json:"expenseCount"`
	TotalSpentOnThisItem decimal.Decimal `json:"totalSpentOnThisItem"`
	TotalSavingBefore    decimal.Decimal `json:"totalSavingBefore"`
	TotalSavingAfter     decimal.Decimal `json:"totalSavingAfter"`
	SpentOnSavingBudgets decimal.Decimal `json:"spentOnSavingBudgets"`
	SavedRemainingBefore decimal.Decimal `json:"savedRemainingBefore"`
	SavedRemainingAfter  decimal.Decimal `json:"savedRemainingAfter"`
	Destructive          bool            `json:"destructive"`
}
