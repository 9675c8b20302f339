package domain

import "github.com/shopspring/decimal"

const (
	MinYear = 2000
	MaxYear = 2100
)

// Month is one budgeting period (year+month) within a workspace.
// Income and CarryOver are editable only while the month has no BudgetTypes.
type Month struct {
	MonthID     string          `json:"monthID"`
	WorkspaceID string          `json:"workspaceID"`
	Year        int             `json:"year"`
	Month       int             `json:"month"`
	Title       *string         `json:"title,omitempty"`
	Income      decimal.Decimal `json:"income"`
	CarryOver   decimal.Decimal `json:"carryOver"`
	AuditFields
}

// BudgetType is a named, ordered grouping of BudgetItems within a Month.
type BudgetType struct {
	BudgetTypeID string `json:"budgetTypeID"`
	MonthID      string `json:"monthID"`
	WorkspaceID  string `json:"workspaceID"`
	Name         string `json:"name"`
	Order        int    `json:"order"`
}

// BudgetItem is a budget line with an allocated amount. IsSaving marks the
// allocation as a savings reserve rather than ordinary spend.
type BudgetItem struct {
	BudgetItemID string          `json:"budgetItemID"`
	BudgetTypeID string          `json:"budgetTypeID"`
	MonthID      string          `json:"monthID"`
	WorkspaceID  string          `json:"workspaceID"`
	Name         string          `json:"name"`
	BudgetAmount decimal.Decimal `json:"budgetAmount"`
	Order        int             `json:"order"`
	IsSaving     bool            `json:"isSaving"`
}

// MonthLedger is a consistent snapshot of everything the aggregation
// functions need for one month. Lines only contains items of live expenses.
type MonthLedger struct {
	Month        Month
	Types        []BudgetType
	Items        []BudgetItem
	Lines        []ExpenseItem
	ExpenseCount int
}

// ItemByID returns the budget item with the given id, if present in the snapshot.
func (l MonthLedger) ItemByID(budgetItemID string) (BudgetItem, bool) {
	for _, it := range l.Items {
		if it.BudgetItemID == budgetItemID {
			return it, true
		}
	}
	return BudgetItem{}, false
}

// BudgetTypePatch names the fields of a BudgetType to change; nil fields are kept.
type BudgetTypePatch struct {
	Name  *string
	Order *int
}

// BudgetItemPatch names the fields of a BudgetItem to change; nil fields are kept.
type BudgetItemPatch struct {
	Name         *string
	BudgetAmount *decimal.Decimal
	Order        *int
	IsSaving     *bool
}
