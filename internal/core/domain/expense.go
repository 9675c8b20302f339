package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReimburseStatus is the state of the reimbursement workflow of an ExpenseItem.
type ReimburseStatus string

const (
	ReimburseNone     ReimburseStatus = "NONE"
	ReimbursePending  ReimburseStatus = "PENDING"
	ReimburseApproved ReimburseStatus = "APPROVED"
	ReimburseRejected ReimburseStatus = "REJECTED"
)

// IsTerminal reports whether no transition may leave s.
func (s ReimburseStatus) IsTerminal() bool {
	return s != ReimbursePending
}

// CanTransitionTo reports whether moving from s to next is a legal transition.
// Only PENDING -> APPROVED and PENDING -> REJECTED are allowed.
func (s ReimburseStatus) CanTransitionTo(next ReimburseStatus) bool {
	return s == ReimbursePending && (next == ReimburseApproved || next == ReimburseRejected)
}

// IsValid reports whether s is a known status.
func (s ReimburseStatus) IsValid() bool {
	switch s {
	case ReimburseNone, ReimbursePending, ReimburseApproved, ReimburseRejected:
		return true
	}
	return false
}

// Expense is a spending event with itemized allocations against BudgetItems.
// Expenses are soft-deleted via DeletedAt.
type Expense struct {
	ExpenseID   string          `json:"expenseID"`
	MonthID     string          `json:"monthID"`
	WorkspaceID string          `json:"workspaceID"`
	Date        time.Time       `json:"date"`
	Name        string          `json:"name"`
	Note        *string         `json:"note,omitempty"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	DeletedAt   *time.Time      `json:"deletedAt,omitempty"`
	AuditFields

	Items       []ExpenseItem `json:"items"`
	Attachments []Attachment  `json:"attachments"`

	CreatedByEmail string  `json:"createdByEmail,omitempty"`
	CreatedByName  *string `json:"createdByName,omitempty"`
}

// ExpenseItem is one line of an Expense allocated to a BudgetItem.
type ExpenseItem struct {
	ExpenseItemID       string           `json:"expenseItemID"`
	ExpenseID           string           `json:"expenseID"`
	Name                string           `json:"name"`
	BudgetItemID        string           `json:"budgetItemID"`
	BudgetItemName      string           `json:"budgetItemName,omitempty"`
	Amount              decimal.Decimal  `json:"amount"`
	NeedReimburse       bool             `json:"needReimburse"`
	ReimbursementAmount *decimal.Decimal `json:"reimbursementAmount,omitempty"`
	ReimburseTo         *string          `json:"reimburseTo,omitempty"`
	ReimburseStatus     ReimburseStatus  `json:"reimburseStatus"`
}

// NormalizeReimbursement enforces the reimbursement shape of a new line:
// non-reimbursable lines carry no reimbursement fields and status NONE;
// reimbursable lines default the reimbursement amount to Amount and start PENDING.
func (i *ExpenseItem) NormalizeReimbursement() {
	if !i.NeedReimburse {
		i.ReimbursementAmount = nil
		i.ReimburseTo = nil
		i.ReimburseStatus = ReimburseNone
		return
	}
	if i.ReimbursementAmount == nil {
		amt := i.Amount
		i.ReimbursementAmount = &amt
	}
	i.ReimburseStatus = ReimbursePending
}

// Transition moves the item to next, failing when the move is not legal.
func (i *ExpenseItem) Transition(next ReimburseStatus) bool {
	if !i.NeedReimburse || !i.ReimburseStatus.CanTransitionTo(next) {
		return false
	}
	i.ReimburseStatus = next
	return true
}

// Attachment is metadata of a file stored by an external blob store.
type Attachment struct {
	AttachmentID string `json:"attachmentID"`
	ExpenseID    string `json:"expenseID"`
	FileURL      string `json:"fileURL"`
	Filename     string `json:"filename"`
	SizeBytes    *int64 `json:"sizeBytes,omitempty"`
}

// ReimbursementEntry is an ExpenseItem awaiting or past a reimbursement
// decision, joined with the context needed to authorize and display it.
type ReimbursementEntry struct {
	ExpenseItem
	WorkspaceID    string    `json:"workspaceID"`
	MonthID        string    `json:"monthID"`
	ExpenseName    string    `json:"expenseName"`
	ExpenseDate    time.Time `json:"expenseDate"`
	CreatedBy      string    `json:"createdBy"`
	CreatedByEmail string    `json:"createdByEmail,omitempty"`
}
