package domain_test

import (
	"testing"

	"github.com/SscSPs/budget_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func stringPtr(s string) *string {
	return &s
}

func TestReimburseStatus_CanTransitionTo(t *testing.T) {
	all := []domain.ReimburseStatus{
		domain.ReimburseNone,
		domain.ReimbursePending,
		domain.ReimburseApproved,
		domain.ReimburseRejected,
	}
	allowed := map[domain.ReimburseStatus]map[domain.ReimburseStatus]bool{
		domain.ReimbursePending: {
			domain.ReimburseApproved: true,
			domain.ReimburseRejected: true,
		},
	}

	for _, from := range all {
		for _, to := range all {
			t.Run(string(from)+"->"+string(to), func(t *testing.T) {
				assert.Equal(t, allowed[from][to], from.CanTransitionTo(to))
			})
		}
	}
}

func TestReimburseStatus_IsTerminal(t *testing.T) {
	assert.True(t, domain.ReimburseNone.IsTerminal())
	assert.False(t, domain.ReimbursePending.IsTerminal())
	assert.True(t, domain.ReimburseApproved.IsTerminal())
	assert.True(t, domain.ReimburseRejected.IsTerminal())
}

func TestExpenseItem_Transition_IsMonotonic(t *testing.T) {
	item := domain.ExpenseItem{
		Amount:        decimal.NewFromInt(30),
		NeedReimburse: true,
	}
	item.NormalizeReimbursement()
	require.Equal(t, domain.ReimbursePending, item.ReimburseStatus)

	assert.True(t, item.Transition(domain.ReimburseApproved))
	assert.Equal(t, domain.ReimburseApproved, item.ReimburseStatus)

	// Once decided, nothing moves it again.
	for _, next := range []domain.ReimburseStatus{domain.ReimburseRejected, domain.ReimbursePending, domain.ReimburseApproved, domain.ReimburseNone} {
		assert.False(t, item.Transition(next))
		assert.Equal(t, domain.ReimburseApproved, item.ReimburseStatus)
	}
}

func TestExpenseItem_Transition_NonReimbursable(t *testing.T) {
	item := domain.ExpenseItem{Amount: decimal.NewFromInt(10)}
	item.NormalizeReimbursement()

	assert.False(t, item.Transition(domain.ReimburseApproved))
	assert.Equal(t, domain.ReimburseNone, item.ReimburseStatus)
}

func TestExpenseItem_NormalizeReimbursement(t *testing.T) {
	tests := []struct {
		name       string
		item       domain.ExpenseItem
		wantStatus domain.ReimburseStatus
		wantAmount *decimal.Decimal
		wantTo     *string
	}{
		{
			name: "non reimbursable clears reimbursement fields",
			item: domain.ExpenseItem{
				Amount:              decimal.NewFromInt(50),
				ReimbursementAmount: decimalPtr(decimal.NewFromInt(20)),
				ReimburseTo:         stringPtr("p-1"),
				ReimburseStatus:     domain.ReimbursePending,
			},
			wantStatus: domain.ReimburseNone,
		},
		{
			name: "reimbursable defaults amount",
			item: domain.ExpenseItem{
				Amount:        decimal.NewFromInt(30),
				NeedReimburse: true,
			},
			wantStatus: domain.ReimbursePending,
			wantAmount: decimalPtr(decimal.NewFromInt(30)),
		},
		{
			name: "reimbursable keeps explicit amount and target",
			item: domain.ExpenseItem{
				Amount:              decimal.NewFromInt(30),
				NeedReimburse:       true,
				ReimbursementAmount: decimalPtr(decimal.NewFromInt(12)),
				ReimburseTo:         stringPtr("p-2"),
			},
			wantStatus: domain.ReimbursePending,
			wantAmount: decimalPtr(decimal.NewFromInt(12)),
			wantTo:     stringPtr("p-2"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := tt.item
			item.NormalizeReimbursement()
			assert.Equal(t, tt.wantStatus, item.ReimburseStatus)
			if tt.wantAmount == nil {
				assert.Nil(t, item.ReimbursementAmount)
			} else {
				require.NotNil(t, item.ReimbursementAmount)
				assert.True(t, tt.wantAmount.Equal(*item.ReimbursementAmount))
			}
			assert.Equal(t, tt.wantTo, item.ReimburseTo)
		})
	}
}

func TestWorkspaceRole_Includes(t *testing.T) {
	tests := []struct {
		role     domain.WorkspaceRole
		required domain.WorkspaceRole
		want     bool
	}{
		{domain.RoleOwner, domain.RoleOwner, true},
		{domain.RoleOwner, domain.RoleEditor, true},
		{domain.RoleOwner, domain.RoleViewer, true},
		{domain.RoleEditor, domain.RoleOwner, false},
		{domain.RoleEditor, domain.RoleEditor, true},
		{domain.RoleEditor, domain.RoleViewer, true},
		{domain.RoleViewer, domain.RoleOwner, false},
		{domain.RoleViewer, domain.RoleEditor, false},
		{domain.RoleViewer, domain.RoleViewer, true},
		{domain.WorkspaceRole("ADMIN"), domain.RoleViewer, false},
		{domain.WorkspaceRole(""), domain.RoleViewer, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role)+"/"+string(tt.required), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.Includes(tt.required))
		})
	}
}
