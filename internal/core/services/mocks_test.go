package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/budget_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_ledger/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Workspace repository mock ---

type MockWorkspaceRepository struct {
	mock.Mock
}

func (m *MockWorkspaceRepository) FindWorkspaceByID(ctx context.Context, workspaceID string) (*domain.Workspace, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workspace), args.Error(1)
}

func (m *MockWorkspaceRepository) ListWorkspacesByProfileID(ctx context.Context, profileID string) ([]domain.WorkspaceWithRole, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkspaceWithRole), args.Error(1)
}

func (m *MockWorkspaceRepository) CreateWorkspaceWithOwner(ctx context.Context, workspace domain.Workspace, owner domain.WorkspaceMember) error {
	args := m.Called(ctx, workspace, owner)
	return args.Error(0)
}

func (m *MockWorkspaceRepository) UpdateWorkspaceName(ctx context.Context, workspaceID, name string) (*domain.Workspace, error) {
	args := m.Called(ctx, workspaceID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workspace), args.Error(1)
}

func (m *MockWorkspaceRepository) DeleteWorkspace(ctx context.Context, workspaceID string) error {
	args := m.Called(ctx, workspaceID)
	return args.Error(0)
}

func (m *MockWorkspaceRepository) FindMember(ctx context.Context, workspaceID, profileID string) (*domain.WorkspaceMember, error) {
	args := m.Called(ctx, workspaceID, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkspaceMember), args.Error(1)
}

func (m *MockWorkspaceRepository) ListMembers(ctx context.Context, workspaceID string) ([]domain.WorkspaceMember, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkspaceMember), args.Error(1)
}

func (m *MockWorkspaceRepository) AddMember(ctx context.Context, member domain.WorkspaceMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockWorkspaceRepository) UpdateMemberRole(ctx context.Context, workspaceID, profileID string, role domain.WorkspaceRole) (*domain.WorkspaceMember, error) {
	args := m.Called(ctx, workspaceID, profileID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkspaceMember), args.Error(1)
}

func (m *MockWorkspaceRepository) RemoveMember(ctx context.Context, workspaceID, profileID string) error {
	args := m.Called(ctx, workspaceID, profileID)
	return args.Error(0)
}

// expectRole makes FindMember resolve profileID to role in workspaceID.
func (m *MockWorkspaceRepository) expectRole(workspaceID, profileID string, role domain.WorkspaceRole) {
	m.On("FindMember", mock.Anything, workspaceID, profileID).
		Return(&domain.WorkspaceMember{WorkspaceID: workspaceID, ProfileID: profileID, Role: role}, nil).Maybe()
}

// --- Profile repository mock ---

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindProfileByID(ctx context.Context, profileID string) (*domain.Profile, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) FindProfileByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

// --- Month repository mock ---

type MockMonthRepository struct {
	mock.Mock
}

func (m *MockMonthRepository) FindMonthByID(ctx context.Context, monthID string) (*domain.Month, error) {
	args := m.Called(ctx, monthID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Month), args.Error(1)
}

func (m *MockMonthRepository) ListMonthsByWorkspace(ctx context.Context, workspaceID string) ([]domain.Month, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Month), args.Error(1)
}

func (m *MockMonthRepository) LoadMonthLedger(ctx context.Context, monthID string) (*domain.MonthLedger, error) {
	args := m.Called(ctx, monthID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthLedger), args.Error(1)
}

func (m *MockMonthRepository) SaveMonth(ctx context.Context, month domain.Month) error {
	args := m.Called(ctx, month)
	return args.Error(0)
}

func (m *MockMonthRepository) UpdateMonthFunds(ctx context.Context, monthID string, income, carryOver *decimal.Decimal) (*domain.Month, error) {
	args := m.Called(ctx, monthID, income, carryOver)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Month), args.Error(1)
}

func (m *MockMonthRepository) DeleteMonth(ctx context.Context, monthID string) error {
	args := m.Called(ctx, monthID)
	return args.Error(0)
}

func (m *MockMonthRepository) DuplicateMonth(ctx context.Context, sourceMonthID string, target domain.Month) error {
	args := m.Called(ctx, sourceMonthID, target)
	return args.Error(0)
}

// --- Budget repository mock ---

type MockBudgetRepository struct {
	mock.Mock
}

func (m *MockBudgetRepository) SaveBudgetType(ctx context.Context, budgetType domain.BudgetType) error {
	args := m.Called(ctx, budgetType)
	return args.Error(0)
}

func (m *MockBudgetRepository) FindBudgetTypeByID(ctx context.Context, budgetTypeID string) (*domain.BudgetType, error) {
	args := m.Called(ctx, budgetTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetType), args.Error(1)
}

func (m *MockBudgetRepository) UpdateBudgetType(ctx context.Context, budgetTypeID string, patch domain.BudgetTypePatch) (*domain.BudgetType, error) {
	args := m.Called(ctx, budgetTypeID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetType), args.Error(1)
}

func (m *MockBudgetRepository) DeleteBudgetType(ctx context.Context, budgetTypeID string) error {
	args := m.Called(ctx, budgetTypeID)
	return args.Error(0)
}

func (m *MockBudgetRepository) SaveBudgetItem(ctx context.Context, item domain.BudgetItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockBudgetRepository) FindBudgetItemByID(ctx context.Context, budgetItemID string) (*domain.BudgetItem, error) {
	args := m.Called(ctx, budgetItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetItem), args.Error(1)
}

func (m *MockBudgetRepository) UpdateBudgetItem(ctx context.Context, budgetItemID string, patch domain.BudgetItemPatch) (*domain.BudgetItem, error) {
	args := m.Called(ctx, budgetItemID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetItem), args.Error(1)
}

func (m *MockBudgetRepository) DeleteBudgetItem(ctx context.Context, budgetItemID string) error {
	args := m.Called(ctx, budgetItemID)
	return args.Error(0)
}

// --- Expense repository mock ---

type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string, includeDeleted bool) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID, includeDeleted)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) ListExpenses(ctx context.Context, filter portsrepo.ExpenseFilter) ([]domain.Expense, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) SoftDeleteExpense(ctx context.Context, expenseID string, deletedAt time.Time) error {
	args := m.Called(ctx, expenseID, deletedAt)
	return args.Error(0)
}

// --- Reimbursement repository mock ---

type MockReimbursementRepository struct {
	mock.Mock
}

func (m *MockReimbursementRepository) FindReimbursementByItemID(ctx context.Context, expenseItemID string) (*domain.ReimbursementEntry, error) {
	args := m.Called(ctx, expenseItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReimbursementEntry), args.Error(1)
}

func (m *MockReimbursementRepository) ListReimbursements(ctx context.Context, filter portsrepo.ReimbursementFilter) ([]domain.ReimbursementEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReimbursementEntry), args.Error(1)
}

func (m *MockReimbursementRepository) TransitionReimbursement(ctx context.Context, expenseItemID string, next domain.ReimburseStatus) (*domain.ReimbursementEntry, error) {
	args := m.Called(ctx, expenseItemID, next)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReimbursementEntry), args.Error(1)
}

func (m *MockReimbursementRepository) UpdateReimburseTo(ctx context.Context, expenseItemID string, reimburseTo *string, onlyPending bool) (*domain.ReimbursementEntry, error) {
	args := m.Called(ctx, expenseItemID, reimburseTo, onlyPending)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReimbursementEntry), args.Error(1)
}

// --- Notifier mock ---

type MockInvitationNotifier struct {
	mock.Mock
}

func (m *MockInvitationNotifier) NotifyMemberInvited(ctx context.Context, invitation domain.MemberInvitation) error {
	args := m.Called(ctx, invitation)
	return args.Error(0)
}

// --- Fixtures ---

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func strPtr(s string) *string {
	return &s
}

var (
	_ portsrepo.WorkspaceRepositoryFacade     = (*MockWorkspaceRepository)(nil)
	_ portsrepo.ProfileReader                 = (*MockProfileRepository)(nil)
	_ portsrepo.MonthRepositoryFacade         = (*MockMonthRepository)(nil)
	_ portsrepo.BudgetRepositoryFacade        = (*MockBudgetRepository)(nil)
	_ portsrepo.ExpenseRepositoryFacade       = (*MockExpenseRepository)(nil)
	_ portsrepo.ReimbursementRepositoryFacade = (*MockReimbursementRepository)(nil)
)
