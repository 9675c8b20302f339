package handlers_test

import (
	"context"

	"github.com/SscSPs/budget_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/budget_ledger/internal/core/ports/services"
	"github.com/SscSPs/budget_ledger/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock WorkspaceService ---
type MockWorkspaceService struct {
	mock.Mock
}

func (m *MockWorkspaceService) GetWorkspace(ctx context.Context, workspaceID, requestingUserID string) (*domain.WorkspaceWithRole, error) {
	args := m.Called(ctx, workspaceID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkspaceWithRole), args.Error(1)
}
func (m *MockWorkspaceService) ListUserWorkspaces(ctx context.Context, userID string) ([]domain.WorkspaceWithRole, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkspaceWithRole), args.Error(1)
}
func (m *MockWorkspaceService) ListMembers(ctx context.Context, workspaceID, requestingUserID string) ([]domain.WorkspaceMember, error) {
	args := m.Called(ctx, workspaceID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkspaceMember), args.Error(1)
}
func (m *MockWorkspaceService) CreateWorkspace(ctx context.Context, req dto.CreateWorkspaceRequest, creatorUserID string) (*domain.WorkspaceWithRole, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkspaceWithRole), args.Error(1)
}
func (m *MockWorkspaceService) RenameWorkspace(ctx context.Context, workspaceID, requestingUserID string, req dto.UpdateWorkspaceRequest) (*domain.WorkspaceWithRole, error) {
	args := m.Called(ctx, workspaceID, requestingUserID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkspaceWithRole), args.Error(1)
}
func (m *MockWorkspaceService) DeleteWorkspace(ctx context.Context, workspaceID, requestingUserID string) error {
	args := m.Called(ctx, workspaceID, requestingUserID)
	return args.Error(0)
}
func (m *MockWorkspaceService) InviteMember(ctx context.Context, workspaceID, requestingUserID string, req dto.InviteMemberRequest) (*domain.WorkspaceMember, error) {
	args := m.Called(ctx, workspaceID, requestingUserID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkspaceMember), args.Error(1)
}
func (m *MockWorkspaceService) UpdateMemberRole(ctx context.Context, workspaceID, requestingUserID, targetUserID string, role domain.WorkspaceRole) (*domain.WorkspaceMember, error) {
	args := m.Called(ctx, workspaceID, requestingUserID, targetUserID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkspaceMember), args.Error(1)
}
func (m *MockWorkspaceService) RemoveMember(ctx context.Context, workspaceID, requestingUserID, targetUserID string) error {
	args := m.Called(ctx, workspaceID, requestingUserID, targetUserID)
	return args.Error(0)
}
func (m *MockWorkspaceService) AuthorizeUserAction(ctx context.Context, userID, workspaceID string, requiredRole domain.WorkspaceRole) (domain.WorkspaceRole, error) {
	args := m.Called(ctx, userID, workspaceID, requiredRole)
	return args.Get(0).(domain.WorkspaceRole), args.Error(1)
}

// --- Mock MonthService ---
type MockMonthService struct {
	mock.Mock
}

func (m *MockMonthService) GetMonth(ctx context.Context, monthID, requestingUserID string) (*domain.Month, error) {
	args := m.Called(ctx, monthID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Month), args.Error(1)
}
func (m *MockMonthService) ListMonths(ctx context.Context, workspaceID, requestingUserID string) ([]domain.Month, error) {
	args := m.Called(ctx, workspaceID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Month), args.Error(1)
}
func (m *MockMonthService) GetBudgetView(ctx context.Context, monthID, requestingUserID string) (*domain.BudgetView, error) {
	args := m.Called(ctx, monthID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetView), args.Error(1)
}
func (m *MockMonthService) GetMonthTotals(ctx context.Context, monthID, requestingUserID string) (*domain.MonthTotals, error) {
	args := m.Called(ctx, monthID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthTotals), args.Error(1)
}
func (m *MockMonthService) CreateMonth(ctx context.Context, workspaceID, requestingUserID string, req dto.CreateMonthRequest) (*domain.Month, error) {
	args := m.Called(ctx, workspaceID, requestingUserID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Month), args.Error(1)
}
func (m *MockMonthService) UpdateMonthFunds(ctx context.Context, monthID, requestingUserID string, req dto.UpdateMonthFundsRequest) (*domain.Month, error) {
	args := m.Called(ctx, monthID, requestingUserID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Month), args.Error(1)
}
func (m *MockMonthService) DeleteMonth(ctx context.Context, monthID, requestingUserID string) error {
	args := m.Called(ctx, monthID, requestingUserID)
	return args.Error(0)
}
func (m *MockMonthService) DuplicateMonth(ctx context.Context, monthID, requestingUserID string, req dto.DuplicateMonthRequest) (*domain.Month, error) {
	args := m.Called(ctx, monthID, requestingUserID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Month), args.Error(1)
}

// --- Mock ExpenseService ---
type MockExpenseService struct {
	mock.Mock
}

func (m *MockExpenseService) CreateExpense(ctx context.Context, monthID, requestingUserID string, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	args := m.Called(ctx, monthID, requestingUserID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}
func (m *MockExpenseService) ListExpenses(ctx context.Context, monthID, requestingUserID string, params dto.ListExpensesParams) (*dto.ListExpensesResponse, error) {
	args := m.Called(ctx, monthID, requestingUserID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListExpensesResponse), args.Error(1)
}
func (m *MockExpenseService) DeleteExpense(ctx context.Context, expenseID, requestingUserID string) error {
	args := m.Called(ctx, expenseID, requestingUserID)
	return args.Error(0)
}

// --- Mock ReimbursementService ---
type MockReimbursementService struct {
	mock.Mock
}

func (m *MockReimbursementService) ListReimbursements(ctx context.Context, workspaceID, requestingUserID string, params dto.ListReimbursementsParams) ([]domain.ReimbursementEntry, error) {
	args := m.Called(ctx, workspaceID, requestingUserID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReimbursementEntry), args.Error(1)
}
func (m *MockReimbursementService) ApproveReimbursement(ctx context.Context, expenseItemID, requestingUserID string) (*domain.ReimbursementEntry, error) {
	args := m.Called(ctx, expenseItemID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReimbursementEntry), args.Error(1)
}
func (m *MockReimbursementService) RejectReimbursement(ctx context.Context, expenseItemID, requestingUserID string) (*domain.ReimbursementEntry, error) {
	args := m.Called(ctx, expenseItemID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReimbursementEntry), args.Error(1)
}
func (m *MockReimbursementService) ReassignReimburseTo(ctx context.Context, expenseItemID, requestingUserID string, reimburseTo *string) (*domain.ReimbursementEntry, error) {
	args := m.Called(ctx, expenseItemID, requestingUserID, reimburseTo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReimbursementEntry), args.Error(1)
}

// Ensure mocks implement the interfaces
var (
	_ portssvc.WorkspaceSvcFacade     = (*MockWorkspaceService)(nil)
	_ portssvc.MonthSvcFacade         = (*MockMonthService)(nil)
	_ portssvc.ExpenseSvcFacade       = (*MockExpenseService)(nil)
	_ portssvc.ReimbursementSvcFacade = (*MockReimbursementService)(nil)
)
