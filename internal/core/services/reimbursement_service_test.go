package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/budget_ledger/internal/apperrors"
	"github.com/SscSPs/budget_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/budget_ledger/internal/core/ports/services"
	"github.com/SscSPs/budget_ledger/internal/core/services"
	"github.com/SscSPs/budget_ledger/internal/dto"
	"github.com/SscSPs/budget_ledger/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReimbursementServiceTestSuite struct {
	suite.Suite
	workspaceRepo     *MockWorkspaceRepository
	reimbursementRepo *MockReimbursementRepository
	service           portssvc.ReimbursementSvcFacade

	ctx         context.Context
	workspaceID string
	ownerID     string
	editorID    string
	viewerID    string
	pending     *domain.ReimbursementEntry
}

func (suite *ReimbursementServiceTestSuite) SetupTest() {
	suite.workspaceRepo = new(MockWorkspaceRepository)
	suite.reimbursementRepo = new(MockReimbursementRepository)
	suite.service = suite.newService(false)

	suite.ctx = context.Background()
	suite.workspaceID = uuid.NewString()
	suite.ownerID = uuid.NewString()
	suite.editorID = uuid.NewString()
	suite.viewerID = uuid.NewString()
	suite.workspaceRepo.expectRole(suite.workspaceID, suite.ownerID, domain.RoleOwner)
	suite.workspaceRepo.expectRole(suite.workspaceID, suite.editorID, domain.RoleEditor)
	suite.workspaceRepo.expectRole(suite.workspaceID, suite.viewerID, domain.RoleViewer)

	suite.pending = suite.entry(domain.ReimbursePending)
}

func (suite *ReimbursementServiceTestSuite) newService(lock bool) portssvc.ReimbursementSvcFacade {
	authorizer := services.NewWorkspaceService(suite.workspaceRepo, new(MockProfileRepository), nil)
	return services.NewReimbursementService(suite.reimbursementRepo, suite.workspaceRepo, authorizer,
		services.WithReimburseToLock(lock))
}

func (suite *ReimbursementServiceTestSuite) entry(status domain.ReimburseStatus) *domain.ReimbursementEntry {
	return &domain.ReimbursementEntry{
		ExpenseItem: domain.ExpenseItem{
			ExpenseItemID:       uuid.NewString(),
			BudgetItemID:        "groceries",
			Amount:              dec("30"),
			NeedReimburse:       true,
			ReimbursementAmount: decPtr("30"),
			ReimburseStatus:     status,
		},
		WorkspaceID: suite.workspaceID,
	}
}

func TestReimbursementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReimbursementServiceTestSuite))
}

// Approval by an OWNER is what moves a reimbursable line into the month totals.
func (suite *ReimbursementServiceTestSuite) TestApprove_CountsTowardsTotals() {
	item := domain.BudgetItem{BudgetItemID: "groceries", BudgetAmount: dec("200")}
	posted := domain.ExpenseItem{ExpenseItemID: "l1", BudgetItemID: "groceries", Amount: dec("50"), ReimburseStatus: domain.ReimburseNone}
	ledger := domain.MonthLedger{
		Month: domain.Month{Income: dec("1000")},
		Items: []domain.BudgetItem{item},
		Lines: []domain.ExpenseItem{posted, suite.pending.ExpenseItem},
	}
	before := accounting.ComputeMonthTotals(ledger)
	suite.True(before.ApprovedReimburse.IsZero())
	suite.True(before.Remaining.Equal(dec("150")))

	approved := *suite.pending
	approved.ReimburseStatus = domain.ReimburseApproved
	suite.reimbursementRepo.On("FindReimbursementByItemID", suite.ctx, suite.pending.ExpenseItemID).Return(suite.pending, nil).Once()
	suite.reimbursementRepo.On("TransitionReimbursement", suite.ctx, suite.pending.ExpenseItemID, domain.ReimburseApproved).
		Return(&approved, nil).Once()

	entry, err := suite.service.ApproveReimbursement(suite.ctx, suite.pending.ExpenseItemID, suite.ownerID)
	suite.Require().NoError(err)
	suite.Equal(domain.ReimburseApproved, entry.ReimburseStatus)

	ledger.Lines[1] = entry.ExpenseItem
	after := accounting.ComputeMonthTotals(ledger)
	suite.True(after.ApprovedReimburse.Equal(dec("30")))
	suite.True(after.Remaining.Equal(dec("120")))
	suite.reimbursementRepo.AssertExpectations(suite.T())
}

func (suite *ReimbursementServiceTestSuite) TestApprove_NonOwnerForbidden() {
	for _, caller := range []string{suite.editorID, suite.viewerID} {
		suite.reimbursementRepo.On("FindReimbursementByItemID", suite.ctx, suite.pending.ExpenseItemID).Return(suite.pending, nil).Once()

		_, err := suite.service.ApproveReimbursement(suite.ctx, suite.pending.ExpenseItemID, caller)

		suite.ErrorIs(err, apperrors.ErrForbidden)
	}
	suite.Equal(domain.ReimbursePending, suite.pending.ReimburseStatus)
	suite.reimbursementRepo.AssertNotCalled(suite.T(), "TransitionReimbursement", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReimbursementServiceTestSuite) TestApprove_NonMemberForbidden() {
	outsider := uuid.NewString()
	suite.workspaceRepo.On("FindMember", mock.Anything, suite.workspaceID, outsider).Return(nil, apperrors.NewNotFoundError("member not found"))
	suite.reimbursementRepo.On("FindReimbursementByItemID", suite.ctx, suite.pending.ExpenseItemID).Return(suite.pending, nil).Once()

	_, err := suite.service.RejectReimbursement(suite.ctx, suite.pending.ExpenseItemID, outsider)

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ReimbursementServiceTestSuite) TestDecidedLinesNeverChange() {
	for _, status := range []domain.ReimburseStatus{domain.ReimburseApproved, domain.ReimburseRejected} {
		decided := suite.entry(status)
		suite.reimbursementRepo.On("FindReimbursementByItemID", suite.ctx, decided.ExpenseItemID).Return(decided, nil).Twice()

		_, err := suite.service.ApproveReimbursement(suite.ctx, decided.ExpenseItemID, suite.ownerID)
		suite.ErrorIs(err, apperrors.ErrConflict)
		_, err = suite.service.RejectReimbursement(suite.ctx, decided.ExpenseItemID, suite.ownerID)
		suite.ErrorIs(err, apperrors.ErrConflict)
	}
	suite.reimbursementRepo.AssertNotCalled(suite.T(), "TransitionReimbursement", mock.Anything, mock.Anything, mock.Anything)
}

// Two owners racing: the loser's conditional update reports a conflict.
func (suite *ReimbursementServiceTestSuite) TestConcurrentDecisionLoses() {
	suite.reimbursementRepo.On("FindReimbursementByItemID", suite.ctx, suite.pending.ExpenseItemID).Return(suite.pending, nil).Once()
	suite.reimbursementRepo.On("TransitionReimbursement", suite.ctx, suite.pending.ExpenseItemID, domain.ReimburseRejected).
		Return(nil, apperrors.NewConflictError("reimbursement is already APPROVED")).Once()

	_, err := suite.service.RejectReimbursement(suite.ctx, suite.pending.ExpenseItemID, suite.ownerID)

	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *ReimbursementServiceTestSuite) TestReassign_ToMember() {
	target := suite.viewerID
	suite.reimbursementRepo.On("FindReimbursementByItemID", suite.ctx, suite.pending.ExpenseItemID).Return(suite.pending, nil).Once()
	suite.reimbursementRepo.On("UpdateReimburseTo", suite.ctx, suite.pending.ExpenseItemID, &target, false).
		Return(suite.pending, nil).Once()

	_, err := suite.service.ReassignReimburseTo(suite.ctx, suite.pending.ExpenseItemID, suite.editorID, &target)

	suite.NoError(err)
	suite.reimbursementRepo.AssertExpectations(suite.T())
}

func (suite *ReimbursementServiceTestSuite) TestReassign_Rules() {
	suite.Run("viewer forbidden", func() {
		suite.reimbursementRepo.On("FindReimbursementByItemID", suite.ctx, suite.pending.ExpenseItemID).Return(suite.pending, nil).Once()
		_, err := suite.service.ReassignReimburseTo(suite.ctx, suite.pending.ExpenseItemID, suite.viewerID, nil)
		suite.ErrorIs(err, apperrors.ErrForbidden)
	})

	suite.Run("target must be a member", func() {
		stranger := uuid.NewString()
		suite.workspaceRepo.On("FindMember", mock.Anything, suite.workspaceID, stranger).Return(nil, apperrors.NewNotFoundError("member not found"))
		suite.reimbursementRepo.On("FindReimbursementByItemID", suite.ctx, suite.pending.ExpenseItemID).Return(suite.pending, nil).Once()
		_, err := suite.service.ReassignReimburseTo(suite.ctx, suite.pending.ExpenseItemID, suite.editorID, &stranger)
		suite.ErrorIs(err, apperrors.ErrValidation)
	})

	suite.Run("decided line allowed by default", func() {
		decided := suite.entry(domain.ReimburseApproved)
		suite.reimbursementRepo.On("FindReimbursementByItemID", suite.ctx, decided.ExpenseItemID).Return(decided, nil).Once()
		suite.reimbursementRepo.On("UpdateReimburseTo", suite.ctx, decided.ExpenseItemID, (*string)(nil), false).Return(decided, nil).Once()
		_, err := suite.service.ReassignReimburseTo(suite.ctx, decided.ExpenseItemID, suite.editorID, strPtr(""))
		suite.NoError(err)
	})

	suite.Run("decided line locked when configured", func() {
		svc := suite.newService(true)
		decided := suite.entry(domain.ReimburseRejected)
		suite.reimbursementRepo.On("FindReimbursementByItemID", suite.ctx, decided.ExpenseItemID).Return(decided, nil).Once()
		_, err := svc.ReassignReimburseTo(suite.ctx, decided.ExpenseItemID, suite.editorID, nil)
		suite.ErrorIs(err, apperrors.ErrConflict)
	})
}

func (suite *ReimbursementServiceTestSuite) TestListReimbursements_StatusFilter() {
	suite.reimbursementRepo.On("ListReimbursements", suite.ctx, portsrepo.ReimbursementFilter{
		WorkspaceID: suite.workspaceID, Status: domain.ReimbursePending,
	}).Return([]domain.ReimbursementEntry{*suite.pending}, nil).Once()
	suite.reimbursementRepo.On("ListReimbursements", suite.ctx, portsrepo.ReimbursementFilter{
		WorkspaceID: suite.workspaceID, MonthID: "m1",
	}).Return([]domain.ReimbursementEntry{}, nil).Once()

	entries, err := suite.service.ListReimbursements(suite.ctx, suite.workspaceID, suite.viewerID, dto.ListReimbursementsParams{})
	suite.NoError(err)
	suite.Len(entries, 1)

	entries, err = suite.service.ListReimbursements(suite.ctx, suite.workspaceID, suite.viewerID,
		dto.ListReimbursementsParams{Status: dto.ReimbursementStatusAll, MonthID: "m1"})
	suite.NoError(err)
	suite.Empty(entries)

	_, err = suite.service.ListReimbursements(suite.ctx, suite.workspaceID, suite.viewerID, dto.ListReimbursementsParams{Status: "NONE"})
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.reimbursementRepo.AssertExpectations(suite.T())
}
