package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/budget_ledger/internal/apperrors"
	"github.com/SscSPs/budget_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/budget_ledger/internal/core/ports/services"
	"github.com/SscSPs/budget_ledger/internal/core/services"
	"github.com/SscSPs/budget_ledger/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MonthServiceTestSuite struct {
	suite.Suite
	workspaceRepo *MockWorkspaceRepository
	monthRepo     *MockMonthRepository
	service       portssvc.MonthSvcFacade

	ctx      context.Context
	month    *domain.Month
	editorID string
	viewerID string
}

func (suite *MonthServiceTestSuite) SetupTest() {
	suite.workspaceRepo = new(MockWorkspaceRepository)
	suite.monthRepo = new(MockMonthRepository)
	authorizer := services.NewWorkspaceService(suite.workspaceRepo, new(MockProfileRepository), nil)
	suite.service = services.NewMonthService(suite.monthRepo, authorizer)

	suite.ctx = context.Background()
	suite.month = &domain.Month{
		MonthID:     uuid.NewString(),
		WorkspaceID: uuid.NewString(),
		Year:        2024,
		Month:       5,
		Income:      dec("1000"),
		CarryOver:   decimal.Zero,
	}
	suite.editorID = uuid.NewString()
	suite.viewerID = uuid.NewString()
	suite.workspaceRepo.expectRole(suite.month.WorkspaceID, suite.editorID, domain.RoleEditor)
	suite.workspaceRepo.expectRole(suite.month.WorkspaceID, suite.viewerID, domain.RoleViewer)
	suite.monthRepo.On("FindMonthByID", mock.Anything, suite.month.MonthID).Return(suite.month, nil).Maybe()
}

func TestMonthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MonthServiceTestSuite))
}

func (suite *MonthServiceTestSuite) TestCreateMonth_Success() {
	suite.monthRepo.On("SaveMonth", suite.ctx, mock.MatchedBy(func(m domain.Month) bool {
		return m.Year == 2024 && m.Month == 6 && m.Title == nil && m.Income.Equal(dec("1200"))
	})).Return(nil).Once()

	month, err := suite.service.CreateMonth(suite.ctx, suite.month.WorkspaceID, suite.editorID, dto.CreateMonthRequest{
		Year: 2024, Month: 6, Title: strPtr("  "), Income: dec("1200"),
	})

	suite.Require().NoError(err)
	suite.Equal(suite.month.WorkspaceID, month.WorkspaceID)
	suite.Equal(suite.editorID, month.CreatedBy)
	suite.monthRepo.AssertExpectations(suite.T())
}

func (suite *MonthServiceTestSuite) TestCreateMonth_ValidationListsEveryField() {
	_, err := suite.service.CreateMonth(suite.ctx, suite.month.WorkspaceID, suite.editorID, dto.CreateMonthRequest{
		Year: 1999, Month: 13, Income: dec("-1"), CarryOver: dec("-2"),
	})

	var valErr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &valErr)
	suite.Len(valErr.Fields, 4)
	suite.Contains(valErr.Fields, "year")
	suite.Contains(valErr.Fields, "month")
	suite.Contains(valErr.Fields, "income")
	suite.Contains(valErr.Fields, "carryOver")
	suite.monthRepo.AssertNotCalled(suite.T(), "SaveMonth", mock.Anything, mock.Anything)
}

func (suite *MonthServiceTestSuite) TestCreateMonth_ViewerForbidden() {
	_, err := suite.service.CreateMonth(suite.ctx, suite.month.WorkspaceID, suite.viewerID, dto.CreateMonthRequest{Year: 2024, Month: 6})

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *MonthServiceTestSuite) TestCreateMonth_DuplicatePeriod() {
	suite.monthRepo.On("SaveMonth", suite.ctx, mock.Anything).
		Return(apperrors.NewDuplicateError("month already exists in this workspace")).Once()

	_, err := suite.service.CreateMonth(suite.ctx, suite.month.WorkspaceID, suite.editorID, dto.CreateMonthRequest{Year: 2024, Month: 5})

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

// A month that already has budget types keeps its income: every attempt conflicts.
func (suite *MonthServiceTestSuite) TestUpdateMonthFunds_LockedMonthConflicts() {
	income := decPtr("2000")
	suite.monthRepo.On("UpdateMonthFunds", suite.ctx, suite.month.MonthID, income, (*decimal.Decimal)(nil)).
		Return(nil, apperrors.NewConflictError("income and carry-over are locked once the month has budget types")).Times(3)

	for i := 0; i < 3; i++ {
		month, err := suite.service.UpdateMonthFunds(suite.ctx, suite.month.MonthID, suite.editorID,
			dto.UpdateMonthFundsRequest{Income: income})
		suite.Nil(month)
		suite.ErrorIs(err, apperrors.ErrConflict)
	}
	suite.True(suite.month.Income.Equal(dec("1000")))
	suite.monthRepo.AssertExpectations(suite.T())
}

func (suite *MonthServiceTestSuite) TestUpdateMonthFunds_Validation() {
	_, err := suite.service.UpdateMonthFunds(suite.ctx, suite.month.MonthID, suite.editorID, dto.UpdateMonthFundsRequest{})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.UpdateMonthFunds(suite.ctx, suite.month.MonthID, suite.editorID,
		dto.UpdateMonthFundsRequest{CarryOver: decPtr("-5")})
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.monthRepo.AssertNotCalled(suite.T(), "UpdateMonthFunds", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *MonthServiceTestSuite) TestDeleteMonth_WithBudgetTypesConflicts() {
	suite.monthRepo.On("DeleteMonth", suite.ctx, suite.month.MonthID).
		Return(apperrors.NewConflictError("month still has budget types or expenses")).Once()

	err := suite.service.DeleteMonth(suite.ctx, suite.month.MonthID, suite.editorID)

	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.monthRepo.AssertExpectations(suite.T())
}

func (suite *MonthServiceTestSuite) TestDeleteMonth_NonMemberForbidden() {
	outsider := uuid.NewString()
	suite.workspaceRepo.On("FindMember", mock.Anything, suite.month.WorkspaceID, outsider).
		Return(nil, apperrors.NewNotFoundError("member not found"))

	err := suite.service.DeleteMonth(suite.ctx, suite.month.MonthID, outsider)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.monthRepo.AssertNotCalled(suite.T(), "DeleteMonth", mock.Anything, mock.Anything)
}

func (suite *MonthServiceTestSuite) TestDuplicateMonth() {
	suite.monthRepo.On("DuplicateMonth", suite.ctx, suite.month.MonthID, mock.MatchedBy(func(m domain.Month) bool {
		return m.WorkspaceID == suite.month.WorkspaceID && m.Year == 2024 && m.Month == 6 &&
			m.Income.Equal(dec("1500")) && m.MonthID != suite.month.MonthID
	})).Return(nil).Once()

	month, err := suite.service.DuplicateMonth(suite.ctx, suite.month.MonthID, suite.editorID, dto.DuplicateMonthRequest{
		TargetYear: 2024, TargetMonth: 6, Income: dec("1500"), Title: strPtr("June"),
	})

	suite.Require().NoError(err)
	suite.Equal("June", *month.Title)
	suite.monthRepo.AssertExpectations(suite.T())
}

// Month with income 1000, one "Groceries" item of 200 and a posted line of 50.
func (suite *MonthServiceTestSuite) groceriesLedger() *domain.MonthLedger {
	item := domain.BudgetItem{BudgetItemID: "groceries", BudgetTypeID: "food", Name: "Groceries", BudgetAmount: dec("200")}
	return &domain.MonthLedger{
		Month: *suite.month,
		Types: []domain.BudgetType{{BudgetTypeID: "food", Name: "Food"}},
		Items: []domain.BudgetItem{item},
		Lines: []domain.ExpenseItem{
			{ExpenseItemID: "l1", BudgetItemID: "groceries", Amount: dec("50"), ReimburseStatus: domain.ReimburseNone},
		},
		ExpenseCount: 1,
	}
}

func (suite *MonthServiceTestSuite) TestGetMonthTotals() {
	suite.monthRepo.On("LoadMonthLedger", suite.ctx, suite.month.MonthID).Return(suite.groceriesLedger(), nil).Once()

	totals, err := suite.service.GetMonthTotals(suite.ctx, suite.month.MonthID, suite.viewerID)

	suite.Require().NoError(err)
	suite.True(totals.Posted.Equal(dec("50")))
	suite.True(totals.Remaining.Equal(dec("150")))
	suite.True(totals.TotalSpending.Equal(dec("50")))
	suite.True(totals.Unallocated.Equal(dec("800")))
	suite.Equal(1, totals.ExpenseCount)
}

func (suite *MonthServiceTestSuite) TestGetBudgetView() {
	suite.monthRepo.On("LoadMonthLedger", suite.ctx, suite.month.MonthID).Return(suite.groceriesLedger(), nil).Once()

	view, err := suite.service.GetBudgetView(suite.ctx, suite.month.MonthID, suite.viewerID)

	suite.Require().NoError(err)
	suite.Require().Len(view.Types, 1)
	suite.Require().Len(view.Types[0].Items, 1)
	suite.True(view.Types[0].Items[0].Remaining.Equal(dec("150")))
	suite.False(view.Types[0].Items[0].OverBudget)
}

func (suite *MonthServiceTestSuite) TestGetMonth_NotFound() {
	missing := uuid.NewString()
	suite.monthRepo.On("FindMonthByID", suite.ctx, missing).Return(nil, apperrors.NewNotFoundError("month not found")).Once()

	_, err := suite.service.GetMonth(suite.ctx, missing, suite.viewerID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}
