//go:build integration

package pgsql

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/SscSPs/budget_ledger/internal/apperrors"
	"github.com/SscSPs/budget_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/budget_ledger/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// Integration tests require a disposable PostgreSQL database.
// Run with: TEST_DATABASE_URL=postgres://... go test -tags=integration ./internal/repositories/database/pgsql

type RepositoryIntegrationSuite struct {
	suite.Suite
	ctx   context.Context
	pool  *pgxpool.Pool
	repos portsrepo.RepositoryProvider

	ownerID     string
	editorID    string
	workspaceID string
	month       domain.Month
	foodType    domain.BudgetType
	groceries   domain.BudgetItem
}

func TestRepositoryIntegrationSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	if os.Getenv("TEST_DATABASE_URL") == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}
	suite.Run(t, new(RepositoryIntegrationSuite))
}

func (s *RepositoryIntegrationSuite) SetupSuite() {
	url := os.Getenv("TEST_DATABASE_URL")
	s.ctx = context.Background()

	_, err := database.RunMigrations(url)
	s.Require().NoError(err)
	s.pool, err = database.NewPgxPool(s.ctx, url, true)
	s.Require().NoError(err)
	s.repos = NewRepositoryProvider(s.pool)
}

func (s *RepositoryIntegrationSuite) TearDownSuite() {
	database.ClosePgxPool(s.pool)
}

// SetupTest seeds a fresh workspace with an owner, an editor and one month
// holding Food > Groceries ($200).
func (s *RepositoryIntegrationSuite) SetupTest() {
	s.ownerID = s.insertProfile("Owner")
	s.editorID = s.insertProfile("Editor")
	s.workspaceID = uuid.NewString()
	now := time.Now().UTC()

	s.Require().NoError(s.repos.WorkspaceRepo.CreateWorkspaceWithOwner(s.ctx,
		domain.Workspace{WorkspaceID: s.workspaceID, Name: "Household", AuditFields: domain.AuditFields{CreatedAt: now, CreatedBy: s.ownerID}},
		domain.WorkspaceMember{WorkspaceID: s.workspaceID, ProfileID: s.ownerID, Role: domain.RoleOwner, JoinedAt: now}))
	s.Require().NoError(s.repos.WorkspaceRepo.AddMember(s.ctx,
		domain.WorkspaceMember{WorkspaceID: s.workspaceID, ProfileID: s.editorID, Role: domain.RoleEditor, JoinedAt: now}))

	s.month = domain.Month{
		MonthID: uuid.NewString(), WorkspaceID: s.workspaceID, Year: 2024, Month: 5,
		Income: decimal.RequireFromString("1000"), CarryOver: decimal.Zero,
		AuditFields: domain.AuditFields{CreatedAt: now, CreatedBy: s.ownerID},
	}
	s.Require().NoError(s.repos.MonthRepo.SaveMonth(s.ctx, s.month))

	s.foodType = domain.BudgetType{BudgetTypeID: uuid.NewString(), MonthID: s.month.MonthID, WorkspaceID: s.workspaceID, Name: "Food", Order: 1}
	s.Require().NoError(s.repos.BudgetRepo.SaveBudgetType(s.ctx, s.foodType))
	s.groceries = domain.BudgetItem{
		BudgetItemID: uuid.NewString(), BudgetTypeID: s.foodType.BudgetTypeID, MonthID: s.month.MonthID, WorkspaceID: s.workspaceID,
		Name: "Groceries", BudgetAmount: decimal.RequireFromString("200"), Order: 1,
	}
	s.Require().NoError(s.repos.BudgetRepo.SaveBudgetItem(s.ctx, s.groceries))
}

func (s *RepositoryIntegrationSuite) insertProfile(name string) string {
	id := uuid.NewString()
	_, err := s.pool.Exec(s.ctx, `
		INSERT INTO profiles (profile_id, email, display_name) VALUES ($1, $2, $3);`,
		id, id+"@example.com", name)
	s.Require().NoError(err)
	return id
}

func (s *RepositoryIntegrationSuite) saveExpense(lines ...domain.ExpenseItem) domain.Expense {
	expense := domain.Expense{
		ExpenseID: uuid.NewString(), MonthID: s.month.MonthID, WorkspaceID: s.workspaceID,
		Date: time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), Name: "Market",
		AuditFields: domain.AuditFields{CreatedAt: time.Now().UTC(), CreatedBy: s.editorID},
	}
	total := decimal.Zero
	for _, line := range lines {
		line.ExpenseItemID = uuid.NewString()
		line.BudgetItemID = s.groceries.BudgetItemID
		line.NormalizeReimbursement()
		total = total.Add(line.Amount)
		expense.Items = append(expense.Items, line)
	}
	expense.TotalAmount = total
	s.Require().NoError(s.repos.ExpenseRepo.SaveExpense(s.ctx, expense))
	return expense
}

func (s *RepositoryIntegrationSuite) TestUpdateBudgetItem_OnlyTouchesPatchedColumns() {
	saving := true
	_, err := s.repos.BudgetRepo.UpdateBudgetItem(s.ctx, s.groceries.BudgetItemID, domain.BudgetItemPatch{IsSaving: &saving})
	s.Require().NoError(err)

	// A rename issued by a client that read the item before the toggle.
	name := "Food shopping"
	updated, err := s.repos.BudgetRepo.UpdateBudgetItem(s.ctx, s.groceries.BudgetItemID, domain.BudgetItemPatch{Name: &name})

	s.Require().NoError(err)
	s.Equal("Food shopping", updated.Name)
	s.True(updated.IsSaving)
	s.True(updated.BudgetAmount.Equal(decimal.RequireFromString("200")))
	s.Equal(s.workspaceID, updated.WorkspaceID)
	s.Equal(s.month.MonthID, updated.MonthID)
}

func (s *RepositoryIntegrationSuite) TestUpdateBudgetType_OnlyTouchesPatchedColumns() {
	order := 5
	updated, err := s.repos.BudgetRepo.UpdateBudgetType(s.ctx, s.foodType.BudgetTypeID, domain.BudgetTypePatch{Order: &order})

	s.Require().NoError(err)
	s.Equal(5, updated.Order)
	s.Equal("Food", updated.Name)
	s.Equal(s.workspaceID, updated.WorkspaceID)
}

func (s *RepositoryIntegrationSuite) TestUpdateBudgetItem_Missing() {
	name := "x"
	_, err := s.repos.BudgetRepo.UpdateBudgetItem(s.ctx, uuid.NewString(), domain.BudgetItemPatch{Name: &name})
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *RepositoryIntegrationSuite) TestUpdateMonthFunds_LockedOnceBudgetTypesExist() {
	income := decimal.RequireFromString("1500")
	_, err := s.repos.MonthRepo.UpdateMonthFunds(s.ctx, s.month.MonthID, &income, nil)
	s.ErrorIs(err, apperrors.ErrConflict)

	_, err = s.pool.Exec(s.ctx, `UPDATE months SET income = 1500 WHERE month_id = $1;`, s.month.MonthID)
	s.ErrorIs(translateError(err, "update"), apperrors.ErrConflict)
}

func (s *RepositoryIntegrationSuite) TestUpdateMonthFunds_OpenMonth() {
	open := domain.Month{
		MonthID: uuid.NewString(), WorkspaceID: s.workspaceID, Year: 2024, Month: 6,
		Income: decimal.RequireFromString("100"), CarryOver: decimal.Zero,
		AuditFields: domain.AuditFields{CreatedAt: time.Now().UTC(), CreatedBy: s.ownerID},
	}
	s.Require().NoError(s.repos.MonthRepo.SaveMonth(s.ctx, open))

	carry := decimal.RequireFromString("25")
	updated, err := s.repos.MonthRepo.UpdateMonthFunds(s.ctx, open.MonthID, nil, &carry)

	s.Require().NoError(err)
	s.True(updated.Income.Equal(decimal.RequireFromString("100")))
	s.True(updated.CarryOver.Equal(carry))
}

func (s *RepositoryIntegrationSuite) TestTransitionReimbursement_OnlyFromPending() {
	amount := decimal.RequireFromString("30")
	expense := s.saveExpense(domain.ExpenseItem{Name: "Snacks", Amount: amount, NeedReimburse: true})
	lineID := expense.Items[0].ExpenseItemID

	entry, err := s.repos.ReimbursementRepo.TransitionReimbursement(s.ctx, lineID, domain.ReimburseApproved)
	s.Require().NoError(err)
	s.Equal(domain.ReimburseApproved, entry.ReimburseStatus)

	_, err = s.repos.ReimbursementRepo.TransitionReimbursement(s.ctx, lineID, domain.ReimburseRejected)
	s.ErrorIs(err, apperrors.ErrConflict)
}

func (s *RepositoryIntegrationSuite) TestSoftDeletedExpensesLeaveTheLedger() {
	kept := s.saveExpense(domain.ExpenseItem{Name: "Bread", Amount: decimal.RequireFromString("50")})
	deleted := s.saveExpense(domain.ExpenseItem{Name: "Milk", Amount: decimal.RequireFromString("20")})
	s.Require().NoError(s.repos.ExpenseRepo.SoftDeleteExpense(s.ctx, deleted.ExpenseID, time.Now().UTC()))

	ledger, err := s.repos.MonthRepo.LoadMonthLedger(s.ctx, s.month.MonthID)
	s.Require().NoError(err)
	s.Equal(1, ledger.ExpenseCount)
	s.Require().Len(ledger.Lines, 1)
	s.Equal(kept.Items[0].ExpenseItemID, ledger.Lines[0].ExpenseItemID)

	live, err := s.repos.ExpenseRepo.ListExpenses(s.ctx, portsrepo.ExpenseFilter{MonthID: s.month.MonthID, Limit: 10})
	s.Require().NoError(err)
	s.Len(live, 1)

	_, err = s.repos.ExpenseRepo.FindExpenseByID(s.ctx, deleted.ExpenseID, false)
	s.ErrorIs(err, apperrors.ErrNotFound)
	found, err := s.repos.ExpenseRepo.FindExpenseByID(s.ctx, deleted.ExpenseID, true)
	s.Require().NoError(err)
	s.NotNil(found.DeletedAt)

	s.ErrorIs(s.repos.ExpenseRepo.SoftDeleteExpense(s.ctx, deleted.ExpenseID, time.Now().UTC()), apperrors.ErrNotFound)
}

func (s *RepositoryIntegrationSuite) TestDeleteReferencedBudgetItemConflicts() {
	s.saveExpense(domain.ExpenseItem{Name: "Bread", Amount: decimal.RequireFromString("5")})

	s.ErrorIs(s.repos.BudgetRepo.DeleteBudgetItem(s.ctx, s.groceries.BudgetItemID), apperrors.ErrConflict)
	s.ErrorIs(s.repos.BudgetRepo.DeleteBudgetType(s.ctx, s.foodType.BudgetTypeID), apperrors.ErrConflict)
}

func (s *RepositoryIntegrationSuite) TestUpdateMemberRole_ReturnsProfileIdentity() {
	member, err := s.repos.WorkspaceRepo.UpdateMemberRole(s.ctx, s.workspaceID, s.editorID, domain.RoleViewer)

	s.Require().NoError(err)
	s.Equal(domain.RoleViewer, member.Role)
	s.Equal(s.editorID+"@example.com", member.Email)
	s.Require().NotNil(member.DisplayName)
	s.Equal("Editor", *member.DisplayName)
}

func (s *RepositoryIntegrationSuite) TestUpdateMemberRole_LastOwnerKept() {
	_, err := s.repos.WorkspaceRepo.UpdateMemberRole(s.ctx, s.workspaceID, s.ownerID, domain.RoleEditor)
	s.ErrorIs(err, apperrors.ErrConflict)
	s.ErrorIs(s.repos.WorkspaceRepo.RemoveMember(s.ctx, s.workspaceID, s.ownerID), apperrors.ErrConflict)
}
