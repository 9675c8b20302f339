package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/budget_ledger/internal/apperrors"
	"github.com/SscSPs/budget_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/budget_ledger/internal/core/ports/services"
	"github.com/SscSPs/budget_ledger/internal/dto"
	"github.com/SscSPs/budget_ledger/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultExpensePageSize is used when a listing names no limit.
const DefaultExpensePageSize = 20

// MaxExpensePageSize caps the limit of a listing.
const MaxExpensePageSize = 100

type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
	monthRepo   portsrepo.MonthReader
	memberRepo  portsrepo.WorkspaceMembershipManager
}

// NewExpenseService creates the service managing expenses and their lines.
func NewExpenseService(
	expenseRepo portsrepo.ExpenseRepositoryFacade,
	monthRepo portsrepo.MonthReader,
	memberRepo portsrepo.WorkspaceMembershipManager,
	authorizer portssvc.WorkspaceAuthorizerSvc,
) portssvc.ExpenseSvcFacade {
	return &expenseService{
		BaseService: BaseService{WorkspaceAuthorizer: authorizer},
		expenseRepo: expenseRepo,
		monthRepo:   monthRepo,
		memberRepo:  memberRepo,
	}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// buildExpense validates the request and converts it to a domain expense
// with normalized lines. No ids of the month or creator are set.
func buildExpense(req dto.CreateExpenseRequest) (*domain.Expense, error) {
	fields := apperrors.FieldErrors{}

	date, err := time.Parse(dto.ExpenseDateLayout, req.Date)
	if err != nil {
		fields.Add("date", "must be a date in YYYY-MM-DD format")
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		fields.Add("name", "is required")
	}
	if len(req.Items) == 0 {
		fields.Add("items", "must contain at least one item")
	}

	expense := &domain.Expense{
		Date:        date,
		Name:        name,
		Note:        trimTitle(req.Note),
		TotalAmount: decimal.Zero,
		Items:       make([]domain.ExpenseItem, 0, len(req.Items)),
		Attachments: make([]domain.Attachment, 0, len(req.Attachments)),
	}

	for i, in := range req.Items {
		prefix := fmt.Sprintf("items[%d].", i)
		itemName := strings.TrimSpace(in.Name)
		if itemName == "" {
			fields.Add(prefix+"name", "is required")
		}
		if uuid.Validate(in.BudgetItemID) != nil {
			fields.Add(prefix+"budgetItemID", "must be a valid UUID")
		}
		if in.Amount.IsNegative() {
			fields.Add(prefix+"amount", "must be greater than or equal to 0")
		}

		line := domain.ExpenseItem{
			ExpenseItemID: uuid.NewString(),
			Name:          itemName,
			BudgetItemID:  in.BudgetItemID,
			Amount:        in.Amount,
			NeedReimburse: in.NeedReimburse,
		}
		if in.NeedReimburse {
			if in.ReimbursementAmount != nil {
				switch {
				case in.ReimbursementAmount.IsNegative():
					fields.Add(prefix+"reimbursementAmount", "must be greater than or equal to 0")
				case in.ReimbursementAmount.GreaterThan(in.Amount):
					fields.Add(prefix+"reimbursementAmount", "must not exceed amount")
				}
				amt := *in.ReimbursementAmount
				line.ReimbursementAmount = &amt
			}
			if in.ReimburseTo != nil && *in.ReimburseTo != "" {
				if uuid.Validate(*in.ReimburseTo) != nil {
					fields.Add(prefix+"reimburseTo", "must be a valid UUID")
				}
				to := *in.ReimburseTo
				line.ReimburseTo = &to
			}
		}
		line.NormalizeReimbursement()

		expense.TotalAmount = expense.TotalAmount.Add(in.Amount)
		expense.Items = append(expense.Items, line)
	}

	for i, in := range req.Attachments {
		prefix := fmt.Sprintf("attachments[%d].", i)
		if strings.TrimSpace(in.FileURL) == "" {
			fields.Add(prefix+"fileURL", "is required")
		}
		if strings.TrimSpace(in.Filename) == "" {
			fields.Add(prefix+"filename", "is required")
		}
		if in.SizeBytes != nil && *in.SizeBytes < 0 {
			fields.Add(prefix+"sizeBytes", "must be greater than or equal to 0")
		}
		expense.Attachments = append(expense.Attachments, domain.Attachment{
			AttachmentID: uuid.NewString(),
			FileURL:      in.FileURL,
			Filename:     in.Filename,
			SizeBytes:    in.SizeBytes,
		})
	}

	if err := fields.Err(); err != nil {
		return nil, err
	}
	return expense, nil
}

// checkReimburseTargets verifies that every reimburse_to references a member of the workspace.
func (s *expenseService) checkReimburseTargets(ctx context.Context, workspaceID string, items []domain.ExpenseItem) error {
	fields := apperrors.FieldErrors{}
	checked := make(map[string]bool)
	for i, it := range items {
		if it.ReimburseTo == nil {
			continue
		}
		isMember, done := checked[*it.ReimburseTo]
		if !done {
			_, err := s.memberRepo.FindMember(ctx, workspaceID, *it.ReimburseTo)
			switch {
			case err == nil:
				isMember = true
			case errors.Is(err, apperrors.ErrNotFound):
				isMember = false
			default:
				s.LogError(ctx, err, "Failed to verify reimburse_to member", slog.String("workspace_id", workspaceID))
				return err
			}
			checked[*it.ReimburseTo] = isMember
		}
		if !isMember {
			fields.Add(fmt.Sprintf("items[%d].reimburseTo", i), "must be a member of the workspace")
		}
	}
	return fields.Err()
}

func (s *expenseService) CreateExpense(ctx context.Context, monthID, requestingUserID string, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	expense, err := buildExpense(req)
	if err != nil {
		return nil, err
	}
	month, err := s.authorizeMonth(ctx, s.monthRepo, monthID, requestingUserID, domain.RoleEditor)
	if err != nil {
		return nil, err
	}
	if err := s.checkReimburseTargets(ctx, month.WorkspaceID, expense.Items); err != nil {
		return nil, err
	}

	expense.ExpenseID = uuid.NewString()
	expense.MonthID = month.MonthID
	expense.WorkspaceID = month.WorkspaceID
	expense.AuditFields = domain.AuditFields{CreatedAt: time.Now().UTC(), CreatedBy: requestingUserID}
	for i := range expense.Items {
		expense.Items[i].ExpenseID = expense.ExpenseID
	}
	for i := range expense.Attachments {
		expense.Attachments[i].ExpenseID = expense.ExpenseID
	}

	if err := s.expenseRepo.SaveExpense(ctx, *expense); err != nil {
		s.logUnexpected(ctx, err, "Failed to create expense", slog.String("month_id", monthID))
		return nil, err
	}

	s.LogInfo(ctx, "Expense created",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("month_id", monthID),
		slog.Int("items", len(expense.Items)),
		slog.String("total_amount", expense.TotalAmount.String()))
	return expense, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, monthID, requestingUserID string, params dto.ListExpensesParams) (*dto.ListExpensesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = DefaultExpensePageSize
	}
	if limit > MaxExpensePageSize {
		limit = MaxExpensePageSize
	}

	filter := portsrepo.ExpenseFilter{
		MonthID: monthID,
		Query:   params.Query,
		Status:  params.Status,
		Limit:   limit + 1,
	}
	switch params.Status {
	case "", portsrepo.ExpenseStatusPosted:
	default:
		if st := domain.ReimburseStatus(params.Status); !st.IsValid() || st == domain.ReimburseNone {
			return nil, apperrors.NewValidationError("status", "must be one of POSTED PENDING APPROVED REJECTED")
		}
	}
	if params.NextToken != "" {
		cursor, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			return nil, apperrors.NewValidationError("nextToken", "is invalid")
		}
		filter.After = &cursor
	}

	if _, err := s.authorizeMonth(ctx, s.monthRepo, monthID, requestingUserID, domain.RoleViewer); err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.ListExpenses(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses", slog.String("month_id", monthID))
		return nil, err
	}

	var nextToken *string
	if len(expenses) > limit {
		expenses = expenses[:limit]
		last := expenses[limit-1]
		token := pagination.EncodeToken(pagination.Cursor{Date: last.Date, CreatedAt: last.CreatedAt, ID: last.ExpenseID})
		nextToken = &token
	}

	resp := dto.ToListExpensesResponse(expenses, nextToken)
	return &resp, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, expenseID, requestingUserID string) error {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID, false)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to find expense", slog.String("expense_id", expenseID))
		return err
	}
	if _, err := s.AuthorizeUser(ctx, requestingUserID, expense.WorkspaceID, domain.RoleEditor); err != nil {
		return err
	}

	if err := s.expenseRepo.SoftDeleteExpense(ctx, expenseID, time.Now().UTC()); err != nil {
		s.logUnexpected(ctx, err, "Failed to delete expense", slog.String("expense_id", expenseID))
		return err
	}
	s.LogInfo(ctx, "Expense deleted", slog.String("expense_id", expenseID))
	return nil
}
