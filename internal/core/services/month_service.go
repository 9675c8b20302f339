package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/budget_ledger/internal/apperrors"
	"github.com/SscSPs/budget_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/budget_ledger/internal/core/ports/services"
	"github.com/SscSPs/budget_ledger/internal/dto"
	"github.com/SscSPs/budget_ledger/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type monthService struct {
	BaseService
	monthRepo portsrepo.MonthRepositoryFacade
}

// NewMonthService creates the service managing months and their aggregates.
func NewMonthService(monthRepo portsrepo.MonthRepositoryFacade, authorizer portssvc.WorkspaceAuthorizerSvc) portssvc.MonthSvcFacade {
	return &monthService{
		BaseService: BaseService{WorkspaceAuthorizer: authorizer},
		monthRepo:   monthRepo,
	}
}

var _ portssvc.MonthSvcFacade = (*monthService)(nil)

// authorizeMonth loads the month and checks the caller's role in its workspace.
func (s *BaseService) authorizeMonth(ctx context.Context, months portsrepo.MonthReader, monthID, userID string, required domain.WorkspaceRole) (*domain.Month, error) {
	month, err := months.FindMonthByID(ctx, monthID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to find month", slog.String("month_id", monthID))
		return nil, err
	}
	if _, err := s.AuthorizeUser(ctx, userID, month.WorkspaceID, required); err != nil {
		return nil, err
	}
	return month, nil
}

func validatePeriod(fields apperrors.FieldErrors, yearField, monthField string, year, month int) {
	if year < domain.MinYear || year > domain.MaxYear {
		fields.Add(yearField, "must be between 2000 and 2100")
	}
	if month < 1 || month > 12 {
		fields.Add(monthField, "must be between 1 and 12")
	}
}

func validateNonNegative(fields apperrors.FieldErrors, field string, v *decimal.Decimal) {
	if v != nil && v.IsNegative() {
		fields.Add(field, "must be greater than or equal to 0")
	}
}

func trimTitle(title *string) *string {
	if title == nil {
		return nil
	}
	t := strings.TrimSpace(*title)
	if t == "" {
		return nil
	}
	return &t
}

func (s *monthService) CreateMonth(ctx context.Context, workspaceID, requestingUserID string, req dto.CreateMonthRequest) (*domain.Month, error) {
	fields := apperrors.FieldErrors{}
	validatePeriod(fields, "year", "month", req.Year, req.Month)
	validateNonNegative(fields, "income", &req.Income)
	validateNonNegative(fields, "carryOver", &req.CarryOver)
	if err := fields.Err(); err != nil {
		return nil, err
	}
	if _, err := s.AuthorizeUser(ctx, requestingUserID, workspaceID, domain.RoleEditor); err != nil {
		return nil, err
	}

	month := domain.Month{
		MonthID:     uuid.NewString(),
		WorkspaceID: workspaceID,
		Year:        req.Year,
		Month:       req.Month,
		Title:       trimTitle(req.Title),
		Income:      req.Income,
		CarryOver:   req.CarryOver,
		AuditFields: domain.AuditFields{CreatedAt: time.Now().UTC(), CreatedBy: requestingUserID},
	}
	if err := s.monthRepo.SaveMonth(ctx, month); err != nil {
		s.logUnexpected(ctx, err, "Failed to create month",
			slog.String("workspace_id", workspaceID),
			slog.Int("year", req.Year),
			slog.Int("month", req.Month))
		return nil, err
	}

	s.LogInfo(ctx, "Month created",
		slog.String("month_id", month.MonthID),
		slog.String("workspace_id", workspaceID))
	return &month, nil
}

func (s *monthService) GetMonth(ctx context.Context, monthID, requestingUserID string) (*domain.Month, error) {
	return s.authorizeMonth(ctx, s.monthRepo, monthID, requestingUserID, domain.RoleViewer)
}

func (s *monthService) ListMonths(ctx context.Context, workspaceID, requestingUserID string) ([]domain.Month, error) {
	if _, err := s.AuthorizeUser(ctx, requestingUserID, workspaceID, domain.RoleViewer); err != nil {
		return nil, err
	}
	months, err := s.monthRepo.ListMonthsByWorkspace(ctx, workspaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list months", slog.String("workspace_id", workspaceID))
		return nil, err
	}
	return months, nil
}

func (s *monthService) UpdateMonthFunds(ctx context.Context, monthID, requestingUserID string, req dto.UpdateMonthFundsRequest) (*domain.Month, error) {
	fields := apperrors.FieldErrors{}
	if req.Income == nil && req.CarryOver == nil {
		fields.Add("income", "income or carryOver is required")
	}
	validateNonNegative(fields, "income", req.Income)
	validateNonNegative(fields, "carryOver", req.CarryOver)
	if err := fields.Err(); err != nil {
		return nil, err
	}
	if _, err := s.authorizeMonth(ctx, s.monthRepo, monthID, requestingUserID, domain.RoleEditor); err != nil {
		return nil, err
	}

	month, err := s.monthRepo.UpdateMonthFunds(ctx, monthID, req.Income, req.CarryOver)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to update month funds", slog.String("month_id", monthID))
		return nil, err
	}

	s.LogInfo(ctx, "Month funds updated", slog.String("month_id", monthID))
	return month, nil
}

func (s *monthService) DeleteMonth(ctx context.Context, monthID, requestingUserID string) error {
	if _, err := s.authorizeMonth(ctx, s.monthRepo, monthID, requestingUserID, domain.RoleEditor); err != nil {
		return err
	}
	if err := s.monthRepo.DeleteMonth(ctx, monthID); err != nil {
		s.logUnexpected(ctx, err, "Failed to delete month", slog.String("month_id", monthID))
		return err
	}
	s.LogInfo(ctx, "Month deleted", slog.String("month_id", monthID))
	return nil
}

func (s *monthService) DuplicateMonth(ctx context.Context, monthID, requestingUserID string, req dto.DuplicateMonthRequest) (*domain.Month, error) {
	fields := apperrors.FieldErrors{}
	validatePeriod(fields, "targetYear", "targetMonth", req.TargetYear, req.TargetMonth)
	validateNonNegative(fields, "income", &req.Income)
	validateNonNegative(fields, "carryOver", &req.CarryOver)
	if err := fields.Err(); err != nil {
		return nil, err
	}
	source, err := s.authorizeMonth(ctx, s.monthRepo, monthID, requestingUserID, domain.RoleEditor)
	if err != nil {
		return nil, err
	}

	target := domain.Month{
		MonthID:     uuid.NewString(),
		WorkspaceID: source.WorkspaceID,
		Year:        req.TargetYear,
		Month:       req.TargetMonth,
		Title:       trimTitle(req.Title),
		Income:      req.Income,
		CarryOver:   req.CarryOver,
		AuditFields: domain.AuditFields{CreatedAt: time.Now().UTC(), CreatedBy: requestingUserID},
	}
	if err := s.monthRepo.DuplicateMonth(ctx, source.MonthID, target); err != nil {
		s.logUnexpected(ctx, err, "Failed to duplicate month",
			slog.String("source_month_id", source.MonthID),
			slog.Int("target_year", req.TargetYear),
			slog.Int("target_month", req.TargetMonth))
		return nil, err
	}

	s.LogInfo(ctx, "Month duplicated",
		slog.String("source_month_id", source.MonthID),
		slog.String("month_id", target.MonthID))
	return &target, nil
}

// loadLedger authorizes the caller and loads a consistent snapshot of the month.
func (s *BaseService) loadLedger(ctx context.Context, months portsrepo.MonthReader, monthID, userID string) (*domain.MonthLedger, error) {
	if _, err := s.authorizeMonth(ctx, months, monthID, userID, domain.RoleViewer); err != nil {
		return nil, err
	}
	ledger, err := months.LoadMonthLedger(ctx, monthID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load month ledger", slog.String("month_id", monthID))
		}
		return nil, err
	}
	return ledger, nil
}

func (s *monthService) GetBudgetView(ctx context.Context, monthID, requestingUserID string) (*domain.BudgetView, error) {
	ledger, err := s.loadLedger(ctx, s.monthRepo, monthID, requestingUserID)
	if err != nil {
		return nil, err
	}
	view := accounting.ComputeBudgetView(*ledger)
	return &view, nil
}

func (s *monthService) GetMonthTotals(ctx context.Context, monthID, requestingUserID string) (*domain.MonthTotals, error) {
	ledger, err := s.loadLedger(ctx, s.monthRepo, monthID, requestingUserID)
	if err != nil {
		return nil, err
	}
	totals := accounting.ComputeMonthTotals(*ledger)
	return &totals, nil
}
