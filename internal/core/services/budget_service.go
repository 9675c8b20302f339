package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SscSPs/budget_ledger/internal/apperrors"
	"github.com/SscSPs/budget_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/budget_ledger/internal/core/ports/services"
	"github.com/SscSPs/budget_ledger/internal/dto"
	"github.com/SscSPs/budget_ledger/internal/utils/accounting"
	"github.com/google/uuid"
)

type budgetService struct {
	BaseService
	budgetRepo portsrepo.BudgetRepositoryFacade
	monthRepo  portsrepo.MonthReader

	requireToggleConfirmation bool
}

// BudgetServiceOption is a functional option for configuring the budget service
type BudgetServiceOption func(*budgetService)

// WithSavingToggleConfirmation makes turning IsSaving off on an item with
// expenses require an explicit confirmation.
func WithSavingToggleConfirmation(required bool) BudgetServiceOption {
	return func(s *budgetService) {
		s.requireToggleConfirmation = required
	}
}

// NewBudgetService creates the service managing budget types and items.
func NewBudgetService(
	budgetRepo portsrepo.BudgetRepositoryFacade,
	monthRepo portsrepo.MonthReader,
	authorizer portssvc.WorkspaceAuthorizerSvc,
	opts ...BudgetServiceOption,
) portssvc.BudgetSvcFacade {
	s := &budgetService{
		BaseService: BaseService{WorkspaceAuthorizer: authorizer},
		budgetRepo:  budgetRepo,
		monthRepo:   monthRepo,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

func (s *budgetService) findBudgetType(ctx context.Context, budgetTypeID, userID string, required domain.WorkspaceRole) (*domain.BudgetType, error) {
	budgetType, err := s.budgetRepo.FindBudgetTypeByID(ctx, budgetTypeID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to find budget type", slog.String("budget_type_id", budgetTypeID))
		return nil, err
	}
	if _, err := s.AuthorizeUser(ctx, userID, budgetType.WorkspaceID, required); err != nil {
		return nil, err
	}
	return budgetType, nil
}

func (s *budgetService) findBudgetItem(ctx context.Context, budgetItemID, userID string, required domain.WorkspaceRole) (*domain.BudgetItem, error) {
	item, err := s.budgetRepo.FindBudgetItemByID(ctx, budgetItemID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to find budget item", slog.String("budget_item_id", budgetItemID))
		return nil, err
	}
	if _, err := s.AuthorizeUser(ctx, userID, item.WorkspaceID, required); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *budgetService) CreateBudgetType(ctx context.Context, monthID, requestingUserID string, req dto.CreateBudgetTypeRequest) (*domain.BudgetType, error) {
	fields := apperrors.FieldErrors{}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		fields.Add("name", "is required")
	}
	if req.Order < 0 {
		fields.Add("order", "must be greater than or equal to 0")
	}
	if err := fields.Err(); err != nil {
		return nil, err
	}
	month, err := s.authorizeMonth(ctx, s.monthRepo, monthID, requestingUserID, domain.RoleEditor)
	if err != nil {
		return nil, err
	}

	budgetType := domain.BudgetType{
		BudgetTypeID: uuid.NewString(),
		MonthID:      month.MonthID,
		WorkspaceID:  month.WorkspaceID,
		Name:         name,
		Order:        req.Order,
	}
	if err := s.budgetRepo.SaveBudgetType(ctx, budgetType); err != nil {
		s.logUnexpected(ctx, err, "Failed to create budget type", slog.String("month_id", monthID))
		return nil, err
	}

	s.LogInfo(ctx, "Budget type created",
		slog.String("budget_type_id", budgetType.BudgetTypeID),
		slog.String("month_id", monthID))
	return &budgetType, nil
}

func (s *budgetService) UpdateBudgetType(ctx context.Context, budgetTypeID, requestingUserID string, req dto.UpdateBudgetTypeRequest) (*domain.BudgetType, error) {
	fields := apperrors.FieldErrors{}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		fields.Add("name", "is required")
	}
	if req.Order != nil && *req.Order < 0 {
		fields.Add("order", "must be greater than or equal to 0")
	}
	if err := fields.Err(); err != nil {
		return nil, err
	}
	if _, err := s.findBudgetType(ctx, budgetTypeID, requestingUserID, domain.RoleEditor); err != nil {
		return nil, err
	}

	patch := domain.BudgetTypePatch{Order: req.Order}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		patch.Name = &name
	}
	budgetType, err := s.budgetRepo.UpdateBudgetType(ctx, budgetTypeID, patch)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to update budget type", slog.String("budget_type_id", budgetTypeID))
		return nil, err
	}
	return budgetType, nil
}

func (s *budgetService) DeleteBudgetType(ctx context.Context, budgetTypeID, requestingUserID string) error {
	if _, err := s.findBudgetType(ctx, budgetTypeID, requestingUserID, domain.RoleEditor); err != nil {
		return err
	}
	if err := s.budgetRepo.DeleteBudgetType(ctx, budgetTypeID); err != nil {
		s.logUnexpected(ctx, err, "Failed to delete budget type", slog.String("budget_type_id", budgetTypeID))
		return err
	}
	s.LogInfo(ctx, "Budget type deleted", slog.String("budget_type_id", budgetTypeID))
	return nil
}

func (s *budgetService) CreateBudgetItem(ctx context.Context, budgetTypeID, requestingUserID string, req dto.CreateBudgetItemRequest) (*domain.BudgetItem, error) {
	fields := apperrors.FieldErrors{}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		fields.Add("name", "is required")
	}
	validateNonNegative(fields, "budgetAmount", &req.BudgetAmount)
	if req.Order < 0 {
		fields.Add("order", "must be greater than or equal to 0")
	}
	if err := fields.Err(); err != nil {
		return nil, err
	}
	budgetType, err := s.findBudgetType(ctx, budgetTypeID, requestingUserID, domain.RoleEditor)
	if err != nil {
		return nil, err
	}

	item := domain.BudgetItem{
		BudgetItemID: uuid.NewString(),
		BudgetTypeID: budgetType.BudgetTypeID,
		MonthID:      budgetType.MonthID,
		WorkspaceID:  budgetType.WorkspaceID,
		Name:         name,
		BudgetAmount: req.BudgetAmount,
		Order:        req.Order,
		IsSaving:     req.IsSaving,
	}
	if err := s.budgetRepo.SaveBudgetItem(ctx, item); err != nil {
		s.logUnexpected(ctx, err, "Failed to create budget item", slog.String("budget_type_id", budgetTypeID))
		return nil, err
	}

	s.LogInfo(ctx, "Budget item created",
		slog.String("budget_item_id", item.BudgetItemID),
		slog.String("budget_type_id", budgetTypeID))
	return &item, nil
}

func (s *budgetService) UpdateBudgetItem(ctx context.Context, budgetItemID, requestingUserID string, req dto.UpdateBudgetItemRequest) (*domain.BudgetItem, error) {
	fields := apperrors.FieldErrors{}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		fields.Add("name", "is required")
	}
	validateNonNegative(fields, "budgetAmount", req.BudgetAmount)
	if req.Order != nil && *req.Order < 0 {
		fields.Add("order", "must be greater than or equal to 0")
	}
	if err := fields.Err(); err != nil {
		return nil, err
	}
	item, err := s.findBudgetItem(ctx, budgetItemID, requestingUserID, domain.RoleEditor)
	if err != nil {
		return nil, err
	}

	turningSavingOff := req.IsSaving != nil && item.IsSaving && !*req.IsSaving
	if turningSavingOff && s.requireToggleConfirmation && !req.ConfirmDestructive {
		// Best-effort: an expense created after this check is not detected.
		ledger, err := s.monthRepo.LoadMonthLedger(ctx, item.MonthID)
		if err != nil {
			s.logUnexpected(ctx, err, "Failed to load month for saving toggle", slog.String("budget_item_id", budgetItemID))
			return nil, err
		}
		if preview, ok := accounting.PreviewSavingToggle(*ledger, item.BudgetItemID); ok && preview.Destructive {
			return nil, apperrors.NewConflictError("budget item has expenses; set confirmDestructive to turn saving off")
		}
	}

	patch := domain.BudgetItemPatch{
		BudgetAmount: req.BudgetAmount,
		Order:        req.Order,
		IsSaving:     req.IsSaving,
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		patch.Name = &name
	}
	updated, err := s.budgetRepo.UpdateBudgetItem(ctx, budgetItemID, patch)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to update budget item", slog.String("budget_item_id", budgetItemID))
		return nil, err
	}

	s.LogInfo(ctx, "Budget item updated",
		slog.String("budget_item_id", budgetItemID),
		slog.Bool("is_saving", updated.IsSaving))
	return updated, nil
}

func (s *budgetService) DeleteBudgetItem(ctx context.Context, budgetItemID, requestingUserID string) error {
	if _, err := s.findBudgetItem(ctx, budgetItemID, requestingUserID, domain.RoleEditor); err != nil {
		return err
	}
	if err := s.budgetRepo.DeleteBudgetItem(ctx, budgetItemID); err != nil {
		s.logUnexpected(ctx, err, "Failed to delete budget item", slog.String("budget_item_id", budgetItemID))
		return err
	}
	s.LogInfo(ctx, "Budget item deleted", slog.String("budget_item_id", budgetItemID))
	return nil
}

func (s *budgetService) PreviewSavingToggle(ctx context.Context, budgetItemID, requestingUserID string) (*domain.SavingTogglePreview, error) {
	item, err := s.findBudgetItem(ctx, budgetItemID, requestingUserID, domain.RoleViewer)
	if err != nil {
		return nil, err
	}
	ledger, err := s.monthRepo.LoadMonthLedger(ctx, item.MonthID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to load month for preview", slog.String("budget_item_id", budgetItemID))
		return nil, err
	}
	preview, ok := accounting.PreviewSavingToggle(*ledger, budgetItemID)
	if !ok {
		return nil, apperrors.NewNotFoundError("budget item not found")
	}
	return &preview, nil
}
