package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/budget_ledger/internal/apperrors"
	"github.com/SscSPs/budget_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/budget_ledger/internal/core/ports/services"
	"github.com/SscSPs/budget_ledger/internal/dto"
	"github.com/google/uuid"
)

type reimbursementService struct {
	BaseService
	reimbursementRepo portsrepo.ReimbursementRepositoryFacade
	memberRepo        portsrepo.WorkspaceMembershipManager

	lockReimburseToAfterDecision bool
}

// ReimbursementServiceOption is a functional option for configuring the reimbursement service
type ReimbursementServiceOption func(*reimbursementService)

// WithReimburseToLock rejects reassigning reimburse_to once a line is APPROVED or REJECTED.
func WithReimburseToLock(locked bool) ReimbursementServiceOption {
	return func(s *reimbursementService) {
		s.lockReimburseToAfterDecision = locked
	}
}

// NewReimbursementService creates the service driving the reimbursement workflow.
func NewReimbursementService(
	reimbursementRepo portsrepo.ReimbursementRepositoryFacade,
	memberRepo portsrepo.WorkspaceMembershipManager,
	authorizer portssvc.WorkspaceAuthorizerSvc,
	opts ...ReimbursementServiceOption,
) portssvc.ReimbursementSvcFacade {
	s := &reimbursementService{
		BaseService:       BaseService{WorkspaceAuthorizer: authorizer},
		reimbursementRepo: reimbursementRepo,
		memberRepo:        memberRepo,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.ReimbursementSvcFacade = (*reimbursementService)(nil)

func (s *reimbursementService) ListReimbursements(ctx context.Context, workspaceID, requestingUserID string, params dto.ListReimbursementsParams) ([]domain.ReimbursementEntry, error) {
	filter := portsrepo.ReimbursementFilter{WorkspaceID: workspaceID, MonthID: params.MonthID}
	switch params.Status {
	case "":
		filter.Status = domain.ReimbursePending
	case dto.ReimbursementStatusAll:
	default:
		status := domain.ReimburseStatus(params.Status)
		if !status.IsValid() || status == domain.ReimburseNone {
			return nil, apperrors.NewValidationError("status", "must be one of ALL PENDING APPROVED REJECTED")
		}
		filter.Status = status
	}

	if _, err := s.AuthorizeUser(ctx, requestingUserID, workspaceID, domain.RoleViewer); err != nil {
		return nil, err
	}
	entries, err := s.reimbursementRepo.ListReimbursements(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list reimbursements", slog.String("workspace_id", workspaceID))
		return nil, err
	}
	return entries, nil
}

func (s *reimbursementService) findEntry(ctx context.Context, expenseItemID, userID string, required domain.WorkspaceRole) (*domain.ReimbursementEntry, error) {
	entry, err := s.reimbursementRepo.FindReimbursementByItemID(ctx, expenseItemID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to find reimbursement", slog.String("expense_item_id", expenseItemID))
		return nil, err
	}
	if _, err := s.AuthorizeUser(ctx, userID, entry.WorkspaceID, required); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *reimbursementService) decide(ctx context.Context, expenseItemID, requestingUserID string, next domain.ReimburseStatus) (*domain.ReimbursementEntry, error) {
	entry, err := s.findEntry(ctx, expenseItemID, requestingUserID, domain.RoleOwner)
	if err != nil {
		return nil, err
	}
	if !entry.ReimburseStatus.CanTransitionTo(next) {
		return nil, apperrors.NewConflictError("reimbursement is already " + string(entry.ReimburseStatus))
	}

	// The repository re-checks PENDING atomically; a concurrent decision yields a conflict.
	updated, err := s.reimbursementRepo.TransitionReimbursement(ctx, expenseItemID, next)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to transition reimbursement",
			slog.String("expense_item_id", expenseItemID),
			slog.String("next_status", string(next)))
		return nil, err
	}

	s.LogInfo(ctx, "Reimbursement decided",
		slog.String("expense_item_id", expenseItemID),
		slog.String("status", string(next)),
		slog.String("decided_by", requestingUserID))
	return updated, nil
}

func (s *reimbursementService) ApproveReimbursement(ctx context.Context, expenseItemID, requestingUserID string) (*domain.ReimbursementEntry, error) {
	return s.decide(ctx, expenseItemID, requestingUserID, domain.ReimburseApproved)
}

func (s *reimbursementService) RejectReimbursement(ctx context.Context, expenseItemID, requestingUserID string) (*domain.ReimbursementEntry, error) {
	return s.decide(ctx, expenseItemID, requestingUserID, domain.ReimburseRejected)
}

func (s *reimbursementService) ReassignReimburseTo(ctx context.Context, expenseItemID, requestingUserID string, reimburseTo *string) (*domain.ReimbursementEntry, error) {
	if reimburseTo != nil && *reimburseTo == "" {
		reimburseTo = nil
	}
	if reimburseTo != nil && uuid.Validate(*reimburseTo) != nil {
		return nil, apperrors.NewValidationError("reimburseTo", "must be a valid UUID")
	}
	entry, err := s.findEntry(ctx, expenseItemID, requestingUserID, domain.RoleEditor)
	if err != nil {
		return nil, err
	}
	if s.lockReimburseToAfterDecision && entry.ReimburseStatus.IsTerminal() {
		return nil, apperrors.NewConflictError("reimbursement is already " + string(entry.ReimburseStatus))
	}

	if reimburseTo != nil {
		if _, err := s.memberRepo.FindMember(ctx, entry.WorkspaceID, *reimburseTo); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewValidationError("reimburseTo", "must be a member of the workspace")
			}
			s.LogError(ctx, err, "Failed to verify reimburse_to member", slog.String("workspace_id", entry.WorkspaceID))
			return nil, err
		}
	}

	updated, err := s.reimbursementRepo.UpdateReimburseTo(ctx, expenseItemID, reimburseTo, s.lockReimburseToAfterDecision)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to reassign reimbursement", slog.String("expense_item_id", expenseItemID))
		return nil, err
	}

	s.LogInfo(ctx, "Reimbursement reassigned", slog.String("expense_item_id", expenseItemID))
	return updated, nil
}
