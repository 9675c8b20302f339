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
	"github.com/google/uuid"
)

// DefaultInviteRole is granted when an invitation names no role.
const DefaultInviteRole = domain.RoleViewer

// workspaceService implements the WorkspaceSvcFacade interface
type workspaceService struct {
	BaseService
	workspaceRepo portsrepo.WorkspaceRepositoryFacade
	profileRepo   portsrepo.ProfileReader
	notifier      portssvc.InvitationNotifier
}

// NewWorkspaceService creates a new workspace service with the provided dependencies.
// The service authorizes its own calls. A nil notifier disables invitation notices.
func NewWorkspaceService(
	workspaceRepo portsrepo.WorkspaceRepositoryFacade,
	profileRepo portsrepo.ProfileReader,
	notifier portssvc.InvitationNotifier,
) portssvc.WorkspaceSvcFacade {
	s := &workspaceService{
		workspaceRepo: workspaceRepo,
		profileRepo:   profileRepo,
		notifier:      notifier,
	}
	s.WorkspaceAuthorizer = s
	return s
}

var _ portssvc.WorkspaceSvcFacade = (*workspaceService)(nil)

// AuthorizeUserAction resolves the caller's role by membership lookup on every call.
func (s *workspaceService) AuthorizeUserAction(ctx context.Context, userID, workspaceID string, requiredRole domain.WorkspaceRole) (domain.WorkspaceRole, error) {
	member, err := s.workspaceRepo.FindMember(ctx, workspaceID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "User not a member of workspace",
				slog.String("user_id", userID),
				slog.String("workspace_id", workspaceID))
			return "", apperrors.NewForbiddenError("not a member of this workspace")
		}
		s.LogError(ctx, err, "Failed to find workspace membership",
			slog.String("user_id", userID),
			slog.String("workspace_id", workspaceID))
		return "", err
	}

	if !member.Role.Includes(requiredRole) {
		s.LogDebug(ctx, "User does not have required role",
			slog.String("user_id", userID),
			slog.String("workspace_id", workspaceID),
			slog.String("user_role", string(member.Role)),
			slog.String("required_role", string(requiredRole)))
		return member.Role, apperrors.NewForbiddenError("requires " + string(requiredRole) + " role")
	}
	return member.Role, nil
}

func (s *workspaceService) CreateWorkspace(ctx context.Context, req dto.CreateWorkspaceRequest, creatorUserID string) (*domain.WorkspaceWithRole, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name", "is required")
	}

	now := time.Now().UTC()
	workspace := domain.Workspace{
		WorkspaceID: uuid.NewString(),
		Name:        name,
		AuditFields: domain.AuditFields{CreatedAt: now, CreatedBy: creatorUserID},
	}
	owner := domain.WorkspaceMember{
		WorkspaceID: workspace.WorkspaceID,
		ProfileID:   creatorUserID,
		Role:        domain.RoleOwner,
		JoinedAt:    now,
	}

	if err := s.workspaceRepo.CreateWorkspaceWithOwner(ctx, workspace, owner); err != nil {
		s.logUnexpected(ctx, err, "Failed to create workspace",
			slog.String("workspace_id", workspace.WorkspaceID),
			slog.String("creator_id", creatorUserID))
		return nil, err
	}

	s.LogInfo(ctx, "Workspace created successfully",
		slog.String("workspace_id", workspace.WorkspaceID),
		slog.String("creator_id", creatorUserID))
	return &domain.WorkspaceWithRole{Workspace: workspace, Role: domain.RoleOwner}, nil
}

func (s *workspaceService) GetWorkspace(ctx context.Context, workspaceID, requestingUserID string) (*domain.WorkspaceWithRole, error) {
	role, err := s.AuthorizeUser(ctx, requestingUserID, workspaceID, domain.RoleViewer)
	if err != nil {
		return nil, err
	}
	workspace, err := s.workspaceRepo.FindWorkspaceByID(ctx, workspaceID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to find workspace", slog.String("workspace_id", workspaceID))
		return nil, err
	}
	return &domain.WorkspaceWithRole{Workspace: *workspace, Role: role}, nil
}

func (s *workspaceService) ListUserWorkspaces(ctx context.Context, userID string) ([]domain.WorkspaceWithRole, error) {
	workspaces, err := s.workspaceRepo.ListWorkspacesByProfileID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list workspaces for user", slog.String("user_id", userID))
		return nil, err
	}
	if workspaces == nil {
		return []domain.WorkspaceWithRole{}, nil
	}

	s.LogDebug(ctx, "Workspaces listed successfully",
		slog.Int("count", len(workspaces)),
		slog.String("user_id", userID))
	return workspaces, nil
}

func (s *workspaceService) RenameWorkspace(ctx context.Context, workspaceID, requestingUserID string, req dto.UpdateWorkspaceRequest) (*domain.WorkspaceWithRole, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name", "is required")
	}
	role, err := s.AuthorizeUser(ctx, requestingUserID, workspaceID, domain.RoleOwner)
	if err != nil {
		return nil, err
	}

	workspace, err := s.workspaceRepo.UpdateWorkspaceName(ctx, workspaceID, name)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to rename workspace", slog.String("workspace_id", workspaceID))
		return nil, err
	}

	s.LogInfo(ctx, "Workspace renamed", slog.String("workspace_id", workspaceID))
	return &domain.WorkspaceWithRole{Workspace: *workspace, Role: role}, nil
}

func (s *workspaceService) DeleteWorkspace(ctx context.Context, workspaceID, requestingUserID string) error {
	if _, err := s.AuthorizeUser(ctx, requestingUserID, workspaceID, domain.RoleOwner); err != nil {
		return err
	}
	if err := s.workspaceRepo.DeleteWorkspace(ctx, workspaceID); err != nil {
		s.logUnexpected(ctx, err, "Failed to delete workspace", slog.String("workspace_id", workspaceID))
		return err
	}
	s.LogInfo(ctx, "Workspace deleted",
		slog.String("workspace_id", workspaceID),
		slog.String("user_id", requestingUserID))
	return nil
}

func (s *workspaceService) ListMembers(ctx context.Context, workspaceID, requestingUserID string) ([]domain.WorkspaceMember, error) {
	if _, err := s.AuthorizeUser(ctx, requestingUserID, workspaceID, domain.RoleViewer); err != nil {
		return nil, err
	}
	members, err := s.workspaceRepo.ListMembers(ctx, workspaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list workspace members", slog.String("workspace_id", workspaceID))
		return nil, err
	}
	return members, nil
}

func (s *workspaceService) InviteMember(ctx context.Context, workspaceID, requestingUserID string, req dto.InviteMemberRequest) (*domain.WorkspaceMember, error) {
	role := req.Role
	if role == "" {
		role = DefaultInviteRole
	}
	if !role.IsValid() {
		return nil, apperrors.NewValidationError("role", "must be one of OWNER EDITOR VIEWER")
	}
	if _, err := s.AuthorizeUser(ctx, requestingUserID, workspaceID, domain.RoleOwner); err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.FindProfileByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("no profile with this e-mail")
		}
		s.LogError(ctx, err, "Failed to look up invited profile", slog.String("workspace_id", workspaceID))
		return nil, err
	}

	member := domain.WorkspaceMember{
		WorkspaceID: workspaceID,
		ProfileID:   profile.ProfileID,
		Role:        role,
		JoinedAt:    time.Now().UTC(),
		Email:       profile.Email,
		DisplayName: profile.DisplayName,
	}
	if err := s.workspaceRepo.AddMember(ctx, member); err != nil {
		s.logUnexpected(ctx, err, "Failed to add member to workspace",
			slog.String("workspace_id", workspaceID),
			slog.String("target_user_id", profile.ProfileID))
		return nil, err
	}

	s.LogInfo(ctx, "Member added to workspace",
		slog.String("workspace_id", workspaceID),
		slog.String("target_user_id", profile.ProfileID),
		slog.String("role", string(role)))
	s.notifyInvited(ctx, member, requestingUserID)
	return &member, nil
}

// notifyInvited publishes the invitation notice. The membership is already
// committed, so a delivery failure is only logged.
func (s *workspaceService) notifyInvited(ctx context.Context, member domain.WorkspaceMember, invitedBy string) {
	if s.notifier == nil {
		return
	}
	invitation := domain.MemberInvitation{
		WorkspaceID: member.WorkspaceID,
		ProfileID:   member.ProfileID,
		Email:       member.Email,
		Role:        member.Role,
		InvitedBy:   invitedBy,
		InvitedAt:   member.JoinedAt,
	}
	if workspace, err := s.workspaceRepo.FindWorkspaceByID(ctx, member.WorkspaceID); err == nil {
		invitation.WorkspaceName = workspace.Name
	}
	if err := s.notifier.NotifyMemberInvited(ctx, invitation); err != nil {
		s.LogError(ctx, err, "Failed to publish invitation notice",
			slog.String("workspace_id", member.WorkspaceID),
			slog.String("target_user_id", member.ProfileID))
	}
}

func (s *workspaceService) UpdateMemberRole(ctx context.Context, workspaceID, requestingUserID, targetUserID string, role domain.WorkspaceRole) (*domain.WorkspaceMember, error) {
	if !role.IsValid() {
		return nil, apperrors.NewValidationError("role", "must be one of OWNER EDITOR VIEWER")
	}
	if _, err := s.AuthorizeUser(ctx, requestingUserID, workspaceID, domain.RoleOwner); err != nil {
		return nil, err
	}

	member, err := s.workspaceRepo.UpdateMemberRole(ctx, workspaceID, targetUserID, role)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to update member role",
			slog.String("workspace_id", workspaceID),
			slog.String("target_user_id", targetUserID))
		return nil, err
	}

	s.LogInfo(ctx, "Member role updated",
		slog.String("workspace_id", workspaceID),
		slog.String("target_user_id", targetUserID),
		slog.String("role", string(role)))
	return member, nil
}

func (s *workspaceService) RemoveMember(ctx context.Context, workspaceID, requestingUserID, targetUserID string) error {
	required := domain.RoleOwner
	if requestingUserID == targetUserID {
		required = domain.RoleViewer
	}
	if _, err := s.AuthorizeUser(ctx, requestingUserID, workspaceID, required); err != nil {
		return err
	}

	if err := s.workspaceRepo.RemoveMember(ctx, workspaceID, targetUserID); err != nil {
		s.logUnexpected(ctx, err, "Failed to remove member",
			slog.String("workspace_id", workspaceID),
			slog.String("target_user_id", targetUserID))
		return err
	}

	s.LogInfo(ctx, "Member removed from workspace",
		slog.String("workspace_id", workspaceID),
		slog.String("target_user_id", targetUserID),
		slog.String("removed_by", requestingUserID))
	return nil
}
