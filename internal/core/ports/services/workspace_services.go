package services

import (
	"context"

	"github.com/SscSPs/budget_ledger/internal/core/domain"
	"github.com/SscSPs/budget_ledger/internal/dto"
)

// WorkspaceReaderSvc defines read operations for workspace data
type WorkspaceReaderSvc interface {
	// GetWorkspace returns the workspace together with the caller's role.
	GetWorkspace(ctx context.Context, workspaceID, requestingUserID string) (*domain.WorkspaceWithRole, error)

	// ListUserWorkspaces retrieves the workspaces the user belongs to.
	ListUserWorkspaces(ctx context.Context, userID string) ([]domain.WorkspaceWithRole, error)

	// ListMembers retrieves all members of a workspace. Any member may call it.
	ListMembers(ctx context.Context, workspaceID, requestingUserID string) ([]domain.WorkspaceMember, error)
}

// WorkspaceWriterSvc defines write operations for workspace data
type WorkspaceWriterSvc interface {
	// CreateWorkspace persists a new workspace with the creator as its OWNER.
	CreateWorkspace(ctx context.Context, req dto.CreateWorkspaceRequest, creatorUserID string) (*domain.WorkspaceWithRole, error)

	RenameWorkspace(ctx context.Context, workspaceID, requestingUserID string, req dto.UpdateWorkspaceRequest) (*domain.WorkspaceWithRole, error)

	// DeleteWorkspace removes an empty workspace.
	DeleteWorkspace(ctx context.Context, workspaceID, requestingUserID string) error
}

// WorkspaceMembershipSvc defines operations for managing workspace membership
type WorkspaceMembershipSvc interface {
	// InviteMember adds an existing profile, looked up by e-mail, to the workspace.
	InviteMember(ctx context.Context, workspaceID, requestingUserID string, req dto.InviteMemberRequest) (*domain.WorkspaceMember, error)

	UpdateMemberRole(ctx context.Context, workspaceID, requestingUserID, targetUserID string, role domain.WorkspaceRole) (*domain.WorkspaceMember, error)

	// RemoveMember removes a member. OWNERs may remove anyone; any member may remove themself.
	RemoveMember(ctx context.Context, workspaceID, requestingUserID, targetUserID string) error
}

// WorkspaceAuthorizerSvc defines operations for workspace authorization
type WorkspaceAuthorizerSvc interface {
	// AuthorizeUserAction checks that the user holds at least requiredRole in the workspace
	// and returns the role actually held.
	AuthorizeUserAction(ctx context.Context, userID, workspaceID string, requiredRole domain.WorkspaceRole) (domain.WorkspaceRole, error)
}

// WorkspaceSvcFacade combines all workspace-related service interfaces
// This is a facade for clients that need access to all operations
type WorkspaceSvcFacade interface {
	WorkspaceReaderSvc
	WorkspaceWriterSvc
	WorkspaceMembershipSvc
	WorkspaceAuthorizerSvc
}

// ProfileSvc exposes the caller's identity record.
type ProfileSvc interface {
	// GetMe returns the caller's profile and the workspaces they belong to.
	GetMe(ctx context.Context, userID string) (*domain.Profile, []domain.WorkspaceWithRole, error)
}

// InvitationNotifier delivers invitation notices to an outbound channel.
type InvitationNotifier interface {
	NotifyMemberInvited(ctx context.Context, invitation domain.MemberInvitation) error
}
