package repositories

import (
	"context"

	"github.com/SscSPs/budget_ledger/internal/core/domain"
)

// WorkspaceReader defines read operations for workspace data
type WorkspaceReader interface {
	// FindWorkspaceByID retrieves a specific workspace by its ID.
	FindWorkspaceByID(ctx context.Context, workspaceID string) (*domain.Workspace, error)

	// ListWorkspacesByProfileID retrieves all workspaces a profile belongs to, with its role.
	ListWorkspacesByProfileID(ctx context.Context, profileID string) ([]domain.WorkspaceWithRole, error)
}

// WorkspaceWriter defines write operations for workspace data
type WorkspaceWriter interface {
	// CreateWorkspaceWithOwner persists the workspace and its first OWNER in one transaction.
	CreateWorkspaceWithOwner(ctx context.Context, workspace domain.Workspace, owner domain.WorkspaceMember) error

	UpdateWorkspaceName(ctx context.Context, workspaceID, name string) (*domain.Workspace, error)

	// DeleteWorkspace fails with a conflict while the workspace still owns months.
	DeleteWorkspace(ctx context.Context, workspaceID string) error
}

// WorkspaceMembershipManager defines operations for managing workspace memberships
type WorkspaceMembershipManager interface {
	// FindMember retrieves the membership of a profile in a workspace.
	FindMember(ctx context.Context, workspaceID, profileID string) (*domain.WorkspaceMember, error)

	ListMembers(ctx context.Context, workspaceID string) ([]domain.WorkspaceMember, error)

	// AddMember fails with a duplicate error when the profile is already a member.
	AddMember(ctx context.Context, member domain.WorkspaceMember) error

	// UpdateMemberRole fails with a conflict when it would leave the workspace without an OWNER.
	UpdateMemberRole(ctx context.Context, workspaceID, profileID string, role domain.WorkspaceRole) (*domain.WorkspaceMember, error)

	// RemoveMember fails with a conflict when it would leave the workspace without an OWNER.
	RemoveMember(ctx context.Context, workspaceID, profileID string) error
}

// WorkspaceRepositoryFacade combines all workspace-related repository interfaces
type WorkspaceRepositoryFacade interface {
	WorkspaceReader
	WorkspaceWriter
	WorkspaceMembershipManager
}
