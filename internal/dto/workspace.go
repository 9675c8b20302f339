package dto

import (
	"time"

	"github.com/SscSPs/budget_ledger/internal/core/domain"
)

// --- Workspace DTOs ---

// CreateWorkspaceRequest defines data for creating a new workspace.
type CreateWorkspaceRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// UpdateWorkspaceRequest defines data for renaming a workspace.
type UpdateWorkspaceRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// WorkspaceResponse defines data returned for a workspace.
type WorkspaceResponse struct {
	WorkspaceID string               `json:"workspaceID"`
	Name        string               `json:"name"`
	Role        domain.WorkspaceRole `json:"role,omitempty"` // caller's role
	CreatedAt   time.Time            `json:"createdAt"`
	CreatedBy   string               `json:"createdBy"`
}

// ToWorkspaceResponse converts domain.Workspace to DTO.
func ToWorkspaceResponse(w *domain.Workspace) WorkspaceResponse {
	return WorkspaceResponse{
		WorkspaceID: w.WorkspaceID,
		Name:        w.Name,
		CreatedAt:   w.CreatedAt,
		CreatedBy:   w.CreatedBy,
	}
}

// ToWorkspaceWithRoleResponse converts domain.WorkspaceWithRole to DTO.
func ToWorkspaceWithRoleResponse(w *domain.WorkspaceWithRole) WorkspaceResponse {
	resp := ToWorkspaceResponse(&w.Workspace)
	resp.Role = w.Role
	return resp
}

// ListWorkspacesResponse wraps a list of workspaces.
type ListWorkspacesResponse struct {
	Workspaces []WorkspaceResponse `json:"workspaces"`
}

// ToListWorkspacesResponse converts a slice of domain.WorkspaceWithRole to DTO.
func ToListWorkspacesResponse(ws []domain.WorkspaceWithRole) ListWorkspacesResponse {
	list := make([]WorkspaceResponse, len(ws))
	for i, w := range ws {
		list[i] = ToWorkspaceWithRoleResponse(&w)
	}
	return ListWorkspacesResponse{Workspaces: list}
}

// --- Membership DTOs ---

// InviteMemberRequest defines data for inviting a profile by e-mail.
type InviteMemberRequest struct {
	Email string               `json:"email" binding:"required,email"`
	Role  domain.WorkspaceRole `json:"role" binding:"omitempty,oneof=OWNER EDITOR VIEWER"`
}

// UpdateMemberRoleRequest defines data for changing a member's role.
type UpdateMemberRoleRequest struct {
	Role domain.WorkspaceRole `json:"role" binding:"required,oneof=OWNER EDITOR VIEWER"`
}

// MemberResponse defines data returned about a membership.
type MemberResponse struct {
	ProfileID   string               `json:"profileID"`
	WorkspaceID string               `json:"workspaceID"`
	Role        domain.WorkspaceRole `json:"role"`
	JoinedAt    time.Time            `json:"joinedAt"`
	Email       string               `json:"email,omitempty"`
	DisplayName *string              `json:"displayName,omitempty"`
}

// ToMemberResponse converts domain.WorkspaceMember to DTO.
func ToMemberResponse(m *domain.WorkspaceMember) MemberResponse {
	return MemberResponse{
		ProfileID:   m.ProfileID,
		WorkspaceID: m.WorkspaceID,
		Role:        m.Role,
		JoinedAt:    m.JoinedAt,
		Email:       m.Email,
		DisplayName: m.DisplayName,
	}
}

// ListMembersResponse wraps a list of members.
type ListMembersResponse struct {
	Members []MemberResponse `json:"members"`
}

// ToListMembersResponse converts a slice of domain.WorkspaceMember to DTO.
func ToListMembersResponse(ms []domain.WorkspaceMember) ListMembersResponse {
	list := make([]MemberResponse, len(ms))
	for i, m := range ms {
		list[i] = ToMemberResponse(&m)
	}
	return ListMembersResponse{Members: list}
}

// --- Profile DTOs ---

// MeResponse is the caller's profile with the workspaces they belong to.
type MeResponse struct {
	ProfileID   string              `json:"profileID"`
	Email       string              `json:"email"`
	DisplayName *string             `json:"displayName,omitempty"`
	Workspaces  []WorkspaceResponse `json:"workspaces"`
}

// ToMeResponse converts a profile and its workspaces to DTO.
func ToMeResponse(p *domain.Profile, ws []domain.WorkspaceWithRole) MeResponse {
	return MeResponse{
		ProfileID:   p.ProfileID,
		Email:       p.Email,
		DisplayName: p.DisplayName,
		Workspaces:  ToListWorkspacesResponse(ws).Workspaces,
	}
}
