package domain

import "time"

// Workspace is the tenant boundary. It owns Months and has Members with roles.
type Workspace struct {
	WorkspaceID string `json:"workspaceID"`
	Name        string `json:"name"`
	AuditFields
}

// WorkspaceRole defines the possible roles a profile can have within a workspace.
type WorkspaceRole string

const (
	RoleOwner  WorkspaceRole = "OWNER"
	RoleEditor WorkspaceRole = "EDITOR"
	RoleViewer WorkspaceRole = "VIEWER"
)

func (r WorkspaceRole) rank() int {
	switch r {
	case RoleOwner:
		return 3
	case RoleEditor:
		return 2
	case RoleViewer:
		return 1
	}
	return 0
}

// IsValid reports whether r is one of the known roles.
func (r WorkspaceRole) IsValid() bool {
	return r.rank() > 0
}

// Includes reports whether r grants at least the capabilities of required
// (OWNER ⊇ EDITOR ⊇ VIEWER).
func (r WorkspaceRole) Includes(required WorkspaceRole) bool {
	return r.IsValid() && r.rank() >= required.rank()
}

// WorkspaceMember represents the membership of a Profile in a Workspace.
type WorkspaceMember struct {
	WorkspaceID string        `json:"workspaceID"`
	ProfileID   string        `json:"profileID"`
	Role        WorkspaceRole `json:"role"`
	JoinedAt    time.Time     `json:"joinedAt"`

	// Read-only profile details populated by list queries.
	Email       string  `json:"email,omitempty"`
	DisplayName *string `json:"displayName,omitempty"`
}

// WorkspaceWithRole is a workspace as seen by one caller.
type WorkspaceWithRole struct {
	Workspace
	Role WorkspaceRole `json:"role"`
}

// Profile is the identity record owned by the external identity provider.
type Profile struct {
	ProfileID   string  `json:"profileID"`
	Email       string  `json:"email"`
	DisplayName *string `json:"displayName,omitempty"`
}

// MemberInvitation is published after a profile has been added to a workspace.
type MemberInvitation struct {
	WorkspaceID   string        `json:"workspaceID"`
	WorkspaceName string        `json:"workspaceName"`
	ProfileID     string        `json:"profileID"`
	Email         string        `json:"email"`
	Role          WorkspaceRole `json:"role"`
	InvitedBy     string        `json:"invitedBy"`
	InvitedAt     time.Time     `json:"invitedAt"`
}
