package amqp

import (
	"encoding/json"
	"time"

	"github.com/SscSPs/budget_ledger/internal/core/domain"
)

// InvitationMessage is the body published when a profile joins a workspace.
// Consumers render and deliver the actual notice.
type InvitationMessage struct {
	Type          string    `json:"type"`
	WorkspaceID   string    `json:"workspaceId"`
	WorkspaceName string    `json:"workspaceName,omitempty"`
	ProfileID     string    `json:"profileId"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	InvitedBy     string    `json:"invitedBy"`
	InvitedAt     time.Time `json:"invitedAt"`
}

const invitationMessageType = "workspace.member_invited"

// NewInvitationMessage builds the message for an invitation.
func NewInvitationMessage(inv domain.MemberInvitation) *InvitationMessage {
	invitedAt := inv.InvitedAt
	if invitedAt.IsZero() {
		invitedAt = time.Now().UTC()
	}
	return &InvitationMessage{
		Type:          invitationMessageType,
		WorkspaceID:   inv.WorkspaceID,
		WorkspaceName: inv.WorkspaceName,
		ProfileID:     inv.ProfileID,
		Email:         inv.Email,
		Role:          string(inv.Role),
		InvitedBy:     inv.InvitedBy,
		InvitedAt:     invitedAt,
	}
}

// ToJSON converts the message to JSON bytes
func (m *InvitationMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// InvitationMessageFromJSON decodes a message published by the notifier.
func InvitationMessageFromJSON(data []byte) (*InvitationMessage, error) {
	var msg InvitationMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
