package repositories

import (
	"context"

	"github.com/SscSPs/budget_ledger/internal/core/domain"
)

// ProfileReader reads identity records owned by the external identity provider.
type ProfileReader interface {
	FindProfileByID(ctx context.Context, profileID string) (*domain.Profile, error)

	// FindProfileByEmail matches the e-mail case-insensitively.
	FindProfileByEmail(ctx context.Context, email string) (*domain.Profile, error)
}
