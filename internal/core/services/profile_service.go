package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/budget_ledger/internal/apperrors"
	"github.com/SscSPs/budget_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/budget_ledger/internal/core/ports/services"
)

type profileService struct {
	BaseService
	profileRepo portsrepo.ProfileReader
	workspaces  portssvc.WorkspaceReaderSvc
}

// NewProfileService creates the service behind the caller's identity endpoint.
func NewProfileService(profileRepo portsrepo.ProfileReader, workspaces portssvc.WorkspaceReaderSvc) portssvc.ProfileSvc {
	return &profileService{
		profileRepo: profileRepo,
		workspaces:  workspaces,
	}
}

var _ portssvc.ProfileSvc = (*profileService)(nil)

func (s *profileService) GetMe(ctx context.Context, userID string) (*domain.Profile, []domain.WorkspaceWithRole, error) {
	profile, err := s.profileRepo.FindProfileByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "Token subject has no profile", slog.String("user_id", userID))
			return nil, nil, apperrors.NewUnauthorizedError("no profile for the authenticated user")
		}
		s.LogError(ctx, err, "Failed to load profile", slog.String("user_id", userID))
		return nil, nil, err
	}

	workspaces, err := s.workspaces.ListUserWorkspaces(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return profile, workspaces, nil
}
