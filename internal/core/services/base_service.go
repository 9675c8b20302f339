package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/budget_ledger/internal/apperrors"
	"github.com/SscSPs/budget_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/budget_ledger/internal/core/ports/services"
	"github.com/SscSPs/budget_ledger/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	WorkspaceAuthorizer portssvc.WorkspaceAuthorizerSvc
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeUser checks if a user has the required role for a workspace.
// Without an authorizer every action is denied.
func (s *BaseService) AuthorizeUser(ctx context.Context, userID, workspaceID string, requiredRole domain.WorkspaceRole) (domain.WorkspaceRole, error) {
	if s.WorkspaceAuthorizer == nil {
		s.LogError(ctx, apperrors.ErrForbidden, "No workspace authorizer configured",
			slog.String("user_id", userID),
			slog.String("workspace_id", workspaceID))
		return "", apperrors.NewForbiddenError("access denied")
	}
	return s.WorkspaceAuthorizer.AuthorizeUserAction(ctx, userID, workspaceID, requiredRole)
}

// logUnexpected logs err unless it is an expected domain outcome.
func (s *BaseService) logUnexpected(ctx context.Context, err error, msg string, keyvals ...any) {
	if apperrors.IsExpected(err) {
		s.LogDebug(ctx, msg, append(keyvals, slog.String("reason", err.Error()))...)
		return
	}
	s.LogError(ctx, err, msg, keyvals...)
}
