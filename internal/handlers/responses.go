package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/budget_ledger/internal/apperrors"
	"github.com/SscSPs/budget_ledger/internal/middleware"
	"github.com/SscSPs/budget_ledger/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// respondWithError maps err onto its status code. Unexpected errors are logged
// with their cause and answered with fallback only.
func respondWithError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := apperrors.StatusCode(err)

	if status >= http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(status, ErrorResponse{Error: fallback})
		return
	}

	logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))

	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		c.JSON(status, ErrorResponse{Error: verr.Message, Fields: verr.Fields})
		return
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(status, ErrorResponse{Error: appErr.Message})
		return
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

// requireUserID returns the authenticated caller, answering 401 when absent.
func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		respondWithError(c, apperrors.NewUnauthorizedError("Unauthorized"), "Unauthorized")
		return "", false
	}
	return userID, true
}

// uuidParam reads a path parameter that must be a UUID.
func uuidParam(c *gin.Context, name string) (string, bool) {
	value := c.Param(name)
	if err := uuid.Validate(value); err != nil {
		respondWithError(c, apperrors.NewValidationError(name, "must be a UUID"), "Invalid path parameter")
		return "", false
	}
	return value, true
}

// bindJSON decodes and validates the body into req.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondWithError(c, validation.Translate(err), "Invalid request format")
		return false
	}
	return true
}

// bindQuery decodes and validates query parameters into params.
func bindQuery(c *gin.Context, params any) bool {
	if err := c.ShouldBindQuery(params); err != nil {
		respondWithError(c, validation.Translate(err), "Invalid query parameters")
		return false
	}
	return true
}
