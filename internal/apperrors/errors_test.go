package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/budget_ledger/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestAppErrorMatchesSentinels(t *testing.T) {
	assert.ErrorIs(t, apperrors.NewNotFoundError("month not found"), apperrors.ErrNotFound)
	assert.ErrorIs(t, apperrors.NewConflictError("locked"), apperrors.ErrConflict)
	assert.ErrorIs(t, apperrors.NewDuplicateError("exists"), apperrors.ErrDuplicate)
	assert.ErrorIs(t, apperrors.NewDuplicateError("exists"), apperrors.ErrConflict)
	assert.ErrorIs(t, apperrors.NewForbiddenError("no"), apperrors.ErrForbidden)
	assert.ErrorIs(t, apperrors.NewInternalServerError("boom", errors.New("db down")), apperrors.ErrInternal)
	assert.NotErrorIs(t, apperrors.NewForbiddenError("no"), apperrors.ErrNotFound)
}

func TestValidationError(t *testing.T) {
	err := apperrors.NewValidationFailedError("validation failed", map[string]string{
		"year":  "must be at least 2000",
		"month": "must be at most 12",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Equal(t, "validation failed (month: must be at most 12; year: must be at least 2000)", err.Error())

	fields := apperrors.FieldErrors{}
	assert.NoError(t, fields.Err())
	fields.Add("items[0].amount", "first")
	fields.Add("items[0].amount", "second")
	var valErr *apperrors.ValidationError
	assert.ErrorAs(t, fields.Err(), &valErr)
	assert.Equal(t, "first", valErr.Fields["items[0].amount"])
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"app error", apperrors.NewConflictError("locked"), http.StatusConflict},
		{"wrapped app error", fmt.Errorf("ctx: %w", apperrors.NewNotFoundError("gone")), http.StatusNotFound},
		{"validation", apperrors.NewValidationError("name", "is required"), http.StatusBadRequest},
		{"bare sentinel", apperrors.ErrForbidden, http.StatusForbidden},
		{"duplicate sentinel", apperrors.ErrDuplicate, http.StatusConflict},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperrors.StatusCode(tt.err))
		})
	}

	assert.True(t, apperrors.IsExpected(apperrors.NewForbiddenError("no")))
	assert.False(t, apperrors.IsExpected(errors.New("boom")))
	assert.False(t, apperrors.IsExpected(nil))
}
