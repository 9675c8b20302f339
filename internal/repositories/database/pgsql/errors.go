package pgsql

import (
	"errors"

	"github.com/SscSPs/budget_ledger/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes the repositories interpret.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgRaiseException      = "P0001"
)

const constraintMonthFundsLocked = "months_funds_locked"

func asPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// translateError maps constraint violations the domain understands and wraps
// everything else as an internal error with a generic message.
func translateError(err error, msg string) error {
	if err == nil {
		return nil
	}
	var appErr *apperrors.AppError
	var valErr *apperrors.ValidationError
	if errors.As(err, &appErr) || errors.As(err, &valErr) {
		return err
	}
	if pgErr, ok := asPgError(err); ok {
		switch {
		case pgErr.Code == pgRaiseException && pgErr.ConstraintName == constraintMonthFundsLocked:
			return apperrors.NewConflictError("income and carry-over are locked once the month has budget types")
		case pgErr.Code == pgCheckViolation:
			return apperrors.NewValidationError(pgErr.ConstraintName, "violates check constraint")
		}
	}
	return apperrors.NewAppError(500, msg, err)
}
