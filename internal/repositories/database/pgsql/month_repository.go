package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/budget_ledger/internal/apperrors"
	"github.com/SscSPs/budget_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_ledger/internal/core/ports/repositories"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const monthColumns = `month_id, workspace_id, year, month, title, income, carry_over, created_at, created_by`

type PgxMonthRepository struct {
	BaseRepository
}

func newPgxMonthRepository(pool *pgxpool.Pool) portsrepo.MonthRepositoryFacade {
	return &PgxMonthRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.MonthRepositoryFacade = (*PgxMonthRepository)(nil)

func scanMonth(row pgx.Row, m *domain.Month) error {
	return row.Scan(&m.MonthID, &m.WorkspaceID, &m.Year, &m.Month, &m.Title,
		&m.Income, &m.CarryOver, &m.CreatedAt, &m.CreatedBy)
}

func findMonth(ctx context.Context, q querier, monthID string) (*domain.Month, error) {
	var m domain.Month
	err := scanMonth(q.QueryRow(ctx, `SELECT `+monthColumns+` FROM months WHERE month_id = $1;`, monthID), &m)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("month not found")
		}
		return nil, apperrors.NewAppError(500, "failed to query month "+monthID, err)
	}
	return &m, nil
}

func (r *PgxMonthRepository) FindMonthByID(ctx context.Context, monthID string) (*domain.Month, error) {
	return findMonth(ctx, r.Pool, monthID)
}

func (r *PgxMonthRepository) ListMonthsByWorkspace(ctx context.Context, workspaceID string) ([]domain.Month, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+monthColumns+`
		FROM months
		WHERE workspace_id = $1
		ORDER BY year DESC, month DESC;`, workspaceID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query months for workspace "+workspaceID, err)
	}
	defer rows.Close()

	months := []domain.Month{}
	for rows.Next() {
		var m domain.Month
		if err := scanMonth(rows, &m); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan month row", err)
		}
		months = append(months, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating month rows", err)
	}
	return months, nil
}

func insertMonth(ctx context.Context, q querier, m domain.Month) error {
	_, err := q.Exec(ctx, `
		INSERT INTO months (`+monthColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
		m.MonthID, m.WorkspaceID, m.Year, m.Month, m.Title, m.Income, m.CarryOver, m.CreatedAt, m.CreatedBy,
	)
	if err != nil {
		if pgErr, ok := asPgError(err); ok {
			if pgErr.Code == pgUniqueViolation {
				return apperrors.NewDuplicateError("month already exists in this workspace")
			}
			if pgErr.Code == pgForeignKeyViolation {
				return apperrors.NewNotFoundError("workspace or creator not found")
			}
		}
		return translateError(err, "failed to save month")
	}
	return nil
}

func (r *PgxMonthRepository) SaveMonth(ctx context.Context, month domain.Month) error {
	return insertMonth(ctx, r.Pool, month)
}

func (r *PgxMonthRepository) UpdateMonthFunds(ctx context.Context, monthID string, income, carryOver *decimal.Decimal) (*domain.Month, error) {
	var m domain.Month
	err := scanMonth(r.Pool.QueryRow(ctx, `
		UPDATE months
		SET income = COALESCE($2::numeric, income),
		    carry_over = COALESCE($3::numeric, carry_over)
		WHERE month_id = $1
		  AND NOT EXISTS (SELECT 1 FROM budget_types bt WHERE bt.month_id = $1)
		RETURNING `+monthColumns+`;`, monthID, income, carryOver), &m)
	if err == nil {
		return &m, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, translateError(err, "failed to update funds of month "+monthID)
	}

	// No row: either the month is missing or it already has budget types.
	if _, err := findMonth(ctx, r.Pool, monthID); err != nil {
		return nil, err
	}
	return nil, apperrors.NewConflictError("income and carry-over are locked once the month has budget types")
}

func (r *PgxMonthRepository) DeleteMonth(ctx context.Context, monthID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM months WHERE month_id = $1;`, monthID)
	if err != nil {
		if pgErr, ok := asPgError(err); ok && pgErr.Code == pgForeignKeyViolation {
			return apperrors.NewConflictError("month still has budget types or expenses")
		}
		return translateError(err, "failed to delete month "+monthID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("month not found")
	}
	return nil
}

func (r *PgxMonthRepository) DuplicateMonth(ctx context.Context, sourceMonthID string, target domain.Month) error {
	return r.WithTx(ctx, pgx.TxOptions{}, func(tx pgx.Tx) error {
		source, err := findMonth(ctx, tx, sourceMonthID)
		if err != nil {
			return err
		}
		if source.WorkspaceID != target.WorkspaceID {
			return apperrors.NewNotFoundError("month not found")
		}
		if err := insertMonth(ctx, tx, target); err != nil {
			return err
		}

		types, err := loadBudgetTypes(ctx, tx, sourceMonthID)
		if err != nil {
			return err
		}
		items, err := loadBudgetItems(ctx, tx, sourceMonthID)
		if err != nil {
			return err
		}

		typeIDs := make(map[string]string, len(types))
		batch := &pgx.Batch{}
		for _, bt := range types {
			newID := uuid.NewString()
			typeIDs[bt.BudgetTypeID] = newID
			batch.Queue(`
				INSERT INTO budget_types (budget_type_id, month_id, name, sort_order)
				VALUES ($1, $2, $3, $4);`, newID, target.MonthID, bt.Name, bt.Order)
		}
		for _, it := range items {
			batch.Queue(`
				INSERT INTO budget_items (budget_item_id, budget_type_id, name, budget_amount, sort_order, is_saving)
				VALUES ($1, $2, $3, $4, $5, $6);`,
				uuid.NewString(), typeIDs[it.BudgetTypeID], it.Name, it.BudgetAmount, it.Order, it.IsSaving)
		}
		if batch.Len() == 0 {
			return nil
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return translateError(err, "failed to copy budget into month "+target.MonthID)
		}
		return nil
	})
}

func (r *PgxMonthRepository) LoadMonthLedger(ctx context.Context, monthID string) (*domain.MonthLedger, error) {
	var ledger domain.MonthLedger
	err := r.WithTx(ctx, readSnapshot, func(tx pgx.Tx) error {
		month, err := findMonth(ctx, tx, monthID)
		if err != nil {
			return err
		}
		ledger.Month = *month

		if ledger.Types, err = loadBudgetTypes(ctx, tx, monthID); err != nil {
			return err
		}
		if ledger.Items, err = loadBudgetItems(ctx, tx, monthID); err != nil {
			return err
		}
		if ledger.Lines, err = loadLiveLines(ctx, tx, monthID); err != nil {
			return err
		}

		err = tx.QueryRow(ctx, `
			SELECT COUNT(*) FROM expenses e
			WHERE e.month_id = $1 AND `+liveExpense+`;`, monthID,
		).Scan(&ledger.ExpenseCount)
		if err != nil {
			return apperrors.NewAppError(500, "failed to count expenses of month "+monthID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ledger, nil
}

func loadLiveLines(ctx context.Context, q querier, monthID string) ([]domain.ExpenseItem, error) {
	rows, err := q.Query(ctx, `
		SELECT `+expenseItemColumns+`
		FROM expense_items ei
		JOIN expenses e ON e.expense_id = ei.expense_id
		JOIN budget_items bi ON bi.budget_item_id = ei.budget_item_id
		WHERE e.month_id = $1 AND `+liveExpense+`
		ORDER BY ei.expense_item_id;`, monthID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query expense lines of month "+monthID, err)
	}
	defer rows.Close()
	return collectExpenseItems(rows)
}
