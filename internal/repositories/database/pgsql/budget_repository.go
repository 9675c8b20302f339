package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/budget_ledger/internal/apperrors"
	"github.com/SscSPs/budget_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const budgetTypeSelect = `
	SELECT bt.budget_type_id, bt.month_id, m.workspace_id, bt.name, bt.sort_order
	FROM budget_types bt
	JOIN months m ON m.month_id = bt.month_id`

const budgetItemSelect = `
	SELECT bi.budget_item_id, bi.budget_type_id, bt.month_id, m.workspace_id,
	       bi.name, bi.budget_amount, bi.sort_order, bi.is_saving
	FROM budget_items bi
	JOIN budget_types bt ON bt.budget_type_id = bi.budget_type_id
	JOIN months m ON m.month_id = bt.month_id`

type PgxBudgetRepository struct {
	BaseRepository
}

func newPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepositoryFacade {
	return &PgxBudgetRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.BudgetRepositoryFacade = (*PgxBudgetRepository)(nil)

func scanBudgetType(row pgx.Row, bt *domain.BudgetType) error {
	return row.Scan(&bt.BudgetTypeID, &bt.MonthID, &bt.WorkspaceID, &bt.Name, &bt.Order)
}

func scanBudgetItem(row pgx.Row, it *domain.BudgetItem) error {
	return row.Scan(&it.BudgetItemID, &it.BudgetTypeID, &it.MonthID, &it.WorkspaceID,
		&it.Name, &it.BudgetAmount, &it.Order, &it.IsSaving)
}

func loadBudgetTypes(ctx context.Context, q querier, monthID string) ([]domain.BudgetType, error) {
	rows, err := q.Query(ctx, budgetTypeSelect+`
		WHERE bt.month_id = $1
		ORDER BY bt.sort_order, bt.name;`, monthID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query budget types of month "+monthID, err)
	}
	defer rows.Close()

	types := []domain.BudgetType{}
	for rows.Next() {
		var bt domain.BudgetType
		if err := scanBudgetType(rows, &bt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan budget type row", err)
		}
		types = append(types, bt)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating budget type rows", err)
	}
	return types, nil
}

func loadBudgetItems(ctx context.Context, q querier, monthID string) ([]domain.BudgetItem, error) {
	rows, err := q.Query(ctx, budgetItemSelect+`
		WHERE bt.month_id = $1
		ORDER BY bi.sort_order, bi.name;`, monthID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query budget items of month "+monthID, err)
	}
	defer rows.Close()

	items := []domain.BudgetItem{}
	for rows.Next() {
		var it domain.BudgetItem
		if err := scanBudgetItem(rows, &it); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan budget item row", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating budget item rows", err)
	}
	return items, nil
}

func (r *PgxBudgetRepository) SaveBudgetType(ctx context.Context, budgetType domain.BudgetType) error {
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO budget_types (budget_type_id, month_id, name, sort_order)
		VALUES ($1, $2, $3, $4);`,
		budgetType.BudgetTypeID, budgetType.MonthID, budgetType.Name, budgetType.Order,
	)
	if err != nil {
		if pgErr, ok := asPgError(err); ok {
			if pgErr.Code == pgUniqueViolation {
				return apperrors.NewDuplicateError("budget type " + budgetType.BudgetTypeID + " already exists")
			}
			if pgErr.Code == pgForeignKeyViolation {
				return apperrors.NewNotFoundError("month not found")
			}
		}
		return translateError(err, "failed to save budget type")
	}
	return nil
}

func (r *PgxBudgetRepository) FindBudgetTypeByID(ctx context.Context, budgetTypeID string) (*domain.BudgetType, error) {
	var bt domain.BudgetType
	err := scanBudgetType(r.Pool.QueryRow(ctx, budgetTypeSelect+` WHERE bt.budget_type_id = $1;`, budgetTypeID), &bt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("budget type not found")
		}
		return nil, apperrors.NewAppError(500, "failed to query budget type "+budgetTypeID, err)
	}
	return &bt, nil
}

func (r *PgxBudgetRepository) UpdateBudgetType(ctx context.Context, budgetTypeID string, patch domain.BudgetTypePatch) (*domain.BudgetType, error) {
	var bt domain.BudgetType
	err := scanBudgetType(r.Pool.QueryRow(ctx, `
		WITH bt AS (
			UPDATE budget_types
			SET name = COALESCE($2::text, name),
			    sort_order = COALESCE($3::int, sort_order)
			WHERE budget_type_id = $1
			RETURNING budget_type_id, month_id, name, sort_order
		)
		SELECT bt.budget_type_id, bt.month_id, m.workspace_id, bt.name, bt.sort_order
		FROM bt
		JOIN months m ON m.month_id = bt.month_id;`,
		budgetTypeID, patch.Name, patch.Order,
	), &bt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("budget type not found")
		}
		return nil, translateError(err, "failed to update budget type "+budgetTypeID)
	}
	return &bt, nil
}

func (r *PgxBudgetRepository) DeleteBudgetType(ctx context.Context, budgetTypeID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM budget_types WHERE budget_type_id = $1;`, budgetTypeID)
	if err != nil {
		if pgErr, ok := asPgError(err); ok && pgErr.Code == pgForeignKeyViolation {
			return apperrors.NewConflictError("budget type has items referenced by expenses")
		}
		return translateError(err, "failed to delete budget type "+budgetTypeID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("budget type not found")
	}
	return nil
}

func (r *PgxBudgetRepository) SaveBudgetItem(ctx context.Context, item domain.BudgetItem) error {
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO budget_items (budget_item_id, budget_type_id, name, budget_amount, sort_order, is_saving)
		VALUES ($1, $2, $3, $4, $5, $6);`,
		item.BudgetItemID, item.BudgetTypeID, item.Name, item.BudgetAmount, item.Order, item.IsSaving,
	)
	if err != nil {
		if pgErr, ok := asPgError(err); ok {
			if pgErr.Code == pgUniqueViolation {
				return apperrors.NewDuplicateError("budget item " + item.BudgetItemID + " already exists")
			}
			if pgErr.Code == pgForeignKeyViolation {
				return apperrors.NewNotFoundError("budget type not found")
			}
		}
		return translateError(err, "failed to save budget item")
	}
	return nil
}

func (r *PgxBudgetRepository) FindBudgetItemByID(ctx context.Context, budgetItemID string) (*domain.BudgetItem, error) {
	var it domain.BudgetItem
	err := scanBudgetItem(r.Pool.QueryRow(ctx, budgetItemSelect+` WHERE bi.budget_item_id = $1;`, budgetItemID), &it)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("budget item not found")
		}
		return nil, apperrors.NewAppError(500, "failed to query budget item "+budgetItemID, err)
	}
	return &it, nil
}

func (r *PgxBudgetRepository) UpdateBudgetItem(ctx context.Context, budgetItemID string, patch domain.BudgetItemPatch) (*domain.BudgetItem, error) {
	var it domain.BudgetItem
	err := scanBudgetItem(r.Pool.QueryRow(ctx, `
		WITH bi AS (
			UPDATE budget_items
			SET name = COALESCE($2::text, name),
			    budget_amount = COALESCE($3::numeric, budget_amount),
			    sort_order = COALESCE($4::int, sort_order),
			    is_saving = COALESCE($5::boolean, is_saving)
			WHERE budget_item_id = $1
			RETURNING budget_item_id, budget_type_id, name, budget_amount, sort_order, is_saving
		)
		SELECT bi.budget_item_id, bi.budget_type_id, bt.month_id, m.workspace_id,
		       bi.name, bi.budget_amount, bi.sort_order, bi.is_saving
		FROM bi
		JOIN budget_types bt ON bt.budget_type_id = bi.budget_type_id
		JOIN months m ON m.month_id = bt.month_id;`,
		budgetItemID, patch.Name, patch.BudgetAmount, patch.Order, patch.IsSaving,
	), &it)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("budget item not found")
		}
		return nil, translateError(err, "failed to update budget item "+budgetItemID)
	}
	return &it, nil
}

func (r *PgxBudgetRepository) DeleteBudgetItem(ctx context.Context, budgetItemID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM budget_items WHERE budget_item_id = $1;`, budgetItemID)
	if err != nil {
		if pgErr, ok := asPgError(err); ok && pgErr.Code == pgForeignKeyViolation {
			return apperrors.NewConflictError("budget item is referenced by expenses")
		}
		return translateError(err, "failed to delete budget item "+budgetItemID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("budget item not found")
	}
	return nil
}
