package pgsql

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/SscSPs/budget_ledger/internal/apperrors"
	"github.com/SscSPs/budget_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const reimbursementSelect = `
	SELECT ` + expenseItemColumns + `,
	       m.workspace_id, e.month_id, e.name, e.expense_date, e.created_by, p.email
	FROM expense_items ei
	JOIN budget_items bi ON bi.budget_item_id = ei.budget_item_id
	JOIN expenses e ON e.expense_id = ei.expense_id
	JOIN months m ON m.month_id = e.month_id
	JOIN profiles p ON p.profile_id = e.created_by`

type PgxReimbursementRepository struct {
	BaseRepository
}

func newPgxReimbursementRepository(pool *pgxpool.Pool) portsrepo.ReimbursementRepositoryFacade {
	return &PgxReimbursementRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ReimbursementRepositoryFacade = (*PgxReimbursementRepository)(nil)

func scanReimbursement(row pgx.Row, r *domain.ReimbursementEntry) error {
	it := &r.ExpenseItem
	return row.Scan(&it.ExpenseItemID, &it.ExpenseID, &it.Name, &it.BudgetItemID, &it.BudgetItemName,
		&it.Amount, &it.NeedReimburse, &it.ReimbursementAmount, &it.ReimburseTo, &it.ReimburseStatus,
		&r.WorkspaceID, &r.MonthID, &r.ExpenseName, &r.ExpenseDate, &r.CreatedBy, &r.CreatedByEmail)
}

func findReimbursement(ctx context.Context, q querier, expenseItemID string) (*domain.ReimbursementEntry, error) {
	var entry domain.ReimbursementEntry
	err := scanReimbursement(q.QueryRow(ctx, reimbursementSelect+`
		WHERE ei.expense_item_id = $1 AND ei.need_reimburse AND `+liveExpense+`;`, expenseItemID), &entry)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("reimbursement not found")
		}
		return nil, apperrors.NewAppError(500, "failed to query reimbursement "+expenseItemID, err)
	}
	return &entry, nil
}

func (r *PgxReimbursementRepository) FindReimbursementByItemID(ctx context.Context, expenseItemID string) (*domain.ReimbursementEntry, error) {
	return findReimbursement(ctx, r.Pool, expenseItemID)
}

func (r *PgxReimbursementRepository) ListReimbursements(ctx context.Context, filter portsrepo.ReimbursementFilter) ([]domain.ReimbursementEntry, error) {
	var sb strings.Builder
	args := []any{filter.WorkspaceID}
	sb.WriteString(reimbursementSelect)
	sb.WriteString(` WHERE m.workspace_id = $1 AND ei.need_reimburse AND ` + liveExpense)
	if filter.MonthID != "" {
		args = append(args, filter.MonthID)
		sb.WriteString(` AND e.month_id = $` + strconv.Itoa(len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		sb.WriteString(` AND ei.reimburse_status = $` + strconv.Itoa(len(args)))
	}
	sb.WriteString(` ORDER BY e.expense_date DESC, e.created_at DESC, ei.expense_item_id;`)

	rows, err := r.Pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query reimbursements of workspace "+filter.WorkspaceID, err)
	}
	defer rows.Close()

	entries := []domain.ReimbursementEntry{}
	for rows.Next() {
		var entry domain.ReimbursementEntry
		if err := scanReimbursement(rows, &entry); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan reimbursement row", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating reimbursement rows", err)
	}
	return entries, nil
}

func (r *PgxReimbursementRepository) TransitionReimbursement(ctx context.Context, expenseItemID string, next domain.ReimburseStatus) (*domain.ReimbursementEntry, error) {
	var entry *domain.ReimbursementEntry
	err := r.WithTx(ctx, pgx.TxOptions{}, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE expense_items ei SET reimburse_status = $2
			FROM expenses e
			WHERE ei.expense_item_id = $1
			  AND e.expense_id = ei.expense_id
			  AND `+liveExpense+`
			  AND ei.need_reimburse
			  AND ei.reimburse_status = $3;`, expenseItemID, next, domain.ReimbursePending)
		if err != nil {
			return translateError(err, "failed to update reimbursement "+expenseItemID)
		}

		entry, err = findReimbursement(ctx, tx, expenseItemID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return apperrors.NewConflictError("reimbursement is already " + string(entry.ReimburseStatus))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *PgxReimbursementRepository) UpdateReimburseTo(ctx context.Context, expenseItemID string, reimburseTo *string, onlyPending bool) (*domain.ReimbursementEntry, error) {
	var entry *domain.ReimbursementEntry
	err := r.WithTx(ctx, pgx.TxOptions{}, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE expense_items ei SET reimburse_to = $2
			FROM expenses e
			WHERE ei.expense_item_id = $1
			  AND e.expense_id = ei.expense_id
			  AND `+liveExpense+`
			  AND ei.need_reimburse
			  AND (NOT $3 OR ei.reimburse_status = $4);`, expenseItemID, reimburseTo, onlyPending, domain.ReimbursePending)
		if err != nil {
			if pgErr, ok := asPgError(err); ok && pgErr.Code == pgForeignKeyViolation {
				return apperrors.NewValidationError("reimburseTo", "must reference an existing profile")
			}
			return translateError(err, "failed to update reimburse_to of "+expenseItemID)
		}

		entry, err = findReimbursement(ctx, tx, expenseItemID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return apperrors.NewConflictError("reimbursement is already " + string(entry.ReimburseStatus))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}
