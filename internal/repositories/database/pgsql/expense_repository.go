package pgsql

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/budget_ledger/internal/apperrors"
	"github.com/SscSPs/budget_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// liveExpense is the soft-delete filter shared by every read of expenses aliased e.
const liveExpense = `e.deleted_at IS NULL`

// expenseItemColumns expects expense_items aliased ei and budget_items aliased bi.
const expenseItemColumns = `ei.expense_item_id, ei.expense_id, ei.name, ei.budget_item_id, bi.name,
	ei.amount, ei.need_reimburse, ei.reimbursement_amount, ei.reimburse_to, ei.reimburse_status`

const expenseSelect = `
	SELECT e.expense_id, e.month_id, m.workspace_id, e.expense_date, e.name, e.note,
	       e.total_amount, e.deleted_at, e.created_at, e.created_by, p.email, p.display_name
	FROM expenses e
	JOIN months m ON m.month_id = e.month_id
	JOIN profiles p ON p.profile_id = e.created_by`

type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

func scanExpenseItem(row pgx.Row, it *domain.ExpenseItem) error {
	return row.Scan(&it.ExpenseItemID, &it.ExpenseID, &it.Name, &it.BudgetItemID, &it.BudgetItemName,
		&it.Amount, &it.NeedReimburse, &it.ReimbursementAmount, &it.ReimburseTo, &it.ReimburseStatus)
}

func collectExpenseItems(rows pgx.Rows) ([]domain.ExpenseItem, error) {
	items := []domain.ExpenseItem{}
	for rows.Next() {
		var it domain.ExpenseItem
		if err := scanExpenseItem(rows, &it); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan expense item row", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating expense item rows", err)
	}
	return items, nil
}

func scanExpense(row pgx.Row, e *domain.Expense) error {
	return row.Scan(&e.ExpenseID, &e.MonthID, &e.WorkspaceID, &e.Date, &e.Name, &e.Note,
		&e.TotalAmount, &e.DeletedAt, &e.CreatedAt, &e.CreatedBy, &e.CreatedByEmail, &e.CreatedByName)
}

// attachChildren loads items and attachments for the given expenses in two queries.
func attachChildren(ctx context.Context, q querier, expenses []domain.Expense) error {
	if len(expenses) == 0 {
		return nil
	}
	ids := make([]string, len(expenses))
	index := make(map[string]int, len(expenses))
	for i := range expenses {
		ids[i] = expenses[i].ExpenseID
		index[expenses[i].ExpenseID] = i
		expenses[i].Items = []domain.ExpenseItem{}
		expenses[i].Attachments = []domain.Attachment{}
	}

	rows, err := q.Query(ctx, `
		SELECT `+expenseItemColumns+`
		FROM expense_items ei
		JOIN budget_items bi ON bi.budget_item_id = ei.budget_item_id
		WHERE ei.expense_id = ANY($1::text[]::uuid[])
		ORDER BY ei.expense_id, ei.expense_item_id;`, ids)
	if err != nil {
		return apperrors.NewAppError(500, "failed to query expense items", err)
	}
	items, err := collectExpenseItems(rows)
	rows.Close()
	if err != nil {
		return err
	}
	for _, it := range items {
		e := &expenses[index[it.ExpenseID]]
		e.Items = append(e.Items, it)
	}

	rows, err = q.Query(ctx, `
		SELECT attachment_id, expense_id, file_url, filename, size_bytes
		FROM attachments
		WHERE expense_id = ANY($1::text[]::uuid[])
		ORDER BY expense_id, filename, attachment_id;`, ids)
	if err != nil {
		return apperrors.NewAppError(500, "failed to query attachments", err)
	}
	defer rows.Close()
	for rows.Next() {
		var a domain.Attachment
		if err := rows.Scan(&a.AttachmentID, &a.ExpenseID, &a.FileURL, &a.Filename, &a.SizeBytes); err != nil {
			return apperrors.NewAppError(500, "failed to scan attachment row", err)
		}
		e := &expenses[index[a.ExpenseID]]
		e.Attachments = append(e.Attachments, a)
	}
	if err := rows.Err(); err != nil {
		return apperrors.NewAppError(500, "error iterating attachment rows", err)
	}
	return nil
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string, includeDeleted bool) (*domain.Expense, error) {
	var expense domain.Expense
	err := r.WithTx(ctx, readSnapshot, func(tx pgx.Tx) error {
		query := expenseSelect + ` WHERE e.expense_id = $1`
		if !includeDeleted {
			query += ` AND ` + liveExpense
		}
		if err := scanExpense(tx.QueryRow(ctx, query+`;`, expenseID), &expense); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewNotFoundError("expense not found")
			}
			return apperrors.NewAppError(500, "failed to query expense "+expenseID, err)
		}
		list := []domain.Expense{expense}
		if err := attachChildren(ctx, tx, list); err != nil {
			return err
		}
		expense = list[0]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, filter portsrepo.ExpenseFilter) ([]domain.Expense, error) {
	var sb strings.Builder
	args := []any{filter.MonthID}
	sb.WriteString(expenseSelect)
	sb.WriteString(` WHERE e.month_id = $1`)
	if !filter.IncludeDeleted {
		sb.WriteString(` AND ` + liveExpense)
	}

	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if q := strings.TrimSpace(filter.Query); q != "" {
		p := arg("%" + escapeLike(q) + "%")
		sb.WriteString(` AND (e.name ILIKE ` + p + ` OR COALESCE(e.note, '') ILIKE ` + p + `)`)
	}
	switch filter.Status {
	case "":
	case portsrepo.ExpenseStatusPosted:
		sb.WriteString(` AND EXISTS (SELECT 1 FROM expense_items x WHERE x.expense_id = e.expense_id AND NOT x.need_reimburse)`)
	default:
		sb.WriteString(` AND EXISTS (SELECT 1 FROM expense_items x WHERE x.expense_id = e.expense_id AND x.need_reimburse AND x.reimburse_status = ` + arg(filter.Status) + `)`)
	}
	if filter.After != nil {
		sb.WriteString(` AND (e.expense_date, e.created_at, e.expense_id) < (` +
			arg(filter.After.Date) + `::date, ` + arg(filter.After.CreatedAt) + `::timestamptz, ` + arg(filter.After.ID) + `::uuid)`)
	}
	sb.WriteString(` ORDER BY e.expense_date DESC, e.created_at DESC, e.expense_id DESC`)
	if filter.Limit > 0 {
		sb.WriteString(` LIMIT ` + arg(filter.Limit))
	}

	var expenses []domain.Expense
	err := r.WithTx(ctx, readSnapshot, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, sb.String(), args...)
		if err != nil {
			return apperrors.NewAppError(500, "failed to query expenses of month "+filter.MonthID, err)
		}
		expenses = []domain.Expense{}
		for rows.Next() {
			var e domain.Expense
			if err := scanExpense(rows, &e); err != nil {
				rows.Close()
				return apperrors.NewAppError(500, "failed to scan expense row", err)
			}
			expenses = append(expenses, e)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return apperrors.NewAppError(500, "error iterating expense rows", err)
		}
		return attachChildren(ctx, tx, expenses)
	})
	if err != nil {
		return nil, err
	}
	return expenses, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	return r.WithTx(ctx, pgx.TxOptions{}, func(tx pgx.Tx) error {
		seen := make(map[string]bool, len(expense.Items))
		budgetItemIDs := make([]string, 0, len(expense.Items))
		for _, it := range expense.Items {
			if !seen[it.BudgetItemID] {
				seen[it.BudgetItemID] = true
				budgetItemIDs = append(budgetItemIDs, it.BudgetItemID)
			}
		}

		var matched int
		err := tx.QueryRow(ctx, `
			SELECT COUNT(*)
			FROM budget_items bi
			JOIN budget_types bt ON bt.budget_type_id = bi.budget_type_id
			WHERE bt.month_id = $1 AND bi.budget_item_id = ANY($2::text[]::uuid[]);`,
			expense.MonthID, budgetItemIDs,
		).Scan(&matched)
		if err != nil {
			return apperrors.NewAppError(500, "failed to verify budget items", err)
		}
		if matched != len(budgetItemIDs) {
			return apperrors.NewValidationError("items", "every line must reference a budget item of the expense's month")
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO expenses (expense_id, month_id, expense_date, name, note, total_amount, created_at, created_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
			expense.ExpenseID, expense.MonthID, expense.Date, expense.Name, expense.Note,
			expense.TotalAmount, expense.CreatedAt, expense.CreatedBy,
		)
		if err != nil {
			if pgErr, ok := asPgError(err); ok && pgErr.Code == pgForeignKeyViolation {
				return apperrors.NewNotFoundError("month not found")
			}
			return translateError(err, "failed to save expense")
		}

		batch := &pgx.Batch{}
		for _, it := range expense.Items {
			batch.Queue(`
				INSERT INTO expense_items (expense_item_id, expense_id, name, budget_item_id, amount,
					need_reimburse, reimbursement_amount, reimburse_to, reimburse_status)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
				it.ExpenseItemID, expense.ExpenseID, it.Name, it.BudgetItemID, it.Amount,
				it.NeedReimburse, it.ReimbursementAmount, it.ReimburseTo, it.ReimburseStatus)
		}
		for _, a := range expense.Attachments {
			batch.Queue(`
				INSERT INTO attachments (attachment_id, expense_id, file_url, filename, size_bytes)
				VALUES ($1, $2, $3, $4, $5);`,
				a.AttachmentID, expense.ExpenseID, a.FileURL, a.Filename, a.SizeBytes)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			if pgErr, ok := asPgError(err); ok && pgErr.Code == pgForeignKeyViolation {
				return apperrors.NewValidationError("items", "reimburse_to must reference an existing profile")
			}
			return translateError(err, "failed to save expense lines")
		}
		return nil
	})
}

func (r *PgxExpenseRepository) SoftDeleteExpense(ctx context.Context, expenseID string, deletedAt time.Time) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE expenses SET deleted_at = $2
		WHERE expense_id = $1 AND deleted_at IS NULL;`, expenseID, deletedAt)
	if err != nil {
		return translateError(err, "failed to delete expense "+expenseID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("expense not found")
	}
	return nil
}
