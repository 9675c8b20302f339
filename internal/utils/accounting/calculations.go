package accounting

import (
	"sort"

	"github.com/SscSPs/budget_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ComputeItemSpend derives the spend of one BudgetItem from its expense lines.
// Lines must already exclude soft-deleted expenses; lines of other items are ignored.
//
// Posted spend counts non-reimbursable lines; approved reimbursed spend counts
// reimbursement amounts of APPROVED lines. Pending and rejected lines do not count.
func ComputeItemSpend(item domain.BudgetItem, lines []domain.ExpenseItem) domain.BudgetItemSpend {
	posted := decimal.Zero
	approved := decimal.Zero
	for _, line := range lines {
		if line.BudgetItemID != item.BudgetItemID {
			continue
		}
		posted = posted.Add(postedAmount(line))
		approved = approved.Add(approvedAmount(line))
	}

	remaining := item.BudgetAmount.Sub(posted).Sub(approved)
	return domain.BudgetItemSpend{
		BudgetItem:              item,
		PostedSpend:             posted,
		ApprovedReimbursedSpend: approved,
		Remaining:               remaining,
		OverBudget:              remaining.IsNegative(),
	}
}

// ComputeBudgetView groups the computed items under their types, ordered by
// Order then name.
func ComputeBudgetView(ledger domain.MonthLedger) domain.BudgetView {
	byType := make(map[string][]domain.BudgetItemSpend, len(ledger.Types))
	for _, item := range ledger.Items {
		byType[item.BudgetTypeID] = append(byType[item.BudgetTypeID], ComputeItemSpend(item, ledger.Lines))
	}

	types := make([]domain.BudgetType, len(ledger.Types))
	copy(types, ledger.Types)
	sort.SliceStable(types, func(i, j int) bool {
		if types[i].Order != types[j].Order {
			return types[i].Order < types[j].Order
		}
		return types[i].Name < types[j].Name
	})

	view := domain.BudgetView{
		Month: ledger.Month,
		Types: make([]domain.BudgetTypeView, 0, len(types)),
	}
	for _, bt := range types {
		items := byType[bt.BudgetTypeID]
		if items == nil {
			items = []domain.BudgetItemSpend{}
		}
		sort.SliceStable(items, func(i, j int) bool {
			if items[i].Order != items[j].Order {
				return items[i].Order < items[j].Order
			}
			return items[i].Name < items[j].Name
		})
		view.Types = append(view.Types, domain.BudgetTypeView{BudgetType: bt, Items: items})
	}
	return view
}

// ComputeMonthTotals derives the month-level aggregates from a snapshot.
func ComputeMonthTotals(ledger domain.MonthLedger) domain.MonthTotals {
	savingItems := make(map[string]bool)
	totalBudget := decimal.Zero
	savingBudget := decimal.Zero
	for _, item := range ledger.Items {
		totalBudget = totalBudget.Add(item.BudgetAmount)
		if item.IsSaving {
			savingItems[item.BudgetItemID] = true
			savingBudget = savingBudget.Add(item.BudgetAmount)
		}
	}

	posted := decimal.Zero
	approved := decimal.Zero
	spentOnSaving := decimal.Zero
	for _, line := range ledger.Lines {
		p := postedAmount(line)
		posted = posted.Add(p)
		approved = approved.Add(approvedAmount(line))
		if savingItems[line.BudgetItemID] {
			spentOnSaving = spentOnSaving.Add(p)
		}
	}

	totalIncome := ledger.Month.Income.Add(ledger.Month.CarryOver)
	totalSpending := posted.Add(approved)
	return domain.MonthTotals{
		TotalIncome:       totalIncome,
		TotalBudget:       totalBudget,
		Posted:            posted,
		ApprovedReimburse: approved,
		TotalSpending:     totalSpending,
		Remaining:         totalBudget.Sub(totalSpending),
		Unallocated:       totalIncome.Sub(totalBudget),
		TotalSaving:       savingBudget.Sub(spentOnSaving),
		ExpenseCount:      ledger.ExpenseCount,
	}
}

// PreviewSavingToggle computes the effect of flipping IsSaving on target.
// It reports false when target is not part of the snapshot.
func PreviewSavingToggle(ledger domain.MonthLedger, budgetItemID string) (domain.SavingTogglePreview, bool) {
	target, ok := ledger.ItemByID(budgetItemID)
	if !ok {
		return domain.SavingTogglePreview{}, false
	}

	savingItems := make(map[string]bool)
	totalSavingBefore := decimal.Zero
	for _, item := range ledger.Items {
		if item.IsSaving {
			savingItems[item.BudgetItemID] = true
			totalSavingBefore = totalSavingBefore.Add(item.BudgetAmount)
		}
	}

	expenseCount := 0
	spentOnItem := decimal.Zero
	spentOnSaving := decimal.Zero
	for _, line := range ledger.Lines {
		if line.BudgetItemID == target.BudgetItemID {
			expenseCount++
			spentOnItem = spentOnItem.Add(line.Amount)
		}
		if savingItems[line.BudgetItemID] && !line.NeedReimburse {
			spentOnSaving = spentOnSaving.Add(line.Amount)
		}
	}

	totalSavingAfter := totalSavingBefore.Add(target.BudgetAmount)
	if target.IsSaving {
		totalSavingAfter = totalSavingBefore.Sub(target.BudgetAmount)
	}

	hasExpenses := expenseCount > 0
	return domain.SavingTogglePreview{
		BudgetItemID:         target.BudgetItemID,
		BudgetItemName:       target.Name,
		BudgetItemAmount:     target.BudgetAmount,
		CurrentIsSaving:      target.IsSaving,
		HasExpenses:          hasExpenses,
		ExpenseCount:         expenseCount,
		TotalSpentOnThisItem: spentOnItem,
		TotalSavingBefore:    totalSavingBefore,
		TotalSavingAfter:     totalSavingAfter,
		SpentOnSavingBudgets: spentOnSaving,
		SavedRemainingBefore: totalSavingBefore.Sub(spentOnSaving),
		SavedRemainingAfter:  totalSavingAfter.Sub(spentOnSaving),
		Destructive:          hasExpenses && target.IsSaving,
	}, true
}

func postedAmount(line domain.ExpenseItem) decimal.Decimal {
	if line.NeedReimburse {
		return decimal.Zero
	}
	return line.Amount
}

func approvedAmount(line domain.ExpenseItem) decimal.Decimal {
	if !line.NeedReimburse || line.ReimburseStatus != domain.ReimburseApproved || line.ReimbursementAmount == nil {
		return decimal.Zero
	}
	return *line.ReimbursementAmount
}
