package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/budget_ledger/internal/core/ports/services"
	"github.com/SscSPs/budget_ledger/internal/dto"
	"github.com/SscSPs/budget_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// expenseHandler handles HTTP requests related to expenses.
type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
}

func newExpenseHandler(es portssvc.ExpenseSvcFacade) *expenseHandler {
	return &expenseHandler{expenseService: es}
}

// registerMonthExpenseRoutes registers the expense collection of a month.
func registerMonthExpenseRoutes(month *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade) {
	h := newExpenseHandler(expenseService)

	expenses := month.Group("/expenses")
	{
		expenses.POST("", h.createExpense)
		expenses.GET("", h.listExpenses)
	}
}

// registerExpenseRoutes registers routes addressing a single expense.
func registerExpenseRoutes(rg *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade) {
	h := newExpenseHandler(expenseService)
	rg.DELETE("/expenses/:expense_id", h.deleteExpense)
}

// createExpense godoc
// @Summary Create an expense
// @Description Creates the expense, its lines and attachments atomically. Requires EDITOR.
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   month_id path string true "Month ID"
// @Param   expense body dto.CreateExpenseRequest true "Expense with lines"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /months/{month_id}/expenses [post]
func (h *expenseHandler) createExpense(c *gin.Context) {
	monthID, ok := uuidParam(c, "month_id")
	if !ok {
		return
	}
	var req dto.CreateExpenseRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), monthID, userID, req)
	if err != nil {
		respondWithError(c, err, "Failed to create expense")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Expense created successfully",
		slog.String("expense_id", expense.ExpenseID), slog.Int("lines", len(expense.Items)))
	c.JSON(http.StatusCreated, dto.ToExpenseResponse(expense))
}

// listExpenses godoc
// @Summary List expenses of a month
// @Description Newest first, excluding deleted expenses. Cursor paginated via nextToken.
// @Tags expenses
// @Produce  json
// @Param   month_id path string true "Month ID"
// @Param   q query string false "Search in name and note"
// @Param   status query string false "POSTED, PENDING, APPROVED or REJECTED"
// @Param   limit query int false "Page size (default 20, max 100)"
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListExpensesResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Security BearerAuth
// @Router /months/{month_id}/expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	monthID, ok := uuidParam(c, "month_id")
	if !ok {
		return
	}
	var params dto.ListExpensesParams
	if !bindQuery(c, &params) {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	page, err := h.expenseService.ListExpenses(c.Request.Context(), monthID, userID, params)
	if err != nil {
		respondWithError(c, err, "Failed to list expenses")
		return
	}
	c.JSON(http.StatusOK, page)
}

// deleteExpense godoc
// @Summary Delete an expense
// @Description Soft delete; the expense no longer counts toward any total. Requires EDITOR.
// @Tags expenses
// @Param   expense_id path string true "Expense ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Expense not found"
// @Security BearerAuth
// @Router /expenses/{expense_id} [delete]
func (h *expenseHandler) deleteExpense(c *gin.Context) {
	expenseID, ok := uuidParam(c, "expense_id")
	if !ok {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), expenseID, userID); err != nil {
		respondWithError(c, err, "Failed to delete expense")
		return
	}
	c.Status(http.StatusNoContent)
}
