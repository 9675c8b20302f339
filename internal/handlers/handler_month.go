package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/budget_ledger/internal/core/ports/services"
	"github.com/SscSPs/budget_ledger/internal/dto"
	"github.com/SscSPs/budget_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// monthHandler handles HTTP requests related to months and their computed views.
type monthHandler struct {
	monthService portssvc.MonthSvcFacade
}

func newMonthHandler(ms portssvc.MonthSvcFacade) *monthHandler {
	return &monthHandler{monthService: ms}
}

// registerWorkspaceMonthRoutes registers the month collection of a workspace.
func registerWorkspaceMonthRoutes(workspace *gin.RouterGroup, monthService portssvc.MonthSvcFacade) {
	h := newMonthHandler(monthService)

	months := workspace.Group("/months")
	{
		months.GET("", h.listMonths)
		months.POST("", h.createMonth)
	}
}

// registerMonthRoutes registers routes addressing a single month.
func registerMonthRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newMonthHandler(services.Month)

	month := rg.Group("/months/:month_id")
	{
		month.GET("", h.getMonth)
		month.PATCH("", h.updateMonthFunds)
		month.DELETE("", h.deleteMonth)
		month.POST("/duplicate", h.duplicateMonth)
		month.GET("/budget", h.getBudgetView)
		month.GET("/totals", h.getMonthTotals)

		registerMonthBudgetTypeRoutes(month, services.Budget)
		registerMonthExpenseRoutes(month, services.Expense)
	}
}

// listMonths godoc
// @Summary List months of a workspace
// @Description Newest period first.
// @Tags months
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Success 200 {object} dto.ListMonthsResponse
// @Failure 403 {object} ErrorResponse "Not a member"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/months [get]
func (h *monthHandler) listMonths(c *gin.Context) {
	workspaceID, ok := uuidParam(c, "workspace_id")
	if !ok {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	months, err := h.monthService.ListMonths(c.Request.Context(), workspaceID, userID)
	if err != nil {
		respondWithError(c, err, "Failed to list months")
		return
	}
	c.JSON(http.StatusOK, dto.ToListMonthsResponse(months))
}

// createMonth godoc
// @Summary Create a month
// @Description Requires EDITOR. One month per (year, month) per workspace.
// @Tags months
// @Accept  json
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Param   month body dto.CreateMonthRequest true "Month details"
// @Success 201 {object} dto.MonthResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 409 {object} ErrorResponse "Month already exists"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/months [post]
func (h *monthHandler) createMonth(c *gin.Context) {
	workspaceID, ok := uuidParam(c, "workspace_id")
	if !ok {
		return
	}
	var req dto.CreateMonthRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	month, err := h.monthService.CreateMonth(c.Request.Context(), workspaceID, userID, req)
	if err != nil {
		respondWithError(c, err, "Failed to create month")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Month created successfully", slog.String("month_id", month.MonthID))
	c.JSON(http.StatusCreated, dto.ToMonthResponse(month))
}

// getMonth godoc
// @Summary Get a month
// @Tags months
// @Produce  json
// @Param   month_id path string true "Month ID"
// @Success 200 {object} dto.MonthResponse
// @Failure 403 {object} ErrorResponse "Not a member"
// @Failure 404 {object} ErrorResponse "Month not found"
// @Security BearerAuth
// @Router /months/{month_id} [get]
func (h *monthHandler) getMonth(c *gin.Context) {
	monthID, ok := uuidParam(c, "month_id")
	if !ok {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	month, err := h.monthService.GetMonth(c.Request.Context(), monthID, userID)
	if err != nil {
		respondWithError(c, err, "Failed to get month")
		return
	}
	c.JSON(http.StatusOK, dto.ToMonthResponse(month))
}

// updateMonthFunds godoc
// @Summary Update income and carry-over
// @Description Requires EDITOR. Fails with 409 once the month has budget types.
// @Tags months
// @Accept  json
// @Produce  json
// @Param   month_id path string true "Month ID"
// @Param   funds body dto.UpdateMonthFundsRequest true "Income and carry-over"
// @Success 200 {object} dto.MonthResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 409 {object} ErrorResponse "Funds are locked"
// @Security BearerAuth
// @Router /months/{month_id} [patch]
func (h *monthHandler) updateMonthFunds(c *gin.Context) {
	monthID, ok := uuidParam(c, "month_id")
	if !ok {
		return
	}
	var req dto.UpdateMonthFundsRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	month, err := h.monthService.UpdateMonthFunds(c.Request.Context(), monthID, userID, req)
	if err != nil {
		respondWithError(c, err, "Failed to update month")
		return
	}
	c.JSON(http.StatusOK, dto.ToMonthResponse(month))
}

// deleteMonth godoc
// @Summary Delete a month
// @Description Requires EDITOR. Fails with 409 while the month has budget types.
// @Tags months
// @Param   month_id path string true "Month ID"
// @Success 204 "No Content"
// @Failure 409 {object} ErrorResponse "Month has budget types"
// @Security BearerAuth
// @Router /months/{month_id} [delete]
func (h *monthHandler) deleteMonth(c *gin.Context) {
	monthID, ok := uuidParam(c, "month_id")
	if !ok {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.monthService.DeleteMonth(c.Request.Context(), monthID, userID); err != nil {
		respondWithError(c, err, "Failed to delete month")
		return
	}
	c.Status(http.StatusNoContent)
}

// duplicateMonth godoc
// @Summary Duplicate a month
// @Description Copies budget types and items into a new period with fresh income. Requires EDITOR.
// @Tags months
// @Accept  json
// @Produce  json
// @Param   month_id path string true "Source month ID"
// @Param   target body dto.DuplicateMonthRequest true "Target period"
// @Success 201 {object} dto.MonthResponse
// @Failure 409 {object} ErrorResponse "Target month already exists"
// @Security BearerAuth
// @Router /months/{month_id}/duplicate [post]
func (h *monthHandler) duplicateMonth(c *gin.Context) {
	monthID, ok := uuidParam(c, "month_id")
	if !ok {
		return
	}
	var req dto.DuplicateMonthRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	month, err := h.monthService.DuplicateMonth(c.Request.Context(), monthID, userID, req)
	if err != nil {
		respondWithError(c, err, "Failed to duplicate month")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Month duplicated",
		slog.String("source_month_id", monthID), slog.String("month_id", month.MonthID))
	c.JSON(http.StatusCreated, dto.ToMonthResponse(month))
}

// getBudgetView godoc
// @Summary Get the month budget with computed spend
// @Tags months
// @Produce  json
// @Param   month_id path string true "Month ID"
// @Success 200 {object} dto.BudgetViewResponse
// @Failure 403 {object} ErrorResponse "Not a member"
// @Security BearerAuth
// @Router /months/{month_id}/budget [get]
func (h *monthHandler) getBudgetView(c *gin.Context) {
	monthID, ok := uuidParam(c, "month_id")
	if !ok {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	view, err := h.monthService.GetBudgetView(c.Request.Context(), monthID, userID)
	if err != nil {
		respondWithError(c, err, "Failed to compute budget view")
		return
	}
	c.JSON(http.StatusOK, dto.ToBudgetViewResponse(view))
}

// getMonthTotals godoc
// @Summary Get month totals
// @Tags months
// @Produce  json
// @Param   month_id path string true "Month ID"
// @Success 200 {object} dto.MonthTotalsResponse
// @Failure 403 {object} ErrorResponse "Not a member"
// @Security BearerAuth
// @Router /months/{month_id}/totals [get]
func (h *monthHandler) getMonthTotals(c *gin.Context) {
	monthID, ok := uuidParam(c, "month_id")
	if !ok {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	totals, err := h.monthService.GetMonthTotals(c.Request.Context(), monthID, userID)
	if err != nil {
		respondWithError(c, err, "Failed to compute month totals")
		return
	}
	c.JSON(http.StatusOK, dto.ToMonthTotalsResponse(monthID, totals))
}
