package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/budget_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/budget_ledger/internal/core/ports/services"
	"github.com/SscSPs/budget_ledger/internal/dto"
	"github.com/SscSPs/budget_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reimbursementHandler handles HTTP requests of the reimbursement workflow.
type reimbursementHandler struct {
	reimbursementService portssvc.ReimbursementSvcFacade
}

func newReimbursementHandler(rs portssvc.ReimbursementSvcFacade) *reimbursementHandler {
	return &reimbursementHandler{reimbursementService: rs}
}

// registerWorkspaceReimbursementRoutes registers the reimbursement listing of a workspace.
func registerWorkspaceReimbursementRoutes(workspace *gin.RouterGroup, reimbursementService portssvc.ReimbursementSvcFacade) {
	h := newReimbursementHandler(reimbursementService)
	workspace.GET("/reimbursements", h.listReimbursements)
}

// registerReimbursementRoutes registers routes addressing one reimbursable line.
func registerReimbursementRoutes(rg *gin.RouterGroup, reimbursementService portssvc.ReimbursementSvcFacade) {
	h := newReimbursementHandler(reimbursementService)

	line := rg.Group("/reimbursements/:expense_item_id")
	{
		line.POST("/approve", h.approveReimbursement)
		line.POST("/reject", h.rejectReimbursement)
		line.PUT("/reimburse-to", h.reassignReimburseTo)
	}
}

// listReimbursements godoc
// @Summary List reimbursement lines of a workspace
// @Tags reimbursements
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Param   status query string false "ALL, PENDING (default), APPROVED or REJECTED"
// @Param   monthId query string false "Restrict to one month"
// @Success 200 {object} dto.ListReimbursementsResponse
// @Failure 403 {object} ErrorResponse "Not a member"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/reimbursements [get]
func (h *reimbursementHandler) listReimbursements(c *gin.Context) {
	workspaceID, ok := uuidParam(c, "workspace_id")
	if !ok {
		return
	}
	var params dto.ListReimbursementsParams
	if !bindQuery(c, &params) {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	entries, err := h.reimbursementService.ListReimbursements(c.Request.Context(), workspaceID, userID, params)
	if err != nil {
		respondWithError(c, err, "Failed to list reimbursements")
		return
	}
	c.JSON(http.StatusOK, dto.ToListReimbursementsResponse(entries))
}

// approveReimbursement godoc
// @Summary Approve a pending reimbursement
// @Description Requires OWNER. Only PENDING lines can be decided.
// @Tags reimbursements
// @Produce  json
// @Param   expense_item_id path string true "Expense item ID"
// @Success 200 {object} dto.ReimbursementResponse
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 409 {object} ErrorResponse "Already decided"
// @Security BearerAuth
// @Router /reimbursements/{expense_item_id}/approve [post]
func (h *reimbursementHandler) approveReimbursement(c *gin.Context) {
	h.decide(c, h.reimbursementService.ApproveReimbursement, "Failed to approve reimbursement")
}

// rejectReimbursement godoc
// @Summary Reject a pending reimbursement
// @Description Requires OWNER. Only PENDING lines can be decided.
// @Tags reimbursements
// @Produce  json
// @Param   expense_item_id path string true "Expense item ID"
// @Success 200 {object} dto.ReimbursementResponse
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 409 {object} ErrorResponse "Already decided"
// @Security BearerAuth
// @Router /reimbursements/{expense_item_id}/reject [post]
func (h *reimbursementHandler) rejectReimbursement(c *gin.Context) {
	h.decide(c, h.reimbursementService.RejectReimbursement, "Failed to reject reimbursement")
}

type decisionFunc func(ctx context.Context, expenseItemID, requestingUserID string) (*domain.ReimbursementEntry, error)

func (h *reimbursementHandler) decide(c *gin.Context, decide decisionFunc, failure string) {
	expenseItemID, ok := uuidParam(c, "expense_item_id")
	if !ok {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	entry, err := decide(c.Request.Context(), expenseItemID, userID)
	if err != nil {
		respondWithError(c, err, failure)
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Reimbursement decided",
		slog.String("expense_item_id", expenseItemID), slog.String("status", string(entry.ReimburseStatus)))
	c.JSON(http.StatusOK, dto.ToReimbursementResponse(entry))
}

// reassignReimburseTo godoc
// @Summary Set or clear the member to reimburse
// @Description Requires EDITOR. The target must be a member of the workspace.
// @Tags reimbursements
// @Accept  json
// @Produce  json
// @Param   expense_item_id path string true "Expense item ID"
// @Param   target body dto.ReassignReimburseToRequest true "Member to reimburse, or null"
// @Success 200 {object} dto.ReimbursementResponse
// @Failure 400 {object} ErrorResponse "Not a member"
// @Security BearerAuth
// @Router /reimbursements/{expense_item_id}/reimburse-to [put]
func (h *reimbursementHandler) reassignReimburseTo(c *gin.Context) {
	expenseItemID, ok := uuidParam(c, "expense_item_id")
	if !ok {
		return
	}
	var req dto.ReassignReimburseToRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	entry, err := h.reimbursementService.ReassignReimburseTo(c.Request.Context(), expenseItemID, userID, req.ReimburseTo)
	if err != nil {
		respondWithError(c, err, "Failed to reassign reimbursement")
		return
	}
	c.JSON(http.StatusOK, dto.ToReimbursementResponse(entry))
}
