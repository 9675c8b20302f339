package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/budget_ledger/internal/core/ports/services"
	"github.com/SscSPs/budget_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// budgetHandler handles HTTP requests related to budget types and items.
type budgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
}

func newBudgetHandler(bs portssvc.BudgetSvcFacade) *budgetHandler {
	return &budgetHandler{budgetService: bs}
}

// registerMonthBudgetTypeRoutes registers budget type creation under a month.
func registerMonthBudgetTypeRoutes(month *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade) {
	h := newBudgetHandler(budgetService)
	month.POST("/budget-types", h.createBudgetType)
}

// registerBudgetRoutes registers routes addressing single budget types and items.
func registerBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade) {
	h := newBudgetHandler(budgetService)

	budgetType := rg.Group("/budget-types/:budget_type_id")
	{
		budgetType.PATCH("", h.updateBudgetType)
		budgetType.DELETE("", h.deleteBudgetType)
		budgetType.POST("/items", h.createBudgetItem)
	}

	budgetItem := rg.Group("/budget-items/:budget_item_id")
	{
		budgetItem.PATCH("", h.updateBudgetItem)
		budgetItem.DELETE("", h.deleteBudgetItem)
		budgetItem.GET("/preview-toggle", h.previewSavingToggle)
	}
}

// createBudgetType godoc
// @Summary Create a budget type
// @Description Requires EDITOR. Locks the month's income and carry-over.
// @Tags budget
// @Accept  json
// @Produce  json
// @Param   month_id path string true "Month ID"
// @Param   budgetType body dto.CreateBudgetTypeRequest true "Budget type"
// @Success 201 {object} dto.BudgetTypeResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /months/{month_id}/budget-types [post]
func (h *budgetHandler) createBudgetType(c *gin.Context) {
	monthID, ok := uuidParam(c, "month_id")
	if !ok {
		return
	}
	var req dto.CreateBudgetTypeRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	bt, err := h.budgetService.CreateBudgetType(c.Request.Context(), monthID, userID, req)
	if err != nil {
		respondWithError(c, err, "Failed to create budget type")
		return
	}
	c.JSON(http.StatusCreated, dto.ToBudgetTypeResponse(bt))
}

// updateBudgetType godoc
// @Summary Update a budget type
// @Tags budget
// @Accept  json
// @Produce  json
// @Param   budget_type_id path string true "Budget type ID"
// @Param   budgetType body dto.UpdateBudgetTypeRequest true "Fields to change"
// @Success 200 {object} dto.BudgetTypeResponse
// @Security BearerAuth
// @Router /budget-types/{budget_type_id} [patch]
func (h *budgetHandler) updateBudgetType(c *gin.Context) {
	budgetTypeID, ok := uuidParam(c, "budget_type_id")
	if !ok {
		return
	}
	var req dto.UpdateBudgetTypeRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	bt, err := h.budgetService.UpdateBudgetType(c.Request.Context(), budgetTypeID, userID, req)
	if err != nil {
		respondWithError(c, err, "Failed to update budget type")
		return
	}
	c.JSON(http.StatusOK, dto.ToBudgetTypeResponse(bt))
}

// deleteBudgetType godoc
// @Summary Delete a budget type and its items
// @Description Fails with 409 when an item is referenced by expenses.
// @Tags budget
// @Param   budget_type_id path string true "Budget type ID"
// @Success 204 "No Content"
// @Failure 409 {object} ErrorResponse "Referenced by expenses"
// @Security BearerAuth
// @Router /budget-types/{budget_type_id} [delete]
func (h *budgetHandler) deleteBudgetType(c *gin.Context) {
	budgetTypeID, ok := uuidParam(c, "budget_type_id")
	if !ok {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.budgetService.DeleteBudgetType(c.Request.Context(), budgetTypeID, userID); err != nil {
		respondWithError(c, err, "Failed to delete budget type")
		return
	}
	c.Status(http.StatusNoContent)
}

// createBudgetItem godoc
// @Summary Create a budget item
// @Tags budget
// @Accept  json
// @Produce  json
// @Param   budget_type_id path string true "Budget type ID"
// @Param   budgetItem body dto.CreateBudgetItemRequest true "Budget item"
// @Success 201 {object} dto.BudgetItemResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Security BearerAuth
// @Router /budget-types/{budget_type_id}/items [post]
func (h *budgetHandler) createBudgetItem(c *gin.Context) {
	budgetTypeID, ok := uuidParam(c, "budget_type_id")
	if !ok {
		return
	}
	var req dto.CreateBudgetItemRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	item, err := h.budgetService.CreateBudgetItem(c.Request.Context(), budgetTypeID, userID, req)
	if err != nil {
		respondWithError(c, err, "Failed to create budget item")
		return
	}
	c.JSON(http.StatusCreated, dto.ToBudgetItemResponse(item))
}

// updateBudgetItem godoc
// @Summary Update a budget item
// @Description Turning isSaving off on an item with spend needs confirmDestructive.
// @Tags budget
// @Accept  json
// @Produce  json
// @Param   budget_item_id path string true "Budget item ID"
// @Param   budgetItem body dto.UpdateBudgetItemRequest true "Fields to change"
// @Success 200 {object} dto.BudgetItemResponse
// @Failure 409 {object} ErrorResponse "Confirmation required"
// @Security BearerAuth
// @Router /budget-items/{budget_item_id} [patch]
func (h *budgetHandler) updateBudgetItem(c *gin.Context) {
	budgetItemID, ok := uuidParam(c, "budget_item_id")
	if !ok {
		return
	}
	var req dto.UpdateBudgetItemRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	item, err := h.budgetService.UpdateBudgetItem(c.Request.Context(), budgetItemID, userID, req)
	if err != nil {
		respondWithError(c, err, "Failed to update budget item")
		return
	}
	c.JSON(http.StatusOK, dto.ToBudgetItemResponse(item))
}

// deleteBudgetItem godoc
// @Summary Delete a budget item
// @Description Fails with 409 when referenced by expenses.
// @Tags budget
// @Param   budget_item_id path string true "Budget item ID"
// @Success 204 "No Content"
// @Failure 409 {object} ErrorResponse "Referenced by expenses"
// @Security BearerAuth
// @Router /budget-items/{budget_item_id} [delete]
func (h *budgetHandler) deleteBudgetItem(c *gin.Context) {
	budgetItemID, ok := uuidParam(c, "budget_item_id")
	if !ok {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.budgetService.DeleteBudgetItem(c.Request.Context(), budgetItemID, userID); err != nil {
		respondWithError(c, err, "Failed to delete budget item")
		return
	}
	c.Status(http.StatusNoContent)
}

// previewSavingToggle godoc
// @Summary Preview flipping isSaving on a budget item
// @Tags budget
// @Produce  json
// @Param   budget_item_id path string true "Budget item ID"
// @Success 200 {object} domain.SavingTogglePreview
// @Failure 403 {object} ErrorResponse "Not a member"
// @Failure 404 {object} ErrorResponse "Budget item not found"
// @Security BearerAuth
// @Router /budget-items/{budget_item_id}/preview-toggle [get]
func (h *budgetHandler) previewSavingToggle(c *gin.Context) {
	budgetItemID, ok := uuidParam(c, "budget_item_id")
	if !ok {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	preview, err := h.budgetService.PreviewSavingToggle(c.Request.Context(), budgetItemID, userID)
	if err != nil {
		respondWithError(c, err, "Failed to preview saving toggle")
		return
	}
	c.JSON(http.StatusOK, preview)
}
