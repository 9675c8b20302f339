package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/budget_ledger/internal/core/ports/services"
	"github.com/SscSPs/budget_ledger/internal/dto"
	"github.com/SscSPs/budget_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// workspaceHandler handles HTTP requests related to workspaces and their members.
type workspaceHandler struct {
	workspaceService portssvc.WorkspaceSvcFacade
}

// newWorkspaceHandler creates a new workspaceHandler.
func newWorkspaceHandler(ws portssvc.WorkspaceSvcFacade) *workspaceHandler {
	return &workspaceHandler{
		workspaceService: ws,
	}
}

// registerWorkspaceRoutes registers workspace and membership routes, plus the
// month and reimbursement collections nested under a workspace.
func registerWorkspaceRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newWorkspaceHandler(services.Workspace)

	workspacesTopLevel := rg.Group("/workspaces")
	{
		workspacesTopLevel.POST("", h.createWorkspace)
		workspacesTopLevel.GET("", h.listUserWorkspaces)
	}

	workspaceSpecific := rg.Group("/workspaces/:workspace_id")
	{
		workspaceSpecific.GET("", h.getWorkspace)
		workspaceSpecific.PATCH("", h.renameWorkspace)
		workspaceSpecific.DELETE("", h.deleteWorkspace)

		members := workspaceSpecific.Group("/members")
		{
			members.GET("", h.listMembers)
			members.POST("", h.inviteMember)
			members.PUT("/:profile_id", h.updateMemberRole)
			members.DELETE("/:profile_id", h.removeMember)
		}

		registerWorkspaceMonthRoutes(workspaceSpecific, services.Month)
		registerWorkspaceReimbursementRoutes(workspaceSpecific, services.Reimbursement)
	}
}

// createWorkspace godoc
// @Summary Create a new workspace
// @Description Creates a new workspace and makes the caller its OWNER.
// @Tags workspaces
// @Accept  json
// @Produce  json
// @Param   workspace body dto.CreateWorkspaceRequest true "Workspace details"
// @Success 201 {object} dto.WorkspaceResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to create workspace"
// @Security BearerAuth
// @Router /workspaces [post]
func (h *workspaceHandler) createWorkspace(c *gin.Context) {
	var req dto.CreateWorkspaceRequest
	if !bindJSON(c, &req) {
		return
	}
	creatorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	newWorkspace, err := h.workspaceService.CreateWorkspace(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondWithError(c, err, "Failed to create workspace")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Workspace created successfully", slog.String("workspace_id", newWorkspace.WorkspaceID))
	c.JSON(http.StatusCreated, dto.ToWorkspaceWithRoleResponse(newWorkspace))
}

// listUserWorkspaces godoc
// @Summary List workspaces for current user
// @Description Retrieves the workspaces the caller belongs to, with the caller's role.
// @Tags workspaces
// @Produce  json
// @Success 200 {object} dto.ListWorkspacesResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list workspaces"
// @Security BearerAuth
// @Router /workspaces [get]
func (h *workspaceHandler) listUserWorkspaces(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	workspaces, err := h.workspaceService.ListUserWorkspaces(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Failed to list workspaces")
		return
	}
	c.JSON(http.StatusOK, dto.ToListWorkspacesResponse(workspaces))
}

// getWorkspace godoc
// @Summary Get a workspace
// @Tags workspaces
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Success 200 {object} dto.WorkspaceResponse
// @Failure 403 {object} ErrorResponse "Not a member"
// @Failure 404 {object} ErrorResponse "Workspace not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id} [get]
func (h *workspaceHandler) getWorkspace(c *gin.Context) {
	workspaceID, ok := uuidParam(c, "workspace_id")
	if !ok {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	ws, err := h.workspaceService.GetWorkspace(c.Request.Context(), workspaceID, userID)
	if err != nil {
		respondWithError(c, err, "Failed to get workspace")
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkspaceWithRoleResponse(ws))
}

// renameWorkspace godoc
// @Summary Rename a workspace
// @Description Requires OWNER.
// @Tags workspaces
// @Accept  json
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Param   workspace body dto.UpdateWorkspaceRequest true "New name"
// @Success 200 {object} dto.WorkspaceResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /workspaces/{workspace_id} [patch]
func (h *workspaceHandler) renameWorkspace(c *gin.Context) {
	workspaceID, ok := uuidParam(c, "workspace_id")
	if !ok {
		return
	}
	var req dto.UpdateWorkspaceRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	ws, err := h.workspaceService.RenameWorkspace(c.Request.Context(), workspaceID, userID, req)
	if err != nil {
		respondWithError(c, err, "Failed to rename workspace")
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkspaceWithRoleResponse(ws))
}

// deleteWorkspace godoc
// @Summary Delete a workspace
// @Description Requires OWNER. Fails with 409 while the workspace still has months.
// @Tags workspaces
// @Param   workspace_id path string true "Workspace ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 409 {object} ErrorResponse "Workspace still has months"
// @Security BearerAuth
// @Router /workspaces/{workspace_id} [delete]
func (h *workspaceHandler) deleteWorkspace(c *gin.Context) {
	workspaceID, ok := uuidParam(c, "workspace_id")
	if !ok {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.workspaceService.DeleteWorkspace(c.Request.Context(), workspaceID, userID); err != nil {
		respondWithError(c, err, "Failed to delete workspace")
		return
	}
	c.Status(http.StatusNoContent)
}

// listMembers godoc
// @Summary List workspace members
// @Tags workspaces
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Success 200 {object} dto.ListMembersResponse
// @Failure 403 {object} ErrorResponse "Not a member"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/members [get]
func (h *workspaceHandler) listMembers(c *gin.Context) {
	workspaceID, ok := uuidParam(c, "workspace_id")
	if !ok {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	members, err := h.workspaceService.ListMembers(c.Request.Context(), workspaceID, userID)
	if err != nil {
		respondWithError(c, err, "Failed to list members")
		return
	}
	c.JSON(http.StatusOK, dto.ToListMembersResponse(members))
}

// inviteMember godoc
// @Summary Invite a profile to a workspace
// @Description Adds an existing profile, found by e-mail, with the given role (default VIEWER). Requires OWNER.
// @Tags workspaces
// @Accept  json
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Param   invitation body dto.InviteMemberRequest true "E-mail and role"
// @Success 201 {object} dto.MemberResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "No profile with that e-mail"
// @Failure 409 {object} ErrorResponse "Already a member"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/members [post]
func (h *workspaceHandler) inviteMember(c *gin.Context) {
	workspaceID, ok := uuidParam(c, "workspace_id")
	if !ok {
		return
	}
	var req dto.InviteMemberRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	member, err := h.workspaceService.InviteMember(c.Request.Context(), workspaceID, userID, req)
	if err != nil {
		respondWithError(c, err, "Failed to invite member")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Member invited",
		slog.String("workspace_id", workspaceID), slog.String("profile_id", member.ProfileID))
	c.JSON(http.StatusCreated, dto.ToMemberResponse(member))
}

// updateMemberRole godoc
// @Summary Change a member's role
// @Description Requires OWNER. The last OWNER cannot be demoted.
// @Tags workspaces
// @Accept  json
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Param   profile_id path string true "Profile ID"
// @Param   role body dto.UpdateMemberRoleRequest true "New role"
// @Success 200 {object} dto.MemberResponse
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 409 {object} ErrorResponse "Last owner"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/members/{profile_id} [put]
func (h *workspaceHandler) updateMemberRole(c *gin.Context) {
	workspaceID, ok := uuidParam(c, "workspace_id")
	if !ok {
		return
	}
	profileID, ok := uuidParam(c, "profile_id")
	if !ok {
		return
	}
	var req dto.UpdateMemberRoleRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	member, err := h.workspaceService.UpdateMemberRole(c.Request.Context(), workspaceID, userID, profileID, req.Role)
	if err != nil {
		respondWithError(c, err, "Failed to update member role")
		return
	}
	c.JSON(http.StatusOK, dto.ToMemberResponse(member))
}

// removeMember godoc
// @Summary Remove a member or leave a workspace
// @Description Requires OWNER, unless the caller removes themselves. The last OWNER cannot leave.
// @Tags workspaces
// @Param   workspace_id path string true "Workspace ID"
// @Param   profile_id path string true "Profile ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 409 {object} ErrorResponse "Last owner"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/members/{profile_id} [delete]
func (h *workspaceHandler) removeMember(c *gin.Context) {
	workspaceID, ok := uuidParam(c, "workspace_id")
	if !ok {
		return
	}
	profileID, ok := uuidParam(c, "profile_id")
	if !ok {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.workspaceService.RemoveMember(c.Request.Context(), workspaceID, userID, profileID); err != nil {
		respondWithError(c, err, "Failed to remove member")
		return
	}
	c.Status(http.StatusNoContent)
}
