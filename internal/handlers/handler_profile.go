package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/budget_ledger/internal/core/ports/services"
	"github.com/SscSPs/budget_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// profileHandler serves the caller's own profile.
type profileHandler struct {
	profileService portssvc.ProfileSvc
}

func registerProfileRoutes(rg *gin.RouterGroup, profileService portssvc.ProfileSvc) {
	h := &profileHandler{profileService: profileService}
	rg.GET("/me", h.getMe)
}

// getMe godoc
// @Summary Get the caller's profile
// @Description Returns the caller's profile and every workspace they belong to, with their role.
// @Tags profile
// @Produce  json
// @Success 200 {object} dto.MeResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to load profile"
// @Security BearerAuth
// @Router /me [get]
func (h *profileHandler) getMe(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	profile, workspaces, err := h.profileService.GetMe(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Failed to load profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToMeResponse(profile, workspaces))
}
