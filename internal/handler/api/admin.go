package api

import (
	"net/http"

	resdto "toolshare/internal/handler/dto/response"
	"toolshare/internal/handler/httperr"
	"toolshare/internal/usecase/commands"
	"toolshare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	q     queries.AdminQueries
	users commands.UserCommands
}

func NewAdminHandler(q queries.AdminQueries, users commands.UserCommands) *AdminHandler {
	return &AdminHandler{q: q, users: users}
}

// @Summary List users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.UserResponse
// @Failure 403 {object} httperr.Response
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	views, err := h.q.ListUsers(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserViews(views))
}

// @Summary List tools with owner contact
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.AdminToolResponse
// @Failure 403 {object} httperr.Response
// @Router /admin/tools [get]
func (h *AdminHandler) ListTools(c *gin.Context) {
	items, err := h.q.ListTools(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAdminTools(items))
}

// @Summary Delete user
// @Tags admin
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	targetID, ok := pathID(c, "id", "user")
	if !ok {
		return
	}
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.users.DeleteUser(c.Request.Context(), actorID, targetID); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary System statistics
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SystemStatsResponse
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.q.Stats(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSystemStats(stats))
}

// @Summary Recent reservation activity
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ActivityResponse
// @Router /admin/activity [get]
func (h *AdminHandler) Activity(c *gin.Context) {
	items, err := h.q.RecentActivity(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromActivity(items))
}
