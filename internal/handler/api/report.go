package api

import (
	"net/http"

	resdto "toolshare/internal/handler/dto/response"
	"toolshare/internal/handler/httperr"
	"toolshare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	q queries.ReportQueries
}

func NewReportHandler(q queries.ReportQueries) *ReportHandler {
	return &ReportHandler{q: q}
}

// @Summary Rental and ownership history of the caller
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReportActivityResponse
// @Router /reports/activity [get]
func (h *ReportHandler) Activity(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	items, err := h.q.Activity(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReportActivity(items))
}

// @Summary Top-rated owners
// @Description Owners whose average review rating is above 4.0
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.TopOwnerResponse
// @Router /reports/stats [get]
func (h *ReportHandler) TopOwners(c *gin.Context) {
	items, err := h.q.TopOwners(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTopOwners(items))
}
