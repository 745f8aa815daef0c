package api

import (
	"net/http"

	reqdto "toolshare/internal/handler/dto/request"
	resdto "toolshare/internal/handler/dto/response"
	"toolshare/internal/handler/httperr"
	"toolshare/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
}

func NewReviewHandler(cmds commands.ReviewCommands) *ReviewHandler {
	return &ReviewHandler{cmds: cmds}
}

// @Summary Create review
// @Description Review a completed reservation; recalculates the owner's security score
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReviewRequest true "Create review request"
// @Success 201 {object} resdto.ReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBind(c, err)
		return
	}

	result, err := h.cmds.CreateReview(c.Request.Context(), req, userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCreateReviewResult(result))
}
