package api

import (
	"net/http"

	reqdto "toolshare/internal/handler/dto/request"
	resdto "toolshare/internal/handler/dto/response"
	"toolshare/internal/handler/httperr"
	"toolshare/internal/handler/middleware"
	"toolshare/internal/usecase/commands"
	"toolshare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ToolHandler struct {
	cmds         commands.ToolCommands
	tools        queries.ToolQueries
	availability queries.AvailabilityQueries
	reviews      queries.ReviewQueries
}

func NewToolHandler(
	cmds commands.ToolCommands,
	tools queries.ToolQueries,
	availability queries.AvailabilityQueries,
	reviews queries.ReviewQueries,
) *ToolHandler {
	return &ToolHandler{
		cmds:         cmds,
		tools:        tools,
		availability: availability,
		reviews:      reviews,
	}
}

// @Summary List available tools
// @Tags tools
// @Produce json
// @Param category query string false "Category filter"
// @Success 200 {array} resdto.ToolListItemResponse
// @Router /tools [get]
func (h *ToolHandler) List(c *gin.Context) {
	items, err := h.tools.ListAvailable(c.Request.Context(), c.Query("category"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromToolList(items))
}

// @Summary Search tools
// @Description Case-insensitive match on name or category
// @Tags tools
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {array} resdto.ToolListItemResponse
// @Router /tools/search [get]
func (h *ToolHandler) Search(c *gin.Context) {
	items, err := h.tools.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromToolList(items))
}

// @Summary Tools owned by the caller
// @Tags tools
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ToolResponse
// @Failure 401 {object} httperr.Response
// @Router /tools/my [get]
func (h *ToolHandler) Mine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	views, err := h.tools.ListMine(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromToolViews(views))
}

// @Summary Get tool
// @Tags tools
// @Produce json
// @Param id path string true "Tool ID"
// @Success 200 {object} resdto.ToolResponse
// @Failure 404 {object} httperr.Response
// @Router /tools/{id} [get]
func (h *ToolHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id", "tool")
	if !ok {
		return
	}
	view, err := h.tools.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromToolView(view))
}

// @Summary List reviews of a tool
// @Description Newest first, keyset paginated through the after cursor
// @Tags tools
// @Produce json
// @Param id path string true "Tool ID"
// @Param limit query int false "Page size (max 100)"
// @Param after query string false "Cursor from next_after"
// @Success 200 {object} resdto.ReviewListResponse
// @Failure 400 {object} httperr.Response
// @Router /tools/{id}/reviews [get]
func (h *ToolHandler) Reviews(c *gin.Context) {
	id, ok := pathID(c, "id", "tool")
	if !ok {
		return
	}
	var req reqdto.ListReviewsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		abortBind(c, err)
		return
	}

	items, next, err := h.reviews.ListByTool(c.Request.Context(), id, &queries.Cursor{After: req.After}, req.Limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviewList(items, next))
}

// @Summary Booked date ranges of a tool
// @Description Ordered by start date
// @Tags tools
// @Produce json
// @Param id path string true "Tool ID"
// @Success 200 {array} resdto.DateRangeResponse
// @Failure 404 {object} httperr.Response
// @Router /tools/{id}/availability [get]
func (h *ToolHandler) Availability(c *gin.Context) {
	id, ok := pathID(c, "id", "tool")
	if !ok {
		return
	}
	ranges, err := h.availability.BookedRanges(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookedRanges(ranges))
}

// @Summary Check a date range against the tool's bookings
// @Tags tools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tool ID"
// @Param request body reqdto.DateRangeRequest true "Dates"
// @Success 200 {object} resdto.AvailabilityCheckResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /tools/{id}/availability/check [post]
func (h *ToolHandler) CheckAvailability(c *gin.Context) {
	id, ok := pathID(c, "id", "tool")
	if !ok {
		return
	}
	var req reqdto.DateRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBind(c, err)
		return
	}
	request, err := req.ToDomain(id)
	if err != nil {
		abortBind(c, err)
		return
	}

	derivation, err := h.availability.Check(c.Request.Context(), request)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDerivation(derivation))
}

// @Summary Create tool
// @Tags tools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateToolRequest true "Tool"
// @Success 201 {object} resdto.ToolResponse
// @Failure 400 {object} httperr.Response
// @Router /tools [post]
func (h *ToolHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req reqdto.CreateToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBind(c, err)
		return
	}

	created, err := h.cmds.Create(c.Request.Context(), userID, req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromTool(created))
}

// @Summary Update tool
// @Description Owner-only partial update
// @Tags tools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tool ID"
// @Param request body reqdto.UpdateToolRequest true "Fields to change"
// @Success 200 {object} resdto.ToolResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /tools/{id} [put]
func (h *ToolHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id", "tool")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBind(c, err)
		return
	}

	updated, err := h.cmds.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTool(updated))
}

// @Summary Delete tool
// @Description Owner or admin
// @Tags tools
// @Security BearerAuth
// @Param id path string true "Tool ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /tools/{id} [delete]
func (h *ToolHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id", "tool")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	role, _ := middleware.GetUserRole(c)

	if err := h.cmds.Delete(c.Request.Context(), userID, role.IsAdmin(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
