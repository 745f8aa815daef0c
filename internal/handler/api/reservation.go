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
	"github.com/google/uuid"
)

type ReservationHandler struct {
	cmds         commands.ReservationCommands
	q            queries.ReservationQueries
	availability queries.AvailabilityQueries
}

func NewReservationHandler(
	cmds commands.ReservationCommands,
	q queries.ReservationQueries,
	availability queries.AvailabilityQueries,
) *ReservationHandler {
	return &ReservationHandler{
		cmds:         cmds,
		q:            q,
		availability: availability,
	}
}

// @Summary Price quote
// @Description Server-side price for a tool and date range
// @Tags reservations
// @Produce json
// @Param tool_id query string true "Tool ID"
// @Param start_date query string true "YYYY-MM-DD"
// @Param end_date query string true "YYYY-MM-DD"
// @Success 200 {object} resdto.PriceQuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/price [get]
func (h *ReservationHandler) Price(c *gin.Context) {
	var req reqdto.PriceQuoteRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		abortBind(c, err)
		return
	}
	request, err := req.ToDomain()
	if err != nil {
		abortBind(c, err)
		return
	}

	quote, err := h.availability.Quote(c.Request.Context(), request)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuote(quote))
}

// @Summary Create reservation
// @Description Book a tool. A repeated Idempotency-Key replays the first result.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Idempotency key (UUID)"
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Success 200 {object} resdto.ReservationResponse "Replayed"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	idempotencyKey, err := idempotencyKeyFrom(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Idempotency-Key must be a UUID", nil)
		return
	}

	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		abortBind(c, bindErr)
		return
	}

	result, err := h.cmds.CreateReservation(c.Request.Context(), req, userID, idempotencyKey)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromReservationView(result.Reservation))
}

// @Summary Get reservation
// @Description Visible to the renter, the tool owner and admins
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, ok := pathID(c, "id", "reservation")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	role, _ := middleware.GetUserRole(c)

	view, err := h.q.GetByID(c.Request.Context(), queries.Actor{UserID: userID, IsAdmin: role.IsAdmin()}, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary List my reservations
// @Description Reservations where the caller is renter or tool owner, latest start first
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationResponse
// @Failure 401 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) GetUserReservations(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	views, err := h.q.ListMine(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary Change reservation status
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.UpdateReservationStatusRequest true "New status"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/status [put]
func (h *ReservationHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id", "reservation")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateReservationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBind(c, err)
		return
	}

	view, err := h.cmds.UpdateStatus(c.Request.Context(), userID, id, req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// idempotencyKeyFrom returns nil when the header is absent.
func idempotencyKeyFrom(c *gin.Context) (*uuid.UUID, error) {
	raw := c.GetHeader(HeaderIdempotencyKey)
	if raw == "" {
		return nil, nil
	}
	key, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &key, nil
}
