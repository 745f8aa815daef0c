package request

import (
	"toolshare/internal/domain/availability"
	"toolshare/internal/domain/reservation"
	"toolshare/internal/pkg/clock"

	"github.com/google/uuid"
)

type DateRangeRequest struct {
	StartDate string `json:"start_date" form:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" form:"end_date" binding:"required,datetime=2006-01-02"`
}

func (r DateRangeRequest) ToDomain(toolID uuid.UUID) (availability.ReservationRequest, error) {
	start, err := clock.ParseDate(r.StartDate)
	if err != nil {
		return availability.ReservationRequest{}, err
	}
	end, err := clock.ParseDate(r.EndDate)
	if err != nil {
		return availability.ReservationRequest{}, err
	}
	return availability.NewReservationRequest(toolID, start, end), nil
}

type CreateReservationRequest struct {
	ToolID uuid.UUID `json:"tool_id" binding:"required"`
	DateRangeRequest
}

func (r CreateReservationRequest) ToDomain() (availability.ReservationRequest, error) {
	return r.DateRangeRequest.ToDomain(r.ToolID)
}

// PriceQuoteRequest is bound from the query string, where uuid.UUID does not bind.
type PriceQuoteRequest struct {
	ToolID string `form:"tool_id" binding:"required,uuid"`
	DateRangeRequest
}

func (r PriceQuoteRequest) ToDomain() (availability.ReservationRequest, error) {
	toolID, err := uuid.Parse(r.ToolID)
	if err != nil {
		return availability.ReservationRequest{}, err
	}
	return r.DateRangeRequest.ToDomain(toolID)
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending approved rejected completed cancelled"`
}

func (r UpdateReservationStatusRequest) ToDomain() (reservation.Status, error) {
	return reservation.ParseStatus(r.Status)
}
