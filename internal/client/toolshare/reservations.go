package toolshare

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"toolshare/internal/domain/availability"
	"toolshare/internal/domain/pricing"
	"toolshare/internal/pkg/clock"

	"github.com/google/uuid"
)

type dateRange struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (d dateRange) toDomain() (availability.BookedRange, error) {
	start, err := clock.ParseDate(d.StartDate)
	if err != nil {
		return availability.BookedRange{}, fmt.Errorf("invalid start_date %q: %w", d.StartDate, err)
	}
	end, err := clock.ParseDate(d.EndDate)
	if err != nil {
		return availability.BookedRange{}, fmt.Errorf("invalid end_date %q: %w", d.EndDate, err)
	}
	return availability.NewDateRange(start, end), nil
}

type priceQuote struct {
	TotalPrice float64 `json:"total_price"`
	DailyPrice float64 `json:"daily_price"`
	Days       int64   `json:"days"`
}

type createReservationBody struct {
	ToolID uuid.UUID `json:"tool_id"`
	dateRange
}

// Reservation is the server's view of a created reservation.
type Reservation struct {
	ID         uuid.UUID `json:"id"`
	ToolID     uuid.UUID `json:"tool_id"`
	ToolName   string    `json:"tool_name"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	TotalPrice float64   `json:"total_price"`
	Status     string    `json:"status"`
}

// BookedRanges returns the tool's booked ranges, ordered by start date.
func (c *Client) BookedRanges(ctx context.Context, toolID uuid.UUID) ([]availability.BookedRange, error) {
	var body []dateRange
	path := "/api/tools/" + toolID.String() + "/availability"
	if err := c.do(ctx, "booked_ranges", http.MethodGet, path, nil, nil, nil, &body); err != nil {
		return nil, err
	}

	out := make([]availability.BookedRange, 0, len(body))
	for _, d := range body {
		r, err := d.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// Quote asks the server to price the request.
func (c *Client) Quote(ctx context.Context, req availability.ReservationRequest) (pricing.Money, error) {
	query := url.Values{}
	query.Set("tool_id", req.ToolID.String())
	query.Set("start_date", clock.FormatDate(req.Start))
	query.Set("end_date", clock.FormatDate(req.End))

	var body priceQuote
	if err := c.do(ctx, "quote", http.MethodGet, "/api/reservations/price", query, nil, nil, &body); err != nil {
		return pricing.Money{}, err
	}
	return pricing.MoneyFromFloat(body.TotalPrice)
}

// CreateReservation submits the request. Reusing idempotencyKey for the same dates replays the first result.
func (c *Client) CreateReservation(ctx context.Context, req availability.ReservationRequest, idempotencyKey uuid.UUID) (*Reservation, error) {
	payload := createReservationBody{
		ToolID: req.ToolID,
		dateRange: dateRange{
			StartDate: clock.FormatDate(req.Start),
			EndDate:   clock.FormatDate(req.End),
		},
	}
	var headers map[string]string
	if idempotencyKey != uuid.Nil {
		headers = map[string]string{headerIdempotencyKey: idempotencyKey.String()}
	}

	var out Reservation
	if err := c.do(ctx, "create_reservation", http.MethodPost, "/api/reservations", nil, headers, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
