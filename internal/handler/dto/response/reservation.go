package response

import (
	"time"

	"toolshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID          uuid.UUID `json:"id"`
	ToolID      uuid.UUID `json:"tool_id"`
	ToolName    string    `json:"tool_name"`
	ToolOwnerID uuid.UUID `json:"tool_owner_id"`
	RenterID    uuid.UUID `json:"renter_id"`
	RenterName  string    `json:"renter_name"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	TotalPrice  float64   `json:"total_price"`
	Status      string    `json:"status"`
	Reviewed    bool      `json:"reviewed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	var res ReservationResponse
	copyFields(&res, v)
	res.ToolOwnerID = v.OwnerID
	res.StartDate = date(v.StartDate)
	res.EndDate = date(v.EndDate)
	res.TotalPrice = money(v.TotalPriceCents)
	return &res
}

func FromReservationViews(vs []*queries.ReservationView) []*ReservationResponse {
	out := make([]*ReservationResponse, len(vs))
	for i, v := range vs {
		out[i] = FromReservationView(v)
	}
	return out
}
