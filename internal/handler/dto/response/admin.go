package response

import (
	"time"

	"toolshare/internal/usecase/queries"
)

type SystemStatsResponse struct {
	TotalUsers        int64   `json:"total_users"`
	TotalTools        int64   `json:"total_tools"`
	TotalReservations int64   `json:"total_reservations"`
	TotalRevenue      float64 `json:"total_revenue"`
	SystemStatus      string  `json:"system_status"`
}

func FromSystemStats(s *queries.SystemStats) *SystemStatsResponse {
	var res SystemStatsResponse
	copyFields(&res, s)
	res.TotalRevenue = money(s.TotalRevenueCents)
	return &res
}

type ActivityResponse struct {
	Type      string    `json:"type"`
	Actor     string    `json:"actor"`
	Target    string    `json:"target"`
	CreatedAt time.Time `json:"created_at"`
}

func FromActivity(items []*queries.ActivityItem) []*ActivityResponse {
	out := make([]*ActivityResponse, len(items))
	for i, it := range items {
		var res ActivityResponse
		copyFields(&res, it)
		out[i] = &res
	}
	return out
}
