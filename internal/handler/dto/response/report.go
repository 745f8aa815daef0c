package response

import (
	"toolshare/internal/usecase/queries"
)

type ReportActivityResponse struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Date string `json:"date"`
}

func FromReportActivity(items []*queries.ReportActivityItem) []*ReportActivityResponse {
	out := make([]*ReportActivityResponse, len(items))
	for i, it := range items {
		out[i] = &ReportActivityResponse{Name: it.ItemName, Type: it.Type, Date: date(it.Date)}
	}
	return out
}

type TopOwnerResponse struct {
	Name      string  `json:"name"`
	AvgRating float64 `json:"avg_rating"`
	ToolCount int64   `json:"tool_count"`
}

func FromTopOwners(items []*queries.TopOwner) []*TopOwnerResponse {
	out := make([]*TopOwnerResponse, len(items))
	for i, it := range items {
		out[i] = &TopOwnerResponse{Name: it.Name, AvgRating: it.AverageRating, ToolCount: it.ToolCount}
	}
	return out
}
