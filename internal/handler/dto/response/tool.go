package response

import (
	"time"

	"toolshare/internal/domain/tool"
	"toolshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type ToolListItemResponse struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	DailyPrice  float64   `json:"daily_price"`
	ImageURL    *string   `json:"image_url"`
	OwnerName   string    `json:"owner_name"`
	OwnerScore  float64   `json:"owner_score"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromToolList(items []*queries.ToolListItem) []*ToolListItemResponse {
	out := make([]*ToolListItemResponse, len(items))
	for i, it := range items {
		var res ToolListItemResponse
		copyFields(&res, it)
		res.DailyPrice = money(it.DailyPriceCents)
		out[i] = &res
	}
	return out
}

type ToolResponse struct {
	ID            uuid.UUID `json:"id"`
	OwnerID       uuid.UUID `json:"owner_id"`
	OwnerName     string    `json:"owner_name,omitempty"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	DailyPrice    float64   `json:"daily_price"`
	Status        string    `json:"status"`
	ImageURL      *string   `json:"image_url"`
	AverageRating *float64  `json:"average_rating,omitempty"`
	ReviewCount   int64     `json:"review_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromToolView(v *queries.ToolView) *ToolResponse {
	var res ToolResponse
	copyFields(&res, v)
	res.DailyPrice = money(v.DailyPriceCents)
	return &res
}

func FromToolViews(vs []*queries.ToolView) []*ToolResponse {
	out := make([]*ToolResponse, len(vs))
	for i, v := range vs {
		out[i] = FromToolView(v)
	}
	return out
}

func FromTool(t *tool.Tool) *ToolResponse {
	return &ToolResponse{
		ID:          t.ID(),
		OwnerID:     t.OwnerID(),
		Name:        t.Name(),
		Description: t.Description(),
		Category:    t.Category(),
		DailyPrice:  t.DailyPrice().Float64(),
		Status:      t.Status().String(),
		ImageURL:    t.ImageURL(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

type AdminToolResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	DailyPrice float64   `json:"daily_price"`
	Status     string    `json:"status"`
	OwnerName  string    `json:"owner_name"`
	OwnerEmail string    `json:"owner_email"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromAdminTools(items []*queries.AdminToolItem) []*AdminToolResponse {
	out := make([]*AdminToolResponse, len(items))
	for i, it := range items {
		var res AdminToolResponse
		copyFields(&res, it)
		res.DailyPrice = money(it.DailyPriceCents)
		out[i] = &res
	}
	return out
}
