package request

import (
	"toolshare/internal/domain/pricing"
	"toolshare/internal/domain/tool"
)

type CreateToolRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Description string  `json:"description" binding:"max=5000"`
	DailyPrice  float64 `json:"daily_price" binding:"required,gt=0"`
	Category    string  `json:"category" binding:"required,max=50"`
	Status      string  `json:"status" binding:"omitempty,oneof=available maintenance rented"`
	ImageURL    *string `json:"image_url" binding:"omitempty,max=255"`
}

type ToolInput struct {
	Details    tool.Details
	DailyPrice pricing.Money
	Status     tool.Status
}

func (r *CreateToolRequest) ToDomain() (*ToolInput, error) {
	price, err := pricing.MoneyFromFloat(r.DailyPrice)
	if err != nil {
		return nil, err
	}
	status, err := tool.NewStatus(r.Status)
	if err != nil {
		return nil, err
	}
	return &ToolInput{
		Details: tool.Details{
			Name:        r.Name,
			Description: r.Description,
			Category:    r.Category,
			ImageURL:    r.ImageURL,
		},
		DailyPrice: price,
		Status:     status,
	}, nil
}

// UpdateToolRequest is a partial patch; omitted fields keep their value.
type UpdateToolRequest struct {
	Name        *string  `json:"name" binding:"omitempty,max=100"`
	Description *string  `json:"description" binding:"omitempty,max=5000"`
	DailyPrice  *float64 `json:"daily_price" binding:"omitempty,gt=0"`
	Category    *string  `json:"category" binding:"omitempty,max=50"`
	Status      *string  `json:"status" binding:"omitempty,oneof=available maintenance rented"`
	ImageURL    *string  `json:"image_url" binding:"omitempty,max=255"`
}

func (r *UpdateToolRequest) ToDomain() (tool.Patch, error) {
	p := tool.Patch{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		ImageURL:    r.ImageURL,
	}
	if r.DailyPrice != nil {
		price, err := pricing.MoneyFromFloat(*r.DailyPrice)
		if err != nil {
			return tool.Patch{}, err
		}
		p.DailyPrice = &price
	}
	if r.Status != nil {
		status, err := tool.NewStatus(*r.Status)
		if err != nil {
			return tool.Patch{}, err
		}
		p.Status = &status
	}
	return p, nil
}
