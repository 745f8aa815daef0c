//go:build unit || e2e

package builder

import (
	"time"

	"toolshare/internal/domain/pricing"
	"toolshare/internal/domain/tool"
	reqdto "toolshare/internal/handler/dto/request"
	"toolshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type ToolBuilder struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	OwnerName       string
	Name            string
	Description     string
	Category        string
	DailyPriceCents int64
	Status          tool.Status
	ImageURL        *string
	CreatedAt       time.Time
}

func NewToolBuilder() *ToolBuilder {
	return &ToolBuilder{
		ID:              uuid.New(),
		OwnerID:         uuid.New(),
		OwnerName:       "Tool Owner",
		Name:            "Cordless Drill",
		Description:     "18V drill with two batteries",
		Category:        "Power Tools",
		DailyPriceCents: 1500,
		Status:          tool.StatusAvailable,
		CreatedAt:       time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *ToolBuilder) WithID(id uuid.UUID) *ToolBuilder {
	b.ID = id
	return b
}

func (b *ToolBuilder) WithOwner(ownerID uuid.UUID) *ToolBuilder {
	b.OwnerID = ownerID
	return b
}

func (b *ToolBuilder) WithName(name string) *ToolBuilder {
	b.Name = name
	return b
}

func (b *ToolBuilder) WithCategory(category string) *ToolBuilder {
	b.Category = category
	return b
}

func (b *ToolBuilder) WithDailyPriceCents(cents int64) *ToolBuilder {
	b.DailyPriceCents = cents
	return b
}

func (b *ToolBuilder) WithStatus(status tool.Status) *ToolBuilder {
	b.Status = status
	return b
}

func (b *ToolBuilder) BuildDomain() *tool.Tool {
	return tool.ReconstructTool(
		b.ID, b.OwnerID,
		tool.Details{Name: b.Name, Description: b.Description, Category: b.Category, ImageURL: b.ImageURL},
		pricing.NewMoney(b.DailyPriceCents),
		b.Status,
		b.CreatedAt, b.CreatedAt,
	)
}

func (b *ToolBuilder) BuildView() *queries.ToolView {
	return &queries.ToolView{
		ID:              b.ID,
		OwnerID:         b.OwnerID,
		OwnerName:       b.OwnerName,
		Name:            b.Name,
		Description:     b.Description,
		Category:        b.Category,
		DailyPriceCents: b.DailyPriceCents,
		Status:          b.Status.String(),
		ImageURL:        b.ImageURL,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.CreatedAt,
	}
}

func (b *ToolBuilder) BuildListItem() *queries.ToolListItem {
	return &queries.ToolListItem{
		ID:              b.ID,
		OwnerID:         b.OwnerID,
		Name:            b.Name,
		Description:     b.Description,
		Category:        b.Category,
		DailyPriceCents: b.DailyPriceCents,
		ImageURL:        b.ImageURL,
		OwnerName:       b.OwnerName,
		OwnerScore:      10,
		CreatedAt:       b.CreatedAt,
	}
}

func (b *ToolBuilder) BuildCreateRequestDTO() reqdto.CreateToolRequest {
	return reqdto.CreateToolRequest{
		Name:        b.Name,
		Description: b.Description,
		DailyPrice:  float64(b.DailyPriceCents) / 100,
		Category:    b.Category,
		Status:      b.Status.String(),
		ImageURL:    b.ImageURL,
	}
}
