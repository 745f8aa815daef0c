package converter

import (
	"toolshare/internal/domain/pricing"
	"toolshare/internal/domain/tool"
	"toolshare/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ToolRow struct {
	ID              uuid.UUID          `db:"id"`
	OwnerID         uuid.UUID          `db:"owner_id"`
	Name            string             `db:"name"`
	Description     string             `db:"description"`
	DailyPriceCents int64              `db:"daily_price_cents"`
	Category        string             `db:"category"`
	Status          string             `db:"status"`
	ImageURL        pgtype.Text        `db:"image_url"`
	CreatedAt       pgtype.Timestamptz `db:"created_at"`
	UpdatedAt       pgtype.Timestamptz `db:"updated_at"`
}

func ToolToDomain(row ToolRow) (*tool.Tool, error) {
	status, err := tool.NewStatus(row.Status)
	if err != nil {
		return nil, err
	}

	return tool.ReconstructTool(
		row.ID,
		row.OwnerID,
		tool.Details{
			Name:        row.Name,
			Description: row.Description,
			Category:    row.Category,
			ImageURL:    pgconv.StringPtrFromPgtype(row.ImageURL),
		},
		pricing.NewMoney(row.DailyPriceCents),
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
