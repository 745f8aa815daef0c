package readstore

import (
	"context"
	"strings"

	"toolshare/internal/infra"
	"toolshare/internal/infra/db"
	"toolshare/internal/pkg/pgconv"
	"toolshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const availableToolColumns = `id, owner_id, name, description, category, daily_price_cents, image_url, created_at, owner_name, owner_score::float8 AS owner_score`

type toolListRow struct {
	ID              uuid.UUID          `db:"id"`
	OwnerID         uuid.UUID          `db:"owner_id"`
	Name            string             `db:"name"`
	Description     string             `db:"description"`
	Category        string             `db:"category"`
	DailyPriceCents int64              `db:"daily_price_cents"`
	ImageURL        pgtype.Text        `db:"image_url"`
	CreatedAt       pgtype.Timestamptz `db:"created_at"`
	OwnerName       string             `db:"owner_name"`
	OwnerScore      float64            `db:"owner_score"`
}

type toolViewRow struct {
	ID              uuid.UUID          `db:"id"`
	OwnerID         uuid.UUID          `db:"owner_id"`
	OwnerName       string             `db:"owner_name"`
	Name            string             `db:"name"`
	Description     string             `db:"description"`
	Category        string             `db:"category"`
	DailyPriceCents int64              `db:"daily_price_cents"`
	Status          string             `db:"status"`
	ImageURL        pgtype.Text        `db:"image_url"`
	AverageRating   pgtype.Float8      `db:"average_rating"`
	ReviewCount     int64              `db:"review_count"`
	CreatedAt       pgtype.Timestamptz `db:"created_at"`
	UpdatedAt       pgtype.Timestamptz `db:"updated_at"`
}

const toolViewQuery = `
	SELECT t.id, t.owner_id, u.name AS owner_name, t.name, t.description, t.category,
	       t.daily_price_cents, t.status, t.image_url,
	       AVG(rv.rating)::float8 AS average_rating,
	       COUNT(rv.id) AS review_count,
	       t.created_at, t.updated_at
	FROM tools t
	JOIN users u ON u.id = t.owner_id
	LEFT JOIN reservations r ON r.tool_id = t.id
	LEFT JOIN reviews rv ON rv.reservation_id = r.id`

type ToolReadStore struct {
	db db.DBTX
}

func NewToolReadStore(dbtx db.DBTX) *ToolReadStore {
	return &ToolReadStore{db: dbtx}
}

func (r *ToolReadStore) ListAvailable(ctx context.Context, category string) ([]*queries.ToolListItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+availableToolColumns+`
		FROM view_available_tools
		WHERE $1 = '' OR category = $1
		ORDER BY created_at DESC, id`,
		category,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available tools", err)
	}
	return collectToolList(rows)
}

func (r *ToolReadStore) Search(ctx context.Context, term string) ([]*queries.ToolListItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+availableToolColumns+`
		FROM view_available_tools
		WHERE name ILIKE $1 OR category ILIKE $1
		ORDER BY created_at DESC, id`,
		"%"+escapeLike(term)+"%",
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search tools", err)
	}
	return collectToolList(rows)
}

func (r *ToolReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.ToolView, error) {
	rows, err := r.db.Query(ctx, toolViewQuery+`
		WHERE t.owner_id = $1
		GROUP BY t.id, u.name
		ORDER BY t.created_at DESC, t.id`,
		ownerID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tools by owner", err)
	}
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[toolViewRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan tools by owner", err)
	}
	out := make([]*queries.ToolView, len(collected))
	for i, row := range collected {
		out[i] = toToolView(row)
	}
	return out, nil
}

func (r *ToolReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ToolView, error) {
	rows, err := r.db.Query(ctx, toolViewQuery+`
		WHERE t.id = $1
		GROUP BY t.id, u.name`,
		id,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get tool view by id", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[toolViewRow])
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("tool not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get tool view by id", err)
	}
	return toToolView(row), nil
}

func collectToolList(rows pgx.Rows) ([]*queries.ToolListItem, error) {
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[toolListRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan tool list", err)
	}
	out := make([]*queries.ToolListItem, len(collected))
	for i, row := range collected {
		out[i] = &queries.ToolListItem{
			ID:              row.ID,
			OwnerID:         row.OwnerID,
			Name:            row.Name,
			Description:     row.Description,
			Category:        row.Category,
			DailyPriceCents: row.DailyPriceCents,
			ImageURL:        pgconv.StringPtrFromPgtype(row.ImageURL),
			OwnerName:       row.OwnerName,
			OwnerScore:      row.OwnerScore,
			CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return out, nil
}

func toToolView(row toolViewRow) *queries.ToolView {
	avg, _ := pgconv.Float64PtrFromPgtype(row.AverageRating)
	return &queries.ToolView{
		ID:              row.ID,
		OwnerID:         row.OwnerID,
		OwnerName:       row.OwnerName,
		Name:            row.Name,
		Description:     row.Description,
		Category:        row.Category,
		DailyPriceCents: row.DailyPriceCents,
		Status:          row.Status,
		ImageURL:        pgconv.StringPtrFromPgtype(row.ImageURL),
		AverageRating:   avg,
		ReviewCount:     row.ReviewCount,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
