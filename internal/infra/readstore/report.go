package readstore

import (
	"context"

	"toolshare/internal/infra"
	"toolshare/internal/infra/db"
	"toolshare/internal/pkg/pgconv"
	"toolshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type reportActivityRow struct {
	ItemName string      `db:"item_name"`
	Type     string      `db:"type"`
	Date     pgtype.Date `db:"date"`
}

type topOwnerRow struct {
	OwnerID       uuid.UUID `db:"owner_id"`
	Name          string    `db:"name"`
	AverageRating float64   `db:"average_rating"`
	ToolCount     int64     `db:"tool_count"`
}

type ReportReadStore struct {
	db db.DBTX
}

func NewReportReadStore(dbtx db.DBTX) *ReportReadStore {
	return &ReportReadStore{db: dbtx}
}

func (r *ReportReadStore) Activity(ctx context.Context, userID uuid.UUID) ([]*queries.ReportActivityItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT t.name AS item_name, $2::text AS type, r.start_date AS date
		FROM reservations r
		JOIN tools t ON t.id = r.tool_id
		WHERE r.renter_id = $1
		UNION ALL
		SELECT name AS item_name, $3::text AS type, created_at::date AS date
		FROM tools
		WHERE owner_id = $1
		ORDER BY date DESC, item_name`,
		userID, queries.ActivityRented, queries.ActivityOwned,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get activity report", err)
	}
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[reportActivityRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan activity report", err)
	}
	out := make([]*queries.ReportActivityItem, len(collected))
	for i, row := range collected {
		out[i] = &queries.ReportActivityItem{
			Type:     row.Type,
			ItemName: row.ItemName,
			Date:     pgconv.DateFromPgtype(row.Date),
		}
	}
	return out, nil
}

func (r *ReportReadStore) TopOwners(ctx context.Context, minRating float64) ([]*queries.TopOwner, error) {
	rows, err := r.db.Query(ctx, `
		SELECT u.id AS owner_id, u.name, AVG(rv.rating)::float8 AS average_rating, COUNT(DISTINCT t.id) AS tool_count
		FROM users u
		JOIN tools t ON t.owner_id = u.id
		JOIN reservations r ON r.tool_id = t.id
		JOIN reviews rv ON rv.reservation_id = r.id
		GROUP BY u.id, u.name
		HAVING AVG(rv.rating) > $1
		ORDER BY average_rating DESC, u.name`,
		minRating,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get top owners", err)
	}
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[topOwnerRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan top owners", err)
	}
	out := make([]*queries.TopOwner, len(collected))
	for i, row := range collected {
		out[i] = &queries.TopOwner{
			OwnerID:       row.OwnerID,
			Name:          row.Name,
			AverageRating: row.AverageRating,
			ToolCount:     row.ToolCount,
		}
	}
	return out, nil
}
