package readstore

import (
	"context"
	"time"

	"toolshare/internal/infra"
	"toolshare/internal/infra/db"
	"toolshare/internal/pkg/pgconv"
	"toolshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const reviewsByToolQuery = `
	SELECT rv.id, rv.reviewer_id, u.name AS reviewer_name, rv.rating, rv.comment, rv.created_at
	FROM reviews rv
	JOIN reservations r ON r.id = rv.reservation_id
	JOIN users u ON u.id = rv.reviewer_id
	WHERE r.tool_id = $1`

type reviewRow struct {
	ID           uuid.UUID          `db:"id"`
	ReviewerID   uuid.UUID          `db:"reviewer_id"`
	ReviewerName string             `db:"reviewer_name"`
	Rating       int32              `db:"rating"`
	Comment      string             `db:"comment"`
	CreatedAt    pgtype.Timestamptz `db:"created_at"`
}

type ReviewReadStore struct {
	db db.DBTX
}

func NewReviewReadStore(dbtx db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: dbtx}
}

func (r *ReviewReadStore) FindByToolFirstPage(ctx context.Context, toolID uuid.UUID, limit int32) ([]*queries.ReviewListItem, error) {
	rows, err := r.db.Query(ctx, reviewsByToolQuery+`
		ORDER BY rv.created_at DESC, rv.id DESC
		LIMIT $2`,
		toolID, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reviews first page by tool", err)
	}
	return collectReviews(rows)
}

func (r *ReviewReadStore) FindByToolKeyset(ctx context.Context, toolID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReviewListItem, error) {
	rows, err := r.db.Query(ctx, reviewsByToolQuery+`
		  AND (rv.created_at, rv.id) < ($2, $3)
		ORDER BY rv.created_at DESC, rv.id DESC
		LIMIT $4`,
		toolID, pgconv.TimeToPgtype(lastCreatedAt), lastID, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reviews keyset by tool", err)
	}
	return collectReviews(rows)
}

func collectReviews(rows pgx.Rows) ([]*queries.ReviewListItem, error) {
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[reviewRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan reviews", err)
	}
	result := make([]*queries.ReviewListItem, len(collected))
	for i, row := range collected {
		result[i] = &queries.ReviewListItem{
			ID:           row.ID,
			ReviewerID:   row.ReviewerID,
			ReviewerName: row.ReviewerName,
			Rating:       int(row.Rating),
			Comment:      row.Comment,
			CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}
