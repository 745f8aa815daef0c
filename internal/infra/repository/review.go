package repository

import (
	"context"

	"toolshare/internal/domain/review"
	"toolshare/internal/infra"
	"toolshare/internal/infra/db"
	"toolshare/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReviewRepository struct {
	db db.DBTX
}

func NewReviewRepository(dbtx db.DBTX) *ReviewRepository {
	return &ReviewRepository{db: dbtx}
}

func (r *ReviewRepository) Create(ctx context.Context, rev *review.Review) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO reviews (id, reservation_id, reviewer_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		rev.ID(), rev.ReservationID(), rev.ReviewerID(), rev.Rating().Value(), rev.Comment().String(),
		pgconv.TimeToPgtype(rev.CreatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create review", err)
	}
	return nil
}

func (r *ReviewRepository) ExistsForReservation(ctx context.Context, reservationID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM reviews WHERE reservation_id = $1)`, reservationID,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check review existence", err)
	}
	return exists, nil
}
