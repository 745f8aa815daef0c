package repository

import (
	"context"
	"time"

	"toolshare/internal/domain/availability"
	"toolshare/internal/domain/reservation"
	"toolshare/internal/infra"
	"toolshare/internal/infra/db"
	"toolshare/internal/infra/repository/converter"
	"toolshare/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const reservationColumns = `id, tool_id, renter_id, start_date, end_date, total_price_cents, status, created_at, updated_at`

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO reservations (id, tool_id, renter_id, start_date, end_date, total_price_cents, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		res.ID(), res.ToolID(), res.RenterID(),
		pgconv.DateToPgtype(res.StartDate()), pgconv.DateToPgtype(res.EndDate()),
		res.TotalPrice().Cents(), res.Status().String(),
		pgconv.TimeToPgtype(res.CreatedAt()), pgconv.TimeToPgtype(res.UpdatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	rows, err := r.db.Query(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE id = $1`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[converter.ReservationRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	res, err := converter.ReservationToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored reservation is invalid", err, infra.KindDBFailure)
	}
	return res, nil
}

func (r *ReservationRepository) BlockingRanges(ctx context.Context, toolID uuid.UUID) ([]availability.BookedRange, error) {
	return BookedRanges(ctx, r.db, toolID)
}

const bookedRangesQuery = `
	SELECT start_date, end_date
	FROM reservations
	WHERE tool_id = $1 AND status = ANY($2)
	ORDER BY start_date, id`

// BookedRanges lists the dates held by blocking reservations of a tool, ordered by start date then id.
func BookedRanges(ctx context.Context, dbtx db.DBTX, toolID uuid.UUID) ([]availability.BookedRange, error) {
	rows, err := dbtx.Query(ctx, bookedRangesQuery, toolID, reservation.BlockingStatusNames())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booked ranges", err)
	}
	ranges, err := pgx.CollectRows(rows, pgx.RowToStructByName[converter.RangeRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan booked ranges", err)
	}
	return converter.RangesToDomain(ranges), nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, res *reservation.Reservation) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE reservations SET status = $2, updated_at = $3 WHERE id = $1`,
		res.ID(), res.Status().String(), pgconv.TimeToPgtype(res.UpdatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) CompleteEnded(ctx context.Context, today time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE reservations SET status = $1, updated_at = NOW()
		WHERE status = $2 AND end_date < $3`,
		reservation.StatusCompleted.String(), reservation.StatusApproved.String(), pgconv.DateToPgtype(today),
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to complete ended reservations", err)
	}
	return tag.RowsAffected(), nil
}
