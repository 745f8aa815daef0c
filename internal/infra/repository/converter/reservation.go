package converter

import (
	"toolshare/internal/domain/availability"
	"toolshare/internal/domain/pricing"
	"toolshare/internal/domain/reservation"
	"toolshare/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationRow struct {
	ID              uuid.UUID          `db:"id"`
	ToolID          uuid.UUID          `db:"tool_id"`
	RenterID        uuid.UUID          `db:"renter_id"`
	StartDate       pgtype.Date        `db:"start_date"`
	EndDate         pgtype.Date        `db:"end_date"`
	TotalPriceCents int64              `db:"total_price_cents"`
	Status          string             `db:"status"`
	CreatedAt       pgtype.Timestamptz `db:"created_at"`
	UpdatedAt       pgtype.Timestamptz `db:"updated_at"`
}

type RangeRow struct {
	StartDate pgtype.Date `db:"start_date"`
	EndDate   pgtype.Date `db:"end_date"`
}

func ReservationToDomain(row ReservationRow) (*reservation.Reservation, error) {
	status, err := reservation.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}

	return reservation.ReconstructReservation(
		row.ID,
		row.ToolID,
		row.RenterID,
		availability.NewDateRange(pgconv.DateFromPgtype(row.StartDate), pgconv.DateFromPgtype(row.EndDate)),
		pricing.NewMoney(row.TotalPriceCents),
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func RangesToDomain(rows []RangeRow) []availability.BookedRange {
	out := make([]availability.BookedRange, 0, len(rows))
	for _, r := range rows {
		out = append(out, availability.NewDateRange(pgconv.DateFromPgtype(r.StartDate), pgconv.DateFromPgtype(r.EndDate)))
	}
	return out
}
