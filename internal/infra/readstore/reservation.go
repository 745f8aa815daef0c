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

const reservationViewQuery = `
	SELECT r.id, r.tool_id, t.name AS tool_name, t.owner_id, r.renter_id, u.name AS renter_name,
	       r.start_date, r.end_date, r.total_price_cents, r.status,
	       EXISTS (SELECT 1 FROM reviews rv WHERE rv.reservation_id = r.id) AS reviewed,
	       r.created_at, r.updated_at
	FROM reservations r
	JOIN tools t ON t.id = r.tool_id
	JOIN users u ON u.id = r.renter_id`

type reservationViewRow struct {
	ID              uuid.UUID          `db:"id"`
	ToolID          uuid.UUID          `db:"tool_id"`
	ToolName        string             `db:"tool_name"`
	OwnerID         uuid.UUID          `db:"owner_id"`
	RenterID        uuid.UUID          `db:"renter_id"`
	RenterName      string             `db:"renter_name"`
	StartDate       pgtype.Date        `db:"start_date"`
	EndDate         pgtype.Date        `db:"end_date"`
	TotalPriceCents int64              `db:"total_price_cents"`
	Status          string             `db:"status"`
	Reviewed        bool               `db:"reviewed"`
	CreatedAt       pgtype.Timestamptz `db:"created_at"`
	UpdatedAt       pgtype.Timestamptz `db:"updated_at"`
}

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	rows, err := r.db.Query(ctx, reservationViewQuery+` WHERE r.id = $1`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reservation view by id", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[reservationViewRow])
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get reservation view by id", err)
	}
	return toReservationView(row), nil
}

func (r *ReservationReadStore) ListForUser(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := r.db.Query(ctx, reservationViewQuery+`
		WHERE r.renter_id = $1 OR t.owner_id = $1
		ORDER BY r.start_date DESC, r.id`,
		userID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations for user", err)
	}
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[reservationViewRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan reservations for user", err)
	}
	out := make([]*queries.ReservationView, len(collected))
	for i, row := range collected {
		out[i] = toReservationView(row)
	}
	return out, nil
}

func toReservationView(row reservationViewRow) *queries.ReservationView {
	return &queries.ReservationView{
		ID:              row.ID,
		ToolID:          row.ToolID,
		ToolName:        row.ToolName,
		OwnerID:         row.OwnerID,
		RenterID:        row.RenterID,
		RenterName:      row.RenterName,
		StartDate:       pgconv.DateFromPgtype(row.StartDate),
		EndDate:         pgconv.DateFromPgtype(row.EndDate),
		TotalPriceCents: row.TotalPriceCents,
		Status:          row.Status,
		Reviewed:        row.Reviewed,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
