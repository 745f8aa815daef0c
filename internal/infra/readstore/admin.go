package readstore

import (
	"context"

	"toolshare/internal/domain/reservation"
	"toolshare/internal/infra"
	"toolshare/internal/infra/db"
	"toolshare/internal/pkg/pgconv"
	"toolshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const activityTypeReservation = "Reservation"

type adminToolRow struct {
	ID              uuid.UUID          `db:"id"`
	Name            string             `db:"name"`
	Category        string             `db:"category"`
	DailyPriceCents int64              `db:"daily_price_cents"`
	Status          string             `db:"status"`
	OwnerName       string             `db:"owner_name"`
	OwnerEmail      string             `db:"owner_email"`
	CreatedAt       pgtype.Timestamptz `db:"created_at"`
}

type activityRow struct {
	Actor     string             `db:"actor"`
	Target    string             `db:"target"`
	CreatedAt pgtype.Timestamptz `db:"created_at"`
}

type AdminReadStore struct {
	db db.DBTX
}

func NewAdminReadStore(dbtx db.DBTX) *AdminReadStore {
	return &AdminReadStore{db: dbtx}
}

func (r *AdminReadStore) ListUsers(ctx context.Context) ([]*queries.UserView, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userViewColumns+` FROM users ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[userViewRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan users", err)
	}
	out := make([]*queries.UserView, len(collected))
	for i, row := range collected {
		out[i] = toUserView(row)
	}
	return out, nil
}

func (r *AdminReadStore) ListTools(ctx context.Context) ([]*queries.AdminToolItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT t.id, t.name, t.category, t.daily_price_cents, t.status,
		       u.name AS owner_name, u.email AS owner_email, t.created_at
		FROM tools t
		JOIN users u ON u.id = t.owner_id
		ORDER BY t.created_at DESC, t.id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tools", err)
	}
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[adminToolRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan tools", err)
	}
	out := make([]*queries.AdminToolItem, len(collected))
	for i, row := range collected {
		out[i] = &queries.AdminToolItem{
			ID:              row.ID,
			Name:            row.Name,
			Category:        row.Category,
			DailyPriceCents: row.DailyPriceCents,
			Status:          row.Status,
			OwnerName:       row.OwnerName,
			OwnerEmail:      row.OwnerEmail,
			CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return out, nil
}

func (r *AdminReadStore) Stats(ctx context.Context) (*queries.SystemStats, error) {
	var stats queries.SystemStats
	err := r.db.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM tools),
			(SELECT COUNT(*) FROM reservations),
			(SELECT COALESCE(SUM(total_price_cents), 0)::bigint FROM reservations WHERE status = $1)`,
		reservation.StatusCompleted.String(),
	).Scan(&stats.TotalUsers, &stats.TotalTools, &stats.TotalReservations, &stats.TotalRevenueCents)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get system stats", err)
	}
	return &stats, nil
}

func (r *AdminReadStore) RecentReservations(ctx context.Context, limit int32) ([]*queries.ActivityItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT u.name AS actor, t.name AS target, r.created_at
		FROM reservations r
		JOIN users u ON u.id = r.renter_id
		JOIN tools t ON t.id = r.tool_id
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list recent reservations", err)
	}
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[activityRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan recent reservations", err)
	}
	out := make([]*queries.ActivityItem, len(collected))
	for i, row := range collected {
		out[i] = &queries.ActivityItem{
			Type:      activityTypeReservation,
			Actor:     row.Actor,
			Target:    row.Target,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return out, nil
}
