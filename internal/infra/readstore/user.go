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

const userViewColumns = `id, name, email, role, bio, security_score::float8 AS security_score, created_at`

type userViewRow struct {
	ID            uuid.UUID          `db:"id"`
	Name          string             `db:"name"`
	Email         string             `db:"email"`
	Role          string             `db:"role"`
	Bio           pgtype.Text        `db:"bio"`
	SecurityScore float64            `db:"security_score"`
	CreatedAt     pgtype.Timestamptz `db:"created_at"`
}

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userViewColumns+` FROM users WHERE id = $1`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[userViewRow])
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return toUserView(row), nil
}

// Stats sums spending over rentals that still hold their dates.
func (r *UserReadStore) Stats(ctx context.Context, id uuid.UUID) (*queries.UserStats, error) {
	var stats queries.UserStats
	err := r.db.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM tools WHERE owner_id = $1),
			(SELECT COUNT(*) FROM reservations WHERE renter_id = $1),
			(SELECT COALESCE(SUM(total_price_cents), 0)::bigint FROM reservations
			  WHERE renter_id = $1 AND status = ANY($2))`,
		id, reservation.BlockingStatusNames(),
	).Scan(&stats.ToolsOwned, &stats.RentalsCount, &stats.TotalSpentCents)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get user stats", err)
	}
	return &stats, nil
}

func toUserView(row userViewRow) *queries.UserView {
	return &queries.UserView{
		ID:            row.ID,
		Name:          row.Name,
		Email:         row.Email,
		Role:          row.Role,
		Bio:           pgconv.StringPtrFromPgtype(row.Bio),
		SecurityScore: row.SecurityScore,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
