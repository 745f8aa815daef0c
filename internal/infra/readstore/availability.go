package readstore

import (
	"context"

	"toolshare/internal/domain/availability"
	"toolshare/internal/domain/pricing"
	"toolshare/internal/infra"
	"toolshare/internal/infra/db"
	"toolshare/internal/infra/repository"
	"toolshare/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type AvailabilityReadStore struct {
	db db.DBTX
}

func NewAvailabilityReadStore(dbtx db.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{db: dbtx}
}

func (r *AvailabilityReadStore) DailyPrice(ctx context.Context, toolID uuid.UUID) (pricing.Money, error) {
	var cents int64
	err := r.db.QueryRow(ctx, `SELECT daily_price_cents FROM tools WHERE id = $1`, toolID).Scan(&cents)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return pricing.Money{}, infra.WrapRepoErr("tool not found", err, infra.KindNotFound)
		}
		return pricing.Money{}, infra.WrapRepoErr("failed to get daily price", err)
	}
	return pricing.NewMoney(cents), nil
}

func (r *AvailabilityReadStore) BookedRanges(ctx context.Context, toolID uuid.UUID) ([]availability.BookedRange, error) {
	return repository.BookedRanges(ctx, r.db, toolID)
}
