package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	SystemStatusOperational = "Operational"
	RecentActivityLimit     = 5
)

type AdminToolItem struct {
	ID              uuid.UUID
	Name            string
	Category        string
	DailyPriceCents int64
	Status          string
	OwnerName       string
	OwnerEmail      string
	CreatedAt       time.Time
}

type SystemStats struct {
	TotalUsers        int64
	TotalTools        int64
	TotalReservations int64
	// revenue counts completed reservations only
	TotalRevenueCents int64
	SystemStatus      string
}

type ActivityItem struct {
	Type      string
	Actor     string
	Target    string
	CreatedAt time.Time
}

type AdminReadStore interface {
	ListUsers(ctx context.Context) ([]*UserView, error)
	ListTools(ctx context.Context) ([]*AdminToolItem, error)
	Stats(ctx context.Context) (*SystemStats, error)
	RecentReservations(ctx context.Context, limit int32) ([]*ActivityItem, error)
}

type AdminQueries interface {
	ListUsers(ctx context.Context) ([]*UserView, error)
	ListTools(ctx context.Context) ([]*AdminToolItem, error)
	Stats(ctx context.Context) (*SystemStats, error)
	RecentActivity(ctx context.Context) ([]*ActivityItem, error)
}

type adminQueriesImpl struct {
	readStore AdminReadStore
}

func NewAdminQueries(readStore AdminReadStore) AdminQueries {
	return &adminQueriesImpl{readStore: readStore}
}

func (q *adminQueriesImpl) ListUsers(ctx context.Context) ([]*UserView, error) {
	return q.readStore.ListUsers(ctx)
}

func (q *adminQueriesImpl) ListTools(ctx context.Context) ([]*AdminToolItem, error) {
	return q.readStore.ListTools(ctx)
}

func (q *adminQueriesImpl) Stats(ctx context.Context) (*SystemStats, error) {
	stats, err := q.readStore.Stats(ctx)
	if err != nil {
		return nil, err
	}
	stats.SystemStatus = SystemStatusOperational
	return stats, nil
}

func (q *adminQueriesImpl) RecentActivity(ctx context.Context) ([]*ActivityItem, error) {
	return q.readStore.RecentReservations(ctx, RecentActivityLimit)
}
