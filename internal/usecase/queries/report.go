package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	ActivityRented = "Rented"
	ActivityOwned  = "Owned"

	TopOwnerMinRating = 4.0
)

type ReportActivityItem struct {
	Type     string
	ItemName string
	Date     time.Time
}

type TopOwner struct {
	OwnerID       uuid.UUID
	Name          string
	AverageRating float64
	ToolCount     int64
}

type ReportReadStore interface {
	// Activity unions the user's rentals and owned tools, newest first
	Activity(ctx context.Context, userID uuid.UUID) ([]*ReportActivityItem, error)
	TopOwners(ctx context.Context, minRating float64) ([]*TopOwner, error)
}

type ReportQueries interface {
	Activity(ctx context.Context, userID uuid.UUID) ([]*ReportActivityItem, error)
	TopOwners(ctx context.Context) ([]*TopOwner, error)
}

type reportQueriesImpl struct {
	readStore ReportReadStore
}

func NewReportQueries(readStore ReportReadStore) ReportQueries {
	return &reportQueriesImpl{readStore: readStore}
}

func (q *reportQueriesImpl) Activity(ctx context.Context, userID uuid.UUID) ([]*ReportActivityItem, error) {
	return q.readStore.Activity(ctx, userID)
}

func (q *reportQueriesImpl) TopOwners(ctx context.Context) ([]*TopOwner, error) {
	return q.readStore.TopOwners(ctx, TopOwnerMinRating)
}
