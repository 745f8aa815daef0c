package queries

import (
	"context"
	"time"

	"toolshare/internal/infra"
	"toolshare/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReservationView struct {
	ID              uuid.UUID
	ToolID          uuid.UUID
	ToolName        string
	OwnerID         uuid.UUID
	RenterID        uuid.UUID
	RenterName      string
	StartDate       time.Time
	EndDate         time.Time
	TotalPriceCents int64
	Status          string
	Reviewed        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	// ListForUser returns reservations where userID is the renter or the tool owner, newest start first
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, actor Actor, id uuid.UUID) (*ReservationView, error)
	// GetByIDSystem skips the visibility check; used for idempotent replays
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	readStore ReservationReadStore
}

func NewReservationQueries(readStore ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{readStore: readStore}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actor Actor, id uuid.UUID) (*ReservationView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin && view.RenterID != actor.UserID && view.OwnerID != actor.UserID {
		return nil, errs.ErrForbidden
	}
	return view, nil
}

func (q *reservationQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListMine(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error) {
	return q.readStore.ListForUser(ctx, userID)
}
