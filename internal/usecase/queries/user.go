package queries

import (
	"context"
	"time"

	"toolshare/internal/infra"
	"toolshare/internal/pkg/errs"

	"github.com/google/uuid"
)

type UserView struct {
	ID            uuid.UUID
	Name          string
	Email         string
	Role          string
	Bio           *string
	SecurityScore float64
	CreatedAt     time.Time
}

type UserStats struct {
	ToolsOwned      int64
	RentalsCount    int64
	TotalSpentCents int64
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	Stats(ctx context.Context, id uuid.UUID) (*UserStats, error)
}

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error)
	GetStats(ctx context.Context, userID uuid.UUID) (*UserStats, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error) {
	user, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return user, nil
}

func (q *userQueriesImpl) GetStats(ctx context.Context, userID uuid.UUID) (*UserStats, error) {
	return q.readStore.Stats(ctx, userID)
}
