package queries

import (
	"context"
	"strings"
	"time"

	"toolshare/internal/infra"
	"toolshare/internal/pkg/errs"

	"github.com/google/uuid"
)

type ToolListItem struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	Name            string
	Description     string
	Category        string
	DailyPriceCents int64
	ImageURL        *string
	OwnerName       string
	OwnerScore      float64
	CreatedAt       time.Time
}

type ToolView struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	OwnerName       string
	Name            string
	Description     string
	Category        string
	DailyPriceCents int64
	Status          string
	ImageURL        *string
	AverageRating   *float64
	ReviewCount     int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type ToolReadStore interface {
	ListAvailable(ctx context.Context, category string) ([]*ToolListItem, error)
	Search(ctx context.Context, term string) ([]*ToolListItem, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ToolView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ToolView, error)
}

type ToolQueries interface {
	ListAvailable(ctx context.Context, category string) ([]*ToolListItem, error)
	Search(ctx context.Context, term string) ([]*ToolListItem, error)
	ListMine(ctx context.Context, ownerID uuid.UUID) ([]*ToolView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ToolView, error)
}

type toolQueriesImpl struct {
	readStore ToolReadStore
}

func NewToolQueries(readStore ToolReadStore) ToolQueries {
	return &toolQueriesImpl{readStore: readStore}
}

func (q *toolQueriesImpl) ListAvailable(ctx context.Context, category string) ([]*ToolListItem, error) {
	return q.readStore.ListAvailable(ctx, strings.TrimSpace(category))
}

func (q *toolQueriesImpl) Search(ctx context.Context, term string) ([]*ToolListItem, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return q.readStore.ListAvailable(ctx, "")
	}
	return q.readStore.Search(ctx, term)
}

func (q *toolQueriesImpl) ListMine(ctx context.Context, ownerID uuid.UUID) ([]*ToolView, error) {
	return q.readStore.ListByOwner(ctx, ownerID)
}

func (q *toolQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ToolView, error) {
	tool, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrToolNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return tool, nil
}
