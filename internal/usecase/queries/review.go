package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ReviewListItem struct {
	ID           uuid.UUID
	ReviewerID   uuid.UUID
	ReviewerName string
	Rating       int
	Comment      string
	CreatedAt    time.Time
}

type ReviewReadStore interface {
	FindByToolFirstPage(ctx context.Context, toolID uuid.UUID, limit int32) ([]*ReviewListItem, error)
	FindByToolKeyset(ctx context.Context, toolID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ReviewListItem, error)
}

type ReviewQueries interface {
	ListByTool(ctx context.Context, toolID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewListItem, *Cursor, error)
}

type reviewQueriesImpl struct {
	repo ReviewReadStore
}

func NewReviewQueries(repo ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{repo: repo}
}

func (q *reviewQueriesImpl) ListByTool(ctx context.Context, toolID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*ReviewListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindByToolFirstPage(ctx, toolID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindByToolKeyset(ctx, toolID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
