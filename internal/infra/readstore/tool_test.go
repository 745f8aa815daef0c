//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"toolshare/internal/infra"
	"toolshare/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "drill", want: "drill"},
		{in: "50%", want: `50\%`},
		{in: "a_b", want: `a\_b`},
		{in: `c:\tools`, want: `c:\\tools`},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeLike(tt.in))
		})
	}
}

func TestToolReadStore_Search(t *testing.T) {
	toolID, ownerID := uuid.New(), uuid.New()
	created := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	dbtx := new(MockDBTX)
	rows := newStubRows(
		[]string{"id", "owner_id", "name", "description", "category", "daily_price_cents", "image_url", "created_at", "owner_name", "owner_score"},
		[]any{toolID, ownerID, "100% Drill", "cordless", "Power Tools", int64(1500), pgtype.Text{}, pgconv.TimeToPgtype(created), "Alice", 9.5},
	)
	dbtx.On("Query", mock.Anything, mock.AnythingOfType("string"), mock.Anything).Return(rows, nil)

	got, err := NewToolReadStore(dbtx).Search(context.Background(), "100%")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, toolID, got[0].ID)
	assert.Equal(t, "Alice", got[0].OwnerName)
	assert.Equal(t, 9.5, got[0].OwnerScore)
	assert.Nil(t, got[0].ImageURL)

	sql, args := dbtx.call(0)
	assert.Contains(t, sql, "name ILIKE $1 OR category ILIKE $1")
	assert.Equal(t, []any{`%100\%%`}, args)
}

func TestToolReadStore_FindByID_NotFound(t *testing.T) {
	dbtx := new(MockDBTX)
	dbtx.On("Query", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
		Return(newStubRows([]string{"id"}), nil)

	_, err := NewToolReadStore(dbtx).FindByID(context.Background(), uuid.New())

	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}
