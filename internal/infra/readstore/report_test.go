//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"toolshare/internal/infra"
	"toolshare/internal/pkg/errs"
	"toolshare/internal/pkg/pgconv"
	"toolshare/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReportReadStore_Activity(t *testing.T) {
	userID := uuid.New()
	june := func(d int) time.Time { return time.Date(2024, 6, d, 0, 0, 0, 0, time.UTC) }

	t.Run("貸出と所有をまとめて新しい順に返す", func(t *testing.T) {
		dbtx := new(MockDBTX)
		rows := newStubRows([]string{"item_name", "type", "date"},
			[]any{"Drill", "Rented", pgconv.DateToPgtype(june(20))},
			[]any{"Ladder", "Owned", pgconv.DateToPgtype(june(2))},
		)
		dbtx.On("Query", mock.Anything, mock.AnythingOfType("string"), mock.Anything).Return(rows, nil)

		got, err := NewReportReadStore(dbtx).Activity(context.Background(), userID)

		require.NoError(t, err)
		want := []*queries.ReportActivityItem{
			{Type: queries.ActivityRented, ItemName: "Drill", Date: june(20)},
			{Type: queries.ActivityOwned, ItemName: "Ladder", Date: june(2)},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("activity mismatch (-want +got):\n%s", diff)
		}

		sql, args := dbtx.call(0)
		assert.Contains(t, sql, "UNION ALL")
		assert.Contains(t, sql, "ORDER BY date DESC")
		assert.Equal(t, []any{userID, queries.ActivityRented, queries.ActivityOwned}, args)
	})

	t.Run("クエリ失敗はDBFailure", func(t *testing.T) {
		dbtx := new(MockDBTX)
		dbtx.On("Query", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
			Return(nil, errs.New("connection refused"))

		_, err := NewReportReadStore(dbtx).Activity(context.Background(), userID)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestReportReadStore_TopOwners(t *testing.T) {
	ownerID := uuid.New()
	dbtx := new(MockDBTX)
	rows := newStubRows([]string{"owner_id", "name", "average_rating", "tool_count"},
		[]any{ownerID, "Alice", 4.5, int64(2)},
	)
	dbtx.On("Query", mock.Anything, mock.AnythingOfType("string"), mock.Anything).Return(rows, nil)

	got, err := NewReportReadStore(dbtx).TopOwners(context.Background(), queries.TopOwnerMinRating)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, queries.TopOwner{OwnerID: ownerID, Name: "Alice", AverageRating: 4.5, ToolCount: 2}, *got[0])

	sql, args := dbtx.call(0)
	assert.Contains(t, sql, "HAVING AVG(rv.rating) > $1")
	assert.Contains(t, sql, "COUNT(DISTINCT t.id)")
	assert.Equal(t, []any{4.0}, args)
}
