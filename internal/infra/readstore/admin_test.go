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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdminReadStore_Stats(t *testing.T) {
	t.Run("売上は完了した予約のみ", func(t *testing.T) {
		dbtx := new(MockDBTX)
		dbtx.On("QueryRow", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
			Return(stubRow{vals: []any{int64(3), int64(5), int64(7), int64(12345)}})

		stats, err := NewAdminReadStore(dbtx).Stats(context.Background())

		require.NoError(t, err)
		assert.Equal(t, &queries.SystemStats{
			TotalUsers:        3,
			TotalTools:        5,
			TotalReservations: 7,
			TotalRevenueCents: 12345,
		}, stats)

		sql, args := dbtx.call(0)
		assert.Contains(t, sql, "FROM reservations WHERE status = $1")
		assert.Equal(t, []any{"completed"}, args)
	})

	t.Run("スキャン失敗はDBFailure", func(t *testing.T) {
		dbtx := new(MockDBTX)
		dbtx.On("QueryRow", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
			Return(stubRow{err: errs.New("timeout")})

		_, err := NewAdminReadStore(dbtx).Stats(context.Background())

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestAdminReadStore_RecentReservations(t *testing.T) {
	created := time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)
	dbtx := new(MockDBTX)
	rows := newStubRows([]string{"actor", "target", "created_at"},
		[]any{"Bob", "Drill", pgconv.TimeToPgtype(created)},
	)
	dbtx.On("Query", mock.Anything, mock.AnythingOfType("string"), mock.Anything).Return(rows, nil)

	got, err := NewAdminReadStore(dbtx).RecentReservations(context.Background(), queries.RecentActivityLimit)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, queries.ActivityItem{Type: "Reservation", Actor: "Bob", Target: "Drill", CreatedAt: created}, *got[0])

	sql, args := dbtx.call(0)
	assert.Contains(t, sql, "ORDER BY r.created_at DESC")
	assert.Equal(t, []any{int32(queries.RecentActivityLimit)}, args)
}
