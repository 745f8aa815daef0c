//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"toolshare/internal/infra"
	"toolshare/internal/pkg/errs"
	"toolshare/tests/common/builder"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockDBTX implements db.DBTX
type MockDBTX struct {
	mock.Mock
}

func (m *MockDBTX) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	called := m.Called(ctx, sql, args)
	return called.Get(0).(pgconn.CommandTag), called.Error(1)
}

func (m *MockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	called := m.Called(ctx, sql, args)
	rows, _ := called.Get(0).(pgx.Rows)
	return rows, called.Error(1)
}

func (m *MockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	called := m.Called(ctx, sql, args)
	return called.Get(0).(pgx.Row)
}

func TestReservationRepository_Create(t *testing.T) {
	tests := []struct {
		name     string
		execErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{
			name:     "排他制約違反はConflict",
			execErr:  &pgconn.PgError{Code: "23P01", ConstraintName: "reservations_no_overlap"},
			wantKind: infra.KindConflict,
		},
		{
			name:     "外部キー違反",
			execErr:  &pgconn.PgError{Code: "23503"},
			wantKind: infra.KindForeignKeyViolated,
		},
		{
			name:     "その他のDBエラー",
			execErr:  assert.AnError,
			wantKind: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dbtx := new(MockDBTX)
			dbtx.On("Exec", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
				Return(pgconn.CommandTag{}, tt.execErr)

			repo := NewReservationRepository(dbtx)
			err := repo.Create(context.Background(), builder.NewReservationBuilder().BuildDomain())

			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
			dbtx.AssertExpectations(t)
		})
	}

	t.Run("成功", func(t *testing.T) {
		dbtx := new(MockDBTX)
		dbtx.On("Exec", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
			Return(pgconn.NewCommandTag("INSERT 0 1"), nil)

		repo := NewReservationRepository(dbtx)
		res := builder.NewReservationBuilder().BuildDomain()

		require.NoError(t, repo.Create(context.Background(), res))

		args := dbtx.Calls[0].Arguments.Get(2).([]any)
		assert.Equal(t, res.ID(), args[0])
		assert.Equal(t, int64(4500), args[5])
		assert.Equal(t, "pending", args[6])
	})
}

func TestReservationRepository_UpdateStatus(t *testing.T) {
	t.Run("該当行なしはNotFound", func(t *testing.T) {
		dbtx := new(MockDBTX)
		dbtx.On("Exec", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
			Return(pgconn.NewCommandTag("UPDATE 0"), nil)

		repo := NewReservationRepository(dbtx)
		err := repo.UpdateStatus(context.Background(), builder.NewReservationBuilder().BuildDomain())

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestReservationRepository_CompleteEnded(t *testing.T) {
	dbtx := new(MockDBTX)
	today := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	dbtx.On("Exec", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
		Return(pgconn.NewCommandTag("UPDATE 3"), nil)

	n, err := NewReservationRepository(dbtx).CompleteEnded(context.Background(), today)

	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	args := dbtx.Calls[0].Arguments.Get(2).([]any)
	assert.Equal(t, "completed", args[0])
	assert.Equal(t, "approved", args[1])
}

func TestReservationRepository_FindByID_QueryFailure(t *testing.T) {
	dbtx := new(MockDBTX)
	dbtx.On("Query", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
		Return(nil, errs.New("connection refused"))

	_, err := NewReservationRepository(dbtx).FindByID(context.Background(), builder.NewReservationBuilder().ID)

	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}

func TestReservationRepository_BlockingRanges_SharesBookedRangesQuery(t *testing.T) {
	dbtx := new(MockDBTX)
	dbtx.On("Query", mock.Anything, bookedRangesQuery, mock.Anything).
		Return(nil, errs.New("connection refused"))

	_, err := NewReservationRepository(dbtx).BlockingRanges(context.Background(), builder.NewReservationBuilder().ToolID)

	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	dbtx.AssertExpectations(t)
}
