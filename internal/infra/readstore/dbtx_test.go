//go:build unit

package readstore

import (
	"context"
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
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

// call returns the SQL text and bind arguments of the i-th recorded call.
func (m *MockDBTX) call(i int) (string, []any) {
	c := m.Calls[i]
	return c.Arguments.String(1), c.Arguments.Get(2).([]any)
}

// stubRows serves fixed rows; each value must have the exact Go type of its scan target.
type stubRows struct {
	cols []string
	data [][]any
	pos  int
}

func newStubRows(cols []string, data ...[]any) *stubRows {
	return &stubRows{cols: cols, data: data, pos: -1}
}

func (r *stubRows) Close()                        {}
func (r *stubRows) Err() error                    { return nil }
func (r *stubRows) CommandTag() pgconn.CommandTag { return pgconn.NewCommandTag("SELECT") }
func (r *stubRows) RawValues() [][]byte           { return nil }
func (r *stubRows) Conn() *pgx.Conn               { return nil }

func (r *stubRows) FieldDescriptions() []pgconn.FieldDescription {
	fds := make([]pgconn.FieldDescription, len(r.cols))
	for i, c := range r.cols {
		fds[i] = pgconn.FieldDescription{Name: c}
	}
	return fds
}

func (r *stubRows) Next() bool {
	r.pos++
	return r.pos < len(r.data)
}

func (r *stubRows) Scan(dest ...any) error {
	return assign(dest, r.data[r.pos])
}

func (r *stubRows) Values() ([]any, error) {
	return r.data[r.pos], nil
}

type stubRow struct {
	vals []any
	err  error
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assign(dest, r.vals)
}

func assign(dest, vals []any) error {
	if len(dest) != len(vals) {
		return fmt.Errorf("scan: %d targets for %d values", len(dest), len(vals))
	}
	for i, d := range dest {
		reflect.ValueOf(d).Elem().Set(reflect.ValueOf(vals[i]))
	}
	return nil
}
