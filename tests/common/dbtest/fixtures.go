//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"toolshare/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const TestPassword = "password123"

var (
	hashOnce sync.Once
	testHash string
)

func testPasswordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		h, err := password.NewBcryptHasherWithCost(bcrypt.MinCost).Hash(TestPassword)
		require.NoError(t, err)
		testHash = h
	})
	return testHash
}

func CreateTestUser(t *testing.T, db DBLike, name, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()
	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, name, email, password_hash, role) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (email) DO NOTHING",
		userID, name, email, testPasswordHash(t), role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID))
	}

	return userID
}

func CreateTestTool(t *testing.T, db DBLike, ownerID uuid.UUID, name, category string, dailyPriceCents int64, status string) uuid.UUID {
	t.Helper()

	toolID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO tools (id, owner_id, name, category, daily_price_cents, status) VALUES ($1, $2, $3, $4, $5, $6)",
		toolID, ownerID, name, category, dailyPriceCents, status)
	require.NoError(t, err)
	return toolID
}

// CreateTestReservation inserts directly, bypassing the date checks; use it to seed past or booked ranges.
func CreateTestReservation(t *testing.T, db DBLike, toolID, renterID uuid.UUID, start, end time.Time, totalCents int64, status string) uuid.UUID {
	t.Helper()

	reservationID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO reservations (id, tool_id, renter_id, start_date, end_date, total_price_cents, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		reservationID, toolID, renterID, start, end, totalCents, status)
	require.NoError(t, err)
	return reservationID
}

func CreateTestReview(t *testing.T, db DBLike, reservationID, reviewerID uuid.UUID, rating int, comment string) uuid.UUID {
	t.Helper()

	reviewID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO reviews (id, reservation_id, reviewer_id, rating, comment) VALUES ($1, $2, $3, $4, $5)",
		reviewID, reservationID, reviewerID, rating, comment)
	require.NoError(t, err)
	return reviewID
}

func ReservationStatus(t *testing.T, db DBLike, id uuid.UUID) string {
	t.Helper()

	var status string
	require.NoError(t, db.QueryRow(context.Background(), "SELECT status FROM reservations WHERE id = $1", id).Scan(&status))
	return status
}

func SecurityScore(t *testing.T, db DBLike, userID uuid.UUID) float64 {
	t.Helper()

	var score float64
	require.NoError(t, db.QueryRow(context.Background(), "SELECT security_score::float8 FROM users WHERE id = $1", userID).Scan(&score))
	return score
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables except the migration ledger
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
