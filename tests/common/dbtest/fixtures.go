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

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, role, is_active) VALUES ($1, $2, $3, true) ON CONFLICT (email) DO NOTHING",
		userID, email, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

// CreateTestProfessional creates a professional user with an hourly rate.
func CreateTestProfessional(t *testing.T, db DBLike, email, displayName string, hourlyRateCents int64) uuid.UUID {
	t.Helper()

	userID := CreateTestUser(t, db, email, "professional")
	_, err := db.Exec(context.Background(),
		"INSERT INTO professionals (user_id, display_name, hourly_rate_cents, currency) VALUES ($1, $2, $3, 'USD') ON CONFLICT (user_id) DO NOTHING",
		userID, displayName, hourlyRateCents)
	require.NoError(t, err)

	return userID
}

func DeactivateProfessional(t *testing.T, db DBLike, userID uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE professionals SET is_active = false WHERE user_id = $1", userID)
	require.NoError(t, err)
}

func BookingStatus(t *testing.T, db DBLike, bookingID uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM bookings WHERE id = $1", bookingID).Scan(&status)
	require.NoError(t, err)
	return status
}

// ShiftBookingSchedule moves a booking's slot, letting tests reach the join window without waiting.
func ShiftBookingSchedule(t *testing.T, db DBLike, bookingID uuid.UUID, scheduledAt time.Time) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE bookings SET scheduled_at = $2 WHERE id = $1", bookingID, scheduledAt)
	require.NoError(t, err)
}

// OutboxTopics lists the outbox topics written for a booking, oldest first.
func OutboxTopics(t *testing.T, db *pgxpool.Pool, bookingID uuid.UUID) []string {
	t.Helper()

	rows, err := db.Query(context.Background(),
		"SELECT topic FROM outbox_events WHERE aggregate_id = $1 ORDER BY created_at, id", bookingID)
	require.NoError(t, err)
	defer rows.Close()

	var topics []string
	for rows.Next() {
		var topic string
		require.NoError(t, rows.Scan(&topic))
		topics = append(topics, topic)
	}
	require.NoError(t, rows.Err())
	return topics
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
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
