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

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by both the pool and a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Reference facilities seeded into every e2e database.
const (
	SeedSeatCount        = 5
	SeedUnavailableSeat  = 5
	SeedMeetingRoomCount = 3
	SeedRoomMaxCapacity  = 6
)

func CreateStudent(t *testing.T, db DBLike, studentID int64) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO users (student_id) VALUES ($1) ON CONFLICT (student_id) DO NOTHING", studentID)
	require.NoError(t, err)
}

func SetSeatAvailability(t *testing.T, db DBLike, seatID int32, available bool) {
	t.Helper()

	tag, err := db.Exec(context.Background(), "UPDATE seats SET is_available = $2 WHERE seat_id = $1", seatID, available)
	require.NoError(t, err)
	require.EqualValues(t, 1, tag.RowsAffected(), "seat %d not seeded", seatID)
}

// InsertSeatReservation writes a RESERVED seat booking directly, bypassing the
// booking rules. The owner is created when missing.
func InsertSeatReservation(t *testing.T, db DBLike, studentID int64, seatID int32, start, end time.Time) int64 {
	t.Helper()

	CreateStudent(t, db, studentID)
	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO reservations (student_id, seat_id, start_time, end_time)
		VALUES ($1, $2, $3, $4)
		RETURNING reservation_id`, studentID, seatID, start, end).Scan(&id)
	require.NoError(t, err)
	return id
}

func CountReservations(t *testing.T, db DBLike, status string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM reservations WHERE status = $1", status).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountEvents(t *testing.T, db DBLike, reservationID int64) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM reservation_events WHERE reservation_id = $1", reservationID).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts the facility inventory needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO seats (seat_id, is_available)
		SELECT g, g <> $2 FROM generate_series(1, $1::int) AS g
		ON CONFLICT (seat_id) DO NOTHING;
	`, SeedSeatCount, SeedUnavailableSeat)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO meeting_rooms (room_id, min_capacity, max_capacity, is_available)
		SELECT g, 3, $2::int, true FROM generate_series(1, $1::int) AS g
		ON CONFLICT (room_id) DO NOTHING;
	`, SeedMeetingRoomCount, SeedRoomMaxCapacity)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
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
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
