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

	"salon-booking/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, db DBLike, email string, role user.Role) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO users (id, email, first_name, last_name, role, is_active)
		VALUES ($1, $2, 'Test', 'User', $3, true)
		ON CONFLICT (email) WHERE is_active = true DO NOTHING`,
		userID, email, role.String())
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1 AND is_active = true", email).Scan(&userID))
	}

	return userID
}

func CreateTestService(t *testing.T, db DBLike, name string, durationMinutes int, active bool) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `INSERT INTO services (name, description, price_cents, duration_minutes, active)
		VALUES ($1, 'fixture', 4500, $2, $3) RETURNING id`,
		name, durationMinutes, active).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateTestAppointment inserts directly, bypassing availability rules.
func CreateTestAppointment(t *testing.T, db DBLike, userID, serviceID uuid.UUID, start, end time.Time, status string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `INSERT INTO appointments (user_id, service_id, start_time, end_time, status)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		userID, serviceID, start, end, status).Scan(&id)
	require.NoError(t, err)
	return id
}

// CountJobs counts outbox rows for an appointment and topic.
func CountJobs(t *testing.T, db DBLike, appointmentID uuid.UUID, topic string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		`SELECT count(*) FROM notification_jobs WHERE topic = $1 AND payload->>'appointment_id' = $2`,
		topic, appointmentID.String()).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts the staff account every suite relies on
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO users (email, first_name, last_name, role) VALUES
		    ('reception@salon.test', 'Front', 'Desk', 'staff')
		ON CONFLICT (email) WHERE is_active = true DO NOTHING;
	`)
	return err
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
		    AND tablename NOT IN ('atlas_schema_revisions')`)
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
