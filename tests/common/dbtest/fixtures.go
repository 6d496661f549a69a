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

// inserts the catalog reference data shared by tests: CS101 has no
// prerequisites, CS201 requires CS101.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO courses (code, title, credit_hours) VALUES
		    ('CS101', 'Introduction to Computer Science', 4),
		    ('CS201', 'Data Structures', 4),
		    ('MATH250', 'Linear Algebra', 3)
		ON CONFLICT (code) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO course_prerequisites (course_code, prerequisite_code) VALUES
		    ('CS201', 'CS101')
		ON CONFLICT DO NOTHING;
	`)
	return err
}

// CreateTestOffering inserts an offering without a meeting pattern so tests
// that do not care about schedules never trip the conflict check.
func CreateTestOffering(t *testing.T, db DBLike, courseCode, term string, capacity int, instructorID *uuid.UUID) uuid.UUID {
	t.Helper()

	offeringID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO offerings (id, course_code, term, capacity, instructor_id)
		VALUES ($1, $2, $3, $4, $5)`,
		offeringID, courseCode, term, capacity, instructorID)
	require.NoError(t, err)

	return offeringID
}

// CreateScheduledOffering inserts an offering with an MWF meeting window in
// minutes since midnight.
func CreateScheduledOffering(t *testing.T, db DBLike, courseCode, term string, capacity, startMinutes, endMinutes int) uuid.UUID {
	t.Helper()

	offeringID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO offerings (id, course_code, term, capacity, start_minutes, end_minutes, location)
		VALUES ($1, $2, $3, $4, $5, $6, 'SCI-204')`,
		offeringID, courseCode, term, capacity, startMinutes, endMinutes)
	require.NoError(t, err)

	for _, day := range []int{1, 3, 5} {
		_, err := db.Exec(ctx,
			`INSERT INTO offering_meeting_days (offering_id, day) VALUES ($1, $2)`,
			offeringID, day)
		require.NoError(t, err)
	}

	return offeringID
}

func PlaceHold(t *testing.T, db DBLike, studentID uuid.UUID, reason string) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO student_holds (student_id, reason) VALUES ($1, $2)
		ON CONFLICT (student_id) DO NOTHING`,
		studentID, reason)
	require.NoError(t, err)
}

func MarkCourseCompleted(t *testing.T, db DBLike, studentID uuid.UUID, courseCode string) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO completed_courses (student_id, course_code) VALUES ($1, $2)
		ON CONFLICT DO NOTHING`,
		studentID, courseCode)
	require.NoError(t, err)
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
