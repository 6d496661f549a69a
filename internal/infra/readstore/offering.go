package readstore

import (
	"context"
	"time"

	"registrar/internal/domain/offering"
	"registrar/internal/domain/schedule"
	"registrar/internal/infra"
	"registrar/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// OfferingReadStore rebuilds offering aggregates from persisted state: the
// offering row, its meeting days, and the live enrollment and waitlist
// derived from registration records.
type OfferingReadStore struct {
	pool *pgxpool.Pool
}

func NewOfferingReadStore(pool *pgxpool.Pool) *OfferingReadStore {
	return &OfferingReadStore{pool: pool}
}

func (s *OfferingReadStore) Load(ctx context.Context, id uuid.UUID) (*offering.Offering, error) {
	const query = `
		SELECT id, course_code, term, capacity, start_minutes, end_minutes, location, instructor_id
		FROM offerings
		WHERE id = $1`

	var (
		offeringID       uuid.UUID
		courseCode, term string
		capacity         int
		startMin, endMin pgtype.Int4
		location         string
		instructorID     pgtype.UUID
	)
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&offeringID, &courseCode, &term, &capacity,
		&startMin, &endMin, &location, &instructorID,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("offering not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load offering", err)
	}

	meeting, err := s.loadMeeting(ctx, offeringID, startMin, endMin, location)
	if err != nil {
		return nil, err
	}

	enrolled, waitlist, err := s.loadSeatState(ctx, offeringID)
	if err != nil {
		return nil, err
	}

	return offering.Reconstruct(
		offeringID, courseCode, term, capacity,
		meeting,
		pgconv.UUIDPtrFromPgtype(instructorID),
		enrolled, waitlist,
	), nil
}

func (s *OfferingReadStore) loadMeeting(ctx context.Context, id uuid.UUID, startMin, endMin pgtype.Int4, location string) (*schedule.Schedule, error) {
	if !startMin.Valid || !endMin.Valid {
		return nil, nil
	}

	const query = `SELECT day FROM offering_meeting_days WHERE offering_id = $1 ORDER BY day`

	rows, err := s.pool.Query(ctx, query, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load meeting days", err)
	}
	defer rows.Close()

	var days []time.Weekday
	for rows.Next() {
		var day int16
		if err := rows.Scan(&day); err != nil {
			return nil, infra.WrapRepoErr("failed to scan meeting day", err)
		}
		days = append(days, time.Weekday(day))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate meeting days", err)
	}
	if len(days) == 0 {
		return nil, nil
	}

	meeting, err := schedule.New(days, schedule.TimeOfDay(startMin.Int32), schedule.TimeOfDay(endMin.Int32), location)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to rebuild meeting schedule", err)
	}
	return meeting, nil
}

// loadSeatState replays the live record statuses. Waitlist order follows
// record creation time, which preserves FIFO across restarts.
func (s *OfferingReadStore) loadSeatState(ctx context.Context, id uuid.UUID) (enrolled, waitlist []uuid.UUID, err error) {
	const query = `
		SELECT student_id, status
		FROM registrations
		WHERE offering_id = $1 AND status IN ('ENROLLED', 'WAITLISTED')
		ORDER BY created_at`

	rows, err := s.pool.Query(ctx, query, id)
	if err != nil {
		return nil, nil, infra.WrapRepoErr("failed to load offering seat state", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			studentID uuid.UUID
			status    string
		)
		if err := rows.Scan(&studentID, &status); err != nil {
			return nil, nil, infra.WrapRepoErr("failed to scan seat state row", err)
		}
		if status == "ENROLLED" {
			enrolled = append(enrolled, studentID)
		} else {
			waitlist = append(waitlist, studentID)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, nil, infra.WrapRepoErr("failed to iterate seat state", err)
	}
	return enrolled, waitlist, nil
}
