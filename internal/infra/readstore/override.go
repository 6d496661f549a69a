package readstore

import (
	"context"

	"registrar/internal/infra"
	"registrar/internal/pkg/pgconv"
	"registrar/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OverrideReadStore struct {
	pool *pgxpool.Pool
}

func NewOverrideReadStore(pool *pgxpool.Pool) queries.OverrideViewRepo {
	return &OverrideReadStore{pool: pool}
}

func (s *OverrideReadStore) FindByStudent(ctx context.Context, studentID uuid.UUID) ([]*queries.OverrideView, error) {
	const query = `
		SELECT id, student_id, offering_id, type, reason, status, reviewer_note, requested_at, reviewed_at
		FROM exception_requests
		WHERE student_id = $1
		ORDER BY requested_at DESC`

	rows, err := s.pool.Query(ctx, query, studentID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list exception requests for student", err)
	}
	defer rows.Close()

	var views []*queries.OverrideView
	for rows.Next() {
		var (
			view                    queries.OverrideView
			reviewerNote            pgtype.Text
			requestedAt, reviewedAt pgtype.Timestamptz
		)
		if err := rows.Scan(
			&view.ID, &view.StudentID, &view.OfferingID,
			&view.Type, &view.Reason, &view.Status,
			&reviewerNote, &requestedAt, &reviewedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan exception request view", err)
		}
		view.ReviewerNote = pgconv.StringPtrFromPgtype(reviewerNote)
		view.RequestedAt = pgconv.TimeFromPgtype(requestedAt)
		view.ReviewedAt = pgconv.TimePtrFromPgtype(reviewedAt)
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate exception request views", err)
	}
	return views, nil
}
