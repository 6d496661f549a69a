package repository

import (
	"context"

	"registrar/internal/domain/override"
	"registrar/internal/infra"
	"registrar/internal/pkg/pgconv"
	"registrar/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OverrideRepository struct {
	pool *pgxpool.Pool
}

func NewOverrideRepository(pool *pgxpool.Pool) shared.OverrideStore {
	return &OverrideRepository{pool: pool}
}

func (r *OverrideRepository) Save(ctx context.Context, req *override.Request) error {
	const query = `
		INSERT INTO exception_requests
			(id, student_id, offering_id, type, reason, status, reviewer_note, requested_at, reviewed_at, consumed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		req.ID(), req.StudentID(), req.OfferingID(),
		string(req.Kind()), req.Reason(), string(req.Status()),
		pgconv.StringPtrToPgtype(req.ReviewerNote()),
		req.RequestedAt(),
		pgconv.TimePtrToPgtype(req.ReviewedAt()),
		req.IsConsumed(),
	)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("exception request already exists", err, infra.KindDuplicateKey)
		}
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("exception request references unknown offering", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create exception request", err)
	}
	return nil
}

func (r *OverrideRepository) Update(ctx context.Context, req *override.Request) error {
	const query = `
		UPDATE exception_requests
		SET status = $2, reviewer_note = $3, reviewed_at = $4, consumed = $5
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		req.ID(), string(req.Status()),
		pgconv.StringPtrToPgtype(req.ReviewerNote()),
		pgconv.TimePtrToPgtype(req.ReviewedAt()),
		req.IsConsumed(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update exception request", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("exception request not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *OverrideRepository) FindByID(ctx context.Context, id uuid.UUID) (*override.Request, error) {
	const query = `
		SELECT id, student_id, offering_id, type, reason, status, reviewer_note, requested_at, reviewed_at, consumed
		FROM exception_requests
		WHERE id = $1`

	req, err := scanOverrideRow(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("exception request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find exception request by ID", err)
	}
	return req, nil
}

func (r *OverrideRepository) FindApprovedUnconsumed(ctx context.Context, studentID, offeringID uuid.UUID) ([]*override.Request, error) {
	const query = `
		SELECT id, student_id, offering_id, type, reason, status, reviewer_note, requested_at, reviewed_at, consumed
		FROM exception_requests
		WHERE student_id = $1 AND offering_id = $2 AND status = 'APPROVED' AND consumed = FALSE
		ORDER BY requested_at`

	rows, err := r.pool.Query(ctx, query, studentID, offeringID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list approved exception requests", err)
	}
	defer rows.Close()

	var result []*override.Request
	for rows.Next() {
		req, err := scanOverrideRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan exception request", err)
		}
		result = append(result, req)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate exception requests", err)
	}
	return result, nil
}

func scanOverrideRow(row rowScanner) (*override.Request, error) {
	var (
		id, studentID, offeringID uuid.UUID
		kind, reason, status      string
		reviewerNote              pgtype.Text
		requestedAt, reviewedAt   pgtype.Timestamptz
		consumed                  bool
	)
	if err := row.Scan(
		&id, &studentID, &offeringID,
		&kind, &reason, &status,
		&reviewerNote, &requestedAt, &reviewedAt, &consumed,
	); err != nil {
		return nil, err
	}

	parsedKind, err := override.ParseType(kind)
	if err != nil {
		return nil, err
	}
	parsedStatus, err := override.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	return override.Reconstruct(
		id, studentID, offeringID,
		parsedKind, reason, parsedStatus,
		pgconv.StringPtrFromPgtype(reviewerNote),
		pgconv.TimeFromPgtype(requestedAt),
		pgconv.TimePtrFromPgtype(reviewedAt),
		consumed,
	), nil
}
