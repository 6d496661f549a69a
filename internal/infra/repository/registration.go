package repository

import (
	"context"

	"registrar/internal/domain/registration"
	"registrar/internal/infra"
	"registrar/internal/pkg/pgconv"
	"registrar/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RegistrationRepository struct {
	pool *pgxpool.Pool
}

func NewRegistrationRepository(pool *pgxpool.Pool) shared.RecordStore {
	return &RegistrationRepository{pool: pool}
}

func (r *RegistrationRepository) Save(ctx context.Context, rec *registration.Record) error {
	const query = `
		INSERT INTO registrations (id, student_id, offering_id, status, reason, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)`

	_, err := r.pool.Exec(ctx, query,
		rec.ID(), rec.StudentID(), rec.OfferingID(),
		string(rec.Status()), pgconv.StringPtrToPgtype(rec.Reason()), rec.CreatedAt(),
	)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("registration already exists", err, infra.KindDuplicateKey)
		}
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("registration references unknown offering", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create registration", err)
	}
	return nil
}

func (r *RegistrationRepository) Update(ctx context.Context, rec *registration.Record) error {
	const query = `
		UPDATE registrations
		SET status = $2, reason = $3, updated_at = now()
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		rec.ID(), string(rec.Status()), pgconv.StringPtrToPgtype(rec.Reason()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update registration", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("registration not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RegistrationRepository) FindByID(ctx context.Context, id uuid.UUID) (*registration.Record, error) {
	const query = `
		SELECT id, student_id, offering_id, status, reason, created_at
		FROM registrations
		WHERE id = $1`

	rec, err := scanRecord(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("registration not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find registration by ID", err)
	}
	return rec, nil
}

func (r *RegistrationRepository) FindLatestByStudentAndOffering(
	ctx context.Context,
	studentID, offeringID uuid.UUID,
	statuses ...registration.Status,
) (*registration.Record, error) {
	const query = `
		SELECT id, student_id, offering_id, status, reason, created_at
		FROM registrations
		WHERE student_id = $1 AND offering_id = $2 AND status = ANY($3)
		ORDER BY created_at DESC
		LIMIT 1`

	wanted := make([]string, len(statuses))
	for i, s := range statuses {
		wanted[i] = string(s)
	}

	rec, err := scanRecord(r.pool.QueryRow(ctx, query, studentID, offeringID, wanted))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("registration not found for student and offering", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find latest registration", err)
	}
	return rec, nil
}

func (r *RegistrationRepository) EnrolledOfferingIDs(ctx context.Context, studentID uuid.UUID) ([]uuid.UUID, error) {
	const query = `
		SELECT DISTINCT offering_id
		FROM registrations
		WHERE student_id = $1 AND status = 'ENROLLED'`

	rows, err := r.pool.Query(ctx, query, studentID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list enrolled offerings", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan enrolled offering", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate enrolled offerings", err)
	}
	return ids, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*registration.Record, error) {
	var (
		id, studentID, offeringID uuid.UUID
		status                    string
		reason                    pgtype.Text
		createdAt                 pgtype.Timestamptz
	)
	if err := row.Scan(&id, &studentID, &offeringID, &status, &reason, &createdAt); err != nil {
		return nil, err
	}

	parsed, err := registration.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	return registration.Reconstruct(
		id, studentID, offeringID,
		parsed,
		pgconv.StringPtrFromPgtype(reason),
		pgconv.TimeFromPgtype(createdAt),
	), nil
}
