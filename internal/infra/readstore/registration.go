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

type RegistrationReadStore struct {
	pool *pgxpool.Pool
}

func NewRegistrationReadStore(pool *pgxpool.Pool) queries.RegistrationViewRepo {
	return &RegistrationReadStore{pool: pool}
}

const registrationViewColumns = `
	r.id, r.student_id, r.offering_id, o.course_code, o.term, r.status, r.reason, r.created_at`

func (s *RegistrationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RegistrationView, error) {
	query := `
		SELECT ` + registrationViewColumns + `
		FROM registrations r
		JOIN offerings o ON o.id = r.offering_id
		WHERE r.id = $1`

	view, err := scanRegistrationView(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("registration not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find registration view", err)
	}
	return view, nil
}

func (s *RegistrationReadStore) FindByStudent(ctx context.Context, studentID uuid.UUID) ([]*queries.RegistrationView, error) {
	query := `
		SELECT ` + registrationViewColumns + `
		FROM registrations r
		JOIN offerings o ON o.id = r.offering_id
		WHERE r.student_id = $1
		ORDER BY r.created_at DESC`

	rows, err := s.pool.Query(ctx, query, studentID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list registrations for student", err)
	}
	defer rows.Close()

	var views []*queries.RegistrationView
	for rows.Next() {
		view, err := scanRegistrationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan registration view", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate registration views", err)
	}
	return views, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRegistrationView(row rowScanner) (*queries.RegistrationView, error) {
	var (
		view      queries.RegistrationView
		reason    pgtype.Text
		createdAt pgtype.Timestamptz
	)
	if err := row.Scan(
		&view.ID, &view.StudentID, &view.OfferingID,
		&view.CourseCode, &view.Term, &view.Status,
		&reason, &createdAt,
	); err != nil {
		return nil, err
	}
	view.Reason = pgconv.StringPtrFromPgtype(reason)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &view, nil
}
