package readstore

import (
	"context"

	"registrar/internal/infra"
	"registrar/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AccountReadStore struct {
	pool *pgxpool.Pool
}

func NewAccountReadStore(pool *pgxpool.Pool) shared.Accounts {
	return &AccountReadStore{pool: pool}
}

func (s *AccountReadStore) HasHold(ctx context.Context, studentID uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM student_holds WHERE student_id = $1)`

	var held bool
	if err := s.pool.QueryRow(ctx, query, studentID).Scan(&held); err != nil {
		return false, infra.WrapRepoErr("failed to check student hold", err)
	}
	return held, nil
}

func (s *AccountReadStore) CompletedCourses(ctx context.Context, studentID uuid.UUID) (map[string]struct{}, error) {
	const query = `SELECT course_code FROM completed_courses WHERE student_id = $1`

	rows, err := s.pool.Query(ctx, query, studentID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load completed courses", err)
	}
	defer rows.Close()

	completed := make(map[string]struct{})
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, infra.WrapRepoErr("failed to scan completed course", err)
		}
		completed[code] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate completed courses", err)
	}
	return completed, nil
}
