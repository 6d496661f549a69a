package readstore

import (
	"context"

	"registrar/internal/domain/course"
	"registrar/internal/infra"
	"registrar/internal/pkg/pgconv"
	"registrar/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CatalogReadStore struct {
	pool *pgxpool.Pool
}

func NewCatalogReadStore(pool *pgxpool.Pool) shared.Catalog {
	return &CatalogReadStore{pool: pool}
}

// LookupCourse resolves a course and its prerequisite codes. Unknown codes
// resolve to (nil, nil): admission treats them as courses without
// prerequisites rather than blocking on catalog gaps.
func (s *CatalogReadStore) LookupCourse(ctx context.Context, code string) (*course.Course, error) {
	const courseQuery = `
		SELECT code, title, credit_hours, description
		FROM courses
		WHERE code = $1`

	var (
		courseCode, title, description string
		creditHours                    int32
	)
	err := s.pool.QueryRow(ctx, courseQuery, code).Scan(&courseCode, &title, &creditHours, &description)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to look up course", err)
	}

	const prereqQuery = `
		SELECT prerequisite_code
		FROM course_prerequisites
		WHERE course_code = $1`

	rows, err := s.pool.Query(ctx, prereqQuery, code)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load course prerequisites", err)
	}
	defer rows.Close()

	var prerequisites []string
	for rows.Next() {
		var prereq string
		if err := rows.Scan(&prereq); err != nil {
			return nil, infra.WrapRepoErr("failed to scan prerequisite", err)
		}
		prerequisites = append(prerequisites, prereq)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate prerequisites", err)
	}

	c, err := course.New(courseCode, title, creditHours, prerequisites, description)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to rebuild course", err)
	}
	return c, nil
}
