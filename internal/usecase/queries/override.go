package queries

import (
	"context"

	"github.com/google/uuid"
)

type OverrideQueries interface {
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*OverrideView, error)
}

type overrideQueriesImpl struct {
	repo OverrideViewRepo
}

func NewOverrideQueries(repo OverrideViewRepo) OverrideQueries {
	return &overrideQueriesImpl{repo: repo}
}

func (q *overrideQueriesImpl) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*OverrideView, error) {
	return q.repo.FindByStudent(ctx, studentID)
}
