package queries

import (
	"context"

	"registrar/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRegistrationNotFound = errs.New("registration not found")

type RegistrationQueries interface {
	GetByID(ctx context.Context, actorID uuid.UUID, id uuid.UUID) (*RegistrationView, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*RegistrationView, error)
}

type registrationQueriesImpl struct {
	repo RegistrationViewRepo
}

func NewRegistrationQueries(repo RegistrationViewRepo) RegistrationQueries {
	return &registrationQueriesImpl{repo: repo}
}

func (q *registrationQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, id uuid.UUID) (*RegistrationView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// A student only sees their own records.
	if view.StudentID != actorID {
		return nil, ErrRegistrationNotFound
	}
	return view, nil
}

func (q *registrationQueriesImpl) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*RegistrationView, error) {
	return q.repo.FindByStudent(ctx, studentID)
}
