package queries

import (
	"context"

	"registrar/internal/infra"
	"registrar/internal/pkg/errs"
	"registrar/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrOfferingNotFound = errs.New("offering not found")

// OfferingQueries reads live seat state. Counts come from the in-process
// registry, not the database: the registry owns the authoritative counters.
type OfferingQueries interface {
	Seats(ctx context.Context, offeringID uuid.UUID) (*OfferingSeatsView, error)
}

type offeringQueriesImpl struct {
	registry shared.OfferingRegistry
}

func NewOfferingQueries(registry shared.OfferingRegistry) OfferingQueries {
	return &offeringQueriesImpl{registry: registry}
}

func (q *offeringQueriesImpl) Seats(ctx context.Context, offeringID uuid.UUID) (*OfferingSeatsView, error) {
	off, err := q.registry.Get(ctx, offeringID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOfferingNotFound
		}
		return nil, err
	}
	snap := off.Snapshot()
	return &OfferingSeatsView{
		OfferingID: snap.ID,
		CourseCode: snap.CourseCode,
		Term:       snap.Term,
		Capacity:   snap.Capacity,
		Enrolled:   snap.Enrolled,
		Available:  snap.Available,
		Waitlisted: snap.Waitlisted,
		Schedule:   snap.Schedule,
	}, nil
}
