// Package shared declares the collaborator ports used by both the command
// and query sides. Implementations live under internal/infra.
package shared

import (
	"context"

	"registrar/internal/domain/cart"
	"registrar/internal/domain/course"
	"registrar/internal/domain/offering"
	"registrar/internal/domain/override"
	"registrar/internal/domain/registration"

	"github.com/google/uuid"
)

// OfferingRegistry hands out the authoritative in-process offering
// aggregates. One process owns each offering's seat counters; repeated Get
// calls for the same id must return the same aggregate.
type OfferingRegistry interface {
	Get(ctx context.Context, id uuid.UUID) (*offering.Offering, error)
}

// Catalog is the external course catalog. An unknown course code resolves to
// (nil, nil): the permissive lookup policy treats it as a course without
// prerequisites.
type Catalog interface {
	LookupCourse(ctx context.Context, code string) (*course.Course, error)
}

// Accounts is the external student-account collaborator.
type Accounts interface {
	HasHold(ctx context.Context, studentID uuid.UUID) (bool, error)
	CompletedCourses(ctx context.Context, studentID uuid.UUID) (map[string]struct{}, error)
}

// RecordStore persists registration records keyed by id, with the
// (student, offering) lookup the engine needs for promotions and overrides.
type RecordStore interface {
	Save(ctx context.Context, rec *registration.Record) error
	Update(ctx context.Context, rec *registration.Record) error
	FindByID(ctx context.Context, id uuid.UUID) (*registration.Record, error)
	// FindLatestByStudentAndOffering returns the most recent record for the
	// pair among the given statuses, or a NOT_FOUND kind error.
	FindLatestByStudentAndOffering(ctx context.Context, studentID, offeringID uuid.UUID, statuses ...registration.Status) (*registration.Record, error)
	// EnrolledOfferingIDs lists offerings the student currently holds a seat in.
	EnrolledOfferingIDs(ctx context.Context, studentID uuid.UUID) ([]uuid.UUID, error)
}

// OverrideStore persists exception requests.
type OverrideStore interface {
	Save(ctx context.Context, req *override.Request) error
	Update(ctx context.Context, req *override.Request) error
	FindByID(ctx context.Context, id uuid.UUID) (*override.Request, error)
	// FindApprovedUnconsumed returns approved, not-yet-consumed overrides for
	// the exact (student, offering) pair.
	FindApprovedUnconsumed(ctx context.Context, studentID, offeringID uuid.UUID) ([]*override.Request, error)
}

// CartStore keeps staged carts. Carts are scratch state with a TTL; losing
// one costs the student a few clicks, never a seat.
type CartStore interface {
	Get(studentID uuid.UUID) (*cart.Cart, bool)
	Put(c *cart.Cart)
	Remove(studentID uuid.UUID)
}
