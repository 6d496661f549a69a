package commands

import (
	"context"

	"registrar/internal/domain/registration"

	"github.com/google/uuid"
)

// SubmissionSummary aggregates one cart submission for the notification
// collaborator.
type SubmissionSummary struct {
	StudentID  uuid.UUID
	Enrolled   int
	Waitlisted int
	Failed     int
	Records    []*registration.Record
}

type WithdrawalConfirmed struct {
	StudentID  uuid.UUID
	OfferingID uuid.UUID
}

type WaitlistPromoted struct {
	StudentID  uuid.UUID
	OfferingID uuid.UUID
}

type ExceptionReviewed struct {
	StudentID  uuid.UUID
	OfferingID uuid.UUID
	Approved   bool
	Comment    *string
}

// Notifier fans submission outcomes out to the notification collaborator.
// Delivery mechanics are external; implementations must not block the
// registration path.
type Notifier interface {
	SubmissionSummary(ctx context.Context, event SubmissionSummary)
	WithdrawalConfirmed(ctx context.Context, event WithdrawalConfirmed)
	WaitlistPromoted(ctx context.Context, event WaitlistPromoted)
	ExceptionReviewed(ctx context.Context, event ExceptionReviewed)
}

// EnrollmentSync pushes records to the external student information system.
// Calls are best-effort with a bounded timeout; a failure is logged and never
// changes a record's status.
type EnrollmentSync interface {
	SyncEnrollment(ctx context.Context, rec *registration.Record) error
}
