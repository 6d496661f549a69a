package registration

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidTransition = errors.New("invalid registration status transition")

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusEnrolled   Status = "ENROLLED"
	StatusWaitlisted Status = "WAITLISTED"
	StatusFailed     Status = "FAILED"
	StatusWithdrawn  Status = "WITHDRAWN"
)

// transitions encodes the record lifecycle: a record leaves PENDING exactly
// once; afterwards only ENROLLED→WITHDRAWN (student action) and
// WAITLISTED→ENROLLED (promotion) remain.
var transitions = map[Status]map[Status]struct{}{
	StatusPending: {
		StatusEnrolled:   {},
		StatusWaitlisted: {},
		StatusFailed:     {},
	},
	StatusEnrolled: {
		StatusWithdrawn: {},
	},
	StatusWaitlisted: {
		StatusEnrolled: {},
	},
}

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusEnrolled, StatusWaitlisted, StatusFailed, StatusWithdrawn:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown registration status %q", s)
}

// Record is the durable outcome of one admission attempt.
type Record struct {
	id         uuid.UUID
	studentID  uuid.UUID
	offeringID uuid.UUID
	status     Status
	reason     *string
	createdAt  time.Time
}

func NewRecord(id, studentID, offeringID uuid.UUID, now time.Time) *Record {
	return &Record{
		id:         id,
		studentID:  studentID,
		offeringID: offeringID,
		status:     StatusPending,
		createdAt:  now,
	}
}

func Reconstruct(id, studentID, offeringID uuid.UUID, status Status, reason *string, createdAt time.Time) *Record {
	return &Record{
		id:         id,
		studentID:  studentID,
		offeringID: offeringID,
		status:     status,
		reason:     reason,
		createdAt:  createdAt,
	}
}

func (r *Record) transition(to Status) error {
	allowed, ok := transitions[r.status]
	if !ok {
		return fmt.Errorf("%w: %s is terminal", ErrInvalidTransition, r.status)
	}
	if _, ok := allowed[to]; !ok {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.status, to)
	}
	r.status = to
	return nil
}

func (r *Record) MarkEnrolled() error {
	return r.transition(StatusEnrolled)
}

func (r *Record) MarkWaitlisted() error {
	return r.transition(StatusWaitlisted)
}

func (r *Record) MarkFailed(reason string) error {
	if err := r.transition(StatusFailed); err != nil {
		return err
	}
	r.reason = &reason
	return nil
}

func (r *Record) MarkWithdrawn() error {
	return r.transition(StatusWithdrawn)
}

// IsSuccessful reports a held seat; waitlisted records do not count toward
// the student's working enrollment set.
func (r *Record) IsSuccessful() bool {
	return r.status == StatusEnrolled
}

func (r *Record) ID() uuid.UUID         { return r.id }
func (r *Record) StudentID() uuid.UUID  { return r.studentID }
func (r *Record) OfferingID() uuid.UUID { return r.offeringID }
func (r *Record) Status() Status        { return r.status }
func (r *Record) CreatedAt() time.Time  { return r.createdAt }

func (r *Record) Reason() *string {
	if r.reason == nil {
		return nil
	}
	reason := *r.reason
	return &reason
}
