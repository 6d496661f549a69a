package override

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyReason     = errors.New("override request requires a reason")
	ErrAlreadyReviewed = errors.New("override request already reviewed")
	ErrNotApproved     = errors.New("override request is not approved")
	ErrAlreadyConsumed = errors.New("override already consumed")
)

type Type string

const (
	TypePrerequisite Type = "PREREQUISITE_OVERRIDE"
	TypeCapacity     Type = "CAPACITY_OVERRIDE"
)

func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypePrerequisite, TypeCapacity:
		return Type(s), nil
	}
	return "", fmt.Errorf("unknown override type %q", s)
}

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusRejected:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown override status %q", s)
}

// Request is an exception request for one (student, offering) pair. It is
// reviewed exactly once; an approved override is consumed by at most one
// successful admission on a later registration attempt.
type Request struct {
	id           uuid.UUID
	studentID    uuid.UUID
	offeringID   uuid.UUID
	kind         Type
	reason       string
	status       Status
	reviewerNote *string
	requestedAt  time.Time
	reviewedAt   *time.Time
	consumed     bool
}

func NewRequest(id, studentID, offeringID uuid.UUID, kind Type, reason string, now time.Time) (*Request, error) {
	if _, err := ParseType(string(kind)); err != nil {
		return nil, err
	}
	if reason == "" {
		return nil, ErrEmptyReason
	}
	return &Request{
		id:          id,
		studentID:   studentID,
		offeringID:  offeringID,
		kind:        kind,
		reason:      reason,
		status:      StatusPending,
		requestedAt: now,
	}, nil
}

func Reconstruct(
	id, studentID, offeringID uuid.UUID,
	kind Type,
	reason string,
	status Status,
	reviewerNote *string,
	requestedAt time.Time,
	reviewedAt *time.Time,
	consumed bool,
) *Request {
	return &Request{
		id:           id,
		studentID:    studentID,
		offeringID:   offeringID,
		kind:         kind,
		reason:       reason,
		status:       status,
		reviewerNote: reviewerNote,
		requestedAt:  requestedAt,
		reviewedAt:   reviewedAt,
		consumed:     consumed,
	}
}

func (r *Request) Approve(note *string, now time.Time) error {
	return r.review(StatusApproved, note, now)
}

func (r *Request) Reject(note *string, now time.Time) error {
	return r.review(StatusRejected, note, now)
}

func (r *Request) review(to Status, note *string, now time.Time) error {
	if r.status != StatusPending {
		return ErrAlreadyReviewed
	}
	r.status = to
	r.reviewerNote = note
	reviewed := now
	r.reviewedAt = &reviewed
	return nil
}

// Consume marks an approved override as spent after it let an admission
// through. It does not retroactively touch existing registration records.
func (r *Request) Consume() error {
	if r.status != StatusApproved {
		return ErrNotApproved
	}
	if r.consumed {
		return ErrAlreadyConsumed
	}
	r.consumed = true
	return nil
}

func (r *Request) IsPending() bool  { return r.status == StatusPending }
func (r *Request) IsApproved() bool { return r.status == StatusApproved }
func (r *Request) IsConsumed() bool { return r.consumed }

func (r *Request) ID() uuid.UUID          { return r.id }
func (r *Request) StudentID() uuid.UUID   { return r.studentID }
func (r *Request) OfferingID() uuid.UUID  { return r.offeringID }
func (r *Request) Kind() Type             { return r.kind }
func (r *Request) Reason() string         { return r.reason }
func (r *Request) Status() Status         { return r.status }
func (r *Request) RequestedAt() time.Time { return r.requestedAt }

func (r *Request) ReviewerNote() *string {
	if r.reviewerNote == nil {
		return nil
	}
	note := *r.reviewerNote
	return &note
}

func (r *Request) ReviewedAt() *time.Time {
	if r.reviewedAt == nil {
		return nil
	}
	t := *r.reviewedAt
	return &t
}
