package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Read models (DTOs for the read side)

type RegistrationView struct {
	ID         uuid.UUID `json:"id"`
	StudentID  uuid.UUID `json:"student_id"`
	OfferingID uuid.UUID `json:"offering_id"`
	CourseCode string    `json:"course_code"`
	Term       string    `json:"term"`
	Status     string    `json:"status"`
	Reason     *string   `json:"reason,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type OfferingSeatsView struct {
	OfferingID uuid.UUID `json:"offering_id"`
	CourseCode string    `json:"course_code"`
	Term       string    `json:"term"`
	Capacity   int       `json:"capacity"`
	Enrolled   int       `json:"enrolled"`
	Available  int       `json:"available"`
	Waitlisted int       `json:"waitlisted"`
	Schedule   string    `json:"schedule"`
}

type OverrideView struct {
	ID           uuid.UUID  `json:"id"`
	StudentID    uuid.UUID  `json:"student_id"`
	OfferingID   uuid.UUID  `json:"offering_id"`
	Type         string     `json:"type"`
	Reason       string     `json:"reason"`
	Status       string     `json:"status"`
	ReviewerNote *string    `json:"reviewer_note,omitempty"`
	RequestedAt  time.Time  `json:"requested_at"`
	ReviewedAt   *time.Time `json:"reviewed_at,omitempty"`
}

type RegistrationViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RegistrationView, error)
	FindByStudent(ctx context.Context, studentID uuid.UUID) ([]*RegistrationView, error)
}

type OverrideViewRepo interface {
	FindByStudent(ctx context.Context, studentID uuid.UUID) ([]*OverrideView, error)
}
