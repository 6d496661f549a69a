//go:build unit || e2e

package builder

import (
	"time"

	domregistration "registrar/internal/domain/registration"
	"registrar/internal/usecase/queries"

	"github.com/google/uuid"
)

type RecordBuilder struct {
	ID         uuid.UUID
	StudentID  uuid.UUID
	OfferingID uuid.UUID
	CourseCode string
	Term       string
	Status     domregistration.Status
	Reason     *string
	CreatedAt  time.Time
}

func NewRecordBuilder() *RecordBuilder {
	return &RecordBuilder{
		ID:         uuid.New(),
		StudentID:  uuid.New(),
		OfferingID: uuid.New(),
		CourseCode: "CS201",
		Term:       "2026FA",
		Status:     domregistration.StatusEnrolled,
		CreatedAt:  time.Now(),
	}
}

func (b *RecordBuilder) With(mutate func(*RecordBuilder)) *RecordBuilder {
	mutate(b)
	return b
}

func (b *RecordBuilder) Build() *domregistration.Record {
	return domregistration.Reconstruct(b.ID, b.StudentID, b.OfferingID, b.Status, b.Reason, b.CreatedAt)
}

func (b *RecordBuilder) BuildPending() *domregistration.Record {
	return domregistration.NewRecord(b.ID, b.StudentID, b.OfferingID, b.CreatedAt)
}

func (b *RecordBuilder) BuildView() *queries.RegistrationView {
	return &queries.RegistrationView{
		ID:         b.ID,
		StudentID:  b.StudentID,
		OfferingID: b.OfferingID,
		CourseCode: b.CourseCode,
		Term:       b.Term,
		Status:     string(b.Status),
		Reason:     b.Reason,
		CreatedAt:  b.CreatedAt,
	}
}
