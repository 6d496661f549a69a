//go:build unit || e2e

package builder

import (
	"time"

	domoverride "registrar/internal/domain/override"
	reqdto "registrar/internal/handler/dto/request"
	"registrar/internal/usecase/queries"

	"github.com/google/uuid"
)

type OverrideBuilder struct {
	ID          uuid.UUID
	StudentID   uuid.UUID
	OfferingID  uuid.UUID
	Kind        domoverride.Type
	Reason      string
	RequestedAt time.Time
}

func NewOverrideBuilder() *OverrideBuilder {
	return &OverrideBuilder{
		ID:          uuid.New(),
		StudentID:   uuid.New(),
		OfferingID:  uuid.New(),
		Kind:        domoverride.TypePrerequisite,
		Reason:      "Completed equivalent coursework abroad",
		RequestedAt: time.Now(),
	}
}

func (b *OverrideBuilder) With(mutate func(*OverrideBuilder)) *OverrideBuilder {
	mutate(b)
	return b
}

func (b *OverrideBuilder) Build() (*domoverride.Request, error) {
	return domoverride.NewRequest(b.ID, b.StudentID, b.OfferingID, b.Kind, b.Reason, b.RequestedAt)
}

func (b *OverrideBuilder) BuildApproved(reviewedAt time.Time) *domoverride.Request {
	reviewed := reviewedAt
	return domoverride.Reconstruct(
		b.ID, b.StudentID, b.OfferingID,
		b.Kind, b.Reason, domoverride.StatusApproved,
		nil, b.RequestedAt, &reviewed, false,
	)
}

func (b *OverrideBuilder) BuildCreateRequestDTO() reqdto.CreateOverrideRequest {
	return reqdto.CreateOverrideRequest{
		OfferingID: b.OfferingID,
		Type:       string(b.Kind),
		Reason:     b.Reason,
	}
}

func (b *OverrideBuilder) BuildView() *queries.OverrideView {
	return &queries.OverrideView{
		ID:          b.ID,
		StudentID:   b.StudentID,
		OfferingID:  b.OfferingID,
		Type:        string(b.Kind),
		Reason:      b.Reason,
		Status:      string(domoverride.StatusPending),
		RequestedAt: b.RequestedAt,
	}
}
