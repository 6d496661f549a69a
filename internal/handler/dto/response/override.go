package response

import (
	"time"

	"registrar/internal/domain/override"
	"registrar/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type OverrideResponse struct {
	ID           uuid.UUID  `json:"id"`
	StudentID    uuid.UUID  `json:"studentId"`
	OfferingID   uuid.UUID  `json:"offeringId"`
	Type         string     `json:"type"`
	Reason       string     `json:"reason"`
	Status       string     `json:"status"`
	ReviewerNote *string    `json:"reviewerNote,omitempty"`
	RequestedAt  time.Time  `json:"requestedAt"`
	ReviewedAt   *time.Time `json:"reviewedAt,omitempty"`
}

func FromOverrideView(view *queries.OverrideView) (*OverrideResponse, error) {
	var resp OverrideResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromOverrideRequest(req *override.Request) *OverrideResponse {
	return &OverrideResponse{
		ID:           req.ID(),
		StudentID:    req.StudentID(),
		OfferingID:   req.OfferingID(),
		Type:         string(req.Kind()),
		Reason:       req.Reason(),
		Status:       string(req.Status()),
		ReviewerNote: req.ReviewerNote(),
		RequestedAt:  req.RequestedAt(),
		ReviewedAt:   req.ReviewedAt(),
	}
}
