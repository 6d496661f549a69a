package request

import (
	"strings"

	"github.com/google/uuid"

	"registrar/internal/pkg/ptr"
)

type CreateOverrideRequest struct {
	OfferingID uuid.UUID `json:"offering_id" binding:"required"`
	Type       string    `json:"type" binding:"required"`
	Reason     string    `json:"reason" binding:"required"`
}

func (r CreateOverrideRequest) TrimmedReason() string {
	return strings.TrimSpace(r.Reason)
}

type ReviewOverrideRequest struct {
	Approve bool    `json:"approve"`
	Comment *string `json:"comment,omitempty"`
}

func (r ReviewOverrideRequest) TrimmedComment() *string {
	if r.Comment == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.Comment)
	if trimmed == "" {
		return nil
	}
	return ptr.To(trimmed)
}
