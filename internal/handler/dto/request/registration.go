package request

import "github.com/google/uuid"

type ValidateCreditLoadRequest struct {
	OfferingIDs []uuid.UUID `json:"offering_ids" binding:"required"`
}
