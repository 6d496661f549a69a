package request

import "github.com/google/uuid"

type AddCartItemRequest struct {
	OfferingID uuid.UUID `json:"offering_id" binding:"required"`
}
