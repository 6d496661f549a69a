package response

import (
	"registrar/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type OfferingSeatsResponse struct {
	OfferingID uuid.UUID `json:"offeringId"`
	CourseCode string    `json:"courseCode"`
	Term       string    `json:"term"`
	Capacity   int       `json:"capacity"`
	Enrolled   int       `json:"enrolled"`
	Available  int       `json:"available"`
	Waitlisted int       `json:"waitlisted"`
	Schedule   string    `json:"schedule"`
}

func FromOfferingSeatsView(view *queries.OfferingSeatsView) (*OfferingSeatsResponse, error) {
	var resp OfferingSeatsResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	return &resp, nil
}

type PromotionResponse struct {
	Promoted bool `json:"promoted"`
}
