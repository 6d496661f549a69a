package request

type ResizeOfferingRequest struct {
	Capacity int `json:"capacity" binding:"required,gt=0"`
}
