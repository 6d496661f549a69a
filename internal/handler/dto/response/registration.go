package response

import (
	"time"

	"registrar/internal/domain/registration"
	"registrar/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RegistrationResponse struct {
	ID         uuid.UUID `json:"id"`
	StudentID  uuid.UUID `json:"studentId"`
	OfferingID uuid.UUID `json:"offeringId"`
	CourseCode string    `json:"courseCode"`
	Term       string    `json:"term"`
	Status     string    `json:"status"`
	Reason     *string   `json:"reason,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromRegistrationView(view *queries.RegistrationView) (*RegistrationResponse, error) {
	var resp RegistrationResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RecordResponse renders a freshly written registration record, before any
// read-side join can resolve course details.
type RecordResponse struct {
	ID         uuid.UUID `json:"id"`
	StudentID  uuid.UUID `json:"studentId"`
	OfferingID uuid.UUID `json:"offeringId"`
	Status     string    `json:"status"`
	Reason     *string   `json:"reason,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromRecord(rec *registration.Record) *RecordResponse {
	return &RecordResponse{
		ID:         rec.ID(),
		StudentID:  rec.StudentID(),
		OfferingID: rec.OfferingID(),
		Status:     string(rec.Status()),
		Reason:     rec.Reason(),
		CreatedAt:  rec.CreatedAt(),
	}
}

type SubmissionResponse struct {
	Enrolled   int               `json:"enrolled"`
	Waitlisted int               `json:"waitlisted"`
	Failed     int               `json:"failed"`
	Records    []*RecordResponse `json:"records"`
}

func FromSubmission(records []*registration.Record) *SubmissionResponse {
	resp := &SubmissionResponse{Records: make([]*RecordResponse, len(records))}
	for i, rec := range records {
		resp.Records[i] = FromRecord(rec)
		switch rec.Status() {
		case registration.StatusEnrolled:
			resp.Enrolled++
		case registration.StatusWaitlisted:
			resp.Waitlisted++
		case registration.StatusFailed:
			resp.Failed++
		}
	}
	return resp
}

type CreditLoadResponse struct {
	WithinLimit  bool  `json:"withinLimit"`
	TotalCredits int32 `json:"totalCredits"`
	MaxCredits   int32 `json:"maxCredits"`
}
