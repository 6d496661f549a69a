// Package sis pushes enrollment changes to the external student information
// system over HTTP. Pushes are best-effort: a failure is surfaced to the
// caller for logging but never blocks or reverses a registration.
package sis

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"registrar/internal/domain/registration"
	"registrar/internal/metrics"
	"registrar/internal/pkg/config"
	"registrar/internal/pkg/errs"
	"registrar/internal/usecase/commands"

	"github.com/google/uuid"
)

type enrollmentPayload struct {
	RegistrationID uuid.UUID `json:"registration_id"`
	StudentID      uuid.UUID `json:"student_id"`
	OfferingID     uuid.UUID `json:"offering_id"`
	Status         string    `json:"status"`
}

type Adapter struct {
	baseURL string
	client  *http.Client
}

// NewAdapter builds the SIS client. An empty base URL disables pushes
// entirely, which is the expected setup for local development.
func NewAdapter(cfg config.SISConfig) commands.EnrollmentSync {
	return &Adapter{
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

func (a *Adapter) SyncEnrollment(ctx context.Context, rec *registration.Record) error {
	if a.baseURL == "" {
		return nil
	}

	payload, err := json.Marshal(enrollmentPayload{
		RegistrationID: rec.ID(),
		StudentID:      rec.StudentID(),
		OfferingID:     rec.OfferingID(),
		Status:         string(rec.Status()),
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode enrollment payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/enrollments", bytes.NewReader(payload))
	if err != nil {
		return errs.Wrap(err, "failed to build enrollment request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		metrics.SISSyncFailures.Inc()
		return errs.Wrap(err, "enrollment push failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		metrics.SISSyncFailures.Inc()
		return errs.Newf("enrollment push rejected with status %d", resp.StatusCode)
	}
	return nil
}
