package commands

import (
	"context"
	"errors"
	"log/slog"

	"registrar/internal/domain/override"
	"registrar/internal/infra"
	"registrar/internal/pkg/clock"
	"registrar/internal/pkg/errs"
	"registrar/internal/pkg/ident"
	"registrar/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrOverrideNotFound      = errs.New("override request not found")
	ErrNotInstructorOfRecord = errs.New("reviewer is not the instructor of record")
	ErrAlreadyReviewed       = errs.New("override request already reviewed")
	ErrInvalidOverrideType   = errs.New("invalid override type")
)

// OverrideCommands runs the exception workflow: a student files a request,
// the instructor of record resolves it exactly once.
type OverrideCommands interface {
	Request(ctx context.Context, studentID, offeringID uuid.UUID, kind override.Type, reason string) (*override.Request, error)
	Review(ctx context.Context, requestID, reviewerID uuid.UUID, approve bool, comment *string) (*override.Request, error)
}

type overrideCommandsImpl struct {
	overrides shared.OverrideStore
	registry  shared.OfferingRegistry
	notifier  Notifier
	ids       ident.Generator
	clock     clock.Clock
	logger    *slog.Logger
}

func NewOverrideCommands(
	overrides shared.OverrideStore,
	registry shared.OfferingRegistry,
	notifier Notifier,
	ids ident.Generator,
	clock clock.Clock,
	logger *slog.Logger,
) OverrideCommands {
	return &overrideCommandsImpl{
		overrides: overrides,
		registry:  registry,
		notifier:  notifier,
		ids:       ids,
		clock:     clock,
		logger:    logger,
	}
}

func (o *overrideCommandsImpl) Request(ctx context.Context, studentID, offeringID uuid.UUID, kind override.Type, reason string) (*override.Request, error) {
	if _, err := o.registry.Get(ctx, offeringID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOfferingNotFound
		}
		return nil, err
	}

	req, err := override.NewRequest(o.ids.NewID(), studentID, offeringID, kind, reason, o.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidOverrideType)
	}
	if err := o.overrides.Save(ctx, req); err != nil {
		return nil, errs.Mark(err, ErrRecordStoreFailed)
	}
	return req, nil
}

func (o *overrideCommandsImpl) Review(ctx context.Context, requestID, reviewerID uuid.UUID, approve bool, comment *string) (*override.Request, error) {
	req, err := o.overrides.FindByID(ctx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOverrideNotFound
		}
		return nil, err
	}

	off, err := o.registry.Get(ctx, req.OfferingID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOfferingNotFound
		}
		return nil, err
	}
	instructor := off.InstructorID()
	if instructor == nil || *instructor != reviewerID {
		return nil, ErrNotInstructorOfRecord
	}

	if approve {
		err = req.Approve(comment, o.clock.Now())
	} else {
		err = req.Reject(comment, o.clock.Now())
	}
	if err != nil {
		if errors.Is(err, override.ErrAlreadyReviewed) {
			return nil, ErrAlreadyReviewed
		}
		return nil, err
	}

	if err := o.overrides.Update(ctx, req); err != nil {
		return nil, errs.Mark(err, ErrRecordStoreFailed)
	}

	o.notifier.ExceptionReviewed(ctx, ExceptionReviewed{
		StudentID:  req.StudentID(),
		OfferingID: req.OfferingID(),
		Approved:   approve,
		Comment:    comment,
	})
	return req, nil
}
