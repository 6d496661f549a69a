package commands

import (
	"context"
	"log/slog"
	"strings"

	"registrar/internal/domain/eligibility"
	"registrar/internal/domain/offering"
	"registrar/internal/domain/override"
	"registrar/internal/domain/registration"
	"registrar/internal/infra"
	"registrar/internal/pkg/clock"
	"registrar/internal/pkg/errs"
	"registrar/internal/pkg/ident"
	"registrar/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart               = errs.New("cart is empty")
	ErrOfferingNotFound        = errs.New("offering not found")
	ErrNotEnrolled             = errs.New("student is not enrolled or waitlisted")
	ErrCapacityBelowEnrollment = errs.New("capacity cannot drop below current enrollment")
	ErrAccountLookupFailed     = errs.New("account lookup failed")
	ErrRecordStoreFailed       = errs.New("record store operation failed")
)

const holdFailureReason = "active hold on student account"

// RegistrationCommands is the registration engine: the admission-control
// pipeline plus the administrative seat operations around it. The engine
// itself is stateless; it reads catalog/account data and writes registration
// records and offering mutations.
type RegistrationCommands interface {
	// Submit processes the student's staged cart in item order and returns
	// exactly one record per cart item. The cart is cleared afterwards
	// whether or not every item succeeded.
	Submit(ctx context.Context, studentID uuid.UUID) ([]*registration.Record, error)
	// Withdraw drops a seat (or waitlist spot) and promotes the waitlist
	// head into any freed seat.
	Withdraw(ctx context.Context, studentID, offeringID uuid.UUID) error
	// PromoteFromWaitlist explicitly admits the waitlist head if a seat is
	// free, e.g. after an administrative capacity increase.
	PromoteFromWaitlist(ctx context.Context, offeringID uuid.UUID) (bool, error)
	// ResizeOffering changes capacity and promotes into any newly freed
	// seats. Shrinking below current enrollment is rejected.
	ResizeOffering(ctx context.Context, offeringID uuid.UUID, capacity int) error
	// TotalCredits sums credit hours for the offerings whose course resolves
	// in the catalog; unresolved codes contribute zero.
	TotalCredits(ctx context.Context, offeringIDs []uuid.UUID) (int32, error)
	// ValidateCreditLoad is the advisory pre-submission check: combined
	// current plus new credits against maxCredits.
	ValidateCreditLoad(ctx context.Context, studentID uuid.UUID, newOfferingIDs []uuid.UUID, maxCredits int32) (bool, int32, error)
}

type registrationEngine struct {
	registry  shared.OfferingRegistry
	catalog   shared.Catalog
	accounts  shared.Accounts
	records   shared.RecordStore
	overrides shared.OverrideStore
	carts     shared.CartStore
	notifier  Notifier
	sync      EnrollmentSync
	ids       ident.Generator
	clock     clock.Clock
	logger    *slog.Logger
}

func NewRegistrationEngine(
	registry shared.OfferingRegistry,
	catalog shared.Catalog,
	accounts shared.Accounts,
	records shared.RecordStore,
	overrides shared.OverrideStore,
	carts shared.CartStore,
	notifier Notifier,
	sync EnrollmentSync,
	ids ident.Generator,
	clock clock.Clock,
	logger *slog.Logger,
) RegistrationCommands {
	return &registrationEngine{
		registry:  registry,
		catalog:   catalog,
		accounts:  accounts,
		records:   records,
		overrides: overrides,
		carts:     carts,
		notifier:  notifier,
		sync:      sync,
		ids:       ids,
		clock:     clock,
		logger:    logger,
	}
}

func (e *registrationEngine) Submit(ctx context.Context, studentID uuid.UUID) ([]*registration.Record, error) {
	staged, ok := e.carts.Get(studentID)
	if !ok || staged.IsEmpty() {
		return nil, ErrEmptyCart
	}
	itemIDs := staged.Items()
	// The cart is spent by the submission attempt, successful or not.
	defer e.carts.Remove(studentID)

	hold, err := e.accounts.HasHold(ctx, studentID)
	if err != nil {
		return nil, errs.Mark(err, ErrAccountLookupFailed)
	}
	if hold {
		// Whole-cart failure: no offering state is touched at all.
		return e.failAllForHold(ctx, studentID, itemIDs)
	}

	completed, err := e.accounts.CompletedCourses(ctx, studentID)
	if err != nil {
		return nil, errs.Mark(err, ErrAccountLookupFailed)
	}
	current, err := e.currentOfferings(ctx, studentID)
	if err != nil {
		return nil, err
	}

	records := make([]*registration.Record, 0, len(itemIDs))
	for _, offeringID := range itemIDs {
		rec := e.processItem(ctx, studentID, offeringID, completed, &current)
		if err := e.records.Save(ctx, rec); err != nil {
			return nil, errs.Mark(err, ErrRecordStoreFailed)
		}
		records = append(records, rec)
	}

	// Side effects run strictly after all offering mutations, outside any lock.
	e.notifier.SubmissionSummary(ctx, summarize(studentID, records))
	for _, rec := range records {
		e.syncRecord(ctx, rec)
	}

	return records, nil
}

// processItem runs the per-item pipeline, short-circuiting at the first
// failure: prerequisites, schedule conflicts, then admission. Eligibility is
// checked before any offering mutation so a rejected attempt never consumes
// a seat.
func (e *registrationEngine) processItem(
	ctx context.Context,
	studentID, offeringID uuid.UUID,
	completed map[string]struct{},
	current *[]*offering.Offering,
) *registration.Record {
	rec := registration.NewRecord(e.ids.NewID(), studentID, offeringID, e.clock.Now())

	off, err := e.registry.Get(ctx, offeringID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			_ = rec.MarkFailed("offering not found")
		} else {
			e.logger.Error("offering lookup failed", "offering_id", offeringID, "error", err)
			_ = rec.MarkFailed("offering unavailable")
		}
		return rec
	}

	prereqOverride, capacityOverride := e.approvedOverrides(ctx, studentID, offeringID)

	if prereqOverride == nil {
		crs, err := e.catalog.LookupCourse(ctx, off.CourseCode())
		if err != nil {
			e.logger.Error("catalog lookup failed", "course", off.CourseCode(), "error", err)
			_ = rec.MarkFailed("course catalog unavailable")
			return rec
		}
		if missing := eligibility.MissingPrerequisites(completed, crs); len(missing) > 0 {
			_ = rec.MarkFailed("prerequisites not met: " + strings.Join(missing, ", "))
			return rec
		}
	}

	if eligibility.ConflictsWithSchedule(off, *current) {
		_ = rec.MarkFailed("schedule conflict with enrolled courses")
		return rec
	}

	var decision offering.Decision
	if capacityOverride != nil {
		decision = off.AdmitWithOverride(studentID)
	} else {
		decision = off.Admit(studentID)
	}

	switch decision {
	case offering.DecisionAdmitted:
		_ = rec.MarkEnrolled()
		// Earlier admissions in this same submission count against later
		// items' schedule checks.
		*current = append(*current, off)
		e.consumeOverride(ctx, prereqOverride)
		e.consumeOverride(ctx, capacityOverride)
	case offering.DecisionWaitlisted:
		_ = rec.MarkWaitlisted()
	case offering.DecisionRejected:
		_ = rec.MarkFailed("already enrolled or waitlisted in this offering")
	}
	return rec
}

func (e *registrationEngine) failAllForHold(ctx context.Context, studentID uuid.UUID, itemIDs []uuid.UUID) ([]*registration.Record, error) {
	records := make([]*registration.Record, 0, len(itemIDs))
	for _, offeringID := range itemIDs {
		rec := registration.NewRecord(e.ids.NewID(), studentID, offeringID, e.clock.Now())
		_ = rec.MarkFailed(holdFailureReason)
		if err := e.records.Save(ctx, rec); err != nil {
			return nil, errs.Mark(err, ErrRecordStoreFailed)
		}
		records = append(records, rec)
	}
	return records, nil
}

func (e *registrationEngine) Withdraw(ctx context.Context, studentID, offeringID uuid.UUID) error {
	off, err := e.registry.Get(ctx, offeringID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrOfferingNotFound
		}
		return err
	}

	removed, promoted := off.Withdraw(studentID)
	if !removed {
		return ErrNotEnrolled
	}

	rec, err := e.records.FindLatestByStudentAndOffering(ctx, studentID, offeringID,
		registration.StatusEnrolled, registration.StatusWaitlisted)
	switch {
	case err != nil && !infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrRecordStoreFailed)
	case rec != nil && rec.Status() == registration.StatusEnrolled:
		if err := rec.MarkWithdrawn(); err != nil {
			return err
		}
		if err := e.records.Update(ctx, rec); err != nil {
			return errs.Mark(err, ErrRecordStoreFailed)
		}
		e.notifier.WithdrawalConfirmed(ctx, WithdrawalConfirmed{StudentID: studentID, OfferingID: offeringID})
		e.syncRecord(ctx, rec)
	default:
		// Leaving the waitlist keeps the record WAITLISTED; only an enrolled
		// seat produces a withdrawal transition.
		e.notifier.WithdrawalConfirmed(ctx, WithdrawalConfirmed{StudentID: studentID, OfferingID: offeringID})
	}

	if promoted != nil {
		e.finishPromotion(ctx, *promoted, offeringID)
	}
	return nil
}

func (e *registrationEngine) PromoteFromWaitlist(ctx context.Context, offeringID uuid.UUID) (bool, error) {
	off, err := e.registry.Get(ctx, offeringID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, ErrOfferingNotFound
		}
		return false, err
	}
	promoted := off.PromoteHead()
	if promoted == nil {
		return false, nil
	}
	e.finishPromotion(ctx, *promoted, offeringID)
	return true, nil
}

func (e *registrationEngine) ResizeOffering(ctx context.Context, offeringID uuid.UUID, capacity int) error {
	off, err := e.registry.Get(ctx, offeringID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrOfferingNotFound
		}
		return err
	}
	if err := off.Resize(capacity); err != nil {
		return errs.Mark(err, ErrCapacityBelowEnrollment)
	}
	// Growth may open seats for the waitlist.
	for {
		promoted := off.PromoteHead()
		if promoted == nil {
			return nil
		}
		e.finishPromotion(ctx, *promoted, offeringID)
	}
}

// finishPromotion flips the promoted student's record to ENROLLED and fans
// out the notification and sync. The seat move itself already happened
// inside the offering's critical section.
func (e *registrationEngine) finishPromotion(ctx context.Context, studentID, offeringID uuid.UUID) {
	rec, err := e.records.FindLatestByStudentAndOffering(ctx, studentID, offeringID, registration.StatusWaitlisted)
	if err != nil {
		e.logger.Error("promotion record lookup failed",
			"student_id", studentID, "offering_id", offeringID, "error", err)
	} else if rec != nil {
		if err := rec.MarkEnrolled(); err != nil {
			e.logger.Error("promotion transition rejected", "record_id", rec.ID(), "error", err)
		} else if err := e.records.Update(ctx, rec); err != nil {
			e.logger.Error("promotion record update failed", "record_id", rec.ID(), "error", err)
		} else {
			e.syncRecord(ctx, rec)
		}
	}
	e.notifier.WaitlistPromoted(ctx, WaitlistPromoted{StudentID: studentID, OfferingID: offeringID})
}

func (e *registrationEngine) TotalCredits(ctx context.Context, offeringIDs []uuid.UUID) (int32, error) {
	var total int32
	for _, id := range offeringIDs {
		off, err := e.registry.Get(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				continue
			}
			return 0, err
		}
		crs, err := e.catalog.LookupCourse(ctx, off.CourseCode())
		if err != nil {
			return 0, err
		}
		if crs != nil {
			total += crs.CreditHours()
		}
	}
	return total, nil
}

func (e *registrationEngine) ValidateCreditLoad(ctx context.Context, studentID uuid.UUID, newOfferingIDs []uuid.UUID, maxCredits int32) (bool, int32, error) {
	enrolledIDs, err := e.records.EnrolledOfferingIDs(ctx, studentID)
	if err != nil {
		return false, 0, errs.Mark(err, ErrRecordStoreFailed)
	}
	combined := append(enrolledIDs, newOfferingIDs...)
	total, err := e.TotalCredits(ctx, combined)
	if err != nil {
		return false, 0, err
	}
	return total <= maxCredits, total, nil
}

func (e *registrationEngine) currentOfferings(ctx context.Context, studentID uuid.UUID) ([]*offering.Offering, error) {
	ids, err := e.records.EnrolledOfferingIDs(ctx, studentID)
	if err != nil {
		return nil, errs.Mark(err, ErrRecordStoreFailed)
	}
	offerings := make([]*offering.Offering, 0, len(ids))
	for _, id := range ids {
		off, err := e.registry.Get(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				continue
			}
			return nil, err
		}
		offerings = append(offerings, off)
	}
	return offerings, nil
}

// approvedOverrides splits the student's approved, unconsumed overrides for
// this offering by type. Lookup failures degrade to "no override"; an
// override must never make an otherwise valid submission fail.
func (e *registrationEngine) approvedOverrides(ctx context.Context, studentID, offeringID uuid.UUID) (prereq, capacity *override.Request) {
	reqs, err := e.overrides.FindApprovedUnconsumed(ctx, studentID, offeringID)
	if err != nil {
		e.logger.Error("override lookup failed",
			"student_id", studentID, "offering_id", offeringID, "error", err)
		return nil, nil
	}
	for _, req := range reqs {
		switch req.Kind() {
		case override.TypePrerequisite:
			if prereq == nil {
				prereq = req
			}
		case override.TypeCapacity:
			if capacity == nil {
				capacity = req
			}
		}
	}
	return prereq, capacity
}

func (e *registrationEngine) consumeOverride(ctx context.Context, req *override.Request) {
	if req == nil {
		return
	}
	if err := req.Consume(); err != nil {
		e.logger.Error("override consume rejected", "override_id", req.ID(), "error", err)
		return
	}
	if err := e.overrides.Update(ctx, req); err != nil {
		e.logger.Error("override update failed", "override_id", req.ID(), "error", err)
	}
}

func (e *registrationEngine) syncRecord(ctx context.Context, rec *registration.Record) {
	if err := e.sync.SyncEnrollment(ctx, rec); err != nil {
		// Best-effort: the record's status is already decided and stays put.
		e.logger.Warn("enrollment sync failed",
			"record_id", rec.ID(), "offering_id", rec.OfferingID(), "error", err)
	}
}

func summarize(studentID uuid.UUID, records []*registration.Record) SubmissionSummary {
	summary := SubmissionSummary{StudentID: studentID, Records: records}
	for _, rec := range records {
		switch rec.Status() {
		case registration.StatusEnrolled:
			summary.Enrolled++
		case registration.StatusWaitlisted:
			summary.Waitlisted++
		case registration.StatusFailed:
			summary.Failed++
		}
	}
	return summary
}
