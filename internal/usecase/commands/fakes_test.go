//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sort"

	"registrar/internal/domain/cart"
	"registrar/internal/domain/course"
	"registrar/internal/domain/offering"
	"registrar/internal/domain/override"
	"registrar/internal/domain/registration"
	"registrar/internal/infra"
	"registrar/internal/usecase/commands"

	"github.com/google/uuid"
)

func notFoundErr(msg string) error {
	return infra.WrapRepoErr(msg, errors.New("no rows"), infra.KindNotFound)
}

type fakeRegistry struct {
	offerings map[uuid.UUID]*offering.Offering
	err       error
}

func newFakeRegistry(offs ...*offering.Offering) *fakeRegistry {
	r := &fakeRegistry{offerings: make(map[uuid.UUID]*offering.Offering)}
	for _, o := range offs {
		r.offerings[o.ID()] = o
	}
	return r
}

func (r *fakeRegistry) Get(_ context.Context, id uuid.UUID) (*offering.Offering, error) {
	if r.err != nil {
		return nil, r.err
	}
	off, ok := r.offerings[id]
	if !ok {
		return nil, notFoundErr("offering not found")
	}
	return off, nil
}

type fakeCatalog struct {
	courses map[string]*course.Course
	err     error
}

func newFakeCatalog(courses ...*course.Course) *fakeCatalog {
	c := &fakeCatalog{courses: make(map[string]*course.Course)}
	for _, crs := range courses {
		c.courses[crs.Code()] = crs
	}
	return c
}

func (c *fakeCatalog) LookupCourse(_ context.Context, code string) (*course.Course, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.courses[code], nil
}

type fakeAccounts struct {
	holds     map[uuid.UUID]bool
	completed map[uuid.UUID]map[string]struct{}
	err       error
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{
		holds:     make(map[uuid.UUID]bool),
		completed: make(map[uuid.UUID]map[string]struct{}),
	}
}

func (a *fakeAccounts) HasHold(_ context.Context, studentID uuid.UUID) (bool, error) {
	if a.err != nil {
		return false, a.err
	}
	return a.holds[studentID], nil
}

func (a *fakeAccounts) CompletedCourses(_ context.Context, studentID uuid.UUID) (map[string]struct{}, error) {
	if a.err != nil {
		return nil, a.err
	}
	set := a.completed[studentID]
	if set == nil {
		set = make(map[string]struct{})
	}
	return set, nil
}

func (a *fakeAccounts) markCompleted(studentID uuid.UUID, codes ...string) {
	set := a.completed[studentID]
	if set == nil {
		set = make(map[string]struct{})
		a.completed[studentID] = set
	}
	for _, c := range codes {
		set[c] = struct{}{}
	}
}

type fakeRecordStore struct {
	records []*registration.Record
	saveErr error
}

func (s *fakeRecordStore) Save(_ context.Context, rec *registration.Record) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.records = append(s.records, rec)
	return nil
}

func (s *fakeRecordStore) Update(_ context.Context, rec *registration.Record) error {
	for i, existing := range s.records {
		if existing.ID() == rec.ID() {
			s.records[i] = rec
			return nil
		}
	}
	return notFoundErr("registration not found")
}

func (s *fakeRecordStore) FindByID(_ context.Context, id uuid.UUID) (*registration.Record, error) {
	for _, rec := range s.records {
		if rec.ID() == id {
			return rec, nil
		}
	}
	return nil, notFoundErr("registration not found")
}

func (s *fakeRecordStore) FindLatestByStudentAndOffering(_ context.Context, studentID, offeringID uuid.UUID, statuses ...registration.Status) (*registration.Record, error) {
	var matches []*registration.Record
	for _, rec := range s.records {
		if rec.StudentID() != studentID || rec.OfferingID() != offeringID {
			continue
		}
		for _, st := range statuses {
			if rec.Status() == st {
				matches = append(matches, rec)
				break
			}
		}
	}
	if len(matches) == 0 {
		return nil, notFoundErr("registration not found")
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].CreatedAt().After(matches[j].CreatedAt())
	})
	return matches[0], nil
}

func (s *fakeRecordStore) EnrolledOfferingIDs(_ context.Context, studentID uuid.UUID) ([]uuid.UUID, error) {
	seen := make(map[uuid.UUID]struct{})
	var ids []uuid.UUID
	for _, rec := range s.records {
		if rec.StudentID() == studentID && rec.Status() == registration.StatusEnrolled {
			if _, ok := seen[rec.OfferingID()]; !ok {
				seen[rec.OfferingID()] = struct{}{}
				ids = append(ids, rec.OfferingID())
			}
		}
	}
	return ids, nil
}

func (s *fakeRecordStore) byStatus(status registration.Status) []*registration.Record {
	var out []*registration.Record
	for _, rec := range s.records {
		if rec.Status() == status {
			out = append(out, rec)
		}
	}
	return out
}

type fakeOverrideStore struct {
	requests map[uuid.UUID]*override.Request
	updated  []uuid.UUID
}

func newFakeOverrideStore(reqs ...*override.Request) *fakeOverrideStore {
	s := &fakeOverrideStore{requests: make(map[uuid.UUID]*override.Request)}
	for _, r := range reqs {
		s.requests[r.ID()] = r
	}
	return s
}

func (s *fakeOverrideStore) Save(_ context.Context, req *override.Request) error {
	s.requests[req.ID()] = req
	return nil
}

func (s *fakeOverrideStore) Update(_ context.Context, req *override.Request) error {
	if _, ok := s.requests[req.ID()]; !ok {
		return notFoundErr("override not found")
	}
	s.requests[req.ID()] = req
	s.updated = append(s.updated, req.ID())
	return nil
}

func (s *fakeOverrideStore) FindByID(_ context.Context, id uuid.UUID) (*override.Request, error) {
	req, ok := s.requests[id]
	if !ok {
		return nil, notFoundErr("override not found")
	}
	return req, nil
}

func (s *fakeOverrideStore) FindApprovedUnconsumed(_ context.Context, studentID, offeringID uuid.UUID) ([]*override.Request, error) {
	var out []*override.Request
	for _, req := range s.requests {
		if req.StudentID() == studentID && req.OfferingID() == offeringID &&
			req.IsApproved() && !req.IsConsumed() {
			out = append(out, req)
		}
	}
	return out, nil
}

type fakeCartStore struct {
	carts map[uuid.UUID]*cart.Cart
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{carts: make(map[uuid.UUID]*cart.Cart)}
}

func (s *fakeCartStore) Get(studentID uuid.UUID) (*cart.Cart, bool) {
	c, ok := s.carts[studentID]
	return c, ok
}

func (s *fakeCartStore) Put(c *cart.Cart) {
	s.carts[c.StudentID()] = c
}

func (s *fakeCartStore) Remove(studentID uuid.UUID) {
	delete(s.carts, studentID)
}

type capturingNotifier struct {
	summaries   []commands.SubmissionSummary
	withdrawals []commands.WithdrawalConfirmed
	promotions  []commands.WaitlistPromoted
	reviews     []commands.ExceptionReviewed
}

func (n *capturingNotifier) SubmissionSummary(_ context.Context, e commands.SubmissionSummary) {
	n.summaries = append(n.summaries, e)
}

func (n *capturingNotifier) WithdrawalConfirmed(_ context.Context, e commands.WithdrawalConfirmed) {
	n.withdrawals = append(n.withdrawals, e)
}

func (n *capturingNotifier) WaitlistPromoted(_ context.Context, e commands.WaitlistPromoted) {
	n.promotions = append(n.promotions, e)
}

func (n *capturingNotifier) ExceptionReviewed(_ context.Context, e commands.ExceptionReviewed) {
	n.reviews = append(n.reviews, e)
}

type capturingSync struct {
	synced []*registration.Record
	err    error
}

func (s *capturingSync) SyncEnrollment(_ context.Context, rec *registration.Record) error {
	s.synced = append(s.synced, rec)
	return s.err
}
