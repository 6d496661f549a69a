package offering

import (
	"errors"
	"sync"

	"registrar/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrEmptyCourseCode     = errors.New("offering requires a course code")
	ErrInvalidCapacity     = errors.New("capacity must be positive")
	ErrShrinkBelowEnrolled = errors.New("capacity cannot drop below current enrollment")
)

// Decision is the outcome of one admission attempt.
type Decision string

const (
	DecisionAdmitted   Decision = "ADMITTED"
	DecisionWaitlisted Decision = "WAITLISTED"
	// DecisionRejected is returned only for duplicates: the student already
	// holds a seat or a waitlist position on this offering.
	DecisionRejected Decision = "REJECTED"
)

// Offering owns its seat counter, enrolled set and FIFO waitlist. All
// mutations run under one mutex per offering so concurrent admissions can
// never both observe a free seat and both take it. Nothing under the lock
// performs I/O.
type Offering struct {
	mu sync.Mutex

	id           uuid.UUID
	courseCode   string
	term         string
	capacity     int
	meeting      *schedule.Schedule
	instructorID *uuid.UUID

	enrolled map[uuid.UUID]struct{}
	waitlist []uuid.UUID
}

func New(id uuid.UUID, courseCode, term string, capacity int, meeting *schedule.Schedule) (*Offering, error) {
	if courseCode == "" {
		return nil, ErrEmptyCourseCode
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &Offering{
		id:         id,
		courseCode: courseCode,
		term:       term,
		capacity:   capacity,
		meeting:    meeting,
		enrolled:   make(map[uuid.UUID]struct{}),
	}, nil
}

// Reconstruct rebuilds an offering from persisted state, including an
// enrolled set that may exceed capacity when overrides were granted.
func Reconstruct(
	id uuid.UUID,
	courseCode, term string,
	capacity int,
	meeting *schedule.Schedule,
	instructorID *uuid.UUID,
	enrolled []uuid.UUID,
	waitlist []uuid.UUID,
) *Offering {
	enrolledSet := make(map[uuid.UUID]struct{}, len(enrolled))
	for _, id := range enrolled {
		enrolledSet[id] = struct{}{}
	}
	wl := make([]uuid.UUID, len(waitlist))
	copy(wl, waitlist)
	var instructor *uuid.UUID
	if instructorID != nil {
		id := *instructorID
		instructor = &id
	}
	return &Offering{
		id:           id,
		courseCode:   courseCode,
		term:         term,
		capacity:     capacity,
		meeting:      meeting,
		instructorID: instructor,
		enrolled:     enrolledSet,
		waitlist:     wl,
	}
}

func (o *Offering) AssignInstructor(facultyID uuid.UUID) {
	o.mu.Lock()
	defer o.mu.Unlock()
	id := facultyID
	o.instructorID = &id
}

// Admit enrolls the student when a seat is free, appends to the waitlist tail
// when the offering is full, and rejects only duplicates.
func (o *Offering) Admit(studentID uuid.UUID) Decision {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.admitLocked(studentID, false)
}

// AdmitWithOverride admits as if a seat were available regardless of the
// counter; an approved capacity override may over-enroll an offering.
// Duplicates are still rejected.
func (o *Offering) AdmitWithOverride(studentID uuid.UUID) Decision {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.admitLocked(studentID, true)
}

func (o *Offering) admitLocked(studentID uuid.UUID, overrideSeat bool) Decision {
	if _, ok := o.enrolled[studentID]; ok {
		return DecisionRejected
	}
	if overrideSeat || len(o.enrolled) < o.capacity {
		o.removeFromWaitlistLocked(studentID)
		o.enrolled[studentID] = struct{}{}
		return DecisionAdmitted
	}
	for _, w := range o.waitlist {
		if w == studentID {
			return DecisionRejected
		}
	}
	o.waitlist = append(o.waitlist, studentID)
	return DecisionWaitlisted
}

// Withdraw removes the student from the enrolled set or, failing that, from
// the waitlist. A freed seat immediately promotes the waitlist head inside
// the same critical section, so no observer ever sees a free seat next to a
// non-empty waitlist. The returned promoted id is non-nil only when a
// waitlisted student took the freed seat.
func (o *Offering) Withdraw(studentID uuid.UUID) (removed bool, promoted *uuid.UUID) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if _, ok := o.enrolled[studentID]; ok {
		delete(o.enrolled, studentID)
		return true, o.promoteHeadLocked()
	}
	return o.removeFromWaitlistLocked(studentID), nil
}

// PromoteHead admits the waitlist head if a seat is available. Used after an
// administrative capacity increase; withdrawal promotes on its own.
func (o *Offering) PromoteHead() *uuid.UUID {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.promoteHeadLocked()
}

func (o *Offering) promoteHeadLocked() *uuid.UUID {
	if len(o.waitlist) == 0 || len(o.enrolled) >= o.capacity {
		return nil
	}
	head := o.waitlist[0]
	o.waitlist = o.waitlist[1:]
	o.enrolled[head] = struct{}{}
	return &head
}

// Resize adjusts capacity. Shrinking below current enrollment is rejected
// rather than silently dropping students.
func (o *Offering) Resize(capacity int) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if capacity <= 0 {
		return ErrInvalidCapacity
	}
	if capacity < len(o.enrolled) {
		return ErrShrinkBelowEnrolled
	}
	o.capacity = capacity
	return nil
}

func (o *Offering) removeFromWaitlistLocked(studentID uuid.UUID) bool {
	for i, w := range o.waitlist {
		if w == studentID {
			o.waitlist = append(o.waitlist[:i], o.waitlist[i+1:]...)
			return true
		}
	}
	return false
}

func (o *Offering) AvailableSeats() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	if free := o.capacity - len(o.enrolled); free > 0 {
		return free
	}
	return 0
}

func (o *Offering) IsFull() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.enrolled) >= o.capacity
}

func (o *Offering) IsEnrolled(studentID uuid.UUID) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, ok := o.enrolled[studentID]
	return ok
}

func (o *Offering) ID() uuid.UUID                { return o.id }
func (o *Offering) CourseCode() string           { return o.courseCode }
func (o *Offering) Term() string                 { return o.term }
func (o *Offering) Schedule() *schedule.Schedule { return o.meeting }

func (o *Offering) InstructorID() *uuid.UUID {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.instructorID == nil {
		return nil
	}
	id := *o.instructorID
	return &id
}

// Snapshot is a point-in-time read model of the seat state.
type Snapshot struct {
	ID           uuid.UUID
	CourseCode   string
	Term         string
	Capacity     int
	Enrolled     int
	Available    int
	Waitlisted   int
	Waitlist     []uuid.UUID
	Schedule     string
	InstructorID *uuid.UUID
}

func (o *Offering) Snapshot() Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	free := o.capacity - len(o.enrolled)
	if free < 0 {
		free = 0
	}
	wl := make([]uuid.UUID, len(o.waitlist))
	copy(wl, o.waitlist)
	var instructor *uuid.UUID
	if o.instructorID != nil {
		id := *o.instructorID
		instructor = &id
	}
	return Snapshot{
		ID:           o.id,
		CourseCode:   o.courseCode,
		Term:         o.term,
		Capacity:     o.capacity,
		Enrolled:     len(o.enrolled),
		Available:    free,
		Waitlisted:   len(o.waitlist),
		Waitlist:     wl,
		Schedule:     o.meeting.String(),
		InstructorID: instructor,
	}
}
