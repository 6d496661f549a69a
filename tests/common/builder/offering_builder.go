//go:build unit || e2e

package builder

import (
	"time"

	domoffering "registrar/internal/domain/offering"
	domschedule "registrar/internal/domain/schedule"
	"registrar/internal/usecase/queries"

	"github.com/google/uuid"
)

type OfferingBuilder struct {
	ID           uuid.UUID
	CourseCode   string
	Term         string
	Capacity     int
	Days         []time.Weekday
	Start        domschedule.TimeOfDay
	End          domschedule.TimeOfDay
	Location     string
	InstructorID *uuid.UUID
}

func NewOfferingBuilder() *OfferingBuilder {
	return &OfferingBuilder{
		ID:         uuid.New(),
		CourseCode: "CS201",
		Term:       "2026FA",
		Capacity:   3,
		Days:       []time.Weekday{time.Monday, time.Wednesday, time.Friday},
		Start:      domschedule.MustTimeOfDay(10, 0),
		End:        domschedule.MustTimeOfDay(10, 50),
		Location:   "SCI-204",
	}
}

func (b *OfferingBuilder) With(mutate func(*OfferingBuilder)) *OfferingBuilder {
	mutate(b)
	return b
}

func (b *OfferingBuilder) BuildSchedule() (*domschedule.Schedule, error) {
	return domschedule.New(b.Days, b.Start, b.End, b.Location)
}

func (b *OfferingBuilder) Build() (*domoffering.Offering, error) {
	meeting, err := b.BuildSchedule()
	if err != nil {
		return nil, err
	}
	off, err := domoffering.New(b.ID, b.CourseCode, b.Term, b.Capacity, meeting)
	if err != nil {
		return nil, err
	}
	if b.InstructorID != nil {
		off.AssignInstructor(*b.InstructorID)
	}
	return off, nil
}

func (b *OfferingBuilder) BuildSeatsView() *queries.OfferingSeatsView {
	return &queries.OfferingSeatsView{
		OfferingID: b.ID,
		CourseCode: b.CourseCode,
		Term:       b.Term,
		Capacity:   b.Capacity,
		Enrolled:   0,
		Available:  b.Capacity,
		Waitlisted: 0,
		Schedule:   "MWF 10:00-10:50 @ " + b.Location,
	}
}
