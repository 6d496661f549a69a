package schedule

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

var (
	ErrNoMeetingDays    = errors.New("schedule requires at least one meeting day")
	ErrInvalidWindow    = errors.New("start time must be before end time")
	ErrInvalidTimeOfDay = errors.New("time of day out of range")
)

// TimeOfDay is minutes since midnight.
type TimeOfDay int

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, ErrInvalidTimeOfDay
	}
	return TimeOfDay(hour*60 + minute), nil
}

func MustTimeOfDay(hour, minute int) TimeOfDay {
	t, err := NewTimeOfDay(hour, minute)
	if err != nil {
		panic(err)
	}
	return t
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Schedule is an immutable weekly meeting pattern.
type Schedule struct {
	days     map[time.Weekday]struct{}
	start    TimeOfDay
	end      TimeOfDay
	location string
}

func New(days []time.Weekday, start, end TimeOfDay, location string) (*Schedule, error) {
	if len(days) == 0 {
		return nil, ErrNoMeetingDays
	}
	if start >= end {
		return nil, ErrInvalidWindow
	}
	daySet := make(map[time.Weekday]struct{}, len(days))
	for _, d := range days {
		daySet[d] = struct{}{}
	}
	return &Schedule{
		days:     daySet,
		start:    start,
		end:      end,
		location: location,
	}, nil
}

// Overlaps reports whether two weekly patterns collide: the weekday sets
// intersect and the half-open time windows intersect (start1 < end2 AND
// end1 > start2). A nil schedule on either side never overlaps; it stands
// for a to-be-determined meeting pattern.
func (s *Schedule) Overlaps(other *Schedule) bool {
	if s == nil || other == nil {
		return false
	}

	shared := false
	for d := range s.days {
		if _, ok := other.days[d]; ok {
			shared = true
			break
		}
	}
	if !shared {
		return false
	}

	return s.start < other.end && s.end > other.start
}

func (s *Schedule) Days() []time.Weekday {
	days := make([]time.Weekday, 0, len(s.days))
	for d := range s.days {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	return days
}

func (s *Schedule) Start() TimeOfDay { return s.start }
func (s *Schedule) End() TimeOfDay   { return s.end }
func (s *Schedule) Location() string { return s.location }

// String renders the registrar-style compact form, e.g. "MWF 10:00-10:50 @ SCI-204".
func (s *Schedule) String() string {
	if s == nil {
		return "TBD"
	}
	var b strings.Builder
	for _, d := range s.Days() {
		b.WriteString(dayAbbreviation(d))
	}
	b.WriteString(" ")
	b.WriteString(s.start.String())
	b.WriteString("-")
	b.WriteString(s.end.String())
	if s.location != "" {
		b.WriteString(" @ ")
		b.WriteString(s.location)
	}
	return b.String()
}

func dayAbbreviation(d time.Weekday) string {
	switch d {
	case time.Monday:
		return "M"
	case time.Tuesday:
		return "T"
	case time.Wednesday:
		return "W"
	case time.Thursday:
		return "R"
	case time.Friday:
		return "F"
	case time.Saturday:
		return "S"
	case time.Sunday:
		return "U"
	}
	return ""
}
