//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"registrar/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSchedule(t *testing.T, days []time.Weekday, start, end schedule.TimeOfDay) *schedule.Schedule {
	t.Helper()
	s, err := schedule.New(days, start, end, "SCI-204")
	require.NoError(t, err)
	return s
}

func TestNew(t *testing.T) {
	t.Run("rejects empty meeting days", func(t *testing.T) {
		_, err := schedule.New(nil, schedule.MustTimeOfDay(9, 0), schedule.MustTimeOfDay(10, 0), "")
		assert.ErrorIs(t, err, schedule.ErrNoMeetingDays)
	})

	t.Run("rejects start at or after end", func(t *testing.T) {
		_, err := schedule.New([]time.Weekday{time.Monday}, schedule.MustTimeOfDay(10, 0), schedule.MustTimeOfDay(10, 0), "")
		assert.ErrorIs(t, err, schedule.ErrInvalidWindow)

		_, err = schedule.New([]time.Weekday{time.Monday}, schedule.MustTimeOfDay(11, 0), schedule.MustTimeOfDay(10, 0), "")
		assert.ErrorIs(t, err, schedule.ErrInvalidWindow)
	})
}

func TestOverlaps(t *testing.T) {
	mwf := []time.Weekday{time.Monday, time.Wednesday, time.Friday}
	tr := []time.Weekday{time.Tuesday, time.Thursday}

	t.Run("identical schedules overlap", func(t *testing.T) {
		a := mustSchedule(t, mwf, schedule.MustTimeOfDay(10, 0), schedule.MustTimeOfDay(10, 50))
		b := mustSchedule(t, mwf, schedule.MustTimeOfDay(10, 0), schedule.MustTimeOfDay(10, 50))
		assert.True(t, a.Overlaps(b))
	})

	t.Run("disjoint days never overlap", func(t *testing.T) {
		a := mustSchedule(t, mwf, schedule.MustTimeOfDay(10, 0), schedule.MustTimeOfDay(10, 50))
		b := mustSchedule(t, tr, schedule.MustTimeOfDay(10, 0), schedule.MustTimeOfDay(10, 50))
		assert.False(t, a.Overlaps(b))
	})

	t.Run("back to back slots do not overlap", func(t *testing.T) {
		a := mustSchedule(t, mwf, schedule.MustTimeOfDay(9, 0), schedule.MustTimeOfDay(10, 0))
		b := mustSchedule(t, mwf, schedule.MustTimeOfDay(10, 0), schedule.MustTimeOfDay(11, 0))
		assert.False(t, a.Overlaps(b))
		assert.False(t, b.Overlaps(a))
	})

	t.Run("partial overlap on a shared day", func(t *testing.T) {
		a := mustSchedule(t, []time.Weekday{time.Monday}, schedule.MustTimeOfDay(9, 0), schedule.MustTimeOfDay(10, 30))
		b := mustSchedule(t, []time.Weekday{time.Monday, time.Wednesday}, schedule.MustTimeOfDay(10, 0), schedule.MustTimeOfDay(11, 0))
		assert.True(t, a.Overlaps(b))
	})

	t.Run("containment overlaps", func(t *testing.T) {
		outer := mustSchedule(t, []time.Weekday{time.Friday}, schedule.MustTimeOfDay(8, 0), schedule.MustTimeOfDay(12, 0))
		inner := mustSchedule(t, []time.Weekday{time.Friday}, schedule.MustTimeOfDay(9, 0), schedule.MustTimeOfDay(10, 0))
		assert.True(t, outer.Overlaps(inner))
		assert.True(t, inner.Overlaps(outer))
	})

	t.Run("symmetry", func(t *testing.T) {
		a := mustSchedule(t, mwf, schedule.MustTimeOfDay(9, 30), schedule.MustTimeOfDay(10, 20))
		b := mustSchedule(t, []time.Weekday{time.Wednesday}, schedule.MustTimeOfDay(10, 0), schedule.MustTimeOfDay(10, 50))
		assert.Equal(t, a.Overlaps(b), b.Overlaps(a))
	})

	t.Run("nil schedules never overlap", func(t *testing.T) {
		a := mustSchedule(t, mwf, schedule.MustTimeOfDay(10, 0), schedule.MustTimeOfDay(10, 50))
		assert.False(t, a.Overlaps(nil))

		var nilSched *schedule.Schedule
		assert.False(t, nilSched.Overlaps(a))
	})
}

func TestString(t *testing.T) {
	s := mustSchedule(t,
		[]time.Weekday{time.Monday, time.Wednesday, time.Friday},
		schedule.MustTimeOfDay(10, 0), schedule.MustTimeOfDay(10, 50))
	assert.Equal(t, "MWF 10:00-10:50 @ SCI-204", s.String())

	tr, err := schedule.New([]time.Weekday{time.Tuesday, time.Thursday},
		schedule.MustTimeOfDay(13, 30), schedule.MustTimeOfDay(14, 45), "")
	require.NoError(t, err)
	assert.Equal(t, "TR 13:30-14:45", tr.String())

	var nilSched *schedule.Schedule
	assert.Equal(t, "TBD", nilSched.String())
}

func TestTimeOfDay(t *testing.T) {
	t.Run("valid bounds", func(t *testing.T) {
		v, err := schedule.NewTimeOfDay(0, 0)
		require.NoError(t, err)
		assert.Equal(t, "00:00", v.String())

		v, err = schedule.NewTimeOfDay(23, 59)
		require.NoError(t, err)
		assert.Equal(t, "23:59", v.String())
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := schedule.NewTimeOfDay(24, 0)
		assert.ErrorIs(t, err, schedule.ErrInvalidTimeOfDay)

		_, err = schedule.NewTimeOfDay(10, 60)
		assert.ErrorIs(t, err, schedule.ErrInvalidTimeOfDay)

		_, err = schedule.NewTimeOfDay(-1, 0)
		assert.ErrorIs(t, err, schedule.ErrInvalidTimeOfDay)
	})
}
