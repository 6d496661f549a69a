//go:build unit

package offering_test

import (
	"sync"
	"testing"

	"registrar/internal/domain/offering"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOffering(t *testing.T, capacity int) *offering.Offering {
	t.Helper()
	o, err := offering.New(uuid.New(), "CS201", "2026FA", capacity, nil)
	require.NoError(t, err)
	return o
}

func TestNew(t *testing.T) {
	t.Run("rejects empty course code", func(t *testing.T) {
		_, err := offering.New(uuid.New(), "", "2026FA", 10, nil)
		assert.ErrorIs(t, err, offering.ErrEmptyCourseCode)
	})

	t.Run("rejects non-positive capacity", func(t *testing.T) {
		_, err := offering.New(uuid.New(), "CS201", "2026FA", 0, nil)
		assert.ErrorIs(t, err, offering.ErrInvalidCapacity)
	})
}

func TestAdmit(t *testing.T) {
	t.Run("admits until capacity then waitlists in order", func(t *testing.T) {
		o := newOffering(t, 2)
		first, second := uuid.New(), uuid.New()
		third, fourth := uuid.New(), uuid.New()

		assert.Equal(t, offering.DecisionAdmitted, o.Admit(first))
		assert.Equal(t, offering.DecisionAdmitted, o.Admit(second))
		assert.Equal(t, offering.DecisionWaitlisted, o.Admit(third))
		assert.Equal(t, offering.DecisionWaitlisted, o.Admit(fourth))

		snap := o.Snapshot()
		assert.Equal(t, 2, snap.Enrolled)
		assert.Equal(t, 0, snap.Available)
		assert.Equal(t, []uuid.UUID{third, fourth}, snap.Waitlist)
	})

	t.Run("rejects duplicate enrollment", func(t *testing.T) {
		o := newOffering(t, 2)
		student := uuid.New()
		require.Equal(t, offering.DecisionAdmitted, o.Admit(student))
		assert.Equal(t, offering.DecisionRejected, o.Admit(student))
		assert.Equal(t, 1, o.Snapshot().Enrolled)
	})

	t.Run("rejects duplicate waitlist entry", func(t *testing.T) {
		o := newOffering(t, 1)
		o.Admit(uuid.New())
		waiting := uuid.New()
		require.Equal(t, offering.DecisionWaitlisted, o.Admit(waiting))
		assert.Equal(t, offering.DecisionRejected, o.Admit(waiting))
		assert.Equal(t, 1, o.Snapshot().Waitlisted)
	})
}

func TestWithdraw(t *testing.T) {
	t.Run("frees a seat and promotes the waitlist head", func(t *testing.T) {
		o := newOffering(t, 1)
		enrolled, headOfLine, tail := uuid.New(), uuid.New(), uuid.New()
		o.Admit(enrolled)
		o.Admit(headOfLine)
		o.Admit(tail)

		removed, promoted := o.Withdraw(enrolled)
		assert.True(t, removed)
		require.NotNil(t, promoted)
		assert.Equal(t, headOfLine, *promoted)
		assert.True(t, o.IsEnrolled(headOfLine))

		snap := o.Snapshot()
		assert.Equal(t, []uuid.UUID{tail}, snap.Waitlist)
		assert.Equal(t, 0, snap.Available)
	})

	t.Run("withdrawing from the waitlist promotes nobody", func(t *testing.T) {
		o := newOffering(t, 1)
		o.Admit(uuid.New())
		waiting := uuid.New()
		o.Admit(waiting)

		removed, promoted := o.Withdraw(waiting)
		assert.True(t, removed)
		assert.Nil(t, promoted)
		assert.Equal(t, 0, o.Snapshot().Waitlisted)
	})

	t.Run("unknown student is a no-op", func(t *testing.T) {
		o := newOffering(t, 1)
		o.Admit(uuid.New())

		removed, promoted := o.Withdraw(uuid.New())
		assert.False(t, removed)
		assert.Nil(t, promoted)
		assert.Equal(t, 1, o.Snapshot().Enrolled)
	})
}

func TestResize(t *testing.T) {
	t.Run("growing frees seats for promotion", func(t *testing.T) {
		o := newOffering(t, 1)
		o.Admit(uuid.New())
		waiting := uuid.New()
		o.Admit(waiting)

		require.NoError(t, o.Resize(2))
		promoted := o.PromoteHead()
		require.NotNil(t, promoted)
		assert.Equal(t, waiting, *promoted)
		assert.True(t, o.IsFull())
	})

	t.Run("shrinking below enrollment is rejected", func(t *testing.T) {
		o := newOffering(t, 3)
		o.Admit(uuid.New())
		o.Admit(uuid.New())

		err := o.Resize(1)
		assert.ErrorIs(t, err, offering.ErrShrinkBelowEnrolled)
		assert.Equal(t, 3, o.Snapshot().Capacity)
	})

	t.Run("rejects non-positive capacity", func(t *testing.T) {
		o := newOffering(t, 3)
		assert.ErrorIs(t, o.Resize(0), offering.ErrInvalidCapacity)
	})
}

func TestPromoteHead(t *testing.T) {
	t.Run("no promotion while full", func(t *testing.T) {
		o := newOffering(t, 1)
		o.Admit(uuid.New())
		o.Admit(uuid.New())
		assert.Nil(t, o.PromoteHead())
	})

	t.Run("no promotion with empty waitlist", func(t *testing.T) {
		o := newOffering(t, 2)
		o.Admit(uuid.New())
		assert.Nil(t, o.PromoteHead())
	})
}

func TestAdmitWithOverride(t *testing.T) {
	o := newOffering(t, 1)
	o.Admit(uuid.New())
	require.True(t, o.IsFull())

	overridden := uuid.New()
	assert.Equal(t, offering.DecisionAdmitted, o.AdmitWithOverride(overridden))

	snap := o.Snapshot()
	assert.Equal(t, 2, snap.Enrolled)
	assert.Equal(t, 0, snap.Available)

	// still a duplicate guard
	assert.Equal(t, offering.DecisionRejected, o.AdmitWithOverride(overridden))
}

func TestReconstruct(t *testing.T) {
	enrolled := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	waitlist := []uuid.UUID{uuid.New(), uuid.New()}

	o := offering.Reconstruct(uuid.New(), "CS201", "2026FA", 2, nil, nil, enrolled, waitlist)

	snap := o.Snapshot()
	assert.Equal(t, 3, snap.Enrolled)
	assert.Equal(t, 0, snap.Available)
	assert.Equal(t, waitlist, snap.Waitlist)

	// over-enrolled: a withdrawal must not promote until back under capacity
	_, promoted := o.Withdraw(enrolled[0])
	assert.Nil(t, promoted)
	_, promoted = o.Withdraw(enrolled[1])
	require.NotNil(t, promoted)
	assert.Equal(t, waitlist[0], *promoted)
}

func TestConcurrentAdmissions(t *testing.T) {
	const students = 50
	const capacity = 10
	o := newOffering(t, capacity)

	ids := make([]uuid.UUID, students)
	for i := range ids {
		ids[i] = uuid.New()
	}

	var wg sync.WaitGroup
	decisions := make([]offering.Decision, students)
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id uuid.UUID) {
			defer wg.Done()
			decisions[i] = o.Admit(id)
		}(i, id)
	}
	wg.Wait()

	admitted := 0
	for _, d := range decisions {
		if d == offering.DecisionAdmitted {
			admitted++
		}
	}
	assert.Equal(t, capacity, admitted)

	snap := o.Snapshot()
	assert.Equal(t, capacity, snap.Enrolled)
	assert.Equal(t, students-capacity, snap.Waitlisted)
}
