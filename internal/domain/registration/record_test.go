//go:build unit

package registration_test

import (
	"testing"
	"time"

	"registrar/internal/domain/registration"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPending(t *testing.T) *registration.Record {
	t.Helper()
	return registration.NewRecord(uuid.New(), uuid.New(), uuid.New(), time.Now())
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"PENDING", "ENROLLED", "WAITLISTED", "FAILED", "WITHDRAWN"} {
		parsed, err := registration.ParseStatus(s)
		require.NoError(t, err)
		assert.Equal(t, registration.Status(s), parsed)
	}

	_, err := registration.ParseStatus("DROPPED")
	assert.Error(t, err)
}

func TestTransitions(t *testing.T) {
	t.Run("pending leaves once", func(t *testing.T) {
		r := newPending(t)
		require.NoError(t, r.MarkEnrolled())
		assert.Equal(t, registration.StatusEnrolled, r.Status())

		err := r.MarkWaitlisted()
		assert.ErrorIs(t, err, registration.ErrInvalidTransition)
	})

	t.Run("enrolled can withdraw", func(t *testing.T) {
		r := newPending(t)
		require.NoError(t, r.MarkEnrolled())
		require.NoError(t, r.MarkWithdrawn())
		assert.Equal(t, registration.StatusWithdrawn, r.Status())
	})

	t.Run("waitlisted can be promoted", func(t *testing.T) {
		r := newPending(t)
		require.NoError(t, r.MarkWaitlisted())
		require.NoError(t, r.MarkEnrolled())
		assert.Equal(t, registration.StatusEnrolled, r.Status())
	})

	t.Run("waitlisted cannot withdraw directly", func(t *testing.T) {
		r := newPending(t)
		require.NoError(t, r.MarkWaitlisted())
		assert.ErrorIs(t, r.MarkWithdrawn(), registration.ErrInvalidTransition)
	})

	t.Run("failed is terminal", func(t *testing.T) {
		r := newPending(t)
		require.NoError(t, r.MarkFailed("active hold on student account"))
		assert.ErrorIs(t, r.MarkEnrolled(), registration.ErrInvalidTransition)
		assert.ErrorIs(t, r.MarkWaitlisted(), registration.ErrInvalidTransition)
	})

	t.Run("withdrawn is terminal", func(t *testing.T) {
		r := newPending(t)
		require.NoError(t, r.MarkEnrolled())
		require.NoError(t, r.MarkWithdrawn())
		assert.ErrorIs(t, r.MarkEnrolled(), registration.ErrInvalidTransition)
	})
}

func TestMarkFailed(t *testing.T) {
	r := newPending(t)
	require.NoError(t, r.MarkFailed("prerequisites not met: CS101"))

	reason := r.Reason()
	require.NotNil(t, reason)
	assert.Equal(t, "prerequisites not met: CS101", *reason)
	assert.False(t, r.IsSuccessful())
}

func TestIsSuccessful(t *testing.T) {
	r := newPending(t)
	assert.False(t, r.IsSuccessful())

	require.NoError(t, r.MarkEnrolled())
	assert.True(t, r.IsSuccessful())

	waitlisted := newPending(t)
	require.NoError(t, waitlisted.MarkWaitlisted())
	assert.False(t, waitlisted.IsSuccessful())
}
