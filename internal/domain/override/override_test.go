//go:build unit

package override_test

import (
	"testing"
	"time"

	"registrar/internal/domain/override"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingRequest(t *testing.T) *override.Request {
	t.Helper()
	r, err := override.NewRequest(uuid.New(), uuid.New(), uuid.New(),
		override.TypePrerequisite, "Completed equivalent coursework abroad", time.Now())
	require.NoError(t, err)
	return r
}

func TestNewRequest(t *testing.T) {
	t.Run("rejects empty reason", func(t *testing.T) {
		_, err := override.NewRequest(uuid.New(), uuid.New(), uuid.New(),
			override.TypeCapacity, "", time.Now())
		assert.ErrorIs(t, err, override.ErrEmptyReason)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := override.NewRequest(uuid.New(), uuid.New(), uuid.New(),
			override.Type("GRADE_OVERRIDE"), "please", time.Now())
		assert.Error(t, err)
	})

	t.Run("starts pending and unconsumed", func(t *testing.T) {
		r := newPendingRequest(t)
		assert.True(t, r.IsPending())
		assert.False(t, r.IsConsumed())
		assert.Nil(t, r.ReviewedAt())
	})
}

func TestReview(t *testing.T) {
	t.Run("approve records note and timestamp", func(t *testing.T) {
		r := newPendingRequest(t)
		note := "verified transcript"
		now := time.Now()
		require.NoError(t, r.Approve(&note, now))

		assert.True(t, r.IsApproved())
		require.NotNil(t, r.ReviewerNote())
		assert.Equal(t, note, *r.ReviewerNote())
		require.NotNil(t, r.ReviewedAt())
		assert.Equal(t, now, *r.ReviewedAt())
	})

	t.Run("reject keeps consumed false", func(t *testing.T) {
		r := newPendingRequest(t)
		require.NoError(t, r.Reject(nil, time.Now()))
		assert.Equal(t, override.StatusRejected, r.Status())
		assert.False(t, r.IsConsumed())
	})

	t.Run("review is one-shot", func(t *testing.T) {
		r := newPendingRequest(t)
		require.NoError(t, r.Approve(nil, time.Now()))
		assert.ErrorIs(t, r.Approve(nil, time.Now()), override.ErrAlreadyReviewed)
		assert.ErrorIs(t, r.Reject(nil, time.Now()), override.ErrAlreadyReviewed)
	})
}

func TestConsume(t *testing.T) {
	t.Run("pending cannot be consumed", func(t *testing.T) {
		r := newPendingRequest(t)
		assert.ErrorIs(t, r.Consume(), override.ErrNotApproved)
	})

	t.Run("rejected cannot be consumed", func(t *testing.T) {
		r := newPendingRequest(t)
		require.NoError(t, r.Reject(nil, time.Now()))
		assert.ErrorIs(t, r.Consume(), override.ErrNotApproved)
	})

	t.Run("approved consumes exactly once", func(t *testing.T) {
		r := newPendingRequest(t)
		require.NoError(t, r.Approve(nil, time.Now()))
		require.NoError(t, r.Consume())
		assert.True(t, r.IsConsumed())
		assert.ErrorIs(t, r.Consume(), override.ErrAlreadyConsumed)
	})
}

func TestParseType(t *testing.T) {
	for _, s := range []string{"PREREQUISITE_OVERRIDE", "CAPACITY_OVERRIDE"} {
		parsed, err := override.ParseType(s)
		require.NoError(t, err)
		assert.Equal(t, override.Type(s), parsed)
	}

	_, err := override.ParseType("TIME_CONFLICT_OVERRIDE")
	assert.Error(t, err)
}
