//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"registrar/internal/domain/offering"
	"registrar/internal/domain/override"
	"registrar/internal/pkg/clock"
	"registrar/internal/pkg/ident"
	"registrar/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type overrideFixture struct {
	registry  *fakeRegistry
	overrides *fakeOverrideStore
	notifier  *capturingNotifier
	commands  commands.OverrideCommands
}

func newOverrideFixture() *overrideFixture {
	f := &overrideFixture{
		registry:  newFakeRegistry(),
		overrides: newFakeOverrideStore(),
		notifier:  &capturingNotifier{},
	}
	f.commands = commands.NewOverrideCommands(
		f.overrides, f.registry, f.notifier,
		ident.NewUUIDGenerator(),
		clock.NewFakeClock(time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	return f
}

func (f *overrideFixture) addOffering(t *testing.T, instructorID *uuid.UUID) *offering.Offering {
	t.Helper()
	off, err := offering.New(uuid.New(), "CS201", "2026FA", 3, nil)
	require.NoError(t, err)
	if instructorID != nil {
		off.AssignInstructor(*instructorID)
	}
	f.registry.offerings[off.ID()] = off
	return off
}

func TestOverrideRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("persists a pending request", func(t *testing.T) {
		f := newOverrideFixture()
		off := f.addOffering(t, nil)
		student := uuid.New()

		req, err := f.commands.Request(ctx, student, off.ID(), override.TypePrerequisite, "took it abroad")
		require.NoError(t, err)
		assert.True(t, req.IsPending())

		stored, err := f.overrides.FindByID(ctx, req.ID())
		require.NoError(t, err)
		assert.Equal(t, student, stored.StudentID())
	})

	t.Run("unknown offering", func(t *testing.T) {
		f := newOverrideFixture()
		_, err := f.commands.Request(ctx, uuid.New(), uuid.New(), override.TypeCapacity, "please")
		assert.ErrorIs(t, err, commands.ErrOfferingNotFound)
	})

	t.Run("empty reason is rejected", func(t *testing.T) {
		f := newOverrideFixture()
		off := f.addOffering(t, nil)
		_, err := f.commands.Request(ctx, uuid.New(), off.ID(), override.TypeCapacity, "")
		assert.ErrorIs(t, err, commands.ErrInvalidOverrideType)
	})
}

func TestOverrideReview(t *testing.T) {
	ctx := context.Background()

	submit := func(t *testing.T, f *overrideFixture, off *offering.Offering) *override.Request {
		t.Helper()
		req, err := f.commands.Request(ctx, uuid.New(), off.ID(), override.TypePrerequisite, "verified transcript")
		require.NoError(t, err)
		return req
	}

	t.Run("instructor of record approves", func(t *testing.T) {
		f := newOverrideFixture()
		instructor := uuid.New()
		off := f.addOffering(t, &instructor)
		req := submit(t, f, off)

		comment := "verified"
		reviewed, err := f.commands.Review(ctx, req.ID(), instructor, true, &comment)
		require.NoError(t, err)
		assert.True(t, reviewed.IsApproved())
		require.NotNil(t, reviewed.ReviewedAt())

		require.Len(t, f.notifier.reviews, 1)
		assert.True(t, f.notifier.reviews[0].Approved)
	})

	t.Run("only the instructor of record may review", func(t *testing.T) {
		f := newOverrideFixture()
		instructor := uuid.New()
		off := f.addOffering(t, &instructor)
		req := submit(t, f, off)

		_, err := f.commands.Review(ctx, req.ID(), uuid.New(), true, nil)
		assert.ErrorIs(t, err, commands.ErrNotInstructorOfRecord)
	})

	t.Run("offering without an instructor cannot be reviewed", func(t *testing.T) {
		f := newOverrideFixture()
		off := f.addOffering(t, nil)
		req := submit(t, f, off)

		_, err := f.commands.Review(ctx, req.ID(), uuid.New(), true, nil)
		assert.ErrorIs(t, err, commands.ErrNotInstructorOfRecord)
	})

	t.Run("review is one-shot", func(t *testing.T) {
		f := newOverrideFixture()
		instructor := uuid.New()
		off := f.addOffering(t, &instructor)
		req := submit(t, f, off)

		_, err := f.commands.Review(ctx, req.ID(), instructor, false, nil)
		require.NoError(t, err)
		_, err = f.commands.Review(ctx, req.ID(), instructor, true, nil)
		assert.ErrorIs(t, err, commands.ErrAlreadyReviewed)
	})

	t.Run("unknown request", func(t *testing.T) {
		f := newOverrideFixture()
		_, err := f.commands.Review(ctx, uuid.New(), uuid.New(), true, nil)
		assert.ErrorIs(t, err, commands.ErrOverrideNotFound)
	})
}
