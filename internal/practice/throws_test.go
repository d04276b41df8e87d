package practice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/molkkylog/internal/store"
)

func TestRecordThrowStagesDraft(t *testing.T) {
	ctx := context.Background()
	r, throws, _ := newTestRegistry(t)
	id := r.Snapshot().ActiveID

	require.NoError(t, r.RecordThrow(ctx, id, true))
	require.NoError(t, r.RecordThrow(ctx, id, false))

	s := r.Snapshot().Session(id)
	require.Len(t, s.Drafts, 2)
	assert.True(t, s.Drafts[0].IsSuccess)
	assert.False(t, s.Drafts[1].IsSuccess)
	assert.Equal(t, DefaultDistance, s.Drafts[0].Distance)
	assert.Equal(t, id, s.Drafts[0].SessionID)
	assert.True(t, s.IsDirty())
	assert.True(t, s.CanUndo())
	assert.Equal(t, 2, throws.draftCount())
	assert.Empty(t, throws.records)
}

func TestRecordThrowWithoutActiveDistanceIsNoop(t *testing.T) {
	ctx := context.Background()
	r, throws, _ := newTestRegistry(t)
	id := r.Snapshot().ActiveID

	require.NoError(t, r.RemoveDistance(ctx, id, DefaultDistance))
	require.Nil(t, r.Snapshot().Session(id).ActiveDistance)

	require.NoError(t, r.RecordThrow(ctx, id, true))
	assert.Empty(t, r.Snapshot().Session(id).Drafts)
	assert.Equal(t, 0, throws.draftCount())
}

func TestRecordThrowCapturesEnvironment(t *testing.T) {
	ctx := context.Background()
	r, _, _ := newTestRegistry(t)
	id := r.Snapshot().ActiveID

	weather := "windy"
	r.SetWeather(id, &weather)
	r.SelectAngle(id, store.AngleRight)
	require.NoError(t, r.RecordThrow(ctx, id, true))

	// Later condition changes must not rewrite already-staged throws.
	r.SetWeather(id, nil)
	r.SelectAngle(id, store.AngleLeft)

	d := r.Snapshot().Session(id).Drafts[0]
	require.NotNil(t, d.Env.Weather)
	assert.Equal(t, "windy", *d.Env.Weather)
	assert.Equal(t, store.AngleRight, d.Angle)
}

func TestUndoRemovesExactlyLastThrow(t *testing.T) {
	ctx := context.Background()
	r, throws, _ := newTestRegistry(t)
	id := r.Snapshot().ActiveID

	for i := 0; i < 3; i++ {
		require.NoError(t, r.RecordThrow(ctx, id, i%2 == 0))
	}
	before := r.Snapshot().Session(id).Drafts

	require.NoError(t, r.Undo(ctx, id))

	after := r.Snapshot().Session(id).Drafts
	require.Len(t, after, 2)
	assert.Equal(t, before[:2], after)
	assert.Equal(t, 2, throws.draftCount())

	// Undo is repeatable down to empty, then a harmless no-op.
	require.NoError(t, r.Undo(ctx, id))
	require.NoError(t, r.Undo(ctx, id))
	require.NoError(t, r.Undo(ctx, id))
	assert.Empty(t, r.Snapshot().Session(id).Drafts)
	assert.Equal(t, 0, throws.draftCount())
}

func TestUndoUsesInsertionOrderNotTimestamp(t *testing.T) {
	ctx := context.Background()
	r, _, _ := newTestRegistry(t)
	id := r.Snapshot().ActiveID

	// Clock runs backwards; insertion order must still win.
	restore := now
	defer func() { now = restore }()
	base := time.Now()
	calls := 0
	now = func() time.Time {
		calls++
		return base.Add(-time.Duration(calls) * time.Minute)
	}

	require.NoError(t, r.RecordThrow(ctx, id, true))
	require.NoError(t, r.RecordThrow(ctx, id, false))

	require.NoError(t, r.Undo(ctx, id))
	s := r.Snapshot().Session(id)
	require.Len(t, s.Drafts, 1)
	assert.True(t, s.Drafts[0].IsSuccess)
}

func TestCommitConservesDraftsAsRecords(t *testing.T) {
	ctx := context.Background()
	r, throws, _ := newTestRegistry(t)
	id := r.Snapshot().ActiveID

	require.NoError(t, r.AddDistance(id, 6))
	require.NoError(t, r.RecordThrow(ctx, id, true))
	r.SelectDistance(id, DefaultDistance)
	require.NoError(t, r.RecordThrow(ctx, id, false))

	staged := r.Snapshot().Session(id).Drafts
	require.NoError(t, r.Commit(ctx, id))

	s := r.Snapshot().Session(id)
	assert.Empty(t, s.Drafts)
	assert.False(t, s.IsDirty())
	assert.Equal(t, 0, throws.draftCount())

	require.Len(t, throws.records, len(staged))
	for i, rec := range throws.records {
		assert.Equal(t, staged[i].UserID, rec.UserID)
		assert.Equal(t, staged[i].Distance, rec.Distance)
		assert.Equal(t, staged[i].Angle, rec.Angle)
		assert.Equal(t, staged[i].IsSuccess, rec.IsSuccess)
		assert.Equal(t, staged[i].Timestamp, rec.Timestamp)
	}

	// Committing an already-clean session changes nothing.
	require.NoError(t, r.Commit(ctx, id))
	assert.Len(t, throws.records, len(staged))
}

func TestDiscardDropsDraftsWithoutRecords(t *testing.T) {
	ctx := context.Background()
	r, throws, _ := newTestRegistry(t)
	id := r.Snapshot().ActiveID

	require.NoError(t, r.RecordThrow(ctx, id, true))
	require.NoError(t, r.RecordThrow(ctx, id, true))
	require.NoError(t, r.Discard(ctx, id))

	assert.Empty(t, r.Snapshot().Session(id).Drafts)
	assert.Equal(t, 0, throws.draftCount())
	assert.Empty(t, throws.records)
}

func TestTwoThrowsUndoCommitLeavesSingleRecord(t *testing.T) {
	ctx := context.Background()
	r, throws, _ := newTestRegistry(t)
	id := r.Snapshot().ActiveID

	require.NoError(t, r.RecordThrow(ctx, id, true))
	require.NoError(t, r.RecordThrow(ctx, id, false))
	require.NoError(t, r.Undo(ctx, id))
	require.NoError(t, r.Commit(ctx, id))

	require.Len(t, throws.records, 1)
	assert.True(t, throws.records[0].IsSuccess)
	assert.Equal(t, 0, throws.draftCount())
	assert.False(t, r.Snapshot().Session(id).IsDirty())
}

func TestRecordThrowStorageFailureLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	r, throws, _ := newTestRegistry(t)
	id := r.Snapshot().ActiveID

	throws.failOnce(errors.New("disk full"))
	err := r.RecordThrow(ctx, id, true)
	require.Error(t, err)

	s := r.Snapshot().Session(id)
	assert.Empty(t, s.Drafts)
	assert.False(t, s.IsDirty())
	assert.Equal(t, 0, throws.draftCount())

	// The engine is fully usable afterwards.
	require.NoError(t, r.RecordThrow(ctx, id, true))
	assert.Len(t, r.Snapshot().Session(id).Drafts, 1)
}

func TestCommitFailureKeepsDrafts(t *testing.T) {
	ctx := context.Background()
	r, throws, _ := newTestRegistry(t)
	id := r.Snapshot().ActiveID

	require.NoError(t, r.RecordThrow(ctx, id, true))
	throws.failOnce(errors.New("database locked"))
	require.Error(t, r.Commit(ctx, id))

	assert.Len(t, r.Snapshot().Session(id).Drafts, 1)
	assert.Equal(t, 1, throws.draftCount())
	assert.Empty(t, throws.records)

	// Retry succeeds.
	require.NoError(t, r.Commit(ctx, id))
	assert.Len(t, throws.records, 1)
}

func TestRequestExitCleanSessionsAllowsImmediateExit(t *testing.T) {
	r, _, _ := newTestRegistry(t)
	r.AddSession()

	assert.True(t, r.RequestExit())
	assert.Equal(t, PendingNone, r.Snapshot().Pending.Kind)
}

func TestRequestExitWithDirtySessionOpensConfirmation(t *testing.T) {
	ctx := context.Background()
	r, _, _ := newTestRegistry(t)
	id := r.Snapshot().ActiveID
	require.NoError(t, r.RecordThrow(ctx, id, true))

	assert.False(t, r.RequestExit())
	assert.Equal(t, PendingExit, r.Snapshot().Pending.Kind)

	r.CancelExit()
	assert.Equal(t, PendingNone, r.Snapshot().Pending.Kind)
	assert.Len(t, r.Snapshot().Session(id).Drafts, 1)
}

func TestConfirmExitSaveCommitsEveryDirtySession(t *testing.T) {
	ctx := context.Background()
	r, throws, _ := newTestRegistry(t)

	first := r.Snapshot().ActiveID
	r.AddSession()
	second := r.Snapshot().ActiveID
	require.NoError(t, r.RecordThrow(ctx, first, true))
	require.NoError(t, r.RecordThrow(ctx, second, false))
	require.NoError(t, r.RecordThrow(ctx, second, true))

	require.False(t, r.RequestExit())
	require.NoError(t, r.ConfirmExit(ctx, true))

	assert.Len(t, throws.records, 3)
	assert.Equal(t, 0, throws.draftCount())
	snap := r.Snapshot()
	assert.Equal(t, PendingNone, snap.Pending.Kind)
	assert.False(t, snap.AnyDirty())
}

func TestConfirmExitDiscardDropsEveryDraft(t *testing.T) {
	ctx := context.Background()
	r, throws, _ := newTestRegistry(t)
	id := r.Snapshot().ActiveID
	require.NoError(t, r.RecordThrow(ctx, id, true))

	require.False(t, r.RequestExit())
	require.NoError(t, r.ConfirmExit(ctx, false))

	assert.Empty(t, throws.records)
	assert.Equal(t, 0, throws.draftCount())
	assert.False(t, r.Snapshot().AnyDirty())
}

func TestConfirmExitWithoutPendingFails(t *testing.T) {
	r, _, _ := newTestRegistry(t)
	assert.ErrorIs(t, r.ConfirmExit(context.Background(), true), ErrNoPending)
}

func TestConfirmExitFailureKeepsConfirmationOpen(t *testing.T) {
	ctx := context.Background()
	r, throws, _ := newTestRegistry(t)
	id := r.Snapshot().ActiveID
	require.NoError(t, r.RecordThrow(ctx, id, true))

	require.False(t, r.RequestExit())
	throws.failOnce(errors.New("database locked"))
	require.Error(t, r.ConfirmExit(ctx, true))

	// Still pending, drafts intact; retry succeeds.
	assert.Equal(t, PendingExit, r.Snapshot().Pending.Kind)
	assert.Len(t, r.Snapshot().Session(id).Drafts, 1)

	require.NoError(t, r.ConfirmExit(ctx, true))
	assert.Len(t, throws.records, 1)
	assert.Equal(t, PendingNone, r.Snapshot().Pending.Kind)
}

func TestMutationCancelsPendingConfirmation(t *testing.T) {
	ctx := context.Background()
	r, _, _ := newTestRegistry(t)
	id := r.Snapshot().ActiveID
	require.NoError(t, r.RecordThrow(ctx, id, true))

	require.False(t, r.RequestExit())
	require.NoError(t, r.RecordThrow(ctx, id, true))
	assert.Equal(t, PendingNone, r.Snapshot().Pending.Kind)
}
