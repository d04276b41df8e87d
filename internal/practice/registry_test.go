package practice

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/molkkylog/internal/prefs"
	"github.com/abhisek/molkkylog/internal/store"
)

func newTestRegistry(t *testing.T) (*Registry, *fakeThrowRepo, *fakeUserRepo) {
	t.Helper()
	throws := newFakeThrowRepo()
	users := newFakeUserRepo(throws)
	p, err := prefs.Load(filepath.Join(t.TempDir(), "sessions.yaml"))
	require.NoError(t, err)
	r := NewRegistry(throws, users, p)
	require.NoError(t, r.Load(context.Background()))
	t.Cleanup(r.Close)
	return r, throws, users
}

func TestLoadSeedsDefaultSession(t *testing.T) {
	r, _, _ := newTestRegistry(t)

	snap := r.Snapshot()
	require.True(t, snap.Ready)
	require.Len(t, snap.Sessions, 1)

	s := snap.Active()
	require.NotNil(t, s)
	assert.Equal(t, store.DefaultUserName, s.UserName)
	assert.Equal(t, []float64{DefaultDistance}, s.Distances)
	require.NotNil(t, s.ActiveDistance)
	assert.Equal(t, DefaultDistance, *s.ActiveDistance)
	assert.Equal(t, store.AngleCenter, s.Angle)
	assert.False(t, s.IsDirty())
}

func TestAddSessionCapsAtFive(t *testing.T) {
	r, _, _ := newTestRegistry(t)

	for i := 0; i < MaxSessions+3; i++ {
		r.AddSession()
	}
	snap := r.Snapshot()
	assert.Len(t, snap.Sessions, MaxSessions)

	// Session ids stay unique.
	seen := make(map[string]bool)
	for _, s := range snap.Sessions {
		assert.False(t, seen[s.ID])
		seen[s.ID] = true
	}
}

func TestAddSessionActivatesNewTab(t *testing.T) {
	r, _, _ := newTestRegistry(t)

	first := r.Snapshot().ActiveID
	r.AddSession()
	snap := r.Snapshot()
	require.Len(t, snap.Sessions, 2)
	assert.NotEqual(t, first, snap.ActiveID)
	assert.Equal(t, snap.Sessions[1].ID, snap.ActiveID)
}

func TestSelectSession(t *testing.T) {
	r, _, _ := newTestRegistry(t)
	r.AddSession()

	first := r.Snapshot().Sessions[0].ID
	r.SelectSession(first)
	assert.Equal(t, first, r.Snapshot().ActiveID)

	r.SelectSession("no-such-session")
	assert.Equal(t, first, r.Snapshot().ActiveID)
}

func TestRemoveLastSessionRefused(t *testing.T) {
	r, _, _ := newTestRegistry(t)

	id := r.Snapshot().ActiveID
	err := r.RemoveSession(context.Background(), id)
	require.ErrorIs(t, err, ErrLastSession)
	assert.Len(t, r.Snapshot().Sessions, 1)
}

func TestConcurrentRemoveSessionKeepsOneOpen(t *testing.T) {
	ctx := context.Background()
	r, throws, _ := newTestRegistry(t)

	first := r.Snapshot().ActiveID
	r.AddSession()
	second := r.Snapshot().ActiveID
	require.NoError(t, r.RecordThrow(ctx, first, true))
	require.NoError(t, r.RecordThrow(ctx, second, true))

	// Hold both removals inside their durable-discard window so each has
	// already passed the two-sessions check before either deletes.
	entered, release := throws.blockDiscards()
	errs := make(chan error, 2)
	go func() { errs <- r.RemoveSession(ctx, first) }()
	go func() { errs <- r.RemoveSession(ctx, second) }()
	<-entered
	<-entered
	release()

	refused := 0
	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			require.ErrorIs(t, err, ErrLastSession)
			refused++
		}
	}
	assert.Equal(t, 1, refused)
	assert.Len(t, r.Snapshot().Sessions, 1)
}

func TestRemoveSessionDiscardsOnlyItsDrafts(t *testing.T) {
	ctx := context.Background()
	r, throws, _ := newTestRegistry(t)

	first := r.Snapshot().ActiveID
	r.AddSession()
	second := r.Snapshot().ActiveID
	require.NotEqual(t, first, second)

	require.NoError(t, r.RecordThrow(ctx, first, true))
	require.NoError(t, r.RecordThrow(ctx, first, false))
	require.NoError(t, r.RecordThrow(ctx, second, true))
	require.Equal(t, 3, throws.draftCount())

	require.NoError(t, r.RemoveSession(ctx, second))

	snap := r.Snapshot()
	require.Len(t, snap.Sessions, 1)
	assert.Equal(t, first, snap.ActiveID)

	// The removed session's draft is gone without becoming a record; the
	// surviving session keeps its queue untouched.
	assert.Equal(t, 2, throws.draftCount())
	assert.Empty(t, throws.records)
	assert.Len(t, snap.Session(first).Drafts, 2)
}

func TestAddDistance(t *testing.T) {
	r, _, _ := newTestRegistry(t)
	id := r.Snapshot().ActiveID

	require.NoError(t, r.AddDistance(id, 6.5))
	require.NoError(t, r.AddDistance(id, 3))

	s := r.Snapshot().Session(id)
	assert.Equal(t, []float64{3, DefaultDistance, 6.5}, s.Distances)
	require.NotNil(t, s.ActiveDistance)
	assert.Equal(t, 3.0, *s.ActiveDistance)
}

func TestAddDistanceRejectsNonPositive(t *testing.T) {
	r, _, _ := newTestRegistry(t)
	id := r.Snapshot().ActiveID

	assert.ErrorIs(t, r.AddDistance(id, 0), ErrInvalidDistance)
	assert.ErrorIs(t, r.AddDistance(id, -2), ErrInvalidDistance)
	assert.Equal(t, []float64{DefaultDistance}, r.Snapshot().Session(id).Distances)
}

func TestAddDistanceDuplicateSelectsExisting(t *testing.T) {
	r, _, _ := newTestRegistry(t)
	id := r.Snapshot().ActiveID

	require.NoError(t, r.AddDistance(id, 6))
	require.NoError(t, r.AddDistance(id, DefaultDistance))

	s := r.Snapshot().Session(id)
	assert.Equal(t, []float64{DefaultDistance, 6}, s.Distances)
	require.NotNil(t, s.ActiveDistance)
	assert.Equal(t, DefaultDistance, *s.ActiveDistance)
}

func TestSelectDistanceNonMemberIgnored(t *testing.T) {
	r, _, _ := newTestRegistry(t)
	id := r.Snapshot().ActiveID

	r.SelectDistance(id, 9.9)
	s := r.Snapshot().Session(id)
	require.NotNil(t, s.ActiveDistance)
	assert.Equal(t, DefaultDistance, *s.ActiveDistance)
}

func TestRemoveDistanceDiscardsItsDrafts(t *testing.T) {
	ctx := context.Background()
	r, throws, _ := newTestRegistry(t)
	id := r.Snapshot().ActiveID

	require.NoError(t, r.AddDistance(id, 6))
	require.NoError(t, r.RecordThrow(ctx, id, true)) // at 6
	r.SelectDistance(id, DefaultDistance)
	require.NoError(t, r.RecordThrow(ctx, id, true)) // at 4

	require.NoError(t, r.RemoveDistance(ctx, id, 6))

	s := r.Snapshot().Session(id)
	assert.Equal(t, []float64{DefaultDistance}, s.Distances)
	require.Len(t, s.Drafts, 1)
	assert.Equal(t, DefaultDistance, s.Drafts[0].Distance)
	assert.Equal(t, 1, throws.draftCount())
}

func TestRemoveActiveDistanceRetargets(t *testing.T) {
	ctx := context.Background()
	r, _, _ := newTestRegistry(t)
	id := r.Snapshot().ActiveID

	require.NoError(t, r.AddDistance(id, 6))
	r.SelectDistance(id, 6)
	require.NoError(t, r.RemoveDistance(ctx, id, 6))

	s := r.Snapshot().Session(id)
	require.NotNil(t, s.ActiveDistance)
	assert.Equal(t, DefaultDistance, *s.ActiveDistance)

	require.NoError(t, r.RemoveDistance(ctx, id, DefaultDistance))
	s = r.Snapshot().Session(id)
	assert.Empty(t, s.Distances)
	assert.Nil(t, s.ActiveDistance)
}

func TestEnvironmentSettersAndReset(t *testing.T) {
	r, _, _ := newTestRegistry(t)
	id := r.Snapshot().ActiveID

	weather := "rain"
	humidity := 61.5
	temp := 18.0
	soil := "gravel"
	weight := 800.0
	r.SetWeather(id, &weather)
	r.SetHumidity(id, &humidity)
	r.SetTemperature(id, &temp)
	r.SetSoil(id, &soil)
	r.SetMolkkyWeight(id, &weight)

	env := r.Snapshot().Session(id).Env
	require.NotNil(t, env.Weather)
	assert.Equal(t, "rain", *env.Weather)
	require.NotNil(t, env.Humidity)
	assert.Equal(t, 61.5, *env.Humidity)
	require.NotNil(t, env.Temperature)
	assert.Equal(t, 18.0, *env.Temperature)
	require.NotNil(t, env.Soil)
	assert.Equal(t, "gravel", *env.Soil)
	require.NotNil(t, env.MolkkyWeight)
	assert.Equal(t, 800.0, *env.MolkkyWeight)

	r.ResetEnvironment(id)
	env = r.Snapshot().Session(id).Env
	assert.Nil(t, env.Weather)
	assert.Nil(t, env.Humidity)
	assert.Nil(t, env.Temperature)
	assert.Nil(t, env.Soil)
	assert.Nil(t, env.MolkkyWeight)
}

func TestSelectAngle(t *testing.T) {
	r, _, _ := newTestRegistry(t)
	id := r.Snapshot().ActiveID

	r.SelectAngle(id, store.AngleLeft)
	assert.Equal(t, store.AngleLeft, r.Snapshot().Session(id).Angle)
}

func TestSnapshotIsDetachedCopy(t *testing.T) {
	ctx := context.Background()
	r, _, _ := newTestRegistry(t)
	id := r.Snapshot().ActiveID
	require.NoError(t, r.RecordThrow(ctx, id, true))

	snap := r.Snapshot()
	snap.Sessions[0].Distances[0] = 99
	snap.Sessions[0].Drafts[0].IsSuccess = false
	junk := "junk"
	snap.Sessions[0].UserName = junk

	fresh := r.Snapshot().Session(id)
	assert.Equal(t, DefaultDistance, fresh.Distances[0])
	assert.True(t, fresh.Drafts[0].IsSuccess)
	assert.Equal(t, store.DefaultUserName, fresh.UserName)
}

func TestSubscribeDeliversLatestSnapshot(t *testing.T) {
	r, _, _ := newTestRegistry(t)

	ch, cancel := r.Subscribe()
	defer cancel()

	// The channel is primed with the current state on subscription.
	snap := <-ch
	assert.Len(t, snap.Sessions, 1)

	// Rapid mutations coalesce; the channel holds only the latest value.
	r.AddSession()
	r.AddSession()
	snap = <-ch
	assert.Len(t, snap.Sessions, 3)
}

func TestOperationsBeforeLoadReturnNotReady(t *testing.T) {
	throws := newFakeThrowRepo()
	users := newFakeUserRepo(throws)
	p, err := prefs.Load(filepath.Join(t.TempDir(), "sessions.yaml"))
	require.NoError(t, err)
	r := NewRegistry(throws, users, p)
	t.Cleanup(r.Close)

	ctx := context.Background()
	assert.ErrorIs(t, r.RecordThrow(ctx, "x", true), ErrNotReady)
	assert.ErrorIs(t, r.Commit(ctx, "x"), ErrNotReady)
	assert.ErrorIs(t, r.Undo(ctx, "x"), ErrNotReady)
	assert.False(t, r.Snapshot().Ready)
}
