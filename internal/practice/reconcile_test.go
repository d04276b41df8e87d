package practice

import (
	"context"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/molkkylog/internal/prefs"
	"github.com/abhisek/molkkylog/internal/store"
)

// reload persists the registry's current shape and rebuilds a fresh
// registry over the same repositories and snapshot file, as a process
// restart would.
func reload(t *testing.T, r *Registry, throws *fakeThrowRepo, users *fakeUserRepo) *Registry {
	t.Helper()
	r.saveShape()

	p, err := prefs.Load(r.prefs.Path())
	require.NoError(t, err)
	next := NewRegistry(throws, users, p)
	require.NoError(t, next.Load(context.Background()))
	t.Cleanup(next.Close)
	return next
}

func TestReconcileRoundTrip(t *testing.T) {
	ctx := context.Background()
	r, throws, users := newTestRegistry(t)

	first := r.Snapshot().ActiveID
	require.NoError(t, r.AddDistance(first, 7.5))
	r.SelectAngle(first, store.AngleLeft)
	weather := "overcast"
	humidity := 55.0
	r.SetWeather(first, &weather)
	r.SetHumidity(first, &humidity)
	require.NoError(t, r.RecordThrow(ctx, first, true))
	require.NoError(t, r.RecordThrow(ctx, first, false))

	r.AddSession()
	second := r.Snapshot().ActiveID
	require.NoError(t, r.RecordThrow(ctx, second, true))
	r.SelectSession(first)

	before := r.Snapshot()
	after := reload(t, r, throws, users).Snapshot()

	assert.True(t, after.Ready)
	assert.Equal(t, before.ActiveID, after.ActiveID)
	assert.Equal(t, before.Users, after.Users)
	require.Equal(t, len(before.Sessions), len(after.Sessions))
	assert.Equal(t, before.Sessions, after.Sessions)
}

func TestReconcileRoundTripIsIdempotent(t *testing.T) {
	ctx := context.Background()
	r, throws, users := newTestRegistry(t)
	id := r.Snapshot().ActiveID
	require.NoError(t, r.RecordThrow(ctx, id, true))

	once := reload(t, r, throws, users)
	twice := reload(t, once, throws, users)
	assert.Equal(t, once.Snapshot(), twice.Snapshot())
}

func TestReconcileDropsVanishedDraftRows(t *testing.T) {
	ctx := context.Background()
	r, throws, users := newTestRegistry(t)
	id := r.Snapshot().ActiveID

	require.NoError(t, r.RecordThrow(ctx, id, true))
	require.NoError(t, r.RecordThrow(ctx, id, false))
	drafts := r.Snapshot().Session(id).Drafts

	// The first row disappears from the relational store behind the
	// snapshot's back.
	require.NoError(t, throws.DeleteDraft(ctx, drafts[0].ID))

	restored := reload(t, r, throws, users).Snapshot().Session(id)
	require.Len(t, restored.Drafts, 1)
	assert.Equal(t, drafts[1].ID, restored.Drafts[0].ID)
}

func TestReconcileDropsOutOfScopeDrafts(t *testing.T) {
	ctx := context.Background()
	throws := newFakeThrowRepo()
	users := newFakeUserRepo(throws)
	def, err := users.EnsureDefault(ctx)
	require.NoError(t, err)

	// A draft belonging to some other session, referenced by a stale
	// snapshot.
	strayID, err := throws.InsertDraft(ctx, store.ThrowDraft{
		UserID: def.ID, SessionID: "other", Distance: 4, Angle: store.AngleCenter,
	})
	require.NoError(t, err)
	ownID, err := throws.InsertDraft(ctx, store.ThrowDraft{
		UserID: def.ID, SessionID: "s1", Distance: 4, Angle: store.AngleCenter,
	})
	require.NoError(t, err)

	p, err := prefs.Load(filepath.Join(t.TempDir(), "sessions.yaml"))
	require.NoError(t, err)
	p.Put(keyTabs, "s1")
	p.Put(keyActive, "s1")
	p.Put(sessionKey("s1", suffixUser), strconv.Itoa(def.ID))
	p.Put(sessionKey("s1", suffixDistances), "4")
	p.Put(sessionKey("s1", suffixDraftIDs), strconv.Itoa(strayID)+","+strconv.Itoa(ownID))

	r := NewRegistry(throws, users, p)
	require.NoError(t, r.Load(ctx))
	t.Cleanup(r.Close)

	s := r.Snapshot().Session("s1")
	require.NotNil(t, s)
	require.Len(t, s.Drafts, 1)
	assert.Equal(t, ownID, s.Drafts[0].ID)
}

func TestReconcileVanishedOwnerFallsBackToDefault(t *testing.T) {
	ctx := context.Background()
	throws := newFakeThrowRepo()
	users := newFakeUserRepo(throws)

	p, err := prefs.Load(filepath.Join(t.TempDir(), "sessions.yaml"))
	require.NoError(t, err)
	p.Put(keyTabs, "s1")
	p.Put(keyActive, "s1")
	p.Put(sessionKey("s1", suffixUser), "99")

	r := NewRegistry(throws, users, p)
	require.NoError(t, r.Load(ctx))
	t.Cleanup(r.Close)

	s := r.Snapshot().Session("s1")
	require.NotNil(t, s)
	assert.Equal(t, store.DefaultUserName, s.UserName)
}

func TestReconcileShapeFallbacks(t *testing.T) {
	ctx := context.Background()
	throws := newFakeThrowRepo()
	users := newFakeUserRepo(throws)

	p, err := prefs.Load(filepath.Join(t.TempDir(), "sessions.yaml"))
	require.NoError(t, err)
	p.Put(keyTabs, "s1,s2")
	p.Put(keyActive, "gone")
	p.Put(sessionKey("s1", suffixDistances), "garbage,-3,0")
	p.Put(sessionKey("s1", suffixAngle), "SIDEWAYS")
	p.Put(sessionKey("s2", suffixDistances), "3,5")
	p.Put(sessionKey("s2", suffixActiveDistance), "9")

	r := NewRegistry(throws, users, p)
	require.NoError(t, r.Load(ctx))
	t.Cleanup(r.Close)

	snap := r.Snapshot()
	// Unknown active tab falls back to the first.
	assert.Equal(t, "s1", snap.ActiveID)

	s1 := snap.Session("s1")
	assert.Equal(t, []float64{DefaultDistance}, s1.Distances)
	assert.Equal(t, store.AngleCenter, s1.Angle)
	// No persisted selection: the first configured distance is selected
	// so the restored session is immediately throwable.
	require.NotNil(t, s1.ActiveDistance)
	assert.Equal(t, DefaultDistance, *s1.ActiveDistance)

	// A persisted selection that is no longer a member snaps to the first
	// distance.
	s2 := snap.Session("s2")
	require.NotNil(t, s2.ActiveDistance)
	assert.Equal(t, 3.0, *s2.ActiveDistance)
}

func TestReconcileCapsAndDeduplicatesTabs(t *testing.T) {
	ctx := context.Background()
	throws := newFakeThrowRepo()
	users := newFakeUserRepo(throws)

	p, err := prefs.Load(filepath.Join(t.TempDir(), "sessions.yaml"))
	require.NoError(t, err)
	p.Put(keyTabs, "a,b,a,c,d,e,f,g")

	r := NewRegistry(throws, users, p)
	require.NoError(t, r.Load(ctx))
	t.Cleanup(r.Close)

	snap := r.Snapshot()
	require.Len(t, snap.Sessions, MaxSessions)
	ids := make([]string, 0, MaxSessions)
	for _, s := range snap.Sessions {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, ids)
}

func TestReconcileDraftFetchFailureDegradesToEmptyQueue(t *testing.T) {
	ctx := context.Background()
	r, throws, users := newTestRegistry(t)
	id := r.Snapshot().ActiveID
	require.NoError(t, r.RecordThrow(ctx, id, true))
	r.saveShape()

	p, err := prefs.Load(r.prefs.Path())
	require.NoError(t, err)
	next := NewRegistry(throws, users, p)
	throws.failOnce(assert.AnError)
	require.NoError(t, next.Load(ctx))
	t.Cleanup(next.Close)

	s := next.Snapshot().Session(id)
	require.NotNil(t, s)
	assert.Empty(t, s.Drafts)
	assert.True(t, next.Snapshot().Ready)
}
