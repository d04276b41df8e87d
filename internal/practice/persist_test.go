package practice

import (
	"context"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/molkkylog/internal/prefs"
	"github.com/abhisek/molkkylog/internal/store"
)

func TestSaverCoalescesBursts(t *testing.T) {
	var calls atomic.Int32
	s := newSaver(20*time.Millisecond, func() { calls.Add(1) })
	defer s.close()

	for i := 0; i < 5; i++ {
		s.trigger()
	}
	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	// The window has passed; a fresh burst schedules a fresh save.
	s.trigger()
	require.Eventually(t, func() bool { return calls.Load() == 2 }, time.Second, 5*time.Millisecond)
}

func TestSaverCloseFlushesPendingSave(t *testing.T) {
	var calls atomic.Int32
	s := newSaver(time.Hour, func() { calls.Add(1) })

	s.trigger()
	s.close()
	assert.Equal(t, int32(1), calls.Load())

	// Closed savers stay quiet.
	s.trigger()
	s.close()
	assert.Equal(t, int32(1), calls.Load())
}

func TestSaverCloseWithoutPendingDoesNotSave(t *testing.T) {
	var calls atomic.Int32
	s := newSaver(time.Hour, func() { calls.Add(1) })
	s.close()
	assert.Equal(t, int32(0), calls.Load())
}

func TestSaveShapeGatedUntilReconciled(t *testing.T) {
	throws := newFakeThrowRepo()
	users := newFakeUserRepo(throws)
	path := filepath.Join(t.TempDir(), "sessions.yaml")
	p, err := prefs.Load(path)
	require.NoError(t, err)

	r := NewRegistry(throws, users, p)
	t.Cleanup(r.Close)
	r.saveShape()

	_, ok := p.Get(keyTabs)
	assert.False(t, ok)
}

func TestCloseFlushesShapeToDisk(t *testing.T) {
	ctx := context.Background()
	throws := newFakeThrowRepo()
	users := newFakeUserRepo(throws)
	path := filepath.Join(t.TempDir(), "sessions.yaml")
	p, err := prefs.Load(path)
	require.NoError(t, err)

	r := NewRegistry(throws, users, p)
	require.NoError(t, r.Load(ctx))
	id := r.Snapshot().ActiveID
	require.NoError(t, r.RecordThrow(ctx, id, true))
	r.Close()

	reloaded, err := prefs.Load(path)
	require.NoError(t, err)

	tabs, ok := reloaded.Get(keyTabs)
	require.True(t, ok)
	assert.Equal(t, id, tabs)
	active, _ := reloaded.Get(keyActive)
	assert.Equal(t, id, active)
	ids, ok := reloaded.Get(sessionKey(id, suffixDraftIDs))
	require.True(t, ok)
	assert.Equal(t, "1", ids)
}

func TestShapeSerialization(t *testing.T) {
	ctx := context.Background()
	r, _, _ := newTestRegistry(t)
	id := r.Snapshot().ActiveID

	require.NoError(t, r.AddDistance(id, 7.5))
	r.SelectAngle(id, store.AngleRight)
	humidity := 61.5
	r.SetHumidity(id, &humidity)
	require.NoError(t, r.RecordThrow(ctx, id, true))

	r.mu.Lock()
	shape := r.serializeShapeLocked()
	r.mu.Unlock()

	assert.Equal(t, id, shape[keyTabs])
	assert.Equal(t, id, shape[keyActive])
	assert.Equal(t, "1", shape[sessionKey(id, suffixUser)])
	assert.Equal(t, "4,7.5", shape[sessionKey(id, suffixDistances)])
	assert.Equal(t, "7.5", shape[sessionKey(id, suffixActiveDistance)])
	assert.Equal(t, "RIGHT", shape[sessionKey(id, suffixAngle)])
	assert.Equal(t, "61.5", shape[sessionKey(id, suffixHumidity)])
	assert.Equal(t, "1", shape[sessionKey(id, suffixDraftIDs)])

	// Absent conditions are absent keys, not empty values.
	_, ok := shape[sessionKey(id, suffixWeather)]
	assert.False(t, ok)
}

func TestRemovedSessionKeysDoNotLinger(t *testing.T) {
	ctx := context.Background()
	r, _, _ := newTestRegistry(t)

	first := r.Snapshot().ActiveID
	r.AddSession()
	second := r.Snapshot().ActiveID
	require.NoError(t, r.RemoveSession(ctx, second))

	r.mu.Lock()
	shape := r.serializeShapeLocked()
	r.mu.Unlock()

	assert.Equal(t, first, shape[keyTabs])
	for key := range shape {
		assert.NotContains(t, key, second)
	}
}
