package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileYieldsEmptyStore(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	_, ok := p.Get("anything")
	assert.False(t, ok)
}

func TestLoadCorruptFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n\t- not yaml"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestPutGetRemove(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "p.yaml"))
	require.NoError(t, err)

	p.Put("tabs", "a,b")
	v, ok := p.Get("tabs")
	require.True(t, ok)
	assert.Equal(t, "a,b", v)

	// Empty string is a present value, distinct from absence.
	p.Put("active", "")
	v, ok = p.Get("active")
	require.True(t, ok)
	assert.Equal(t, "", v)

	p.Remove("tabs")
	_, ok = p.Get("tabs")
	assert.False(t, ok)
}

func TestFlushRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "p.yaml")
	p, err := Load(path)
	require.NoError(t, err)

	p.Put("session_a_user", "1")
	p.Put("session_a_distances", "4,7.5")
	require.NoError(t, p.Flush())

	reloaded, err := Load(path)
	require.NoError(t, err)
	v, ok := reloaded.Get("session_a_distances")
	require.True(t, ok)
	assert.Equal(t, "4,7.5", v)
}

func TestReplaceAllDropsStaleKeys(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "p.yaml"))
	require.NoError(t, err)

	p.Put("session_gone_user", "2")
	p.ReplaceAll(map[string]string{"tabs": "a"})

	_, ok := p.Get("session_gone_user")
	assert.False(t, ok)
	v, ok := p.Get("tabs")
	require.True(t, ok)
	assert.Equal(t, "a", v)
}

func TestReplaceAllCopiesInput(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "p.yaml"))
	require.NoError(t, err)

	in := map[string]string{"tabs": "a"}
	p.ReplaceAll(in)
	in["tabs"] = "mutated"

	v, _ := p.Get("tabs")
	assert.Equal(t, "a", v)
}

func TestKeysWithPrefix(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "p.yaml"))
	require.NoError(t, err)

	p.Put("session_a_user", "1")
	p.Put("session_a_angle", "CENTER")
	p.Put("session_b_user", "2")
	p.Put("tabs", "a,b")

	keys := p.KeysWithPrefix("session_a_")
	assert.Equal(t, []string{"session_a_angle", "session_a_user"}, keys)
	assert.Empty(t, p.KeysWithPrefix("session_c_"))
}

func TestFlushReplacesPreviousSnapshotWholesale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.yaml")
	p, err := Load(path)
	require.NoError(t, err)
	p.Put("old", "1")
	require.NoError(t, p.Flush())

	p.ReplaceAll(map[string]string{"new": "2"})
	require.NoError(t, p.Flush())

	reloaded, err := Load(path)
	require.NoError(t, err)
	_, ok := reloaded.Get("old")
	assert.False(t, ok)
	v, ok := reloaded.Get("new")
	require.True(t, ok)
	assert.Equal(t, "2", v)
}
