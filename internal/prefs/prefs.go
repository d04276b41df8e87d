// Package prefs is a small durable key-value store for session shape.
// Values are strings; numeric values are stored as decimal text so that
// "absent" and "zero" stay distinguishable. The whole map is written as a
// single YAML file with an atomic temp-file rename, so a crash mid-write
// leaves the previous snapshot intact.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Prefs is a file-backed string map. All methods are safe for concurrent use.
type Prefs struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// Load reads the preferences file at path. A missing file yields an empty
// store; a corrupt file is an error so callers can decide to start fresh.
func Load(path string) (*Prefs, error) {
	p := &Prefs{path: path, values: make(map[string]string)}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return nil, fmt.Errorf("read prefs: %w", err)
	}
	if err := yaml.Unmarshal(data, &p.values); err != nil {
		return nil, fmt.Errorf("parse prefs: %w", err)
	}
	if p.values == nil {
		p.values = make(map[string]string)
	}
	return p, nil
}

// Path returns the backing file path.
func (p *Prefs) Path() string {
	return p.path
}

// Get returns the value for key and whether it was present.
func (p *Prefs) Get(key string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	v, ok := p.values[key]
	return v, ok
}

// Put sets key to value in memory. Flush makes it durable.
func (p *Prefs) Put(key, value string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.values[key] = value
}

// Remove deletes key in memory.
func (p *Prefs) Remove(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.values, key)
}

// KeysWithPrefix returns all present keys starting with prefix, sorted.
func (p *Prefs) KeysWithPrefix(prefix string) []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	var keys []string
	for k := range p.values {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// ReplaceAll swaps the entire map in memory. Used for whole-shape rewrites
// so stale keys from removed sessions never linger.
func (p *Prefs) ReplaceAll(values map[string]string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.values = make(map[string]string, len(values))
	for k, v := range values {
		p.values[k] = v
	}
}

// Flush writes the current map to disk atomically.
func (p *Prefs) Flush() error {
	p.mu.Lock()
	data, err := yaml.Marshal(p.values)
	p.mu.Unlock()
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	dir := filepath.Dir(p.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".prefs-*.yaml")
	if err != nil {
		return fmt.Errorf("create temp prefs: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp prefs: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp prefs: %w", err)
	}
	if err := os.Rename(tmpName, p.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace prefs: %w", err)
	}
	return nil
}
