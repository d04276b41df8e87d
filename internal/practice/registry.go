// Package practice implements the practice session draft engine: a bounded
// registry of concurrently open sessions, the draft staging protocol
// (record/undo/commit/discard), user ownership transfer, and the
// reconstruction-on-restart procedure.
//
// All in-memory mutations are applied under the registry's lock, but a
// mutation that depends on a durable write is applied only after the write
// has been confirmed; a storage failure leaves the in-memory state exactly
// as it was. Callers are expected to issue operations for a given session
// sequentially (one logical actor); operations on different sessions only
// contend for the brief in-memory critical sections, never for each other's
// storage I/O.
package practice

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/molkkylog/internal/prefs"
	"github.com/abhisek/molkkylog/internal/store"
)

// Registry owns the in-memory session map and is the only writer of the
// configuration snapshot. Construct with NewRegistry, then call Load before
// issuing any mutation.
type Registry struct {
	throws store.ThrowRepo
	users  store.UserRepo
	prefs  *prefs.Prefs

	mu          sync.Mutex
	ready       bool
	sessions    map[string]*SessionState
	tabs        []string
	activeID    string
	userList    []store.User
	defaultUser store.User
	pending     Pending
	subs        map[chan Snapshot]struct{}

	saver *saver
}

// NewRegistry wires the registry to its repositories and snapshot store.
// The returned registry is not ready until Load completes.
func NewRegistry(throws store.ThrowRepo, users store.UserRepo, p *prefs.Prefs) *Registry {
	r := &Registry{
		throws:   throws,
		users:    users,
		prefs:    p,
		sessions: make(map[string]*SessionState),
		subs:     make(map[chan Snapshot]struct{}),
	}
	r.saver = newSaver(saveDebounce, r.saveShape)
	return r
}

// Snapshot returns an immutable view of the current registry state.
func (r *Registry) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

// Subscribe returns a channel that receives a snapshot after every applied
// change, and a cancel function. The channel holds only the latest value:
// slow readers see coalesced updates, never stale ones.
func (r *Registry) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 1)
	r.mu.Lock()
	r.subs[ch] = struct{}{}
	ch <- r.snapshotLocked()
	r.mu.Unlock()

	cancel := func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if _, ok := r.subs[ch]; ok {
			delete(r.subs, ch)
			close(ch)
		}
	}
	return ch, cancel
}

// Close flushes any pending snapshot write and stops publishing.
func (r *Registry) Close() {
	r.saver.close()
	r.mu.Lock()
	defer r.mu.Unlock()
	for ch := range r.subs {
		close(ch)
	}
	r.subs = make(map[chan Snapshot]struct{})
}

// AddSession opens a new default session and makes it active. Silently a
// no-op at the session cap.
func (r *Registry) AddSession() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.ready {
		return
	}
	r.cancelPendingLocked()
	if len(r.sessions) >= MaxSessions {
		return
	}

	id := newSessionID()
	r.sessions[id] = newDefaultSession(id, r.defaultUser)
	r.tabs = append(r.tabs, id)
	r.activeID = id
	r.markChangedLocked()
}

// SelectSession makes an open session the active tab. Unknown ids are a
// no-op.
func (r *Registry) SelectSession(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.ready {
		return
	}
	r.cancelPendingLocked()
	if _, ok := r.sessions[id]; !ok || r.activeID == id {
		return
	}
	r.activeID = id
	r.markChangedLocked()
}

// RemoveSession closes a session, discarding its drafts. At least one
// session must remain open.
func (r *Registry) RemoveSession(ctx context.Context, id string) error {
	r.mu.Lock()
	if !r.ready {
		r.mu.Unlock()
		return ErrNotReady
	}
	r.cancelPendingLocked()
	s, ok := r.sessions[id]
	if !ok {
		r.mu.Unlock()
		return nil
	}
	if len(r.sessions) == 1 {
		r.mu.Unlock()
		return ErrLastSession
	}
	ids := draftIDs(s.Drafts)
	r.mu.Unlock()

	if len(ids) > 0 {
		if err := r.throws.DiscardDrafts(ctx, ids); err != nil {
			return fmt.Errorf("discard drafts of closing session: %w", err)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return nil
	}
	// Re-validate under the second lock: a concurrent removal may have
	// closed another tab while the drafts were being discarded.
	if len(r.sessions) == 1 {
		return ErrLastSession
	}
	delete(r.sessions, id)
	r.tabs = removeTab(r.tabs, id)
	if r.activeID == id {
		r.activeID = r.tabs[0]
	}
	r.markChangedLocked()
	return nil
}

// SelectDistance sets the session's active distance. A no-op unless d is
// among the configured distances.
func (r *Registry) SelectDistance(id string, d float64) {
	r.updateSession(id, func(s *SessionState) bool {
		if !s.HasDistance(d) {
			return false
		}
		if s.ActiveDistance != nil && *s.ActiveDistance == d {
			return false
		}
		v := d
		s.ActiveDistance = &v
		return true
	})
}

// SelectAngle sets the session's throwing angle.
func (r *Registry) SelectAngle(id string, a store.Angle) {
	r.updateSession(id, func(s *SessionState) bool {
		if !a.Valid() || s.Angle == a {
			return false
		}
		s.Angle = a
		return true
	})
}

// AddDistance configures a new target distance for the session and makes it
// active.
func (r *Registry) AddDistance(id string, d float64) error {
	if d <= 0 {
		return ErrInvalidDistance
	}
	r.updateSession(id, func(s *SessionState) bool {
		s.Distances = insertSorted(s.Distances, d)
		v := d
		s.ActiveDistance = &v
		return true
	})
	return nil
}

// RemoveDistance drops a configured distance. Drafts recorded at that
// distance no longer have a valid target and are discarded, not committed;
// an active distance that is removed falls to the next configured one.
func (r *Registry) RemoveDistance(ctx context.Context, id string, d float64) error {
	r.mu.Lock()
	if !r.ready {
		r.mu.Unlock()
		return ErrNotReady
	}
	r.cancelPendingLocked()
	s, ok := r.sessions[id]
	if !ok || !s.HasDistance(d) {
		r.mu.Unlock()
		return nil
	}
	var doomed []int
	for _, draft := range s.Drafts {
		if draft.Distance == d {
			doomed = append(doomed, draft.ID)
		}
	}
	r.mu.Unlock()

	if len(doomed) > 0 {
		if err := r.throws.DiscardDrafts(ctx, doomed); err != nil {
			return fmt.Errorf("discard drafts at removed distance: %w", err)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok = r.sessions[id]
	if !ok {
		return nil
	}
	kept := s.Distances[:0:0]
	for _, v := range s.Distances {
		if v != d {
			kept = append(kept, v)
		}
	}
	s.Distances = kept
	remaining := s.Drafts[:0:0]
	for _, draft := range s.Drafts {
		if draft.Distance != d {
			remaining = append(remaining, draft)
		}
	}
	s.Drafts = remaining
	if s.ActiveDistance != nil && *s.ActiveDistance == d {
		if len(s.Distances) > 0 {
			v := s.Distances[0]
			s.ActiveDistance = &v
		} else {
			s.ActiveDistance = nil
		}
	}
	r.markChangedLocked()
	return nil
}

// SetWeather updates the session's weather snapshot field.
func (r *Registry) SetWeather(id string, w *string) {
	r.updateSession(id, func(s *SessionState) bool {
		s.Env.Weather = w
		return true
	})
}

// SetHumidity updates the session's humidity snapshot field.
func (r *Registry) SetHumidity(id string, h *float64) {
	r.updateSession(id, func(s *SessionState) bool {
		s.Env.Humidity = h
		return true
	})
}

// SetTemperature updates the session's temperature snapshot field.
func (r *Registry) SetTemperature(id string, t *float64) {
	r.updateSession(id, func(s *SessionState) bool {
		s.Env.Temperature = t
		return true
	})
}

// SetSoil updates the session's soil snapshot field.
func (r *Registry) SetSoil(id string, soil *string) {
	r.updateSession(id, func(s *SessionState) bool {
		s.Env.Soil = soil
		return true
	})
}

// SetMolkkyWeight updates the session's pin weight snapshot field.
func (r *Registry) SetMolkkyWeight(id string, w *float64) {
	r.updateSession(id, func(s *SessionState) bool {
		s.Env.MolkkyWeight = w
		return true
	})
}

// ResetEnvironment clears every environment field in one step.
func (r *Registry) ResetEnvironment(id string) {
	r.updateSession(id, func(s *SessionState) bool {
		s.Env = store.Environment{}
		return true
	})
}

// updateSession applies a pure in-memory mutation to one session. fn
// reports whether anything changed.
func (r *Registry) updateSession(id string, fn func(*SessionState) bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.ready {
		return
	}
	r.cancelPendingLocked()
	s, ok := r.sessions[id]
	if !ok {
		return
	}
	if fn(s) {
		r.markChangedLocked()
	}
}

// cancelPendingLocked drops any open confirmation. Any interaction other
// than the confirmation's own resolving actions returns the registry to
// normal operation without side effects.
func (r *Registry) cancelPendingLocked() {
	r.pending = Pending{}
}

// markChangedLocked publishes a fresh snapshot and schedules a debounced
// shape write. The write is gated until reconciliation has finished so a
// partially loaded registry can never overwrite the persisted shape.
func (r *Registry) markChangedLocked() {
	r.publishLocked()
	if r.ready {
		r.saver.trigger()
	}
}

func (r *Registry) publishLocked() {
	snap := r.snapshotLocked()
	for ch := range r.subs {
		// Keep only the latest value per subscriber.
		select {
		case ch <- snap:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
}

func (r *Registry) snapshotLocked() Snapshot {
	snap := Snapshot{
		Ready:    r.ready,
		ActiveID: r.activeID,
		Pending:  r.pending,
		Users:    append([]store.User(nil), r.userList...),
	}
	for _, id := range r.tabs {
		if s, ok := r.sessions[id]; ok {
			snap.Sessions = append(snap.Sessions, s.clone())
		}
	}
	return snap
}

func draftIDs(drafts []store.ThrowDraft) []int {
	ids := make([]int, 0, len(drafts))
	for _, d := range drafts {
		ids = append(ids, d.ID)
	}
	return ids
}

func removeTab(tabs []string, id string) []string {
	out := tabs[:0:0]
	for _, t := range tabs {
		if t != id {
			out = append(out, t)
		}
	}
	return out
}

// now is stubbed in tests.
var now = time.Now

// newSessionID allocates an id distinct from every currently or previously
// open session.
func newSessionID() string {
	return uuid.NewString()
}
