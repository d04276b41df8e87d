package practice

import (
	"sort"

	"github.com/abhisek/molkkylog/internal/store"
)

// MaxSessions is the maximum number of concurrently open practice sessions.
const MaxSessions = 5

// DefaultDistance seeds a fresh session's configured distances, in meters.
const DefaultDistance = 4.0

// SessionState is one practice tab: its configuration, its owning user, and
// the in-memory mirror of its staged drafts. Drafts appear here only after
// their durable insert has been confirmed, so the mirror never runs ahead of
// the relational store.
type SessionState struct {
	// ID is the opaque session identifier scoping this tab's drafts.
	ID string

	// UserID is the owning user's id.
	UserID int

	// UserName is a denormalized cache of the owning user's name.
	UserName string

	// Distances are the configured target distances, sorted ascending.
	Distances []float64

	// ActiveDistance is the distance the next throw is recorded against,
	// or nil when no distance is selected. When non-nil it is always a
	// member of Distances.
	ActiveDistance *float64

	// Angle is the currently selected throwing angle.
	Angle store.Angle

	// Env is the environment snapshot inherited by subsequent throws.
	Env store.Environment

	// Drafts is the ordered in-memory mirror of this session's staged
	// drafts. Insertion order is chronological order; the tail is the
	// undo target.
	Drafts []store.ThrowDraft
}

// IsDirty reports whether the session has uncommitted drafts.
func (s *SessionState) IsDirty() bool {
	return len(s.Drafts) > 0
}

// CanUndo reports whether an undo would remove a draft. Always equal to
// IsDirty.
func (s *SessionState) CanUndo() bool {
	return len(s.Drafts) > 0
}

// ThrowsByDistance groups the session's drafts by target distance,
// preserving insertion order within each group.
func (s *SessionState) ThrowsByDistance() map[float64][]store.ThrowDraft {
	grouped := make(map[float64][]store.ThrowDraft)
	for _, d := range s.Drafts {
		grouped[d.Distance] = append(grouped[d.Distance], d)
	}
	return grouped
}

// HasDistance reports whether d is among the configured distances.
func (s *SessionState) HasDistance(d float64) bool {
	for _, v := range s.Distances {
		if v == d {
			return true
		}
	}
	return false
}

// clone deep-copies the session for inclusion in an immutable snapshot.
// Environment pointer fields are replaced wholesale on mutation, never
// written through, so sharing the pointees is safe.
func (s *SessionState) clone() SessionState {
	c := *s
	c.Distances = append([]float64(nil), s.Distances...)
	c.Drafts = append([]store.ThrowDraft(nil), s.Drafts...)
	if s.ActiveDistance != nil {
		v := *s.ActiveDistance
		c.ActiveDistance = &v
	}
	return c
}

// newDefaultSession seeds a fresh tab: one default distance, centered angle,
// no environment, no drafts.
func newDefaultSession(id string, owner store.User) *SessionState {
	d := DefaultDistance
	return &SessionState{
		ID:             id,
		UserID:         owner.ID,
		UserName:       owner.Name,
		Distances:      []float64{DefaultDistance},
		ActiveDistance: &d,
		Angle:          store.AngleCenter,
	}
}

// PendingKind names the confirmation dialog currently blocking an action.
type PendingKind int

const (
	PendingNone PendingKind = iota

	// PendingExit waits for the user to commit or discard every dirty
	// session before exit.
	PendingExit

	// PendingUserSwitch waits for the user to commit or discard a dirty
	// session before its owner changes.
	PendingUserSwitch
)

// Pending describes an unresolved confirmation.
type Pending struct {
	Kind PendingKind

	// SessionID is the session awaiting resolution (user switch only).
	SessionID string

	// TargetUserID is the switch target (user switch only).
	TargetUserID int
}

// Snapshot is an immutable view of the whole registry. Every mutation
// produces a new snapshot; readers never observe a torn intermediate state.
type Snapshot struct {
	// Ready is false until reconciliation has completed.
	Ready bool

	// Sessions are the open tabs in display order.
	Sessions []SessionState

	// ActiveID is the id of the active tab.
	ActiveID string

	// Users is the current user list, ordered by name.
	Users []store.User

	// Pending is the open confirmation, if any.
	Pending Pending
}

// Active returns the active session within the snapshot, or nil.
func (s Snapshot) Active() *SessionState {
	for i := range s.Sessions {
		if s.Sessions[i].ID == s.ActiveID {
			return &s.Sessions[i]
		}
	}
	return nil
}

// Session returns the session with the given id, or nil.
func (s Snapshot) Session(id string) *SessionState {
	for i := range s.Sessions {
		if s.Sessions[i].ID == id {
			return &s.Sessions[i]
		}
	}
	return nil
}

// AnyDirty reports whether any open session has uncommitted drafts.
func (s Snapshot) AnyDirty() bool {
	for i := range s.Sessions {
		if s.Sessions[i].IsDirty() {
			return true
		}
	}
	return false
}

// insertSorted returns distances with d inserted in ascending order,
// ignoring duplicates.
func insertSorted(distances []float64, d float64) []float64 {
	for _, v := range distances {
		if v == d {
			return distances
		}
	}
	out := append(append([]float64(nil), distances...), d)
	sort.Float64s(out)
	return out
}
