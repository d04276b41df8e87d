package practice

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/abhisek/molkkylog/internal/store"
)

// Load runs the startup reconciliation: it rebuilds the session registry
// from the persisted shape, then re-attaches each session's drafts by
// re-querying the relational store. The snapshot store is trusted only for
// shape (which ids to look up); draft content always comes from the
// relational store, and ids that vanished there are silently dropped.
//
// Load always leaves the registry in a usable state. Mutations are invalid
// until it returns; the debounced shape writer stays gated until then.
func (r *Registry) Load(ctx context.Context) error {
	// Whatever happens below, never stay stuck in a loading state.
	defer func() {
		r.mu.Lock()
		if len(r.sessions) == 0 {
			s := newDefaultSession(newSessionID(), r.defaultUser)
			r.sessions[s.ID] = s
			r.tabs = []string{s.ID}
			r.activeID = s.ID
		}
		r.ready = true
		r.publishLocked()
		r.mu.Unlock()
	}()

	def, err := r.users.EnsureDefault(ctx)
	if err != nil {
		r.mu.Lock()
		r.defaultUser = store.User{ID: 1, Name: store.DefaultUserName}
		r.mu.Unlock()
		return fmt.Errorf("ensure default user: %w", err)
	}
	users, err := r.users.All(ctx)
	if err != nil {
		r.mu.Lock()
		r.defaultUser = *def
		r.userList = []store.User{*def}
		r.mu.Unlock()
		return fmt.Errorf("load users: %w", err)
	}

	tabs := parseTabs(r.getPref(keyTabs))
	activeID, _ := r.prefs.Get(keyActive)

	type pendingDrafts struct {
		sessionID string
		ids       []int
	}
	var (
		sessions = make(map[string]*SessionState, len(tabs))
		order    []string
		fetches  []pendingDrafts
	)
	for _, id := range tabs {
		shape, ids := r.readShape(id, *def, users)
		sessions[id] = shape
		order = append(order, id)
		if len(ids) > 0 {
			fetches = append(fetches, pendingDrafts{sessionID: id, ids: ids})
		}
	}

	// Re-fetch draft content concurrently; the relational store is
	// authoritative.
	var (
		wg      sync.WaitGroup
		fetchMu sync.Mutex
		fetched = make(map[string][]store.ThrowDraft, len(fetches))
	)
	for _, f := range fetches {
		wg.Add(1)
		go func(f pendingDrafts) {
			defer wg.Done()
			drafts, err := r.throws.DraftsByIDs(ctx, f.ids)
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to reload drafts for session %s: %v\n", f.sessionID, err)
				return
			}
			fetchMu.Lock()
			fetched[f.sessionID] = drafts
			fetchMu.Unlock()
		}(f)
	}
	wg.Wait()

	for id, drafts := range fetched {
		s := sessions[id]
		for _, d := range drafts {
			// Uphold the scope invariant even against a stale or
			// corrupted snapshot.
			if d.SessionID != s.ID || d.UserID != s.UserID {
				fmt.Fprintf(os.Stderr, "warning: dropping draft %d outside session %s scope\n", d.ID, s.ID)
				continue
			}
			s.Drafts = append(s.Drafts, d)
		}
	}

	if _, ok := sessions[activeID]; !ok && len(order) > 0 {
		activeID = order[0]
	}

	r.mu.Lock()
	r.defaultUser = *def
	r.userList = users
	r.sessions = sessions
	r.tabs = order
	r.activeID = activeID
	r.mu.Unlock()
	return nil
}

// readShape assembles one session's persisted shape, resolving the owning
// user against the current user list and falling back to the default user
// with a logged substitution. Returns the session (without drafts) and the
// draft row ids to re-fetch.
func (r *Registry) readShape(id string, def store.User, users []store.User) (*SessionState, []int) {
	owner := def
	if raw, ok := r.prefs.Get(sessionKey(id, suffixUser)); ok {
		uid, err := strconv.Atoi(raw)
		if err == nil {
			if u := findUser(users, uid); u != nil {
				owner = *u
			} else {
				fmt.Fprintf(os.Stderr, "warning: user %d of session %s no longer exists, using %s\n", uid, id, def.Name)
			}
		}
	}

	distances := parseFloats(r.getPref(sessionKey(id, suffixDistances)))
	if len(distances) == 0 {
		distances = []float64{DefaultDistance}
	}

	// A restored session is always immediately throwable: a missing or
	// invalid stored value falls back to the first configured distance.
	first := distances[0]
	active := &first
	if raw, ok := r.prefs.Get(sessionKey(id, suffixActiveDistance)); ok {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && containsFloat(distances, v) {
			active = &v
		}
	}

	angle := store.Angle(r.getPref(sessionKey(id, suffixAngle)))
	if !angle.Valid() {
		angle = store.AngleCenter
	}

	env := store.Environment{
		Weather:      r.getPrefPtr(sessionKey(id, suffixWeather)),
		Humidity:     r.getPrefFloat(sessionKey(id, suffixHumidity)),
		Temperature:  r.getPrefFloat(sessionKey(id, suffixTemperature)),
		Soil:         r.getPrefPtr(sessionKey(id, suffixSoil)),
		MolkkyWeight: r.getPrefFloat(sessionKey(id, suffixMolkkyWeight)),
	}

	draftIDs := parseInts(r.getPref(sessionKey(id, suffixDraftIDs)))

	return &SessionState{
		ID:             id,
		UserID:         owner.ID,
		UserName:       owner.Name,
		Distances:      distances,
		ActiveDistance: active,
		Angle:          angle,
		Env:            env,
	}, draftIDs
}

func (r *Registry) getPref(key string) string {
	v, _ := r.prefs.Get(key)
	return v
}

func (r *Registry) getPrefPtr(key string) *string {
	if v, ok := r.prefs.Get(key); ok {
		return &v
	}
	return nil
}

func (r *Registry) getPrefFloat(key string) *float64 {
	if raw, ok := r.prefs.Get(key); ok {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return &v
		}
	}
	return nil
}

func parseTabs(raw string) []string {
	seen := make(map[string]bool)
	var tabs []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" || seen[part] {
			continue
		}
		seen[part] = true
		tabs = append(tabs, part)
		if len(tabs) == MaxSessions {
			break
		}
	}
	return tabs
}

func parseFloats(raw string) []float64 {
	var out []float64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil || v <= 0 {
			continue
		}
		out = insertSorted(out, v)
	}
	return out
}

func parseInts(raw string) []int {
	var out []int
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil || v <= 0 {
			continue
		}
		out = append(out, v)
	}
	return out
}

func containsFloat(fs []float64, v float64) bool {
	for _, f := range fs {
		if f == v {
			return true
		}
	}
	return false
}

func findUser(users []store.User, id int) *store.User {
	for i := range users {
		if users[i].ID == id {
			return &users[i]
		}
	}
	return nil
}
