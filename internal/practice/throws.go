package practice

import (
	"context"
	"fmt"

	"github.com/abhisek/molkkylog/internal/store"
)

// RecordThrow stages one throw attempt in the session. A no-op when the
// session has no active distance. The draft is appended to the in-memory
// mirror only after its durable insert is confirmed.
func (r *Registry) RecordThrow(ctx context.Context, id string, isSuccess bool) error {
	r.mu.Lock()
	if !r.ready {
		r.mu.Unlock()
		return ErrNotReady
	}
	r.cancelPendingLocked()
	s, ok := r.sessions[id]
	if !ok || s.ActiveDistance == nil {
		r.mu.Unlock()
		return nil
	}
	draft := store.ThrowDraft{
		UserID:    s.UserID,
		SessionID: s.ID,
		Distance:  *s.ActiveDistance,
		Angle:     s.Angle,
		Env:       s.Env,
		IsSuccess: isSuccess,
		Timestamp: now(),
	}
	r.mu.Unlock()

	rowID, err := r.throws.InsertDraft(ctx, draft)
	if err != nil {
		return fmt.Errorf("stage throw: %w", err)
	}
	draft.ID = rowID

	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok = r.sessions[id]
	if !ok {
		return nil
	}
	s.Drafts = append(s.Drafts, draft)
	r.markChangedLocked()
	return nil
}

// Undo removes the single most-recently-inserted draft of the session.
// Insertion order is authoritative, not timestamps. A no-op when the
// session has no drafts; repeatable; no redo.
func (r *Registry) Undo(ctx context.Context, id string) error {
	r.mu.Lock()
	if !r.ready {
		r.mu.Unlock()
		return ErrNotReady
	}
	r.cancelPendingLocked()
	s, ok := r.sessions[id]
	if !ok || len(s.Drafts) == 0 {
		r.mu.Unlock()
		return nil
	}
	tail := s.Drafts[len(s.Drafts)-1]
	r.mu.Unlock()

	if err := r.throws.DeleteDraft(ctx, tail.ID); err != nil {
		return fmt.Errorf("undo throw: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok = r.sessions[id]
	if !ok {
		return nil
	}
	s.Drafts = removeDraft(s.Drafts, tail.ID)
	r.markChangedLocked()
	return nil
}

// Commit converts every draft of the session into a record and clears the
// queue, in one all-or-nothing transaction. A no-op when the session has no
// drafts.
func (r *Registry) Commit(ctx context.Context, id string) error {
	r.mu.Lock()
	if !r.ready {
		r.mu.Unlock()
		return ErrNotReady
	}
	r.cancelPendingLocked()
	s, ok := r.sessions[id]
	if !ok || len(s.Drafts) == 0 {
		r.mu.Unlock()
		return nil
	}
	drafts := append([]store.ThrowDraft(nil), s.Drafts...)
	r.mu.Unlock()

	if err := r.throws.CommitDrafts(ctx, drafts); err != nil {
		return fmt.Errorf("commit session: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.clearDraftsLocked(id, drafts)
	r.markChangedLocked()
	return nil
}

// Discard deletes every draft of the session without creating records. A
// no-op when the session has no drafts.
func (r *Registry) Discard(ctx context.Context, id string) error {
	r.mu.Lock()
	if !r.ready {
		r.mu.Unlock()
		return ErrNotReady
	}
	r.cancelPendingLocked()
	s, ok := r.sessions[id]
	if !ok || len(s.Drafts) == 0 {
		r.mu.Unlock()
		return nil
	}
	drafts := append([]store.ThrowDraft(nil), s.Drafts...)
	r.mu.Unlock()

	if err := r.throws.DiscardDrafts(ctx, draftIDs(drafts)); err != nil {
		return fmt.Errorf("discard session: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.clearDraftsLocked(id, drafts)
	r.markChangedLocked()
	return nil
}

// RequestExit asks to leave practice. When every session is clean it
// returns true and the caller may exit immediately; otherwise the registry
// enters the exit confirmation state and false is returned.
func (r *Registry) RequestExit() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.ready {
		return true
	}
	for _, s := range r.sessions {
		if s.IsDirty() {
			r.pending = Pending{Kind: PendingExit}
			r.publishLocked()
			return false
		}
	}
	return true
}

// ConfirmExit resolves the exit confirmation: save commits every dirty
// session's drafts, otherwise they are all discarded. On success the
// pending state clears and the caller may exit. On failure the
// confirmation stays open so the action can be retried.
func (r *Registry) ConfirmExit(ctx context.Context, save bool) error {
	r.mu.Lock()
	if r.pending.Kind != PendingExit {
		r.mu.Unlock()
		return ErrNoPending
	}
	type dirty struct {
		id     string
		drafts []store.ThrowDraft
	}
	var pendingSessions []dirty
	for _, id := range r.tabs {
		if s, ok := r.sessions[id]; ok && s.IsDirty() {
			pendingSessions = append(pendingSessions, dirty{id, append([]store.ThrowDraft(nil), s.Drafts...)})
		}
	}
	r.mu.Unlock()

	for _, d := range pendingSessions {
		var err error
		if save {
			err = r.throws.CommitDrafts(ctx, d.drafts)
		} else {
			err = r.throws.DiscardDrafts(ctx, draftIDs(d.drafts))
		}
		if err != nil {
			return fmt.Errorf("resolve exit for session: %w", err)
		}
		r.mu.Lock()
		r.clearDraftsLocked(d.id, d.drafts)
		r.publishLocked()
		r.mu.Unlock()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending = Pending{}
	r.markChangedLocked()
	return nil
}

// CancelExit abandons the exit confirmation.
func (r *Registry) CancelExit() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pending.Kind == PendingExit {
		r.pending = Pending{}
		r.publishLocked()
	}
}

// clearDraftsLocked removes the given drafts from the session's mirror.
// Drafts staged after the settled operation's cutoff survive.
func (r *Registry) clearDraftsLocked(id string, settled []store.ThrowDraft) {
	s, ok := r.sessions[id]
	if !ok {
		return
	}
	gone := make(map[int]bool, len(settled))
	for _, d := range settled {
		gone[d.ID] = true
	}
	kept := s.Drafts[:0:0]
	for _, d := range s.Drafts {
		if !gone[d.ID] {
			kept = append(kept, d)
		}
	}
	s.Drafts = kept
}

func removeDraft(drafts []store.ThrowDraft, id int) []store.ThrowDraft {
	out := drafts[:0:0]
	for _, d := range drafts {
		if d.ID != id {
			out = append(out, d)
		}
	}
	return out
}
