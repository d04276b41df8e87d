package practice

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/abhisek/molkkylog/internal/store"
)

// SwitchUser changes the owning user of one session. When the session is
// clean the switch happens immediately; when it is dirty the registry
// enters a user-switch confirmation and returns pending=true, leaving the
// original owner in place until resolved. Switching to the current owner is
// a no-op. Tab configuration (distances, angle, environment) belongs to the
// session and survives the switch.
func (r *Registry) SwitchUser(ctx context.Context, sessionID string, targetUserID int) (pending bool, err error) {
	r.mu.Lock()
	if !r.ready {
		r.mu.Unlock()
		return false, ErrNotReady
	}
	r.cancelPendingLocked()
	s, ok := r.sessions[sessionID]
	if !ok || s.UserID == targetUserID {
		r.mu.Unlock()
		return false, nil
	}
	if s.IsDirty() {
		r.pending = Pending{Kind: PendingUserSwitch, SessionID: sessionID, TargetUserID: targetUserID}
		r.publishLocked()
		r.mu.Unlock()
		return true, nil
	}
	r.mu.Unlock()

	return false, r.performSwitch(ctx, sessionID, targetUserID)
}

// ResolveUserSwitch settles a pending user switch: save commits the
// session's drafts first, otherwise they are discarded; either way the
// session then changes owner with an empty draft queue.
func (r *Registry) ResolveUserSwitch(ctx context.Context, save bool) error {
	r.mu.Lock()
	if r.pending.Kind != PendingUserSwitch {
		r.mu.Unlock()
		return ErrNoPending
	}
	sessionID := r.pending.SessionID
	targetID := r.pending.TargetUserID
	var drafts []store.ThrowDraft
	if s, ok := r.sessions[sessionID]; ok {
		drafts = append([]store.ThrowDraft(nil), s.Drafts...)
	}
	r.mu.Unlock()

	if len(drafts) > 0 {
		var err error
		if save {
			err = r.throws.CommitDrafts(ctx, drafts)
		} else {
			err = r.throws.DiscardDrafts(ctx, draftIDs(drafts))
		}
		if err != nil {
			return fmt.Errorf("settle drafts before user switch: %w", err)
		}
		r.mu.Lock()
		r.clearDraftsLocked(sessionID, drafts)
		r.publishLocked()
		r.mu.Unlock()
	}

	if err := r.performSwitch(ctx, sessionID, targetID); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pending.Kind == PendingUserSwitch {
		r.pending = Pending{}
		r.publishLocked()
	}
	return nil
}

// CancelUserSwitch abandons a pending switch; the original owner is
// retained.
func (r *Registry) CancelUserSwitch() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pending.Kind == PendingUserSwitch {
		r.pending = Pending{}
		r.publishLocked()
	}
}

// performSwitch re-resolves the target user from the store and applies the
// ownership change.
func (r *Registry) performSwitch(ctx context.Context, sessionID string, targetUserID int) error {
	target, err := r.users.ByID(ctx, targetUserID)
	if err != nil {
		return fmt.Errorf("resolve switch target: %w", err)
	}
	if target == nil {
		return ErrUnknownUser
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[sessionID]
	if !ok {
		return nil
	}
	s.UserID = target.ID
	s.UserName = target.Name
	s.Drafts = nil
	r.markChangedLocked()
	return nil
}

// CreateUserAndSwitch validates and inserts a new user, then immediately
// makes it the owner of the session. A new user has no drafts, so the
// switch is never pending; any drafts the session holds for the previous
// owner are discarded first.
func (r *Registry) CreateUserAndSwitch(ctx context.Context, sessionID, name string) (*store.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrBlankName
	}
	existing, err := r.users.ByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("check user name: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateName
	}

	created, err := r.users.Insert(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	if err := r.RefreshUsers(ctx); err != nil {
		return nil, err
	}

	r.mu.Lock()
	var drafts []store.ThrowDraft
	if s, ok := r.sessions[sessionID]; ok {
		drafts = append([]store.ThrowDraft(nil), s.Drafts...)
	}
	r.mu.Unlock()
	if len(drafts) > 0 {
		if err := r.throws.DiscardDrafts(ctx, draftIDs(drafts)); err != nil {
			return nil, fmt.Errorf("discard drafts before user switch: %w", err)
		}
		r.mu.Lock()
		r.clearDraftsLocked(sessionID, drafts)
		r.publishLocked()
		r.mu.Unlock()
	}

	if err := r.performSwitch(ctx, sessionID, created.ID); err != nil {
		return nil, err
	}
	return created, nil
}

// DeleteUser removes a user after validating that at least one other user
// remains, that no open session is owned by them, and that they are not the
// protected default identity. Drafts and records cascade at the schema
// level.
func (r *Registry) DeleteUser(ctx context.Context, userID int) error {
	r.mu.Lock()
	if !r.ready {
		r.mu.Unlock()
		return ErrNotReady
	}
	if len(r.userList) < 2 {
		r.mu.Unlock()
		return ErrLastUser
	}
	for _, s := range r.sessions {
		if s.UserID == userID {
			r.mu.Unlock()
			return ErrUserInSession
		}
	}
	if userID == r.defaultUser.ID {
		r.mu.Unlock()
		return ErrProtectedUser
	}
	r.mu.Unlock()

	if err := r.users.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return r.RefreshUsers(ctx)
}

// RefreshUsers re-reads the user list and reconciles the denormalized
// owner-name caches. A session whose owner has vanished falls back to the
// protected default user.
func (r *Registry) RefreshUsers(ctx context.Context) error {
	users, err := r.users.All(ctx)
	if err != nil {
		return fmt.Errorf("refresh users: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.userList = users

	byID := make(map[int]store.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	for _, s := range r.sessions {
		if u, ok := byID[s.UserID]; ok {
			s.UserName = u.Name
			continue
		}
		fmt.Fprintf(os.Stderr, "warning: session owner %d vanished, falling back to %s\n", s.UserID, r.defaultUser.Name)
		s.UserID = r.defaultUser.ID
		s.UserName = r.defaultUser.Name
	}
	r.markChangedLocked()
	return nil
}
