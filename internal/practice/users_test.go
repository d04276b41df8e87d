package practice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/molkkylog/internal/store"
)

func TestSwitchUserCleanSessionIsImmediate(t *testing.T) {
	ctx := context.Background()
	r, _, users := newTestRegistry(t)
	id := r.Snapshot().ActiveID

	bob, err := users.Insert(ctx, "Bob")
	require.NoError(t, err)
	require.NoError(t, r.RefreshUsers(ctx))

	pending, err := r.SwitchUser(ctx, id, bob.ID)
	require.NoError(t, err)
	assert.False(t, pending)

	s := r.Snapshot().Session(id)
	assert.Equal(t, bob.ID, s.UserID)
	assert.Equal(t, "Bob", s.UserName)
}

func TestSwitchUserToCurrentOwnerIsNoop(t *testing.T) {
	ctx := context.Background()
	r, _, _ := newTestRegistry(t)
	id := r.Snapshot().ActiveID
	require.NoError(t, r.RecordThrow(ctx, id, true))

	owner := r.Snapshot().Session(id).UserID
	pending, err := r.SwitchUser(ctx, id, owner)
	require.NoError(t, err)
	assert.False(t, pending)
	// Drafts survive; no confirmation opened.
	assert.Len(t, r.Snapshot().Session(id).Drafts, 1)
	assert.Equal(t, PendingNone, r.Snapshot().Pending.Kind)
}

func TestSwitchUserDirtySessionOpensConfirmation(t *testing.T) {
	ctx := context.Background()
	r, _, users := newTestRegistry(t)
	id := r.Snapshot().ActiveID

	bob, err := users.Insert(ctx, "Bob")
	require.NoError(t, err)
	require.NoError(t, r.RefreshUsers(ctx))
	require.NoError(t, r.RecordThrow(ctx, id, true))
	owner := r.Snapshot().Session(id).UserID

	pending, err := r.SwitchUser(ctx, id, bob.ID)
	require.NoError(t, err)
	assert.True(t, pending)

	snap := r.Snapshot()
	assert.Equal(t, PendingUserSwitch, snap.Pending.Kind)
	assert.Equal(t, id, snap.Pending.SessionID)
	assert.Equal(t, bob.ID, snap.Pending.TargetUserID)
	// Ownership unchanged until resolved.
	assert.Equal(t, owner, snap.Session(id).UserID)
}

func TestResolveUserSwitchSaveCommitsToOldOwner(t *testing.T) {
	ctx := context.Background()
	r, throws, users := newTestRegistry(t)
	id := r.Snapshot().ActiveID

	bob, err := users.Insert(ctx, "Bob")
	require.NoError(t, err)
	require.NoError(t, r.RefreshUsers(ctx))
	require.NoError(t, r.RecordThrow(ctx, id, true))
	oldOwner := r.Snapshot().Session(id).UserID

	pending, err := r.SwitchUser(ctx, id, bob.ID)
	require.NoError(t, err)
	require.True(t, pending)
	require.NoError(t, r.ResolveUserSwitch(ctx, true))

	s := r.Snapshot().Session(id)
	assert.Equal(t, bob.ID, s.UserID)
	assert.Empty(t, s.Drafts)
	assert.Equal(t, PendingNone, r.Snapshot().Pending.Kind)

	// The committed record belongs to the owner who threw, not the target.
	require.Len(t, throws.records, 1)
	assert.Equal(t, oldOwner, throws.records[0].UserID)
}

func TestResolveUserSwitchDiscardDropsDrafts(t *testing.T) {
	ctx := context.Background()
	r, throws, users := newTestRegistry(t)
	id := r.Snapshot().ActiveID

	bob, err := users.Insert(ctx, "Bob")
	require.NoError(t, err)
	require.NoError(t, r.RefreshUsers(ctx))
	require.NoError(t, r.RecordThrow(ctx, id, true))

	pending, err := r.SwitchUser(ctx, id, bob.ID)
	require.NoError(t, err)
	require.True(t, pending)
	require.NoError(t, r.ResolveUserSwitch(ctx, false))

	assert.Empty(t, throws.records)
	assert.Equal(t, 0, throws.draftCount())
	assert.Equal(t, bob.ID, r.Snapshot().Session(id).UserID)
}

func TestCancelUserSwitchKeepsOwnerAndDrafts(t *testing.T) {
	ctx := context.Background()
	r, _, users := newTestRegistry(t)
	id := r.Snapshot().ActiveID

	bob, err := users.Insert(ctx, "Bob")
	require.NoError(t, err)
	require.NoError(t, r.RefreshUsers(ctx))
	require.NoError(t, r.RecordThrow(ctx, id, true))
	owner := r.Snapshot().Session(id).UserID

	pending, err := r.SwitchUser(ctx, id, bob.ID)
	require.NoError(t, err)
	require.True(t, pending)
	r.CancelUserSwitch()

	s := r.Snapshot().Session(id)
	assert.Equal(t, owner, s.UserID)
	assert.Len(t, s.Drafts, 1)
	assert.Equal(t, PendingNone, r.Snapshot().Pending.Kind)
}

func TestSwitchUserUnknownTarget(t *testing.T) {
	ctx := context.Background()
	r, _, _ := newTestRegistry(t)
	id := r.Snapshot().ActiveID

	_, err := r.SwitchUser(ctx, id, 404)
	assert.ErrorIs(t, err, ErrUnknownUser)
}

func TestSwitchUserKeepsTabConfiguration(t *testing.T) {
	ctx := context.Background()
	r, _, users := newTestRegistry(t)
	id := r.Snapshot().ActiveID

	bob, err := users.Insert(ctx, "Bob")
	require.NoError(t, err)
	require.NoError(t, r.RefreshUsers(ctx))

	require.NoError(t, r.AddDistance(id, 6))
	r.SelectAngle(id, store.AngleLeft)
	soil := "sand"
	r.SetSoil(id, &soil)

	pending, err := r.SwitchUser(ctx, id, bob.ID)
	require.NoError(t, err)
	require.False(t, pending)

	s := r.Snapshot().Session(id)
	assert.Equal(t, []float64{DefaultDistance, 6}, s.Distances)
	assert.Equal(t, store.AngleLeft, s.Angle)
	require.NotNil(t, s.Env.Soil)
	assert.Equal(t, "sand", *s.Env.Soil)
}

func TestCreateUserAndSwitch(t *testing.T) {
	ctx := context.Background()
	r, throws, _ := newTestRegistry(t)
	id := r.Snapshot().ActiveID
	require.NoError(t, r.RecordThrow(ctx, id, true))

	created, err := r.CreateUserAndSwitch(ctx, id, "  Carol ")
	require.NoError(t, err)
	assert.Equal(t, "Carol", created.Name)

	s := r.Snapshot().Session(id)
	assert.Equal(t, created.ID, s.UserID)
	assert.Equal(t, "Carol", s.UserName)
	// Previous owner's drafts are discarded, not transferred.
	assert.Empty(t, s.Drafts)
	assert.Equal(t, 0, throws.draftCount())
	assert.Empty(t, throws.records)

	names := make([]string, 0, len(r.Snapshot().Users))
	for _, u := range r.Snapshot().Users {
		names = append(names, u.Name)
	}
	assert.Contains(t, names, "Carol")
}

func TestCreateUserValidation(t *testing.T) {
	ctx := context.Background()
	r, _, _ := newTestRegistry(t)
	id := r.Snapshot().ActiveID

	_, err := r.CreateUserAndSwitch(ctx, id, "   ")
	assert.ErrorIs(t, err, ErrBlankName)

	_, err = r.CreateUserAndSwitch(ctx, id, "player 1")
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestDeleteUserValidation(t *testing.T) {
	ctx := context.Background()
	r, _, users := newTestRegistry(t)
	id := r.Snapshot().ActiveID
	owner := r.Snapshot().Session(id).UserID

	// Sole remaining user.
	assert.ErrorIs(t, r.DeleteUser(ctx, owner), ErrLastUser)

	bob, err := users.Insert(ctx, "Bob")
	require.NoError(t, err)
	require.NoError(t, r.RefreshUsers(ctx))

	// Owns an open session.
	assert.ErrorIs(t, r.DeleteUser(ctx, owner), ErrUserInSession)

	// Default identity is protected even when idle.
	pending, err := r.SwitchUser(ctx, id, bob.ID)
	require.NoError(t, err)
	require.False(t, pending)
	assert.ErrorIs(t, r.DeleteUser(ctx, owner), ErrProtectedUser)
}

func TestDeleteUserRemovesFromList(t *testing.T) {
	ctx := context.Background()
	r, _, users := newTestRegistry(t)

	bob, err := users.Insert(ctx, "Bob")
	require.NoError(t, err)
	require.NoError(t, r.RefreshUsers(ctx))
	require.Len(t, r.Snapshot().Users, 2)

	require.NoError(t, r.DeleteUser(ctx, bob.ID))
	snap := r.Snapshot()
	require.Len(t, snap.Users, 1)
	assert.Equal(t, store.DefaultUserName, snap.Users[0].Name)
}

func TestRefreshUsersFallsBackWhenOwnerVanishes(t *testing.T) {
	ctx := context.Background()
	r, _, users := newTestRegistry(t)
	id := r.Snapshot().ActiveID

	bob, err := users.Insert(ctx, "Bob")
	require.NoError(t, err)
	require.NoError(t, r.RefreshUsers(ctx))
	pending, err := r.SwitchUser(ctx, id, bob.ID)
	require.NoError(t, err)
	require.False(t, pending)

	// Bob disappears behind the registry's back.
	require.NoError(t, users.Delete(ctx, bob.ID))
	require.NoError(t, r.RefreshUsers(ctx))

	s := r.Snapshot().Session(id)
	assert.Equal(t, store.DefaultUserName, s.UserName)
}
