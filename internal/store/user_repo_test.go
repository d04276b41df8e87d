package store

import (
	"context"
	"testing"
)

func TestUserInsertAndLookup(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	alice := seedUser(t, s, "Alice")
	if alice.ID == 0 {
		t.Fatal("expected non-zero user id")
	}

	got, err := s.UserRepo().ByID(ctx, alice.ID)
	if err != nil {
		t.Fatalf("by id: %v", err)
	}
	if got == nil || got.Name != "Alice" {
		t.Fatalf("user = %+v, want Alice", got)
	}

	got, err = s.UserRepo().ByID(ctx, 9999)
	if err != nil {
		t.Fatalf("by missing id: %v", err)
	}
	if got != nil {
		t.Errorf("user = %+v, want nil for missing id", got)
	}
}

func TestUserByNameIsCaseInsensitive(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedUser(t, s, "Alice")

	for _, name := range []string{"Alice", "alice", "ALICE"} {
		got, err := s.UserRepo().ByName(ctx, name)
		if err != nil {
			t.Fatalf("by name %q: %v", name, err)
		}
		if got == nil || got.Name != "Alice" {
			t.Errorf("by name %q = %+v, want Alice", name, got)
		}
	}

	got, err := s.UserRepo().ByName(ctx, "Nobody")
	if err != nil {
		t.Fatalf("by missing name: %v", err)
	}
	if got != nil {
		t.Errorf("user = %+v, want nil for missing name", got)
	}
}

func TestUsersOrderedByName(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedUser(t, s, "Zoe")
	seedUser(t, s, "Alice")
	seedUser(t, s, "Mallory")

	users, err := s.UserRepo().All(ctx)
	if err != nil {
		t.Fatalf("all users: %v", err)
	}
	want := []string{"Alice", "Mallory", "Zoe"}
	if len(users) != len(want) {
		t.Fatalf("len(users) = %d, want %d", len(users), len(want))
	}
	for i, name := range want {
		if users[i].Name != name {
			t.Errorf("users[%d] = %q, want %q", i, users[i].Name, name)
		}
	}
}

func TestEnsureDefaultIsIdempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first, err := s.UserRepo().EnsureDefault(ctx)
	if err != nil {
		t.Fatalf("ensure default: %v", err)
	}
	if first.Name != DefaultUserName {
		t.Errorf("name = %q, want %q", first.Name, DefaultUserName)
	}

	second, err := s.UserRepo().EnsureDefault(ctx)
	if err != nil {
		t.Fatalf("ensure default again: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("second ensure created a new user: %d != %d", second.ID, first.ID)
	}

	users, err := s.UserRepo().All(ctx)
	if err != nil {
		t.Fatalf("all users: %v", err)
	}
	if len(users) != 1 {
		t.Errorf("len(users) = %d, want 1", len(users))
	}
}
