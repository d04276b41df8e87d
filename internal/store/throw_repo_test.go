package store

import (
	"context"
	"testing"
)

func stageDraft(t *testing.T, s *Store, userID int, sessionID string, success bool, seq int) int {
	t.Helper()
	id, err := s.ThrowRepo().InsertDraft(context.Background(), ThrowDraft{
		UserID:    userID,
		SessionID: sessionID,
		Distance:  4,
		Angle:     AngleCenter,
		IsSuccess: success,
		Timestamp: testTimestamp(seq),
	})
	if err != nil {
		t.Fatalf("stage draft: %v", err)
	}
	return id
}

func TestInsertAndListDrafts(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	alice := seedUser(t, s, "Alice")
	bob := seedUser(t, s, "Bob")

	first := stageDraft(t, s, alice.ID, "s1", true, 0)
	second := stageDraft(t, s, alice.ID, "s1", false, 1)
	stageDraft(t, s, alice.ID, "s2", true, 2)
	stageDraft(t, s, bob.ID, "s1", true, 3)

	drafts, err := s.ThrowRepo().ListDrafts(ctx, alice.ID, "s1")
	if err != nil {
		t.Fatalf("list drafts: %v", err)
	}
	if len(drafts) != 2 {
		t.Fatalf("len(drafts) = %d, want 2", len(drafts))
	}
	if drafts[0].ID != first || drafts[1].ID != second {
		t.Errorf("draft ids = %d,%d, want %d,%d", drafts[0].ID, drafts[1].ID, first, second)
	}
	if !drafts[0].IsSuccess || drafts[1].IsSuccess {
		t.Error("success flags lost in round trip")
	}

	n, err := s.ThrowRepo().CountDrafts(ctx, alice.ID)
	if err != nil {
		t.Fatalf("count drafts: %v", err)
	}
	if n != 3 {
		t.Errorf("count = %d, want 3", n)
	}
}

func TestDraftEnvironmentRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	alice := seedUser(t, s, "Alice")

	weather := "rain"
	humidity := 72.5
	id, err := s.ThrowRepo().InsertDraft(ctx, ThrowDraft{
		UserID:    alice.ID,
		SessionID: "s1",
		Distance:  6.5,
		Angle:     AngleLeft,
		Env:       Environment{Weather: &weather, Humidity: &humidity},
		IsSuccess: true,
		Timestamp: testTimestamp(0),
	})
	if err != nil {
		t.Fatalf("insert draft: %v", err)
	}

	drafts, err := s.ThrowRepo().DraftsByIDs(ctx, []int{id})
	if err != nil {
		t.Fatalf("drafts by ids: %v", err)
	}
	if len(drafts) != 1 {
		t.Fatalf("len(drafts) = %d, want 1", len(drafts))
	}
	d := drafts[0]
	if d.Env.Weather == nil || *d.Env.Weather != "rain" {
		t.Errorf("weather = %v, want rain", d.Env.Weather)
	}
	if d.Env.Humidity == nil || *d.Env.Humidity != 72.5 {
		t.Errorf("humidity = %v, want 72.5", d.Env.Humidity)
	}
	// Unset conditions stay unset, not zeroed.
	if d.Env.Temperature != nil || d.Env.Soil != nil || d.Env.MolkkyWeight != nil {
		t.Error("absent environment fields came back non-nil")
	}
	if d.Distance != 6.5 || d.Angle != AngleLeft {
		t.Errorf("distance/angle = %v/%v, want 6.5/LEFT", d.Distance, d.Angle)
	}
}

func TestDraftsByIDsDropsMissingRows(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	alice := seedUser(t, s, "Alice")

	id := stageDraft(t, s, alice.ID, "s1", true, 0)

	drafts, err := s.ThrowRepo().DraftsByIDs(ctx, []int{9999, id, 8888})
	if err != nil {
		t.Fatalf("drafts by ids: %v", err)
	}
	if len(drafts) != 1 || drafts[0].ID != id {
		t.Fatalf("drafts = %+v, want only id %d", drafts, id)
	}

	drafts, err = s.ThrowRepo().DraftsByIDs(ctx, nil)
	if err != nil {
		t.Fatalf("drafts by empty ids: %v", err)
	}
	if len(drafts) != 0 {
		t.Errorf("len(drafts) = %d, want 0", len(drafts))
	}
}

func TestDeleteLastDraft(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	alice := seedUser(t, s, "Alice")

	first := stageDraft(t, s, alice.ID, "s1", true, 0)
	stageDraft(t, s, alice.ID, "s1", false, 1)

	if err := s.ThrowRepo().DeleteLastDraft(ctx, alice.ID, "s1"); err != nil {
		t.Fatalf("delete last draft: %v", err)
	}
	drafts, err := s.ThrowRepo().ListDrafts(ctx, alice.ID, "s1")
	if err != nil {
		t.Fatalf("list drafts: %v", err)
	}
	if len(drafts) != 1 || drafts[0].ID != first {
		t.Fatalf("drafts = %+v, want only first", drafts)
	}

	// Empty queue is a no-op, not an error.
	if err := s.ThrowRepo().DeleteLastDraft(ctx, alice.ID, "empty"); err != nil {
		t.Errorf("delete last on empty session: %v", err)
	}
}

func TestCommitDraftsMovesDraftsToRecords(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	alice := seedUser(t, s, "Alice")

	stageDraft(t, s, alice.ID, "s1", true, 0)
	stageDraft(t, s, alice.ID, "s1", false, 1)
	drafts, err := s.ThrowRepo().ListDrafts(ctx, alice.ID, "s1")
	if err != nil {
		t.Fatalf("list drafts: %v", err)
	}

	if err := s.ThrowRepo().CommitDrafts(ctx, drafts); err != nil {
		t.Fatalf("commit drafts: %v", err)
	}

	n, err := s.ThrowRepo().CountDrafts(ctx, alice.ID)
	if err != nil {
		t.Fatalf("count drafts: %v", err)
	}
	if n != 0 {
		t.Errorf("drafts remaining = %d, want 0", n)
	}

	records, err := s.ThrowRepo().RecordsForUser(ctx, alice.ID)
	if err != nil {
		t.Fatalf("records for user: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	// Newest first.
	if records[0].IsSuccess || !records[1].IsSuccess {
		t.Error("record order or success flags wrong")
	}

	// Committing nothing is a no-op.
	if err := s.ThrowRepo().CommitDrafts(ctx, nil); err != nil {
		t.Errorf("commit empty: %v", err)
	}
}

func TestDiscardDrafts(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	alice := seedUser(t, s, "Alice")

	a := stageDraft(t, s, alice.ID, "s1", true, 0)
	stageDraft(t, s, alice.ID, "s1", false, 1)

	if err := s.ThrowRepo().DiscardDrafts(ctx, []int{a}); err != nil {
		t.Fatalf("discard drafts: %v", err)
	}
	n, err := s.ThrowRepo().CountDrafts(ctx, alice.ID)
	if err != nil {
		t.Fatalf("count drafts: %v", err)
	}
	if n != 1 {
		t.Errorf("drafts = %d, want 1", n)
	}

	records, err := s.ThrowRepo().ListRecords(ctx)
	if err != nil {
		t.Fatalf("list records: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("discard produced %d records, want 0", len(records))
	}
}

func TestRecordUpdateAndDelete(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	alice := seedUser(t, s, "Alice")

	stageDraft(t, s, alice.ID, "s1", true, 0)
	drafts, err := s.ThrowRepo().ListDrafts(ctx, alice.ID, "s1")
	if err != nil {
		t.Fatalf("list drafts: %v", err)
	}
	if err := s.ThrowRepo().CommitDrafts(ctx, drafts); err != nil {
		t.Fatalf("commit drafts: %v", err)
	}
	records, err := s.ThrowRepo().ListRecords(ctx)
	if err != nil {
		t.Fatalf("list records: %v", err)
	}
	rec := records[0]

	rec.Distance = 8
	rec.IsSuccess = false
	if err := s.ThrowRepo().UpdateRecord(ctx, rec); err != nil {
		t.Fatalf("update record: %v", err)
	}
	got, err := s.ThrowRepo().RecordByID(ctx, rec.ID)
	if err != nil {
		t.Fatalf("record by id: %v", err)
	}
	if got == nil || got.Distance != 8 || got.IsSuccess {
		t.Fatalf("record = %+v, want distance 8 and failure", got)
	}

	if err := s.ThrowRepo().DeleteRecord(ctx, rec.ID); err != nil {
		t.Fatalf("delete record: %v", err)
	}
	got, err = s.ThrowRepo().RecordByID(ctx, rec.ID)
	if err != nil {
		t.Fatalf("record by id after delete: %v", err)
	}
	if got != nil {
		t.Errorf("record = %+v, want nil after delete", got)
	}
}

func TestDeleteUserCascadesThrows(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	alice := seedUser(t, s, "Alice")

	stageDraft(t, s, alice.ID, "s1", true, 0)
	drafts, err := s.ThrowRepo().ListDrafts(ctx, alice.ID, "s1")
	if err != nil {
		t.Fatalf("list drafts: %v", err)
	}
	if err := s.ThrowRepo().CommitDrafts(ctx, drafts); err != nil {
		t.Fatalf("commit drafts: %v", err)
	}
	stageDraft(t, s, alice.ID, "s1", false, 1)

	if err := s.UserRepo().Delete(ctx, alice.ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	n, err := s.ThrowRepo().CountDrafts(ctx, alice.ID)
	if err != nil {
		t.Fatalf("count drafts: %v", err)
	}
	if n != 0 {
		t.Errorf("drafts survived cascade: %d", n)
	}
	records, err := s.ThrowRepo().RecordsForUser(ctx, alice.ID)
	if err != nil {
		t.Fatalf("records for user: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("records survived cascade: %d", len(records))
	}
}
