package history

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/molkkylog/internal/store"
)

// fakeThrowRepo implements store.ThrowRepo over a record slice. Draft
// methods are unused by this screen.
type fakeThrowRepo struct {
	records []store.ThrowRecord
}

func (f *fakeThrowRepo) InsertDraft(context.Context, store.ThrowDraft) (int, error) { return 0, nil }
func (f *fakeThrowRepo) DeleteDraft(context.Context, int) error                     { return nil }
func (f *fakeThrowRepo) DeleteLastDraft(context.Context, int, string) error         { return nil }
func (f *fakeThrowRepo) DraftsByIDs(context.Context, []int) ([]store.ThrowDraft, error) {
	return nil, nil
}
func (f *fakeThrowRepo) ListDrafts(context.Context, int, string) ([]store.ThrowDraft, error) {
	return nil, nil
}
func (f *fakeThrowRepo) CountDrafts(context.Context, int) (int, error) { return 0, nil }
func (f *fakeThrowRepo) CommitDrafts(context.Context, []store.ThrowDraft) error {
	return nil
}
func (f *fakeThrowRepo) DiscardDrafts(context.Context, []int) error { return nil }

func (f *fakeThrowRepo) ListRecords(context.Context) ([]store.ThrowRecord, error) {
	return append([]store.ThrowRecord(nil), f.records...), nil
}

func (f *fakeThrowRepo) RecordsForUser(_ context.Context, userID int) ([]store.ThrowRecord, error) {
	var out []store.ThrowRecord
	for _, r := range f.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeThrowRepo) RecordByID(_ context.Context, id int) (*store.ThrowRecord, error) {
	for _, r := range f.records {
		if r.ID == id {
			rec := r
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *fakeThrowRepo) UpdateRecord(context.Context, store.ThrowRecord) error { return nil }

func (f *fakeThrowRepo) DeleteRecord(_ context.Context, id int) error {
	kept := f.records[:0]
	for _, r := range f.records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	f.records = kept
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func newLoadedHistory(t *testing.T, repo *fakeThrowRepo, users []store.User) *HistoryScreen {
	t.Helper()
	s := New(repo, users)
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected Init to return a load command")
	}
	s.Update(cmd())
	return s
}

func testRecords() []store.ThrowRecord {
	ts := time.Date(2026, 5, 10, 14, 0, 0, 0, time.UTC)
	return []store.ThrowRecord{
		{ID: 3, UserID: 2, Distance: 6, Angle: store.AngleLeft, IsSuccess: false, Timestamp: ts.Add(2 * time.Minute)},
		{ID: 2, UserID: 1, Distance: 4, Angle: store.AngleCenter, IsSuccess: true, Timestamp: ts.Add(time.Minute)},
		{ID: 1, UserID: 1, Distance: 4, Angle: store.AngleCenter, IsSuccess: true, Timestamp: ts},
	}
}

func TestLoadsAllRecords(t *testing.T) {
	repo := &fakeThrowRepo{records: testRecords()}
	s := newLoadedHistory(t, repo, nil)

	view := s.View(80, 24)
	if strings.Count(view, "hit") != 2 || strings.Count(view, "miss") != 1 {
		t.Errorf("expected 2 hits and 1 miss in the log, got %q", view)
	}
}

func TestEmptyLogShowsHint(t *testing.T) {
	s := newLoadedHistory(t, &fakeThrowRepo{}, nil)

	if !strings.Contains(s.View(80, 24), "No throws logged yet") {
		t.Error("expected empty-log hint")
	}
}

func TestFilterCyclesThroughPlayers(t *testing.T) {
	repo := &fakeThrowRepo{records: testRecords()}
	users := []store.User{{ID: 1, Name: "Alice"}, {ID: 2, Name: "Bob"}}
	s := newLoadedHistory(t, repo, users)

	_, cmd := s.Update(keyPress('f'))
	if cmd == nil {
		t.Fatal("expected filter change to reload")
	}
	s.Update(cmd())
	if len(s.records) != 2 {
		t.Errorf("expected 2 records for Alice, got %d", len(s.records))
	}
	if !strings.Contains(s.View(80, 24), "Alice") {
		t.Error("expected filter name in the view")
	}

	_, cmd = s.Update(keyPress('f'))
	s.Update(cmd())
	if len(s.records) != 1 {
		t.Errorf("expected 1 record for Bob, got %d", len(s.records))
	}

	// One more wraps back to all players.
	_, cmd = s.Update(keyPress('f'))
	s.Update(cmd())
	if len(s.records) != 3 {
		t.Errorf("expected all 3 records after wrap, got %d", len(s.records))
	}
}

func TestDeleteRemovesSelectedRecord(t *testing.T) {
	repo := &fakeThrowRepo{records: testRecords()}
	s := newLoadedHistory(t, repo, nil)

	_, cmd := s.Update(keyPress('x'))
	if cmd == nil {
		t.Fatal("expected delete to produce a command")
	}
	_, reload := s.Update(cmd())
	if reload == nil {
		t.Fatal("expected a reload after the delete")
	}
	s.Update(reload())

	if len(s.records) != 2 {
		t.Errorf("expected 2 records after delete, got %d", len(s.records))
	}
	for _, r := range s.records {
		if r.ID == 3 {
			t.Error("expected the selected (first) record to be gone")
		}
	}
}
