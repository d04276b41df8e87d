package practice

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	engine "github.com/abhisek/molkkylog/internal/practice"
	"github.com/abhisek/molkkylog/internal/screen"
	"github.com/abhisek/molkkylog/internal/store"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func distance(d float64) *float64 { return &d }

// testSnapshot builds a ready snapshot with a single default-shaped session.
func testSnapshot() engine.Snapshot {
	return engine.Snapshot{
		Ready:    true,
		ActiveID: "s1",
		Sessions: []engine.SessionState{{
			ID:             "s1",
			UserID:         1,
			UserName:       "Player 1",
			Distances:      []float64{4},
			ActiveDistance: distance(4),
			Angle:          store.AngleCenter,
		}},
		Users: []store.User{{ID: 1, Name: "Player 1"}},
	}
}

// testScreen builds a screen around a snapshot without an engine behind
// it, which is enough for rendering and mode transitions.
func testScreen(snap engine.Snapshot) *PracticeScreen {
	return &PracticeScreen{snap: snap}
}

func TestViewShowsRestoringUntilReady(t *testing.T) {
	s := testScreen(engine.Snapshot{})

	view := s.View(80, 24)
	if !strings.Contains(view, "Restoring sessions") {
		t.Errorf("expected restore notice before first snapshot, got %q", view)
	}
}

func TestViewRendersTabsWithDirtyMarker(t *testing.T) {
	snap := testSnapshot()
	snap.Sessions = append(snap.Sessions, engine.SessionState{
		ID:        "s2",
		UserID:    2,
		UserName:  "Bob",
		Distances: []float64{4},
		Angle:     store.AngleCenter,
		Drafts:    []store.ThrowDraft{{ID: 1, Distance: 4, IsSuccess: true}},
	})
	s := testScreen(snap)

	view := s.View(80, 24)
	if !strings.Contains(view, "1·Player 1") {
		t.Error("expected first tab label")
	}
	if !strings.Contains(view, "2·Bob ●") {
		t.Error("expected dirty marker on second tab")
	}
	if !strings.Contains(view, "+ t") {
		t.Error("expected new-tab hint below the session cap")
	}
}

func TestViewHidesNewTabHintAtCap(t *testing.T) {
	snap := testSnapshot()
	for len(snap.Sessions) < engine.MaxSessions {
		snap.Sessions = append(snap.Sessions, engine.SessionState{
			ID:        strings.Repeat("x", len(snap.Sessions)+1),
			UserName:  "Player 1",
			Distances: []float64{4},
			Angle:     store.AngleCenter,
		})
	}
	s := testScreen(snap)

	if strings.Contains(s.View(80, 24), "+ t") {
		t.Error("expected no new-tab hint at the session cap")
	}
}

func TestViewShowsStagedSummary(t *testing.T) {
	snap := testSnapshot()
	snap.Sessions[0].Drafts = []store.ThrowDraft{
		{ID: 1, Distance: 4, IsSuccess: true},
		{ID: 2, Distance: 4, IsSuccess: true},
		{ID: 3, Distance: 4, IsSuccess: false},
	}
	s := testScreen(snap)

	view := s.View(80, 24)
	if !strings.Contains(view, "Staged: 3 throws, 2 hits (66%)") {
		t.Errorf("expected staged summary, got %q", view)
	}
}

func TestViewShowsExitConfirmation(t *testing.T) {
	snap := testSnapshot()
	snap.Sessions[0].Drafts = []store.ThrowDraft{{ID: 1, Distance: 4}}
	snap.Pending = engine.Pending{Kind: engine.PendingExit}
	s := testScreen(snap)

	view := s.View(80, 24)
	if !strings.Contains(view, "unsaved throws in 1 session") {
		t.Errorf("expected exit confirmation, got %q", view)
	}
}

func TestViewShowsSwitchConfirmation(t *testing.T) {
	snap := testSnapshot()
	snap.Sessions[0].Drafts = []store.ThrowDraft{{ID: 1, Distance: 4}}
	snap.Pending = engine.Pending{
		Kind:         engine.PendingUserSwitch,
		SessionID:    "s1",
		TargetUserID: 2,
	}
	s := testScreen(snap)

	view := s.View(80, 24)
	if !strings.Contains(view, "Player 1 has unsaved throws") {
		t.Errorf("expected switch confirmation naming the owner, got %q", view)
	}
}

func TestSnapshotMsgReplacesState(t *testing.T) {
	s := testScreen(engine.Snapshot{})

	snap := testSnapshot()
	snap.Sessions[0].UserName = "Carol"
	s.Update(SnapshotMsg{Snapshot: snap})

	if !strings.Contains(s.View(80, 24), "Carol") {
		t.Error("expected view to reflect the delivered snapshot")
	}
}

func TestOpErrorShownInFooter(t *testing.T) {
	s := testScreen(testSnapshot())

	s.Update(opDoneMsg{Err: errors.New("storage unavailable")})

	if !strings.Contains(s.View(80, 24), "storage unavailable") {
		t.Error("expected operation error in the view")
	}
}

func TestPlusOpensDistancePrompt(t *testing.T) {
	s := testScreen(testSnapshot())

	s.handleKey(keyPress('+'))

	if s.mode != modeDistancePrompt {
		t.Fatalf("expected distance prompt mode, got %d", s.mode)
	}
	if !strings.Contains(s.View(80, 24), "New distance") {
		t.Error("expected distance prompt in the view")
	}
}

func TestEscClosesPrompt(t *testing.T) {
	s := testScreen(testSnapshot())
	s.handleKey(keyPress('+'))

	s.handleKey(specialKey(tea.KeyEscape))

	if s.mode != modeNormal {
		t.Errorf("expected normal mode after esc, got %d", s.mode)
	}
}

func TestInterceptQuitDismissesPromptFirst(t *testing.T) {
	s := testScreen(testSnapshot())
	s.handleKey(keyPress('+'))

	// Through the interface the app's quit path uses.
	var guard screen.QuitGuard = s
	_, handled := guard.InterceptQuit()

	if !handled {
		t.Error("expected quit to be absorbed while a prompt is open")
	}
	if s.mode != modeNormal {
		t.Errorf("expected prompt to close, got mode %d", s.mode)
	}
}

func TestPickerListsPlayersAndNewEntry(t *testing.T) {
	snap := testSnapshot()
	snap.Users = append(snap.Users, store.User{ID: 2, Name: "Bob"})
	s := testScreen(snap)

	s.handleKey(keyPress('p'))

	if s.mode != modeUserPicker {
		t.Fatalf("expected user picker mode, got %d", s.mode)
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "Bob") {
		t.Error("expected player names in the picker")
	}
	if !strings.Contains(view, "New player") {
		t.Error("expected the new-player entry in the picker")
	}
}

func TestKeyHintsFollowMode(t *testing.T) {
	s := testScreen(testSnapshot())

	hints := s.KeyHints()
	if len(hints) == 0 || hints[0].Description != "Hit" {
		t.Errorf("expected throw hints in normal mode, got %v", hints)
	}

	snap := testSnapshot()
	snap.Pending = engine.Pending{Kind: engine.PendingExit}
	s = testScreen(snap)
	hints = s.KeyHints()
	if len(hints) == 0 || hints[0].Description != "Save & quit" {
		t.Errorf("expected exit hints while confirming, got %v", hints)
	}
}
