package practice

import (
	"context"
	"strconv"

	tea "charm.land/bubbletea/v2"

	engine "github.com/abhisek/molkkylog/internal/practice"
	"github.com/abhisek/molkkylog/internal/router"
	"github.com/abhisek/molkkylog/internal/screen"
	"github.com/abhisek/molkkylog/internal/screens/history"
	"github.com/abhisek/molkkylog/internal/store"
	"github.com/abhisek/molkkylog/internal/ui/components"
	"github.com/abhisek/molkkylog/internal/ui/layout"
)

// input modes layered over the normal key handling
const (
	modeNormal = iota
	modeNamePrompt
	modeDistancePrompt
	modeWeatherPrompt
	modeUserPicker
)

// newPlayerID is the sentinel picker entry that opens the name prompt.
const newPlayerID = -1

// PracticeScreen is the main view: session tabs, the throw pad, and the
// overlays for prompts and confirmations.
type PracticeScreen struct {
	reg    *engine.Registry
	throws store.ThrowRepo

	snap   engine.Snapshot
	mode   int
	prompt components.PromptInput
	picker components.Picker
	errMsg string
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)
var _ screen.QuitGuard = (*PracticeScreen)(nil)

// New creates the practice screen over a loaded registry.
func New(reg *engine.Registry, throws store.ThrowRepo) *PracticeScreen {
	return &PracticeScreen{
		reg:    reg,
		throws: throws,
		snap:   reg.Snapshot(),
	}
}

func (s *PracticeScreen) Init() tea.Cmd {
	return nil
}

func (s *PracticeScreen) Title() string {
	return "Practice"
}

// InterceptQuit routes the quit key through the draft-settling flow: it
// first dismisses any open overlay, then asks the engine whether leaving
// is safe. The quit proceeds only when every session is clean; otherwise
// the exit confirmation overlay opens via the next snapshot.
func (s *PracticeScreen) InterceptQuit() (tea.Cmd, bool) {
	switch {
	case s.snap.Pending.Kind == engine.PendingExit:
		s.reg.CancelExit()
		return nil, true
	case s.snap.Pending.Kind == engine.PendingUserSwitch:
		s.reg.CancelUserSwitch()
		return nil, true
	case s.mode != modeNormal:
		s.mode = modeNormal
		return nil, true
	}
	if s.reg.RequestExit() {
		return nil, false
	}
	return nil, true
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.snap.Pending.Kind == engine.PendingExit:
		return []layout.KeyHint{
			{Key: "S", Description: "Save & quit"},
			{Key: "D", Description: "Discard & quit"},
			{Key: "Esc", Description: "Stay"},
		}
	case s.snap.Pending.Kind == engine.PendingUserSwitch:
		return []layout.KeyHint{
			{Key: "S", Description: "Save & switch"},
			{Key: "D", Description: "Discard & switch"},
			{Key: "Esc", Description: "Cancel"},
		}
	case s.mode == modeNamePrompt, s.mode == modeDistancePrompt, s.mode == modeWeatherPrompt:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Confirm"},
			{Key: "Esc", Description: "Cancel"},
		}
	case s.mode == modeUserPicker:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Hit"},
		{Key: "M", Description: "Miss"},
		{Key: "U", Description: "Undo"},
		{Key: "C", Description: "Save"},
		{Key: "P", Description: "Player"},
		{Key: "H", Description: "History"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case SnapshotMsg:
		s.snap = msg.Snapshot
		return s, nil

	case opDoneMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		}
		return s, nil

	case exitResolvedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		return s, tea.Quit

	case switchResolvedMsg, userCreatedMsg:
		return s.handleResolved(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.mode == modeNamePrompt || s.mode == modeDistancePrompt || s.mode == modeWeatherPrompt {
		var cmd tea.Cmd
		s.prompt, cmd = s.prompt.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *PracticeScreen) handleResolved(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var err error
	switch m := msg.(type) {
	case switchResolvedMsg:
		err = m.Err
	case userCreatedMsg:
		err = m.Err
	}
	if err != nil {
		s.errMsg = err.Error()
	}
	return s, nil
}

func (s *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	s.errMsg = ""

	if s.snap.Pending.Kind == engine.PendingExit {
		return s.handleExitConfirmKey(msg)
	}
	if s.snap.Pending.Kind == engine.PendingUserSwitch {
		return s.handleSwitchConfirmKey(msg)
	}

	switch s.mode {
	case modeNamePrompt:
		return s.handleNamePromptKey(msg)
	case modeDistancePrompt:
		return s.handleDistancePromptKey(msg)
	case modeWeatherPrompt:
		return s.handleWeatherPromptKey(msg)
	case modeUserPicker:
		return s.handleUserPickerKey(msg)
	}
	return s.handleNormalKey(msg)
}

func (s *PracticeScreen) handleExitConfirmKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "s", "y":
		return s, s.resolveExit(true)
	case "d", "n":
		return s, s.resolveExit(false)
	case "esc":
		s.reg.CancelExit()
	}
	return s, nil
}

func (s *PracticeScreen) handleSwitchConfirmKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "s", "y":
		return s, s.resolveSwitch(true)
	case "d", "n":
		return s, s.resolveSwitch(false)
	case "esc":
		s.reg.CancelUserSwitch()
	}
	return s, nil
}

func (s *PracticeScreen) handleNamePromptKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.mode = modeNormal
		return s, nil
	case "enter":
		name := s.prompt.Value()
		if name == "" {
			s.prompt.SetError("name cannot be blank")
			return s, nil
		}
		s.mode = modeNormal
		sessionID := s.snap.ActiveID
		return s, func() tea.Msg {
			_, err := s.reg.CreateUserAndSwitch(context.Background(), sessionID, name)
			return userCreatedMsg{Err: err}
		}
	}
	var cmd tea.Cmd
	s.prompt, cmd = s.prompt.Update(msg)
	return s, cmd
}

func (s *PracticeScreen) handleDistancePromptKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.mode = modeNormal
		return s, nil
	case "enter":
		d, err := s.prompt.FloatValue()
		if err != nil || d <= 0 {
			s.prompt.SetError("enter a positive distance in meters")
			return s, nil
		}
		s.mode = modeNormal
		sessionID := s.snap.ActiveID
		return s, func() tea.Msg {
			return opDoneMsg{Err: s.reg.AddDistance(sessionID, d)}
		}
	}
	var cmd tea.Cmd
	s.prompt, cmd = s.prompt.Update(msg)
	return s, cmd
}

func (s *PracticeScreen) handleWeatherPromptKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.mode = modeNormal
		return s, nil
	case "enter":
		s.mode = modeNormal
		sessionID := s.snap.ActiveID
		if v := s.prompt.Value(); v != "" {
			s.reg.SetWeather(sessionID, &v)
		} else {
			s.reg.SetWeather(sessionID, nil)
		}
		return s, nil
	}
	var cmd tea.Cmd
	s.prompt, cmd = s.prompt.Update(msg)
	return s, cmd
}

func (s *PracticeScreen) handleUserPickerKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if msg.String() == "esc" {
		s.mode = modeNormal
		return s, nil
	}
	var (
		id     int
		chosen bool
	)
	s.picker, id, chosen = s.picker.Update(msg)
	if !chosen {
		return s, nil
	}
	s.mode = modeNormal
	if id == newPlayerID {
		s.prompt = components.NewPromptInput("New player", "name", false)
		s.mode = modeNamePrompt
		return s, s.prompt.Init()
	}
	sessionID := s.snap.ActiveID
	return s, func() tea.Msg {
		_, err := s.reg.SwitchUser(context.Background(), sessionID, id)
		return opDoneMsg{Err: err}
	}
}

func (s *PracticeScreen) handleNormalKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	active := s.snap.Active()
	if active == nil {
		return s, nil
	}
	sessionID := active.ID

	switch msg.String() {
	case "enter", " ":
		return s, s.recordThrow(sessionID, true)
	case "m", "f":
		return s, s.recordThrow(sessionID, false)
	case "u":
		return s, s.engineOp(func(ctx context.Context) error {
			return s.reg.Undo(ctx, sessionID)
		})
	case "c":
		return s, s.engineOp(func(ctx context.Context) error {
			return s.reg.Commit(ctx, sessionID)
		})
	case "d":
		return s, s.engineOp(func(ctx context.Context) error {
			return s.reg.Discard(ctx, sessionID)
		})

	case "t":
		s.reg.AddSession()
		return s, nil
	case "w":
		return s, s.engineOp(func(ctx context.Context) error {
			err := s.reg.RemoveSession(ctx, sessionID)
			if err == engine.ErrLastSession {
				return nil
			}
			return err
		})
	case "tab":
		s.selectNextSession(1)
		return s, nil
	case "shift+tab":
		s.selectNextSession(-1)
		return s, nil
	case "1", "2", "3", "4", "5":
		idx, _ := strconv.Atoi(msg.String())
		if idx >= 1 && idx <= len(s.snap.Sessions) {
			s.reg.SelectSession(s.snap.Sessions[idx-1].ID)
		}
		return s, nil

	case "left":
		s.selectNextDistance(active, -1)
		return s, nil
	case "right":
		s.selectNextDistance(active, 1)
		return s, nil
	case "+", "=":
		s.prompt = components.NewPromptInput("New distance (m)", "4.0", true)
		s.mode = modeDistancePrompt
		return s, s.prompt.Init()
	case "-":
		if active.ActiveDistance != nil {
			d := *active.ActiveDistance
			return s, s.engineOp(func(ctx context.Context) error {
				return s.reg.RemoveDistance(ctx, sessionID, d)
			})
		}
		return s, nil

	case "a":
		s.reg.SelectAngle(sessionID, nextAngle(active.Angle))
		return s, nil

	case "e":
		placeholder := "sunny"
		if active.Env.Weather != nil {
			placeholder = *active.Env.Weather
		}
		s.prompt = components.NewPromptInput("Weather (blank to clear)", placeholder, false)
		s.mode = modeWeatherPrompt
		return s, s.prompt.Init()
	case "E":
		s.reg.ResetEnvironment(sessionID)
		return s, nil

	case "p":
		s.openUserPicker(active)
		return s, nil

	case "h":
		users := s.snap.Users
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: history.New(s.throws, users)}
		}
	}
	return s, nil
}

func (s *PracticeScreen) openUserPicker(active *engine.SessionState) {
	items := make([]components.PickerItem, 0, len(s.snap.Users)+1)
	for _, u := range s.snap.Users {
		items = append(items, components.PickerItem{Label: u.Name, ID: u.ID})
	}
	items = append(items, components.PickerItem{Label: "+ New player…", ID: newPlayerID})
	s.picker = components.NewPicker("Who is throwing?", items, active.UserID)
	s.mode = modeUserPicker
}

func (s *PracticeScreen) selectNextSession(step int) {
	n := len(s.snap.Sessions)
	if n < 2 {
		return
	}
	cur := 0
	for i, sess := range s.snap.Sessions {
		if sess.ID == s.snap.ActiveID {
			cur = i
			break
		}
	}
	s.reg.SelectSession(s.snap.Sessions[(cur+step+n)%n].ID)
}

func (s *PracticeScreen) selectNextDistance(active *engine.SessionState, step int) {
	n := len(active.Distances)
	if n == 0 || active.ActiveDistance == nil {
		if n > 0 {
			s.reg.SelectDistance(active.ID, active.Distances[0])
		}
		return
	}
	cur := 0
	for i, d := range active.Distances {
		if d == *active.ActiveDistance {
			cur = i
			break
		}
	}
	s.reg.SelectDistance(active.ID, active.Distances[(cur+step+n)%n])
}

func (s *PracticeScreen) recordThrow(sessionID string, hit bool) tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{Err: s.reg.RecordThrow(context.Background(), sessionID, hit)}
	}
}

func (s *PracticeScreen) engineOp(op func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{Err: op(context.Background())}
	}
}

func (s *PracticeScreen) resolveExit(save bool) tea.Cmd {
	return func() tea.Msg {
		return exitResolvedMsg{Err: s.reg.ConfirmExit(context.Background(), save)}
	}
}

func (s *PracticeScreen) resolveSwitch(save bool) tea.Cmd {
	return func() tea.Msg {
		return switchResolvedMsg{Err: s.reg.ResolveUserSwitch(context.Background(), save)}
	}
}

func nextAngle(a store.Angle) store.Angle {
	switch a {
	case store.AngleLeft:
		return store.AngleCenter
	case store.AngleCenter:
		return store.AngleRight
	default:
		return store.AngleLeft
	}
}
