package history

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/molkkylog/internal/router"
	"github.com/abhisek/molkkylog/internal/screen"
	"github.com/abhisek/molkkylog/internal/store"
	"github.com/abhisek/molkkylog/internal/ui/layout"
	"github.com/abhisek/molkkylog/internal/ui/theme"
)

type historyLoadedMsg struct {
	Records []store.ThrowRecord
	Err     error
}

type recordDeletedMsg struct {
	Err error
}

// HistoryScreen lists committed throws, newest first, with per-row delete
// and an optional per-player filter.
type HistoryScreen struct {
	throws   store.ThrowRepo
	users    []store.User
	filter   int // index into users, or -1 for all players
	records  []store.ThrowRecord
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen. users drives the filter cycle and may
// be empty.
func New(throws store.ThrowRepo, users []store.User) *HistoryScreen {
	return &HistoryScreen{throws: throws, users: users, filter: -1}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return s.load()
}

func (s *HistoryScreen) load() tea.Cmd {
	filter := s.filter
	return func() tea.Msg {
		var (
			records []store.ThrowRecord
			err     error
		)
		if filter >= 0 && filter < len(s.users) {
			records, err = s.throws.RecordsForUser(context.Background(), s.users[filter].ID)
		} else {
			records, err = s.throws.ListRecords(context.Background())
		}
		return historyLoadedMsg{Records: records, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "Throw Log"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "F", Description: "Filter player"},
		{Key: "X", Description: "Delete"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.records = msg.Records
			if s.selected >= len(s.records) {
				s.selected = len(s.records) - 1
			}
			if s.selected < 0 {
				s.selected = 0
			}
		}
		s.loaded = true
		return s, nil

	case recordDeletedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		return s, s.load()

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.records)-1 {
				s.selected++
			}
			return s, nil
		case "f":
			if len(s.users) > 0 {
				s.filter++
				if s.filter >= len(s.users) {
					s.filter = -1
				}
				s.selected = 0
				return s, s.load()
			}
			return s, nil
		case "x":
			if s.selected < len(s.records) {
				id := s.records[s.selected].ID
				return s, func() tea.Msg {
					return recordDeletedMsg{Err: s.throws.DeleteRecord(context.Background(), id)}
				}
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading log...")
	}
	if len(s.records) == 0 {
		msg := "\n\n  No throws logged yet. Save a session first!"
		if s.filter >= 0 {
			msg = "\n\n  No throws logged for " + s.filterName() + "."
		}
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render(msg)
	}

	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(theme.Hint.Render("Player: " + s.filterName()))
	b.WriteString("\n")

	visible := height - 3
	if visible < 1 {
		visible = 1
	}
	start := 0
	if s.selected >= visible {
		start = s.selected - visible + 1
	}

	for i := start; i < len(s.records) && i < start+visible; i++ {
		rec := s.records[i]
		mark := theme.Miss.Render("○ miss")
		if rec.IsSuccess {
			mark = theme.Hit.Render("● hit ")
		}
		line := fmt.Sprintf("  %s  %s  %sm  %s",
			rec.Timestamp.Format("Jan 02 15:04"),
			mark,
			strconv.FormatFloat(rec.Distance, 'f', -1, 64),
			strings.ToLower(string(rec.Angle)),
		)
		if w := describeConditions(rec.Env); w != "" {
			line += "  " + theme.Hint.Render(w)
		}

		if i == s.selected {
			b.WriteString(theme.Selected.Render("▸" + line[1:]))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (s *HistoryScreen) filterName() string {
	if s.filter >= 0 && s.filter < len(s.users) {
		return s.users[s.filter].Name
	}
	return "all"
}

func describeConditions(env store.Environment) string {
	var parts []string
	if env.Weather != nil {
		parts = append(parts, *env.Weather)
	}
	if env.Temperature != nil {
		parts = append(parts, strconv.FormatFloat(*env.Temperature, 'f', -1, 64)+"°C")
	}
	return strings.Join(parts, " ")
}
