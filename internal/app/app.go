package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	engine "github.com/abhisek/molkkylog/internal/practice"
	"github.com/abhisek/molkkylog/internal/router"
	"github.com/abhisek/molkkylog/internal/screen"
	practicescreen "github.com/abhisek/molkkylog/internal/screens/practice"
	"github.com/abhisek/molkkylog/internal/store"
	"github.com/abhisek/molkkylog/internal/ui/layout"
)

// Options carries the wired dependencies for the TUI.
type Options struct {
	Registry *engine.Registry
	Throws   store.ThrowRepo
}

// loadDoneMsg is sent when startup reconciliation has finished.
type loadDoneMsg struct {
	Err error
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	registry *engine.Registry
	snaps    <-chan engine.Snapshot
	unsub    func()
	width    int
	height   int
}

func newAppModel(opts Options) AppModel {
	snaps, unsub := opts.Registry.Subscribe()
	return AppModel{
		router:   router.New(practicescreen.New(opts.Registry, opts.Throws)),
		registry: opts.Registry,
		snaps:    snaps,
		unsub:    unsub,
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.reconcile(), m.nextSnapshot())
}

// reconcile rebuilds sessions from the persisted shape before the first
// interaction is allowed.
func (m AppModel) reconcile() tea.Cmd {
	return func() tea.Msg {
		return loadDoneMsg{Err: m.registry.Load(context.Background())}
	}
}

// nextSnapshot waits for the engine to publish and re-arms itself.
func (m AppModel) nextSnapshot() tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-m.snaps
		if !ok {
			return nil
		}
		return practicescreen.SnapshotMsg{Snapshot: snap}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case loadDoneMsg:
		if msg.Err != nil {
			// The registry degrades to a usable default shape; report
			// and continue.
			fmt.Fprintf(os.Stderr, "warning: session restore incomplete: %v\n", msg.Err)
		}
		return m, nil

	case practicescreen.SnapshotMsg:
		cmd := m.router.Broadcast(msg)
		return m, tea.Batch(cmd, m.nextSnapshot())

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m.handleQuit()
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m.handleQuit()
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// handleQuit gives the active screen a chance to intercept, so unsaved
// throws are settled before the program exits.
func (m AppModel) handleQuit() (tea.Model, tea.Cmd) {
	if guard, ok := m.router.Active().(screen.QuitGuard); ok {
		cmd, handled := guard.InterceptQuit()
		if handled {
			return m, cmd
		}
	}
	m.unsub()
	return m, tea.Quit
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	player := ""
	if s := m.registry.Snapshot().Active(); s != nil {
		player = s.UserName
	}
	header := layout.RenderHeader(title, player, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); hints != nil {
			footerHints = hints
		}
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
