package practice

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	engine "github.com/abhisek/molkkylog/internal/practice"
	"github.com/abhisek/molkkylog/internal/store"
	"github.com/abhisek/molkkylog/internal/ui/theme"
)

func (s *PracticeScreen) View(width, height int) string {
	if !s.snap.Ready {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Restoring sessions...")
	}

	active := s.snap.Active()
	if active == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(s.renderTabs(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	switch {
	case s.snap.Pending.Kind == engine.PendingExit:
		b.WriteString(s.renderExitConfirm(width))
	case s.snap.Pending.Kind == engine.PendingUserSwitch:
		b.WriteString(s.renderSwitchConfirm(width))
	case s.mode == modeNamePrompt, s.mode == modeDistancePrompt, s.mode == modeWeatherPrompt:
		b.WriteString(s.renderPrompt(width))
	case s.mode == modeUserPicker:
		b.WriteString(s.renderPicker(width))
	default:
		b.WriteString(s.renderSession(active, width))
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.Miss.Render("  " + s.errMsg))
	}

	return b.String()
}

// renderTabs draws one tab per open session; dirty tabs carry a dot.
func (s *PracticeScreen) renderTabs(width int) string {
	var parts []string
	for i, sess := range s.snap.Sessions {
		label := fmt.Sprintf("%d·%s", i+1, sess.UserName)
		if sess.IsDirty() {
			label += " ●"
		}
		switch {
		case sess.ID == s.snap.ActiveID:
			parts = append(parts, theme.TabActive.Render("["+label+"]"))
		case sess.IsDirty():
			parts = append(parts, theme.TabDirty.Render(label))
		default:
			parts = append(parts, theme.TabInactive.Render(label))
		}
	}
	if len(s.snap.Sessions) < engine.MaxSessions {
		parts = append(parts, theme.TabInactive.Render("+ t"))
	}
	return "  " + strings.Join(parts, " ")
}

func (s *PracticeScreen) renderSession(active *engine.SessionState, width int) string {
	var b strings.Builder

	// Distance rail.
	b.WriteString(theme.Subtitle.Render("  Distance"))
	b.WriteString("\n  ")
	if len(active.Distances) == 0 {
		b.WriteString(theme.Hint.Render("no distances — press + to add one"))
	} else {
		var rail []string
		for _, d := range active.Distances {
			label := formatDistance(d) + "m"
			if active.ActiveDistance != nil && d == *active.ActiveDistance {
				rail = append(rail, theme.Selected.Render("▸"+label))
			} else {
				rail = append(rail, theme.Unselected.Render(" "+label))
			}
		}
		b.WriteString(strings.Join(rail, "  "))
	}
	b.WriteString("\n\n")

	// Angle + conditions line.
	b.WriteString(fmt.Sprintf("  %s %s    %s\n\n",
		theme.Subtitle.Render("Angle"),
		theme.Body.Render(angleLabel(active.Angle)),
		theme.Hint.Render(describeEnv(active.Env)),
	))

	// Draft queue grouped by distance.
	if len(active.Drafts) == 0 {
		b.WriteString(theme.Hint.Render("  No staged throws. Enter = hit, M = miss."))
		b.WriteString("\n")
		return b.String()
	}

	hits := 0
	for _, d := range active.Drafts {
		if d.IsSuccess {
			hits++
		}
	}
	b.WriteString(theme.Draft.Render(fmt.Sprintf("  Staged: %d throws, %d hits (%d%%)",
		len(active.Drafts), hits, hits*100/len(active.Drafts))))
	b.WriteString("\n\n")

	byDistance := active.ThrowsByDistance()
	for _, d := range active.Distances {
		drafts := byDistance[d]
		if len(drafts) == 0 {
			continue
		}
		var marks []string
		for _, t := range drafts {
			if t.IsSuccess {
				marks = append(marks, theme.Hit.Render("●"))
			} else {
				marks = append(marks, theme.Miss.Render("○"))
			}
		}
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			theme.Body.Render(formatDistance(d)+"m"),
			strings.Join(marks, " ")))
	}

	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("  C save to log · D discard · U undo"))
	b.WriteString("\n")
	return b.String()
}

func (s *PracticeScreen) renderPrompt(width int) string {
	return theme.Card.Render(s.prompt.View())
}

func (s *PracticeScreen) renderPicker(width int) string {
	return s.picker.View()
}

func (s *PracticeScreen) renderExitConfirm(width int) string {
	dirty := 0
	for _, sess := range s.snap.Sessions {
		if sess.IsDirty() {
			dirty++
		}
	}
	msg := fmt.Sprintf("You have unsaved throws in %d session(s).\n\n"+
		"S  save them to the log and quit\n"+
		"D  discard them and quit\n"+
		"Esc  keep practicing", dirty)
	return theme.Card.Render(msg)
}

func (s *PracticeScreen) renderSwitchConfirm(width int) string {
	sess := s.snap.Session(s.snap.Pending.SessionID)
	name := "this player"
	if sess != nil {
		name = sess.UserName
	}
	msg := fmt.Sprintf("%s has unsaved throws.\n\n"+
		"S  save them, then switch\n"+
		"D  discard them, then switch\n"+
		"Esc  cancel", name)
	return theme.Card.Render(msg)
}

func formatDistance(d float64) string {
	return strconv.FormatFloat(d, 'f', -1, 64)
}

func angleLabel(a store.Angle) string {
	switch a {
	case store.AngleLeft:
		return "◀ left"
	case store.AngleRight:
		return "right ▶"
	default:
		return "center"
	}
}

// describeEnv summarizes the recorded conditions, or hints that none are
// set.
func describeEnv(env store.Environment) string {
	var parts []string
	if env.Weather != nil {
		parts = append(parts, *env.Weather)
	}
	if env.Temperature != nil {
		parts = append(parts, formatDistance(*env.Temperature)+"°C")
	}
	if env.Humidity != nil {
		parts = append(parts, formatDistance(*env.Humidity)+"%")
	}
	if env.Soil != nil {
		parts = append(parts, *env.Soil)
	}
	if env.MolkkyWeight != nil {
		parts = append(parts, formatDistance(*env.MolkkyWeight)+"g")
	}
	if len(parts) == 0 {
		return "no conditions recorded"
	}
	return strings.Join(parts, " · ")
}
