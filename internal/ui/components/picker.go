package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/molkkylog/internal/ui/theme"
)

// PickerItem is one selectable entry in a Picker.
type PickerItem struct {
	Label string
	ID    int
}

// Picker is a vertical single-choice list, used for choosing a player.
type Picker struct {
	Title    string
	Items    []PickerItem
	Selected int
}

// NewPicker creates a picker with the cursor on the item matching
// currentID, or the first item.
func NewPicker(title string, items []PickerItem, currentID int) Picker {
	selected := 0
	for i, item := range items {
		if item.ID == currentID {
			selected = i
			break
		}
	}
	return Picker{Title: title, Items: items, Selected: selected}
}

// Update handles keyboard navigation. It reports the chosen item id and
// true when the user confirms.
func (p Picker) Update(msg tea.Msg) (Picker, int, bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, 0, false
	}

	switch kmsg.String() {
	case "up", "k":
		if p.Selected > 0 {
			p.Selected--
		}
	case "down", "j":
		if p.Selected < len(p.Items)-1 {
			p.Selected++
		}
	case "enter":
		if p.Selected >= 0 && p.Selected < len(p.Items) {
			return p, p.Items[p.Selected].ID, true
		}
	}
	return p, 0, false
}

// View renders the picker.
func (p Picker) View() string {
	var s string
	if p.Title != "" {
		s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(p.Title) + "\n\n"
	}
	for i, item := range p.Items {
		if i == p.Selected {
			s += theme.Selected.Render("  ▸ "+item.Label) + "\n"
		} else {
			s += theme.Unselected.Render("    "+item.Label) + "\n"
		}
	}
	return s
}
