package components

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/molkkylog/internal/ui/theme"
)

// PromptInput wraps bubbles/textinput for the small inline prompts the
// practice screen opens (new player name, new distance).
type PromptInput struct {
	Model   textinput.Model
	Label   string
	Decimal bool // restrict input to a decimal number
	errMsg  string
}

// NewPromptInput creates a styled single-line prompt.
func NewPromptInput(label, placeholder string, decimal bool) PromptInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 32
	ti.Focus()

	return PromptInput{
		Model:   ti,
		Label:   label,
		Decimal: decimal,
	}
}

// Init returns the initial command.
func (p PromptInput) Init() tea.Cmd {
	return p.Model.Focus()
}

// Update handles messages.
func (p PromptInput) Update(msg tea.Msg) (PromptInput, tea.Cmd) {
	if p.Decimal {
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			key := kmsg.String()
			if len(key) == 1 && (key[0] < '0' || key[0] > '9') && key != "." {
				return p, nil
			}
			if key == "." && strings.Contains(p.Model.Value(), ".") {
				return p, nil
			}
		}
	}

	var cmd tea.Cmd
	p.Model, cmd = p.Model.Update(msg)
	if p.errMsg != "" {
		if _, ok := msg.(tea.KeyMsg); ok {
			p.errMsg = ""
		}
	}
	return p, cmd
}

// View renders the prompt with its label and any validation error.
func (p PromptInput) View() string {
	view := theme.Body.Render(p.Label+": ") + p.Model.View()
	if p.errMsg != "" {
		view += "\n" + theme.Miss.Render("  "+p.errMsg)
	}
	return view
}

// Value returns the trimmed input value.
func (p PromptInput) Value() string {
	return strings.TrimSpace(p.Model.Value())
}

// FloatValue parses the input as a float64.
func (p PromptInput) FloatValue() (float64, error) {
	return strconv.ParseFloat(p.Value(), 64)
}

// SetError shows a validation message under the prompt.
func (p *PromptInput) SetError(msg string) {
	p.errMsg = msg
}
