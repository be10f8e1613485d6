package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/priyam/learnsphere/internal/ui/theme"
)

// Select cycles through a fixed set of options with the left/right keys.
// Used for the learning-style and knowledge-level rows of the lesson form.
type Select struct {
	Label   string
	Options []string
	Index   int
	focused bool
}

// NewSelect creates a selector over options, starting at the first.
func NewSelect(label string, options []string) Select {
	return Select{Label: label, Options: options}
}

// Focus gives the selector keyboard focus.
func (s *Select) Focus() { s.focused = true }

// Blur removes keyboard focus.
func (s *Select) Blur() { s.focused = false }

// Focused reports whether the selector has focus.
func (s Select) Focused() bool { return s.focused }

// Value returns the selected option.
func (s Select) Value() string {
	return s.Options[s.Index]
}

// Update handles left/right cycling while focused.
func (s Select) Update(msg tea.Msg) (Select, tea.Cmd) {
	if !s.focused {
		return s, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "left", "h":
		s.Index = (s.Index + len(s.Options) - 1) % len(s.Options)
	case "right", "l":
		s.Index = (s.Index + 1) % len(s.Options)
	}
	return s, nil
}

// View renders the label and the option row with the selection marked.
func (s Select) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if s.focused {
		labelStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}

	parts := make([]string, 0, len(s.Options))
	for i, opt := range s.Options {
		switch {
		case i == s.Index && s.focused:
			parts = append(parts, theme.Selected.Render("◂ "+opt+" ▸"))
		case i == s.Index:
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.Secondary).Render("["+opt+"]"))
		default:
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.TextDim).Render(opt))
		}
	}
	return labelStyle.Render(s.Label) + "\n" + strings.Join(parts, "   ")
}
