package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/priyam/learnsphere/internal/ui/theme"
)

var optionLabels = []string{"A", "B", "C", "D", "E", "F"}

// ChoiceList renders one quiz question's options. Grading is deferred:
// while the quiz is open only the learner's pick is highlighted, and the
// correct answer is revealed only in review mode after submission.
type ChoiceList struct {
	Options      []string
	Cursor       int
	Chosen       int // -1 when unanswered
	CorrectIndex int
	Review       bool
}

// View renders the option rows.
func (c ChoiceList) View() string {
	var s string
	for i, opt := range c.Options {
		label := optionLabels[i%len(optionLabels)]
		cursor := "  "
		if i == c.Cursor && !c.Review {
			cursor = "▸ "
		}

		mark := " "
		if i == c.Chosen {
			mark = "●"
		}

		line := fmt.Sprintf("%s%s %s)  %s", cursor, mark, label, opt)

		switch {
		case c.Review && i == c.CorrectIndex:
			s += theme.Correct.Render(line+"  ✓") + "\n"
		case c.Review && i == c.Chosen:
			s += theme.Incorrect.Render(line+"  ✗") + "\n"
		case c.Review:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == c.Cursor:
			s += theme.Selected.Render(line) + "\n"
		case i == c.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}
	return s
}
