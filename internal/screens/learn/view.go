package learn

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/priyam/learnsphere/internal/speech"
	"github.com/priyam/learnsphere/internal/ui/components"
	"github.com/priyam/learnsphere/internal/ui/layout"
	"github.com/priyam/learnsphere/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// paragraph is one cursor stop in the reading view. Introduction
// paragraphs carry section -1.
type paragraph struct {
	ID   speech.ParagraphID
	Text string
}

// paragraphs flattens the lesson into cursor stops, introduction first.
func (s *LearnScreen) paragraphs() []paragraph {
	l := s.machine.Lesson
	if l == nil {
		return nil
	}
	var out []paragraph
	for i, text := range splitParagraphs(l.Introduction) {
		out = append(out, paragraph{ID: speech.ParagraphID{Section: -1, Paragraph: i}, Text: text})
	}
	for si, sec := range l.Sections {
		for pi, text := range sec.Paragraphs() {
			out = append(out, paragraph{ID: speech.ParagraphID{Section: si, Paragraph: pi}, Text: text})
		}
	}
	return out
}

func splitParagraphs(text string) []string {
	var out []string
	for _, p := range strings.Split(text, "\n") {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// cursorSection returns the section index under the cursor, or -1 when
// the cursor sits in the introduction.
func (s *LearnScreen) cursorSection() int {
	paras := s.paragraphs()
	if s.paraCursor < 0 || s.paraCursor >= len(paras) {
		return -1
	}
	return paras[s.paraCursor].ID.Section
}

func (s *LearnScreen) View(width, height int) string {
	switch s.mode() {
	case modeForm:
		return s.form.View(width)
	case modeLoading:
		return s.renderLoading(width)
	case modeReading:
		return s.renderLesson(width, height)
	case modeQuiz:
		return s.renderQuiz(width)
	case modeResult:
		return s.renderResult(width)
	case modeReview:
		return s.renderReview(width)
	}
	return ""
}

func (s *LearnScreen) renderLoading(width int) string {
	frame := spinnerFrames[s.spinnerFrame%len(spinnerFrames)]
	label := "Crafting your personalized lesson..."
	if s.machine.Retrying {
		label = "Preparing a simpler take on it..."
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n" + theme.Selected.Render(frame) + "  " + label)
}

func (s *LearnScreen) renderLesson(width, height int) string {
	l := s.machine.Lesson
	cw := layout.ContentWidth(width)
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render(l.Title))
	b.WriteString("\n\n")

	speechState := speech.Stopped
	var speechID speech.ParagraphID
	if s.coord != nil {
		speechState, speechID = s.coord.State()
	}

	paras := s.paragraphs()
	cursorID := speech.ParagraphID{Section: -2}
	if s.paraCursor >= 0 && s.paraCursor < len(paras) {
		cursorID = paras[s.paraCursor].ID
	}

	bodyStyle := theme.Body.Width(cw)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw)

	renderPara := func(p paragraph) string {
		marker := "  "
		style := dimStyle
		if p.ID == cursorID {
			marker = "▍ "
			style = bodyStyle
		}
		switch {
		case speechState == speech.Playing && p.ID == speechID:
			marker = "🔊 "
		case speechState == speech.Paused && p.ID == speechID:
			marker = "⏸ "
		}
		return marker + style.Render(p.Text)
	}

	lastSection := -2
	for _, p := range paras {
		if p.ID.Section != lastSection {
			if p.ID.Section >= 0 {
				sec := l.Sections[p.ID.Section]
				b.WriteString("\n")
				b.WriteString(theme.SectionTitle.Render("  " + sec.Title))
				b.WriteString("\n\n")
			}
			lastSection = p.ID.Section
		}
		b.WriteString(renderPara(p))
		b.WriteString("\n\n")

		// Elaboration renders after the section's last paragraph.
		if p.ID.Section >= 0 && s.lastParagraphOfSection(p.ID) {
			sec := l.Sections[p.ID.Section]
			switch {
			case sec.Elaboration != "":
				card := theme.Elaboration.Width(cw - 4).Render("💡 " + sec.Elaboration)
				b.WriteString("    " + card + "\n\n")
			case s.machine.ElaboratingSection == p.ID.Section:
				b.WriteString("    " + theme.Hint.Render("thinking of a good analogy...") + "\n\n")
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
		Render(components.Button(fmt.Sprintf("Take the Quiz (%d questions)", len(l.Quiz)), true)))

	return b.String()
}

func (s *LearnScreen) lastParagraphOfSection(id speech.ParagraphID) bool {
	sec := s.machine.Lesson.Sections[id.Section]
	return id.Paragraph == len(sec.Paragraphs())-1
}

func (s *LearnScreen) renderQuiz(width int) string {
	l := s.machine.Lesson
	attempt := s.machine.Quiz
	q := l.Quiz[s.qIndex]
	cw := layout.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render("Quiz: " + l.Title))
	b.WriteString("\n\n")

	bar := components.ProgressBar{
		Label:   "Answered",
		Current: attempt.AnsweredCount(),
		Total:   len(l.Quiz),
		Width:   min(cw, 50),
	}
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(bar.View()))
	b.WriteString("\n\n")

	header := fmt.Sprintf("Question %d of %d", s.qIndex+1, len(l.Quiz))
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
		Foreground(theme.TextDim).Render(header))
	b.WriteString("\n\n")

	choices := components.ChoiceList{
		Options:      q.Options,
		Cursor:       s.optionCursor,
		Chosen:       attempt.Selected[s.qIndex],
		CorrectIndex: q.CorrectAnswerIndex,
	}
	card := theme.Card.Width(min(width-4, cw+8)).Render(
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(cw).Render(q.Question) +
			"\n\n" + choices.View())
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(card))

	if attempt.AllAnswered() {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
			Foreground(theme.Success).Render("All answered — press F to finish"))
	}
	if s.quizHint != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
			Foreground(theme.Error).Render(s.quizHint))
	}

	return b.String()
}

func (s *LearnScreen) renderResult(width int) string {
	res := s.machine.Result
	var b strings.Builder

	b.WriteString("\n\n")
	score := fmt.Sprintf("You scored %d out of %d", res.Score, res.Total)
	if res.Passed {
		b.WriteString(theme.Correct.Width(width).Align(lipgloss.Center).Render("🎉 Congratulations, you passed!"))
		b.WriteString("\n\n")
		b.WriteString(theme.Subtitle.Width(width).Render(score))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
			Render(components.Button("Finish Lesson", true)))
	} else {
		b.WriteString(theme.Incorrect.Width(width).Align(lipgloss.Center).Render("Not quite there yet."))
		b.WriteString("\n\n")
		b.WriteString(theme.Subtitle.Width(width).Render(score))
		b.WriteString("\n\n")
		b.WriteString(theme.Subtitle.Width(width).Render("Let's go through it again with a simpler lesson."))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
			Render(components.Button("Try a Simpler Lesson (R)", true)))
	}
	return b.String()
}

func (s *LearnScreen) renderReview(width int) string {
	l := s.machine.Lesson
	attempt := s.machine.Quiz
	q := l.Quiz[s.reviewIndex]
	cw := layout.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render("Answer Review"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
		Foreground(theme.TextDim).Render(fmt.Sprintf("Question %d of %d", s.reviewIndex+1, len(l.Quiz))))
	b.WriteString("\n\n")

	choices := components.ChoiceList{
		Options:      q.Options,
		Chosen:       attempt.Selected[s.reviewIndex],
		CorrectIndex: q.CorrectAnswerIndex,
		Review:       true,
	}
	card := theme.Card.Width(min(width-4, cw+8)).Render(
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(cw).Render(q.Question) +
			"\n\n" + choices.View())
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(card))

	return b.String()
}
