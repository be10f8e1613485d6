package learn

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/priyam/learnsphere/internal/lesson"
	"github.com/priyam/learnsphere/internal/ui/components"
	"github.com/priyam/learnsphere/internal/ui/theme"
)

// Focusable fields of the lesson request form, in tab order.
const (
	fieldTopic = iota
	fieldSubTopic
	fieldStyle
	fieldLevel
	fieldGenerate
	fieldCount
)

// formModel is the lesson request form: topic, optional sub-topic,
// learning style and knowledge level.
type formModel struct {
	topic    components.TextInput
	subTopic components.TextInput
	style    components.Select
	level    components.Select
	focus    int
	errMsg   string
}

func styleLabels() []string {
	styles := lesson.LearningStyles()
	labels := make([]string, len(styles))
	for i, s := range styles {
		labels[i] = string(s)
	}
	return labels
}

func levelLabels() []string {
	levels := lesson.KnowledgeLevels()
	labels := make([]string, len(levels))
	for i, l := range levels {
		labels[i] = string(l)
	}
	return labels
}

func newForm() formModel {
	return formModel{
		topic:    components.NewTextInput("Topic", "e.g. Photosynthesis, The French Revolution...", 120),
		subTopic: components.NewTextInput("Sub-topic (optional)", "e.g. The Calvin Cycle", 120),
		style:    components.NewSelect("Learning style", styleLabels()),
		level:    components.NewSelect("Knowledge level", levelLabels()),
	}
}

func (f *formModel) Init() tea.Cmd {
	return f.setFocus(fieldTopic)
}

func (f *formModel) setFocus(field int) tea.Cmd {
	f.focus = field
	f.topic.Blur()
	f.subTopic.Blur()
	f.style.Blur()
	f.level.Blur()

	switch field {
	case fieldTopic:
		return f.topic.Focus()
	case fieldSubTopic:
		return f.subTopic.Focus()
	case fieldStyle:
		f.style.Focus()
	case fieldLevel:
		f.level.Focus()
	}
	return nil
}

// Request builds the lesson request from the current field values.
func (f *formModel) Request() lesson.Request {
	return lesson.Request{
		Topic:          strings.TrimSpace(f.topic.Value()),
		SubTopic:       strings.TrimSpace(f.subTopic.Value()),
		LearningStyle:  lesson.LearningStyles()[f.style.Index],
		KnowledgeLevel: lesson.KnowledgeLevels()[f.level.Index],
	}
}

// Update handles focus movement and field input. It reports whether the
// form was submitted this update.
func (f *formModel) Update(msg tea.Msg) (tea.Cmd, bool) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab", "down":
			return f.setFocus((f.focus + 1) % fieldCount), false
		case "shift+tab", "up":
			return f.setFocus((f.focus + fieldCount - 1) % fieldCount), false
		case "enter":
			return nil, true
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case fieldTopic:
		f.topic, cmd = f.topic.Update(msg)
	case fieldSubTopic:
		f.subTopic, cmd = f.subTopic.Update(msg)
	case fieldStyle:
		f.style, cmd = f.style.Update(msg)
	case fieldLevel:
		f.level, cmd = f.level.Update(msg)
	}
	return cmd, false
}

// View renders the form fields and the generate button.
func (f *formModel) View(width int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("What would you like to learn today?"))
	b.WriteString("\n\n")

	fields := []string{
		f.topic.View(),
		f.subTopic.View(),
		f.style.View(),
		f.level.View(),
		components.Button("Generate Lesson", f.focus == fieldGenerate),
	}
	form := strings.Join(fields, "\n\n")

	card := theme.Card.Width(min(width-4, 72)).Render(form)
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(card))

	if f.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(f.errMsg))
	}

	return b.String()
}
