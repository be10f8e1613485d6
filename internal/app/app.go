package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/priyam/learnsphere/internal/lesson"
	"github.com/priyam/learnsphere/internal/router"
	"github.com/priyam/learnsphere/internal/screen"
	"github.com/priyam/learnsphere/internal/screens/home"
	"github.com/priyam/learnsphere/internal/session"
	"github.com/priyam/learnsphere/internal/speech"
	"github.com/priyam/learnsphere/internal/store"
	"github.com/priyam/learnsphere/internal/ui/layout"
)

// Deps carries the wired services the UI depends on. LessonService may
// be nil when no LLM provider is configured, Engine when speech is
// unavailable, and EventRepo when the database could not be opened.
type Deps struct {
	LessonService *lesson.Service
	EventRepo     store.EventRepo
	Engine        speech.Engine
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	machine *session.Machine
	width   int
	height  int
}

func newAppModel(deps Deps) AppModel {
	machine := session.NewMachine()
	homeScreen := home.New(machine, deps.LessonService, deps.EventRepo, deps.Engine)
	return AppModel{
		router:  router.New(homeScreen),
		machine: machine,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.EscHandler); ok {
				if consumed, cmd := h.HandleEsc(); consumed {
					return m, cmd
				}
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
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

	completed := m.machine.CompletedLessons
	if p, ok := active.(screen.ProgressProvider); ok {
		completed = p.CompletedLessons()
	}
	header := layout.RenderHeader(title, completed, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	if footerHints == nil {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
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
func Run(deps Deps) error {
	p := tea.NewProgram(newAppModel(deps))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
