package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/priyam/learnsphere/internal/lesson"
	"github.com/priyam/learnsphere/internal/router"
	"github.com/priyam/learnsphere/internal/screen"
	"github.com/priyam/learnsphere/internal/screens/learn"
	"github.com/priyam/learnsphere/internal/session"
	"github.com/priyam/learnsphere/internal/speech"
	"github.com/priyam/learnsphere/internal/store"
	"github.com/priyam/learnsphere/internal/ui/components"
	"github.com/priyam/learnsphere/internal/ui/layout"
	"github.com/priyam/learnsphere/internal/ui/theme"
)

const titleFull = ` ██╗     ███████╗ █████╗ ██████╗ ███╗   ██╗
 ██║     ██╔════╝██╔══██╗██╔══██╗████╗  ██║
 ██║     █████╗  ███████║██████╔╝██╔██╗ ██║
 ██║     ██╔══╝  ██╔══██║██╔══██╗██║╚██╗██║
 ███████╗███████╗██║  ██║██║  ██║██║ ╚████║
 ╚══════╝╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═══╝`

const titleCompact = "L E A R N S P H E R E"

// HomeScreen is the entry screen: banner, menu and setup warnings.
type HomeScreen struct {
	menu     components.Menu
	machine  *session.Machine
	noLLM    bool
	noSpeech bool
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.ProgressProvider = (*HomeScreen)(nil)

// New creates the home screen. svc may be nil when no provider is
// configured, which disables the start item and shows a setup banner.
func New(machine *session.Machine, svc *lesson.Service, repo store.EventRepo, engine speech.Engine) *HomeScreen {
	items := []components.MenuItem{
		{
			Label:    "START LEARNING",
			Disabled: svc == nil,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: learn.New(machine, svc, repo, engine)}
				}
			},
		},
		{
			Label: "EXIT",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	}

	return &HomeScreen{
		menu:     components.NewMenu(items),
		machine:  machine,
		noLLM:    svc == nil,
		noSpeech: engine == nil,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// CompletedLessons feeds the header counter.
func (h *HomeScreen) CompletedLessons() int {
	return h.machine.CompletedLessons
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := titleFull
	subtitle := "S P H E R E  ·  learn anything, your way"
	if layout.IsCompactWidth(width) {
		title = titleCompact
		subtitle = "learn anything, your way"
	}
	sections = append(sections,
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(title),
		theme.Subtitle.Render(subtitle),
		"",
		h.menu.View(),
	)

	if h.noLLM {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render("⚠ No LLM API key found. Set LEARNSPHERE_GEMINI_API_KEY to start learning."))
	} else if h.noSpeech {
		sections = append(sections, theme.Hint.
			Render("Tip: set GOOGLE_TTS_API_KEY to have lessons read aloud."))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
