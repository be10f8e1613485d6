package learn

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/priyam/learnsphere/internal/lesson"
	"github.com/priyam/learnsphere/internal/screen"
	"github.com/priyam/learnsphere/internal/session"
	"github.com/priyam/learnsphere/internal/speech"
	"github.com/priyam/learnsphere/internal/store"
	"github.com/priyam/learnsphere/internal/ui/layout"
)

// view modes derived from the session machine plus quiz sub-state.
type mode int

const (
	modeForm mode = iota
	modeLoading
	modeReading
	modeQuiz
	modeResult
	modeReview
)

// LearnScreen drives one learning session: request form, generated
// lesson, elaborations, read-aloud playback and the quiz.
type LearnScreen struct {
	machine *session.Machine
	svc     *lesson.Service
	repo    store.EventRepo
	coord   *speech.Coordinator
	speech  chan speechDoneMsg
	quit    chan struct{}

	sessionID string
	form      formModel

	// reading view
	paraCursor int

	// quiz view
	qIndex       int
	optionCursor int
	reviewIndex  int
	reviewing    bool
	quizHint     string

	spinnerFrame int
}

var _ screen.Screen = (*LearnScreen)(nil)
var _ screen.KeyHintProvider = (*LearnScreen)(nil)
var _ screen.ProgressProvider = (*LearnScreen)(nil)
var _ screen.EscHandler = (*LearnScreen)(nil)

// New creates a LearnScreen. engine may be nil, which disables the
// read-aloud feature. repo may be nil, which disables telemetry.
func New(machine *session.Machine, svc *lesson.Service, repo store.EventRepo, engine speech.Engine) *LearnScreen {
	s := &LearnScreen{
		machine:   machine,
		svc:       svc,
		repo:      repo,
		sessionID: uuid.New().String(),
		form:      newForm(),
		speech:    make(chan speechDoneMsg, 8),
		quit:      make(chan struct{}),
	}
	if engine != nil {
		s.coord = speech.NewCoordinator(engine, func(id speech.ParagraphID, err error) {
			select {
			case s.speech <- speechDoneMsg{ID: id, Err: err}:
			case <-s.quit:
			}
		})
	}
	return s
}

func (s *LearnScreen) Init() tea.Cmd {
	return tea.Batch(s.form.Init(), s.waitForSpeech())
}

func (s *LearnScreen) Title() string {
	return "Learn"
}

// CompletedLessons feeds the header counter.
func (s *LearnScreen) CompletedLessons() int {
	return s.machine.CompletedLessons
}

func (s *LearnScreen) mode() mode {
	m := s.machine
	switch {
	case m.Loading:
		return modeLoading
	case m.Lesson == nil:
		return modeForm
	case m.Result != nil && s.reviewing:
		return modeReview
	case m.Result != nil:
		return modeResult
	case m.Quiz != nil:
		return modeQuiz
	default:
		return modeReading
	}
}

// HandleEsc steps back one view layer; the app pops the screen only when
// the form is showing.
func (s *LearnScreen) HandleEsc() (bool, tea.Cmd) {
	switch s.mode() {
	case modeReview:
		s.reviewing = false
		return true, nil
	case modeQuiz:
		// Abandon the attempt and go back to reading.
		_ = s.machine.AbandonQuiz()
		return true, nil
	case modeReading, modeResult:
		s.stopSpeech()
		s.machine.StartNewLesson()
		s.form = newForm()
		return true, s.form.Init()
	case modeLoading:
		// Let generation finish in the background; the seq guard drops it.
		s.machine.StartNewLesson()
		s.form = newForm()
		return true, s.form.Init()
	}
	// The app pops the screen; release the speech waiter so it does not
	// outlive us.
	s.stopSpeech()
	close(s.quit)
	return false, nil
}

func (s *LearnScreen) KeyHints() []layout.KeyHint {
	switch s.mode() {
	case modeForm:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Enter", Description: "Generate"},
			{Key: "Esc", Description: "Back"},
		}
	case modeLoading:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Cancel"},
		}
	case modeReading:
		hints := []layout.KeyHint{
			{Key: "↑↓", Description: "Move"},
			{Key: "E", Description: "Explain differently"},
		}
		if s.coord != nil {
			hints = append(hints, layout.KeyHint{Key: "S", Description: "Read aloud"})
		}
		return append(hints,
			layout.KeyHint{Key: "Q", Description: "Take quiz"},
			layout.KeyHint{Key: "Esc", Description: "New lesson"},
		)
	case modeQuiz:
		return []layout.KeyHint{
			{Key: "←→", Description: "Question"},
			{Key: "↑↓", Description: "Option"},
			{Key: "Enter", Description: "Choose"},
			{Key: "F", Description: "Finish quiz"},
		}
	case modeResult:
		if s.machine.Result.Passed {
			return []layout.KeyHint{
				{Key: "Enter", Description: "Finish lesson"},
				{Key: "V", Description: "Review answers"},
			}
		}
		return []layout.KeyHint{
			{Key: "R", Description: "Try a simpler lesson"},
			{Key: "V", Description: "Review answers"},
		}
	case modeReview:
		return []layout.KeyHint{
			{Key: "←→", Description: "Question"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return nil
}

func (s *LearnScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case lessonReadyMsg:
		return s.handleLessonReady(msg)

	case elaborationReadyMsg:
		if msg.Err != nil {
			s.machine.ApplyElaborationError(msg.Seq, msg.Section)
		} else {
			s.machine.ApplyElaboration(msg.Seq, msg.Section, msg.Text)
		}
		return s, nil

	case speechDoneMsg:
		if s.coord != nil {
			s.coord.Finish()
		}
		return s, s.waitForSpeech()

	case spinnerTickMsg:
		if !s.machine.Loading {
			return s, nil
		}
		s.spinnerFrame++
		return s, s.spinnerTick()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.mode() == modeForm {
		cmd, _ := s.form.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *LearnScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.mode() {
	case modeForm:
		return s.handleFormKey(msg)
	case modeReading:
		return s.handleReadingKey(msg)
	case modeQuiz:
		return s.handleQuizKey(msg)
	case modeResult:
		return s.handleResultKey(msg)
	case modeReview:
		return s.handleReviewKey(msg)
	}
	return s, nil
}

func (s *LearnScreen) handleFormKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	cmd, submitted := s.form.Update(msg)
	if !submitted {
		return s, cmd
	}

	req := s.form.Request()
	seq, err := s.machine.BeginLessonRequest(req)
	if err != nil {
		if err == session.ErrEmptyTopic {
			s.form.errMsg = "Please enter a topic to get started."
		}
		return s, nil
	}
	s.form.errMsg = ""
	return s, tea.Batch(s.generateLesson(seq, req, false), s.spinnerTick())
}

func (s *LearnScreen) handleLessonReady(msg lessonReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		if s.machine.ApplyLessonError(msg.Seq) {
			s.form.errMsg = s.machine.ErrorMessage
		}
		return s, nil
	}
	if s.machine.ApplyLesson(msg.Seq, msg.Lesson) {
		s.paraCursor = 0
		s.qIndex = 0
		s.reviewIndex = 0
		s.reviewing = false
	}
	return s, nil
}

func (s *LearnScreen) handleReadingKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	paras := s.paragraphs()
	switch msg.String() {
	case "up", "k":
		if s.paraCursor > 0 {
			s.paraCursor--
		}
	case "down", "j":
		if s.paraCursor < len(paras)-1 {
			s.paraCursor++
		}
	case "e":
		sec := s.cursorSection()
		if sec < 0 {
			return s, nil
		}
		seq, err := s.machine.BeginElaboration(sec)
		if err != nil {
			return s, nil
		}
		return s, s.generateElaboration(seq, sec)
	case "s":
		if s.coord == nil || len(paras) == 0 {
			return s, nil
		}
		p := paras[s.paraCursor]
		_ = s.coord.Toggle(p.Text, p.ID)
	case "q", "enter":
		s.stopSpeech()
		if err := s.machine.StartQuiz(); err == nil {
			s.qIndex = 0
			s.optionCursor = 0
			s.quizHint = ""
		}
	}
	return s, nil
}

func (s *LearnScreen) handleQuizKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	quiz := s.machine.Lesson.Quiz
	attempt := s.machine.Quiz

	switch msg.String() {
	case "left", "h":
		if s.qIndex > 0 {
			s.qIndex--
			s.syncOptionCursor()
		}
	case "right", "l":
		if s.qIndex < len(quiz)-1 {
			s.qIndex++
			s.syncOptionCursor()
		}
	case "up", "k":
		s.moveOption(-1)
	case "down", "j":
		s.moveOption(1)
	case "enter", " ":
		opt := s.optionCursor
		if err := s.machine.SelectAnswer(s.qIndex, opt); err != nil {
			return s, nil
		}
		s.quizHint = ""
		// Jump ahead to the next unanswered question, if any.
		for i := 1; i <= len(quiz); i++ {
			next := (s.qIndex + i) % len(quiz)
			if !attempt.Answered(next) {
				s.qIndex = next
				s.syncOptionCursor()
				break
			}
		}
	case "f":
		result, err := s.machine.SubmitQuiz()
		if err != nil {
			if err == session.ErrQuizIncomplete {
				s.quizHint = "Answer every question before finishing."
			}
			return s, nil
		}
		s.reviewIndex = 0
		return s, s.recordQuiz(result)
	}
	return s, nil
}

func (s *LearnScreen) handleResultKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "v":
		s.reviewing = true
		s.reviewIndex = 0
	case "enter":
		if err := s.machine.FinishLesson(); err == nil {
			s.form = newForm()
			return s, s.form.Init()
		}
	case "r":
		if s.machine.Result.Passed {
			return s, nil
		}
		seq, err := s.machine.BeginRetry()
		if err != nil {
			return s, nil
		}
		req := *s.machine.CurrentRequest
		return s, tea.Batch(s.generateLesson(seq, req, true), s.spinnerTick())
	}
	return s, nil
}

func (s *LearnScreen) handleReviewKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		if s.reviewIndex > 0 {
			s.reviewIndex--
		}
	case "right", "l":
		if s.reviewIndex < len(s.machine.Lesson.Quiz)-1 {
			s.reviewIndex++
		}
	}
	return s, nil
}

// syncOptionCursor parks the cursor on the recorded answer when moving
// between questions.
func (s *LearnScreen) syncOptionCursor() {
	s.optionCursor = 0
	if s.machine.Quiz != nil && s.machine.Quiz.Answered(s.qIndex) {
		s.optionCursor = s.machine.Quiz.Selected[s.qIndex]
	}
}

func (s *LearnScreen) moveOption(delta int) {
	options := len(s.machine.Lesson.Quiz[s.qIndex].Options)
	next := s.optionCursor + delta
	if next >= 0 && next < options {
		s.optionCursor = next
	}
}

func (s *LearnScreen) stopSpeech() {
	if s.coord != nil {
		s.coord.Stop()
	}
}

// generateLesson runs lesson generation off the UI loop and reports the
// outcome tagged with seq. Telemetry is appended on the same goroutine.
func (s *LearnScreen) generateLesson(seq uint64, req lesson.Request, isRetry bool) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		l, err := s.svc.GenerateLesson(ctx, req, isRetry)
		if err == nil && s.repo != nil {
			_ = s.repo.AppendLesson(ctx, store.LessonEventData{
				SessionID:      s.sessionID,
				Topic:          req.Topic,
				SubTopic:       req.SubTopic,
				LearningStyle:  string(req.LearningStyle),
				KnowledgeLevel: string(req.KnowledgeLevel),
				Retry:          isRetry,
				LessonTitle:    l.Title,
				SectionCount:   len(l.Sections),
			})
		}
		return lessonReadyMsg{Seq: seq, Lesson: l, Err: err}
	}
}

func (s *LearnScreen) generateElaboration(seq uint64, section int) tea.Cmd {
	req := s.machine.CurrentRequest
	sec := s.machine.Lesson.Sections[section]
	topic := req.Topic
	level := req.KnowledgeLevel
	return func() tea.Msg {
		text, err := s.svc.GenerateElaboration(context.Background(), topic, sec.Title, sec.Content, level)
		return elaborationReadyMsg{Seq: seq, Section: section, Text: text, Err: err}
	}
}

func (s *LearnScreen) recordQuiz(result *session.QuizResult) tea.Cmd {
	if s.repo == nil {
		return nil
	}
	req := s.machine.CurrentRequest
	topic := ""
	if req != nil {
		topic = req.Topic
	}
	return func() tea.Msg {
		_ = s.repo.AppendQuiz(context.Background(), store.QuizEventData{
			SessionID: s.sessionID,
			Topic:     topic,
			Score:     result.Score,
			Total:     result.Total,
			Passed:    result.Passed,
		})
		return nil
	}
}

func (s *LearnScreen) waitForSpeech() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-s.speech:
			return msg
		case <-s.quit:
			return nil
		}
	}
}

func (s *LearnScreen) spinnerTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
