package session

import "github.com/priyam/learnsphere/internal/lesson"

// BeginLessonRequest starts a fresh lesson generation for req and returns
// the sequence number the eventual ApplyLesson fold must carry. Any
// previously loaded lesson and quiz state is cleared.
func (m *Machine) BeginLessonRequest(req lesson.Request) (uint64, error) {
	if err := validateRequest(req); err != nil {
		return 0, err
	}
	if m.Loading {
		return 0, ErrRequestInFlight
	}
	m.seq++
	m.Loading = true
	m.Retrying = false
	m.CurrentRequest = &req
	m.Lesson = nil
	m.ErrorMessage = ""
	m.ElaboratingSection = -1
	m.Quiz = nil
	m.Result = nil
	return m.seq, nil
}

// BeginRetry starts a simpler-lesson regeneration of the current request,
// typically after a failed quiz. The request itself is unchanged; only the
// retry flag differs, which the lesson service turns into a simpler prompt.
func (m *Machine) BeginRetry() (uint64, error) {
	if m.CurrentRequest == nil {
		return 0, ErrNoCurrentRequest
	}
	if m.Loading {
		return 0, ErrRequestInFlight
	}
	m.seq++
	m.Loading = true
	m.Retrying = true
	m.Lesson = nil
	m.ErrorMessage = ""
	m.ElaboratingSection = -1
	m.Quiz = nil
	m.Result = nil
	return m.seq, nil
}

// ApplyLesson folds a successful generation into the machine. It reports
// whether the fold was applied; a seq mismatch means the response belongs
// to an abandoned request and is dropped.
func (m *Machine) ApplyLesson(seq uint64, l *lesson.Lesson) bool {
	if seq != m.seq || !m.Loading {
		return false
	}
	m.Loading = false
	m.Lesson = l
	m.ErrorMessage = ""
	return true
}

// ApplyLessonError folds a failed generation. The UI shows a single
// generic message regardless of the underlying error.
func (m *Machine) ApplyLessonError(seq uint64) bool {
	if seq != m.seq || !m.Loading {
		return false
	}
	m.Loading = false
	m.ErrorMessage = GenerationFailedMessage
	return true
}

// BeginElaboration starts an elaboration request for section index i of
// the loaded lesson. Only one elaboration may be in flight at a time, and
// a section that already has one cannot be elaborated again.
func (m *Machine) BeginElaboration(i int) (uint64, error) {
	if m.Lesson == nil {
		return 0, ErrNoLesson
	}
	if i < 0 || i >= len(m.Lesson.Sections) {
		return 0, ErrInvalidSection
	}
	if m.ElaboratingSection != -1 {
		return 0, ErrElaborationInFlight
	}
	if m.Lesson.Sections[i].Elaboration != "" {
		return 0, ErrAlreadyElaborated
	}
	m.ElaboratingSection = i
	return m.seq, nil
}

// ApplyElaboration folds a successful elaboration into section i. Stale
// folds — wrong seq, or a lesson swap cleared the pending section — are
// dropped.
func (m *Machine) ApplyElaboration(seq uint64, i int, text string) bool {
	if seq != m.seq || m.Lesson == nil || m.ElaboratingSection != i {
		return false
	}
	m.Lesson = m.Lesson.WithElaboration(i, text)
	m.ElaboratingSection = -1
	return true
}

// ApplyElaborationError clears the pending elaboration for section i.
// Elaboration failures are silent: the section simply stays expandable.
func (m *Machine) ApplyElaborationError(seq uint64, i int) bool {
	if seq != m.seq || m.ElaboratingSection != i {
		return false
	}
	m.ElaboratingSection = -1
	return true
}

// StartQuiz opens a fresh attempt for the loaded lesson's quiz. Calling
// it again before submission resets the attempt.
func (m *Machine) StartQuiz() error {
	if m.Lesson == nil {
		return ErrNoLesson
	}
	if m.Quiz != nil && m.Quiz.Submitted {
		return ErrQuizSubmitted
	}
	m.Quiz = newQuizAttempt(len(m.Lesson.Quiz))
	m.Result = nil
	return nil
}

// SelectAnswer records option opt for question q on the open attempt.
func (m *Machine) SelectAnswer(q, opt int) error {
	if m.Lesson == nil || m.Quiz == nil {
		return ErrNoLesson
	}
	if m.Quiz.Submitted {
		return ErrQuizSubmitted
	}
	if q < 0 || q >= len(m.Quiz.Selected) {
		return ErrInvalidSection
	}
	if opt < 0 || opt >= len(m.Lesson.Quiz[q].Options) {
		return ErrInvalidAnswer
	}
	m.Quiz.Selected[q] = opt
	return nil
}

// SubmitQuiz scores the attempt. Every question must be answered. The
// quiz passes when at least half the answers are correct.
func (m *Machine) SubmitQuiz() (*QuizResult, error) {
	if m.Lesson == nil || m.Quiz == nil {
		return nil, ErrNoLesson
	}
	if m.Quiz.Submitted {
		return nil, ErrQuizSubmitted
	}
	if !m.Quiz.AllAnswered() {
		return nil, ErrQuizIncomplete
	}
	score := m.Quiz.Score(m.Lesson.Quiz)
	total := len(m.Lesson.Quiz)
	m.Quiz.Submitted = true
	m.Result = &QuizResult{
		Score:  score,
		Total:  total,
		Passed: float64(score)/float64(total) >= PassThreshold,
	}
	return m.Result, nil
}

// AbandonQuiz drops an unsubmitted attempt and returns to reading. A
// submitted quiz cannot be abandoned.
func (m *Machine) AbandonQuiz() error {
	if m.Quiz == nil {
		return ErrNoLesson
	}
	if m.Quiz.Submitted {
		return ErrQuizSubmitted
	}
	m.Quiz = nil
	return nil
}

// FinishLesson closes out a passed lesson: the completion counter
// advances and the machine returns to the request form.
func (m *Machine) FinishLesson() error {
	if m.Result == nil || !m.Result.Passed {
		return ErrQuizNotPassed
	}
	m.CompletedLessons++
	m.Lesson = nil
	m.CurrentRequest = nil
	m.Retrying = false
	m.ErrorMessage = ""
	m.ElaboratingSection = -1
	m.Quiz = nil
	m.Result = nil
	return nil
}

// StartNewLesson abandons whatever is on screen and returns to the form
// without touching the completion counter. In-flight responses are left
// to the seq guard.
func (m *Machine) StartNewLesson() {
	m.Loading = false
	m.Lesson = nil
	m.CurrentRequest = nil
	m.Retrying = false
	m.ErrorMessage = ""
	m.ElaboratingSection = -1
	m.Quiz = nil
	m.Result = nil
}
