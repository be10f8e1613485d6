package session

import (
	"errors"
	"fmt"
	"testing"

	"github.com/priyam/learnsphere/internal/lesson"
)

func testRequest() lesson.Request {
	return lesson.Request{
		Topic:          "Photosynthesis",
		LearningStyle:  lesson.StyleVisual,
		KnowledgeLevel: lesson.LevelBeginner,
	}
}

func testLesson() *lesson.Lesson {
	quiz := make([]lesson.QuizQuestion, lesson.QuizLength)
	for i := range quiz {
		quiz[i] = lesson.QuizQuestion{
			Question:           fmt.Sprintf("Question %d?", i+1),
			Options:            []string{"A", "B", "C", "D"},
			CorrectAnswerIndex: i % 4,
		}
	}
	return &lesson.Lesson{
		Title:        "Photosynthesis Basics",
		Introduction: "How plants turn light into sugar.",
		Sections: []lesson.Section{
			{Title: "Light Reactions", Content: "Chlorophyll absorbs light.\nWater is split."},
			{Title: "Calvin Cycle", Content: "Carbon is fixed into sugar."},
		},
		Quiz: quiz,
	}
}

func TestBeginLessonRequestEmptyTopic(t *testing.T) {
	m := NewMachine()
	req := testRequest()
	req.Topic = "   "
	if _, err := m.BeginLessonRequest(req); !errors.Is(err, ErrEmptyTopic) {
		t.Fatalf("err = %v, want ErrEmptyTopic", err)
	}
	if m.Loading {
		t.Fatal("rejected request must not change state")
	}
}

func TestBeginLessonRequestWhileLoading(t *testing.T) {
	m := NewMachine()
	seq, err := m.BeginLessonRequest(testRequest())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.BeginLessonRequest(testRequest()); !errors.Is(err, ErrRequestInFlight) {
		t.Fatalf("err = %v, want ErrRequestInFlight", err)
	}
	if m.Seq() != seq {
		t.Fatalf("seq advanced on rejected request: %d != %d", m.Seq(), seq)
	}
}

func TestApplyLessonWrongSeqDiscarded(t *testing.T) {
	m := NewMachine()
	seq1, _ := m.BeginLessonRequest(testRequest())
	m.StartNewLesson()
	seq2, _ := m.BeginLessonRequest(testRequest())
	if seq2 == seq1 {
		t.Fatal("new request must carry a new seq")
	}

	if m.ApplyLesson(seq1, testLesson()) {
		t.Fatal("stale fold applied")
	}
	if m.Lesson != nil || !m.Loading {
		t.Fatal("stale fold changed state")
	}

	if !m.ApplyLesson(seq2, testLesson()) {
		t.Fatal("current fold discarded")
	}
	if m.Lesson == nil || m.Loading {
		t.Fatal("current fold did not load lesson")
	}
}

func TestApplyLessonErrorShowsGenericMessage(t *testing.T) {
	m := NewMachine()
	seq, _ := m.BeginLessonRequest(testRequest())
	if !m.ApplyLessonError(seq) {
		t.Fatal("fold discarded")
	}
	if m.ErrorMessage != GenerationFailedMessage {
		t.Fatalf("ErrorMessage = %q", m.ErrorMessage)
	}
	if !m.ShowingForm() {
		t.Fatal("failed request should return to the form")
	}
}

func TestBeginRetryKeepsRequest(t *testing.T) {
	m := NewMachine()
	if _, err := m.BeginRetry(); !errors.Is(err, ErrNoCurrentRequest) {
		t.Fatalf("err = %v, want ErrNoCurrentRequest", err)
	}

	req := testRequest()
	seq, _ := m.BeginLessonRequest(req)
	m.ApplyLesson(seq, testLesson())

	seq2, err := m.BeginRetry()
	if err != nil {
		t.Fatal(err)
	}
	if !m.Retrying {
		t.Fatal("Retrying not set")
	}
	if m.CurrentRequest == nil || m.CurrentRequest.Topic != req.Topic {
		t.Fatal("retry must keep the original request")
	}
	if m.Lesson != nil {
		t.Fatal("retry must clear the old lesson")
	}
	if seq2 == seq {
		t.Fatal("retry must advance the seq")
	}
}

func TestElaborationLifecycle(t *testing.T) {
	m := NewMachine()
	seq, _ := m.BeginLessonRequest(testRequest())
	m.ApplyLesson(seq, testLesson())

	if _, err := m.BeginElaboration(5); !errors.Is(err, ErrInvalidSection) {
		t.Fatalf("err = %v, want ErrInvalidSection", err)
	}

	eseq, err := m.BeginElaboration(0)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.BeginElaboration(1); !errors.Is(err, ErrElaborationInFlight) {
		t.Fatalf("err = %v, want ErrElaborationInFlight", err)
	}

	old := m.Lesson
	if !m.ApplyElaboration(eseq, 0, "Think of it like a solar panel.") {
		t.Fatal("fold discarded")
	}
	if m.Lesson == old {
		t.Fatal("elaboration must produce a new lesson value")
	}
	if m.Lesson.Sections[0].Elaboration == "" {
		t.Fatal("elaboration not recorded")
	}
	if old.Sections[0].Elaboration != "" {
		t.Fatal("previous lesson value mutated")
	}
	if m.ElaboratingSection != -1 {
		t.Fatal("pending section not cleared")
	}

	if _, err := m.BeginElaboration(0); !errors.Is(err, ErrAlreadyElaborated) {
		t.Fatalf("err = %v, want ErrAlreadyElaborated", err)
	}
}

func TestElaborationStaleAfterNewLesson(t *testing.T) {
	m := NewMachine()
	seq, _ := m.BeginLessonRequest(testRequest())
	m.ApplyLesson(seq, testLesson())
	eseq, _ := m.BeginElaboration(0)

	seq2, _ := m.BeginLessonRequest(testRequest())
	m.ApplyLesson(seq2, testLesson())

	if m.ApplyElaboration(eseq, 0, "late") {
		t.Fatal("elaboration for a replaced lesson must be discarded")
	}
	if m.Lesson.Sections[0].Elaboration != "" {
		t.Fatal("stale elaboration landed on the new lesson")
	}
}

func TestElaborationErrorIsSilent(t *testing.T) {
	m := NewMachine()
	seq, _ := m.BeginLessonRequest(testRequest())
	m.ApplyLesson(seq, testLesson())
	eseq, _ := m.BeginElaboration(1)

	if !m.ApplyElaborationError(eseq, 1) {
		t.Fatal("fold discarded")
	}
	if m.ErrorMessage != "" {
		t.Fatal("elaboration failures must not surface an error message")
	}
	if _, err := m.BeginElaboration(1); err != nil {
		t.Fatalf("section must stay expandable after a failure: %v", err)
	}
}

func TestFinishLessonRequiresPass(t *testing.T) {
	m := NewMachine()
	if err := m.FinishLesson(); !errors.Is(err, ErrQuizNotPassed) {
		t.Fatalf("err = %v, want ErrQuizNotPassed", err)
	}
}

func TestPassedLessonEndToEnd(t *testing.T) {
	m := NewMachine()
	seq, err := m.BeginLessonRequest(testRequest())
	if err != nil {
		t.Fatal(err)
	}
	m.ApplyLesson(seq, testLesson())
	if err := m.StartQuiz(); err != nil {
		t.Fatal(err)
	}

	// Answer 6 of 10 correctly.
	for i, q := range m.Lesson.Quiz {
		opt := q.CorrectAnswerIndex
		if i >= 6 {
			opt = (opt + 1) % len(q.Options)
		}
		if err := m.SelectAnswer(i, opt); err != nil {
			t.Fatal(err)
		}
	}
	res, err := m.SubmitQuiz()
	if err != nil {
		t.Fatal(err)
	}
	if res.Score != 6 || !res.Passed {
		t.Fatalf("result = %+v, want score 6 passed", res)
	}

	if err := m.FinishLesson(); err != nil {
		t.Fatal(err)
	}
	if m.CompletedLessons != 1 {
		t.Fatalf("CompletedLessons = %d, want 1", m.CompletedLessons)
	}
	if !m.ShowingForm() {
		t.Fatal("finishing must return to the form")
	}
	if m.CurrentRequest != nil || m.Quiz != nil || m.Result != nil {
		t.Fatal("finishing must clear lesson state")
	}
}

func TestFailedQuizRetriesSimpler(t *testing.T) {
	m := NewMachine()
	seq, _ := m.BeginLessonRequest(testRequest())
	m.ApplyLesson(seq, testLesson())
	m.StartQuiz()

	// Answer only 3 of 10 correctly.
	for i, q := range m.Lesson.Quiz {
		opt := q.CorrectAnswerIndex
		if i >= 3 {
			opt = (opt + 1) % len(q.Options)
		}
		m.SelectAnswer(i, opt)
	}
	res, err := m.SubmitQuiz()
	if err != nil {
		t.Fatal(err)
	}
	if res.Passed {
		t.Fatal("3/10 must not pass")
	}
	if err := m.FinishLesson(); !errors.Is(err, ErrQuizNotPassed) {
		t.Fatalf("err = %v, want ErrQuizNotPassed", err)
	}

	if _, err := m.BeginRetry(); err != nil {
		t.Fatal(err)
	}
	if !m.Retrying || !m.Loading {
		t.Fatal("retry must start a new loading request")
	}
	if m.CompletedLessons != 0 {
		t.Fatal("failed quiz must not advance the counter")
	}
}
