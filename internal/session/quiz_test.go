package session

import (
	"errors"
	"testing"
)

func startedQuiz(t *testing.T) *Machine {
	t.Helper()
	m := NewMachine()
	seq, err := m.BeginLessonRequest(testRequest())
	if err != nil {
		t.Fatal(err)
	}
	m.ApplyLesson(seq, testLesson())
	if err := m.StartQuiz(); err != nil {
		t.Fatal(err)
	}
	return m
}

func TestSubmitRequiresAllAnswered(t *testing.T) {
	m := startedQuiz(t)
	for i := 0; i < len(m.Lesson.Quiz)-1; i++ {
		if err := m.SelectAnswer(i, 0); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := m.SubmitQuiz(); !errors.Is(err, ErrQuizIncomplete) {
		t.Fatalf("err = %v, want ErrQuizIncomplete", err)
	}
	if m.Quiz.Submitted {
		t.Fatal("rejected submit must not mark the attempt submitted")
	}
}

func TestSelectAnswerBounds(t *testing.T) {
	m := startedQuiz(t)
	if err := m.SelectAnswer(0, 7); !errors.Is(err, ErrInvalidAnswer) {
		t.Fatalf("err = %v, want ErrInvalidAnswer", err)
	}
	if err := m.SelectAnswer(-1, 0); !errors.Is(err, ErrInvalidSection) {
		t.Fatalf("err = %v, want ErrInvalidSection", err)
	}
}

func TestSelectAnswerOverwrites(t *testing.T) {
	m := startedQuiz(t)
	m.SelectAnswer(0, 1)
	m.SelectAnswer(0, 3)
	if m.Quiz.Selected[0] != 3 {
		t.Fatalf("Selected[0] = %d, want 3", m.Quiz.Selected[0])
	}
	if m.Quiz.AnsweredCount() != 1 {
		t.Fatalf("AnsweredCount = %d, want 1", m.Quiz.AnsweredCount())
	}
}

func TestSubmitLocksAnswers(t *testing.T) {
	m := startedQuiz(t)
	for i, q := range m.Lesson.Quiz {
		m.SelectAnswer(i, q.CorrectAnswerIndex)
	}
	if _, err := m.SubmitQuiz(); err != nil {
		t.Fatal(err)
	}
	if err := m.SelectAnswer(0, 0); !errors.Is(err, ErrQuizSubmitted) {
		t.Fatalf("err = %v, want ErrQuizSubmitted", err)
	}
	if _, err := m.SubmitQuiz(); !errors.Is(err, ErrQuizSubmitted) {
		t.Fatalf("err = %v, want ErrQuizSubmitted", err)
	}
}

func TestAbandonQuiz(t *testing.T) {
	m := startedQuiz(t)
	m.SelectAnswer(0, 1)

	if err := m.AbandonQuiz(); err != nil {
		t.Fatal(err)
	}
	if m.Quiz != nil {
		t.Fatal("abandon must drop the attempt")
	}
	if m.Lesson == nil {
		t.Fatal("abandon must keep the lesson")
	}

	// A fresh attempt starts clean.
	if err := m.StartQuiz(); err != nil {
		t.Fatal(err)
	}
	if m.Quiz.AnsweredCount() != 0 {
		t.Fatal("new attempt must not carry old answers")
	}
}

func TestPassBoundary(t *testing.T) {
	cases := []struct {
		correct int
		passed  bool
	}{
		{0, false},
		{4, false},
		{5, true},
		{10, true},
	}
	for _, tc := range cases {
		m := startedQuiz(t)
		for i, q := range m.Lesson.Quiz {
			opt := q.CorrectAnswerIndex
			if i >= tc.correct {
				opt = (opt + 1) % len(q.Options)
			}
			m.SelectAnswer(i, opt)
		}
		res, err := m.SubmitQuiz()
		if err != nil {
			t.Fatal(err)
		}
		if res.Score != tc.correct {
			t.Errorf("score = %d, want %d", res.Score, tc.correct)
		}
		if res.Passed != tc.passed {
			t.Errorf("%d/10 passed = %v, want %v", tc.correct, res.Passed, tc.passed)
		}
	}
}
