package lesson

import (
	"strings"
	"testing"
)

func validLesson() *Lesson {
	quiz := make([]QuizQuestion, QuizLength)
	for i := range quiz {
		quiz[i] = QuizQuestion{
			Question:           "Q?",
			Options:            []string{"A", "B", "C", "D"},
			CorrectAnswerIndex: 1,
		}
	}
	return &Lesson{
		Title:        "T",
		Introduction: "I",
		Sections:     []Section{{Title: "S", Content: "C"}},
		Quiz:         quiz,
	}
}

func TestValidateAccepts(t *testing.T) {
	if err := validLesson().Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Lesson)
		wantMsg string
	}{
		{"no title", func(l *Lesson) { l.Title = "" }, "no title"},
		{"no introduction", func(l *Lesson) { l.Introduction = "" }, "no introduction"},
		{"no sections", func(l *Lesson) { l.Sections = nil }, "no sections"},
		{"empty section title", func(l *Lesson) { l.Sections[0].Title = "" }, "no title"},
		{"empty section content", func(l *Lesson) { l.Sections[0].Content = "" }, "no content"},
		{"short quiz", func(l *Lesson) { l.Quiz = l.Quiz[:9] }, "9 questions"},
		{"long quiz", func(l *Lesson) { l.Quiz = append(l.Quiz, l.Quiz[0]) }, "11 questions"},
		{"empty question", func(l *Lesson) { l.Quiz[3].Question = "" }, "question 3"},
		{"three options", func(l *Lesson) { l.Quiz[0].Options = l.Quiz[0].Options[:3] }, "3 options"},
		{"index too high", func(l *Lesson) { l.Quiz[5].CorrectAnswerIndex = 4 }, "index 4"},
		{"index negative", func(l *Lesson) { l.Quiz[5].CorrectAnswerIndex = -1 }, "index -1"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := validLesson()
			tc.mutate(l)
			err := l.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tc.wantMsg)
			}
		})
	}
}
