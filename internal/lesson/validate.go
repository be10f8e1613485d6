package lesson

import "fmt"

const (
	// QuizLength is the exact number of questions every lesson quiz has.
	QuizLength = 10

	// OptionsPerQuestion is the exact number of choices per question.
	OptionsPerQuestion = 4
)

// Validate checks the structural shape of a generated lesson. Any
// violation rejects the whole response; there is no partial recovery.
func (l *Lesson) Validate() error {
	if l.Title == "" {
		return fmt.Errorf("lesson has no title")
	}
	if l.Introduction == "" {
		return fmt.Errorf("lesson has no introduction")
	}
	if len(l.Sections) == 0 {
		return fmt.Errorf("lesson has no sections")
	}
	for i, s := range l.Sections {
		if s.Title == "" {
			return fmt.Errorf("section %d has no title", i)
		}
		if s.Content == "" {
			return fmt.Errorf("section %d has no content", i)
		}
	}

	if len(l.Quiz) != QuizLength {
		return fmt.Errorf("quiz has %d questions, want %d", len(l.Quiz), QuizLength)
	}
	for i, q := range l.Quiz {
		if q.Question == "" {
			return fmt.Errorf("quiz question %d is empty", i)
		}
		if len(q.Options) != OptionsPerQuestion {
			return fmt.Errorf("quiz question %d has %d options, want %d", i, len(q.Options), OptionsPerQuestion)
		}
		if q.CorrectAnswerIndex < 0 || q.CorrectAnswerIndex >= OptionsPerQuestion {
			return fmt.Errorf("quiz question %d has correct answer index %d, want 0-%d", i, q.CorrectAnswerIndex, OptionsPerQuestion-1)
		}
	}

	return nil
}
