package session

import (
	"github.com/samber/lo"

	"github.com/priyam/learnsphere/internal/lesson"
)

// PassThreshold is the fraction of correct answers required to pass a quiz.
const PassThreshold = 0.5

// QuizAttempt tracks the learner's answers for the current lesson's quiz.
// Selected holds one entry per question; unanswered questions carry -1.
type QuizAttempt struct {
	Selected  []int
	Submitted bool
}

func newQuizAttempt(questions int) *QuizAttempt {
	sel := make([]int, questions)
	for i := range sel {
		sel[i] = -1
	}
	return &QuizAttempt{Selected: sel}
}

// Answered reports whether question q has a recorded answer.
func (a *QuizAttempt) Answered(q int) bool {
	return q >= 0 && q < len(a.Selected) && a.Selected[q] >= 0
}

// AllAnswered reports whether every question has an answer.
func (a *QuizAttempt) AllAnswered() bool {
	return lo.EveryBy(a.Selected, func(s int) bool { return s >= 0 })
}

// AnsweredCount returns how many questions have an answer.
func (a *QuizAttempt) AnsweredCount() int {
	return lo.CountBy(a.Selected, func(s int) bool { return s >= 0 })
}

// Score counts correct answers against the given questions. Unanswered
// questions score zero.
func (a *QuizAttempt) Score(questions []lesson.QuizQuestion) int {
	score := 0
	for i, q := range questions {
		if i < len(a.Selected) && a.Selected[i] == q.CorrectAnswerIndex {
			score++
		}
	}
	return score
}

// QuizResult is the outcome of a submitted quiz.
type QuizResult struct {
	Score  int
	Total  int
	Passed bool
}
