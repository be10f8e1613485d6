// Package session holds the learner-facing lesson lifecycle: request a
// lesson, read it, elaborate sections, take the quiz, and either finish or
// retry with a simpler lesson. The Machine is pure state — it performs no
// I/O, so the UI layer runs generation commands and folds the results back
// in. Every fold is tagged with a sequence number so responses from an
// abandoned request are discarded instead of clobbering newer state.
package session

import (
	"strings"

	"github.com/priyam/learnsphere/internal/lesson"
)

// GenerationFailedMessage is shown when lesson generation fails for any
// reason. Provider details stay in the telemetry log, not the UI.
const GenerationFailedMessage = "Failed to generate lesson. Please try again."

// Machine is the lesson session state machine. Fields are exported for
// rendering; all writes go through the transition methods.
type Machine struct {
	// Loading is true while a lesson request is in flight.
	Loading bool

	// CurrentRequest is the request behind the loaded (or loading)
	// lesson. Kept so a failed quiz can retry the same topic.
	CurrentRequest *lesson.Request

	// Retrying marks the in-flight request as a simpler-lesson retry.
	Retrying bool

	// Lesson is the loaded lesson, nil until a request succeeds.
	Lesson *lesson.Lesson

	// ErrorMessage is the user-facing failure notice, empty when none.
	ErrorMessage string

	// ElaboratingSection is the index of the section with an elaboration
	// request in flight, or -1.
	ElaboratingSection int

	// Quiz is the current quiz attempt, nil until the quiz starts.
	Quiz *QuizAttempt

	// Result is set once the quiz is submitted.
	Result *QuizResult

	// CompletedLessons counts lessons finished after a passed quiz.
	CompletedLessons int

	seq uint64
}

// NewMachine returns a machine in the initial form-entry state.
func NewMachine() *Machine {
	return &Machine{ElaboratingSection: -1}
}

// ShowingForm reports whether the request form should be displayed: no
// lesson is loaded and none is loading.
func (m *Machine) ShowingForm() bool {
	return m.Lesson == nil && !m.Loading
}

// Seq returns the current request sequence number. Folds carrying any
// other value are stale and discarded.
func (m *Machine) Seq() uint64 { return m.seq }

func validateRequest(req lesson.Request) error {
	if strings.TrimSpace(req.Topic) == "" {
		return ErrEmptyTopic
	}
	return nil
}
