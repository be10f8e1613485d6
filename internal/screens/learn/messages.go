package learn

import (
	"time"

	"github.com/priyam/learnsphere/internal/lesson"
	"github.com/priyam/learnsphere/internal/speech"
)

// lessonReadyMsg is sent when lesson generation finishes, carrying the
// sequence number of the request it answers.
type lessonReadyMsg struct {
	Seq    uint64
	Lesson *lesson.Lesson
	Err    error
}

// elaborationReadyMsg is sent when an elaboration request finishes.
type elaborationReadyMsg struct {
	Seq     uint64
	Section int
	Text    string
	Err     error
}

// speechDoneMsg is sent when a spoken paragraph finishes or fails.
type speechDoneMsg struct {
	ID  speech.ParagraphID
	Err error
}

// spinnerTickMsg animates the loading spinner.
type spinnerTickMsg time.Time
