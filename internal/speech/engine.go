// Package speech coordinates read-aloud playback of lesson paragraphs.
// The Coordinator is a pure state machine over an Engine capability, so
// the UI and tests can drive it without real audio.
package speech

// Engine is the playback capability the coordinator drives. Speak starts
// an utterance and returns immediately; done fires exactly once with the
// playback outcome unless the utterance is superseded by Cancel, in which
// case done never fires. Cancel is safe when nothing is playing.
type Engine interface {
	Speak(text string, done func(error)) error
	Pause() error
	Resume() error
	Cancel()
}
