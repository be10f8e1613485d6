package speech

// ParagraphID identifies one paragraph of the lesson on screen.
type ParagraphID struct {
	Section   int
	Paragraph int
}

// State is the coordinator's playback state, one per lesson view.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// Coordinator enforces the one-utterance rule: at most one paragraph is
// audible at a time, and toggling a different paragraph interrupts the
// current one rather than queueing behind it.
type Coordinator struct {
	engine  Engine
	state   State
	current ParagraphID
	done    func(ParagraphID, error)
}

// NewCoordinator wraps engine. done, if non-nil, is invoked when an
// utterance finishes naturally or fails; it is never invoked for an
// utterance interrupted by the coordinator itself.
func NewCoordinator(engine Engine, done func(ParagraphID, error)) *Coordinator {
	return &Coordinator{engine: engine, current: ParagraphID{-1, -1}, done: done}
}

// State returns the playback state and, when not stopped, the active id.
func (c *Coordinator) State() (State, ParagraphID) {
	return c.state, c.current
}

// Toggle is the single entry point. Toggling the playing paragraph pauses
// it, toggling it again resumes, and toggling any other paragraph
// interrupts whatever is active and starts fresh playback of text.
func (c *Coordinator) Toggle(text string, id ParagraphID) error {
	if c.state != Stopped && c.current != id {
		c.engine.Cancel()
		c.state = Stopped
	}

	switch {
	case c.state == Playing && c.current == id:
		if err := c.engine.Pause(); err != nil {
			return err
		}
		c.state = Paused
		return nil
	case c.state == Paused && c.current == id:
		if err := c.engine.Resume(); err != nil {
			return err
		}
		c.state = Playing
		return nil
	default:
		err := c.engine.Speak(text, func(err error) {
			if c.done != nil {
				c.done(id, err)
			}
		})
		if err != nil {
			return err
		}
		c.state = Playing
		c.current = id
		return nil
	}
}

// Finish records the end of playback. It runs on every completion or
// error signal and always lands in Stopped, whichever id was active.
func (c *Coordinator) Finish() {
	c.state = Stopped
	c.current = ParagraphID{-1, -1}
}

// Stop interrupts any active utterance, for example when the lesson
// leaves the screen.
func (c *Coordinator) Stop() {
	if c.state != Stopped {
		c.engine.Cancel()
	}
	c.Finish()
}
