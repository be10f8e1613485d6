package speech

// MockEngine records the calls the coordinator makes and lets tests fire
// completion signals by hand.
type MockEngine struct {
	Spoken   []string
	Pauses   int
	Resumes  int
	Cancels  int
	SpeakErr error

	lastDone func(error)
}

func (m *MockEngine) Speak(text string, done func(error)) error {
	if m.SpeakErr != nil {
		return m.SpeakErr
	}
	m.Spoken = append(m.Spoken, text)
	m.lastDone = done
	return nil
}

func (m *MockEngine) Pause() error  { m.Pauses++; return nil }
func (m *MockEngine) Resume() error { m.Resumes++; return nil }
func (m *MockEngine) Cancel()       { m.Cancels++; m.lastDone = nil }

// Complete fires the done callback of the most recent utterance that has
// not been cancelled.
func (m *MockEngine) Complete(err error) {
	if m.lastDone != nil {
		done := m.lastDone
		m.lastDone = nil
		done(err)
	}
}
