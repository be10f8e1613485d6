package speech

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTogglePlayPauseResume(t *testing.T) {
	engine := &MockEngine{}
	c := NewCoordinator(engine, nil)
	a := ParagraphID{Section: 0, Paragraph: 0}

	require.NoError(t, c.Toggle("first paragraph", a))
	state, id := c.State()
	assert.Equal(t, Playing, state)
	assert.Equal(t, a, id)
	assert.Equal(t, []string{"first paragraph"}, engine.Spoken)

	require.NoError(t, c.Toggle("first paragraph", a))
	state, _ = c.State()
	assert.Equal(t, Paused, state)
	assert.Equal(t, 1, engine.Pauses)

	require.NoError(t, c.Toggle("first paragraph", a))
	state, _ = c.State()
	assert.Equal(t, Playing, state)
	assert.Equal(t, 1, engine.Resumes)

	// No re-speak on resume.
	assert.Len(t, engine.Spoken, 1)
}

func TestToggleOtherParagraphInterrupts(t *testing.T) {
	engine := &MockEngine{}
	c := NewCoordinator(engine, nil)
	a := ParagraphID{Section: 0, Paragraph: 0}
	b := ParagraphID{Section: 1, Paragraph: 2}

	require.NoError(t, c.Toggle("A", a))
	require.NoError(t, c.Toggle("B", b))

	state, id := c.State()
	assert.Equal(t, Playing, state)
	assert.Equal(t, b, id)
	assert.Equal(t, 1, engine.Cancels)
	assert.Equal(t, []string{"A", "B"}, engine.Spoken)
}

func TestToggleOtherWhilePausedInterrupts(t *testing.T) {
	engine := &MockEngine{}
	c := NewCoordinator(engine, nil)
	a := ParagraphID{Section: 0, Paragraph: 0}
	b := ParagraphID{Section: 0, Paragraph: 1}

	require.NoError(t, c.Toggle("A", a))
	require.NoError(t, c.Toggle("A", a)) // pause
	require.NoError(t, c.Toggle("B", b))

	state, id := c.State()
	assert.Equal(t, Playing, state)
	assert.Equal(t, b, id)
	assert.Equal(t, 1, engine.Cancels)
}

func TestFinishAlwaysStops(t *testing.T) {
	var finished []ParagraphID
	engine := &MockEngine{}
	var c *Coordinator
	c = NewCoordinator(engine, func(id ParagraphID, err error) {
		finished = append(finished, id)
		c.Finish()
	})
	a := ParagraphID{Section: 2, Paragraph: 0}

	require.NoError(t, c.Toggle("A", a))
	engine.Complete(nil)

	state, _ := c.State()
	assert.Equal(t, Stopped, state)
	assert.Equal(t, []ParagraphID{a}, finished)

	// Completion after an interrupt never fires for the old utterance.
	require.NoError(t, c.Toggle("A", a))
	require.NoError(t, c.Toggle("B", ParagraphID{Section: 2, Paragraph: 1}))
	engine.Complete(nil)
	assert.Len(t, finished, 2)
	assert.Equal(t, ParagraphID{Section: 2, Paragraph: 1}, finished[1])
}

func TestPlaybackErrorStops(t *testing.T) {
	var gotErr error
	engine := &MockEngine{}
	var c *Coordinator
	c = NewCoordinator(engine, func(id ParagraphID, err error) {
		gotErr = err
		c.Finish()
	})

	require.NoError(t, c.Toggle("A", ParagraphID{}))
	engine.Complete(errors.New("device busy"))

	state, _ := c.State()
	assert.Equal(t, Stopped, state)
	assert.EqualError(t, gotErr, "device busy")
}

func TestSpeakErrorLeavesStopped(t *testing.T) {
	engine := &MockEngine{SpeakErr: errors.New("no player")}
	c := NewCoordinator(engine, nil)

	err := c.Toggle("A", ParagraphID{})
	require.Error(t, err)
	state, _ := c.State()
	assert.Equal(t, Stopped, state)
}

func TestStopCancelsActiveUtterance(t *testing.T) {
	engine := &MockEngine{}
	c := NewCoordinator(engine, nil)

	require.NoError(t, c.Toggle("A", ParagraphID{}))
	c.Stop()
	assert.Equal(t, 1, engine.Cancels)
	state, _ := c.State()
	assert.Equal(t, Stopped, state)

	// Stop when nothing is playing is a no-op.
	c.Stop()
	assert.Equal(t, 1, engine.Cancels)
}
