package learn

import (
	"testing"

	"github.com/priyam/learnsphere/internal/session"
	"github.com/priyam/learnsphere/internal/speech"
)

func TestEscFromFormReleasesSpeechWaiter(t *testing.T) {
	s := New(session.NewMachine(), nil, nil, nil)

	cmd := s.waitForSpeech()

	consumed, _ := s.HandleEsc()
	if consumed {
		t.Fatal("esc on the form should hand control back to the router")
	}
	// The waiter must not stay blocked on the speech channel once the
	// screen has been popped.
	if msg := cmd(); msg != nil {
		t.Errorf("waiter returned %#v after teardown, want nil", msg)
	}
}

func TestLateSpeechCompletionAfterTeardown(t *testing.T) {
	engine := &speech.MockEngine{}
	s := New(session.NewMachine(), nil, nil, engine)

	s.HandleEsc()

	// A completion delivered after teardown has no reader; it must drop
	// instead of blocking the engine goroutine.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 16; i++ {
			_ = s.coord.Toggle("p", speech.ParagraphID{Section: 0, Paragraph: i})
			engine.Complete(nil)
		}
		close(done)
	}()
	<-done
}
