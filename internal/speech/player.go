package speech

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"sync"
	"syscall"
	"time"
)

// playerCommand picks an installed command-line MP3 player. afplay ships
// with macOS; mpg123 and ffplay are the common choices elsewhere.
func playerCommand(path string) (*exec.Cmd, error) {
	if runtime.GOOS == "darwin" {
		if p, err := exec.LookPath("afplay"); err == nil {
			return exec.Command(p, path), nil
		}
	}
	if p, err := exec.LookPath("mpg123"); err == nil {
		return exec.Command(p, "-q", path), nil
	}
	if p, err := exec.LookPath("ffplay"); err == nil {
		return exec.Command(p, "-nodisp", "-autoexit", "-loglevel", "quiet", path), nil
	}
	return nil, fmt.Errorf("speech: no audio player found (need afplay, mpg123 or ffplay)")
}

// Player is an Engine that synthesizes text and plays it through an
// external player process. Pause and resume are delivered as SIGSTOP and
// SIGCONT, so the engine is unix-only.
type Player struct {
	synth *Synthesizer

	mu     sync.Mutex
	gen    uint64
	cmd    *exec.Cmd
	paused bool
}

func NewPlayer(synth *Synthesizer) *Player {
	return &Player{synth: synth}
}

// Speak synthesizes text and starts playback in the background. done
// fires once playback ends or fails, unless Cancel supersedes it first.
func (p *Player) Speak(text string, done func(error)) error {
	p.mu.Lock()
	p.gen++
	gen := p.gen
	p.paused = false
	p.mu.Unlock()

	go p.run(gen, text, done)
	return nil
}

func (p *Player) run(gen uint64, text string, done func(error)) {
	finish := func(err error) {
		p.mu.Lock()
		current := p.gen == gen
		if current {
			p.cmd = nil
		}
		p.mu.Unlock()
		if current {
			done(err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	audio, err := p.synth.Synthesize(ctx, text)
	if err != nil {
		finish(err)
		return
	}

	f, err := os.CreateTemp("", "learnsphere-*.mp3")
	if err != nil {
		finish(err)
		return
	}
	path := f.Name()
	defer os.Remove(path)
	if _, err := f.Write(audio); err != nil {
		f.Close()
		finish(err)
		return
	}
	f.Close()

	cmd, err := playerCommand(path)
	if err != nil {
		finish(err)
		return
	}

	p.mu.Lock()
	if p.gen != gen {
		p.mu.Unlock()
		return
	}
	if err := cmd.Start(); err != nil {
		p.mu.Unlock()
		finish(err)
		return
	}
	p.cmd = cmd
	if p.paused {
		_ = cmd.Process.Signal(syscall.SIGSTOP)
	}
	p.mu.Unlock()

	err = cmd.Wait()

	p.mu.Lock()
	interrupted := p.gen != gen
	p.mu.Unlock()
	if interrupted {
		// Cancelled mid-playback, the kill error is expected.
		return
	}
	finish(err)
}

// Pause suspends the player process. Pausing before the process has
// started is remembered and applied on start.
func (p *Player) Pause() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.paused = true
	if p.cmd != nil && p.cmd.Process != nil {
		return p.cmd.Process.Signal(syscall.SIGSTOP)
	}
	return nil
}

// Resume continues a paused player process.
func (p *Player) Resume() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.paused = false
	if p.cmd != nil && p.cmd.Process != nil {
		return p.cmd.Process.Signal(syscall.SIGCONT)
	}
	return nil
}

// Cancel interrupts the active utterance, if any. The superseded
// utterance's done callback never fires.
func (p *Player) Cancel() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.gen++
	if p.cmd != nil && p.cmd.Process != nil {
		_ = p.cmd.Process.Kill()
	}
	p.cmd = nil
	p.paused = false
}
