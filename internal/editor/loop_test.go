package editor

import (
	"errors"
	"testing"
)

var errDrained = errors.New("input drained")

// scriptPoller reports input ready while the reader still has queued chunks.
type scriptPoller struct {
	r     *chunkReader
	err   error
	waits int
}

func (p *scriptPoller) Wait() error {
	p.waits++
	if p.err != nil {
		return p.err
	}
	if !p.r.pending() {
		return errDrained
	}
	return nil
}

// frameRecorder stands in for the View and remembers the cursor at every
// render.
type frameRecorder struct {
	state  *State
	frames [][2]int
	err    error
	failAt int
}

func (f *frameRecorder) Render() error {
	f.frames = append(f.frames, [2]int{f.state.CX, f.state.CY})
	if f.err != nil && len(f.frames) >= f.failAt {
		return f.err
	}
	return nil
}

func newTestLoop(input ...string) (*Loop, *State, *frameRecorder, *scriptPoller) {
	s := newTestState(80, 24)
	r := &chunkReader{chunks: chunks(input...)}
	p := &scriptPoller{r: r}
	f := &frameRecorder{state: s}
	return NewLoop(p, r, s, f, nil), s, f, p
}

func TestLoopQuits(t *testing.T) {
	l, s, f, _ := newTestLoop("\x1b[C\x1b[C", "\x11")

	if err := l.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !s.ShouldExit {
		t.Error("ShouldExit not set")
	}
	if s.CX != 2 {
		t.Errorf("CX = %d, want 2", s.CX)
	}
	// initial frame, one per arrow, one for the quit key
	want := [][2]int{{0, 0}, {1, 0}, {2, 0}, {2, 0}}
	if !equalFrames(f.frames, want) {
		t.Errorf("frames = %v, want %v", f.frames, want)
	}
}

func TestLoopSequenceSplitAcrossReads(t *testing.T) {
	l, s, f, _ := newTestLoop("\x1b", "[", "B", "\x11")

	if err := l.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if s.CY != 1 {
		t.Errorf("CY = %d, want 1", s.CY)
	}
	want := [][2]int{{0, 0}, {0, 1}, {0, 1}}
	if !equalFrames(f.frames, want) {
		t.Errorf("frames = %v, want %v", f.frames, want)
	}
}

func TestLoopEmptyReadKeepsPartialSequence(t *testing.T) {
	l, s, _, _ := newTestLoop("\x1b[", "", "6~", "\x11")

	if err := l.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if s.CY != 23 {
		t.Errorf("CY = %d, want 23", s.CY)
	}
}

func TestLoopStopsAtQuitMidBatch(t *testing.T) {
	l, s, f, _ := newTestLoop("\x1b[C\x11\x1b[C\x1b[B")

	if err := l.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if s.CX != 1 || s.CY != 0 {
		t.Errorf("cursor = (%d, %d), keys after Ctrl+Q were applied", s.CX, s.CY)
	}
	if len(f.frames) != 3 {
		t.Errorf("rendered %d frames, want 3", len(f.frames))
	}
}

func TestLoopUnterminatedSequenceResolves(t *testing.T) {
	l, s, f, _ := newTestLoop("\x1b[1234", "56", "\x1b[C", "\x11")

	if err := l.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if s.CX != 1 {
		t.Errorf("CX = %d, want 1", s.CX)
	}
	// initial, Escape from the garbage, arrow, quit
	if len(f.frames) != 4 {
		t.Errorf("rendered %d frames, want 4", len(f.frames))
	}
}

func TestLoopErrors(t *testing.T) {
	boom := errors.New("boom")

	t.Run("poll", func(t *testing.T) {
		l, _, f, p := newTestLoop("\x1b[C")
		p.err = boom
		if err := l.Run(); !errors.Is(err, boom) {
			t.Fatalf("Run = %v, want %v", err, boom)
		}
		if len(f.frames) != 1 {
			t.Errorf("rendered %d frames, want only the initial one", len(f.frames))
		}
	})

	t.Run("read", func(t *testing.T) {
		s := newTestState(80, 24)
		r := &chunkReader{err: boom}
		f := &frameRecorder{state: s}
		l := NewLoop(&scriptPoller{r: &chunkReader{chunks: chunks("x")}}, r, s, f, nil)

		err := l.Run()
		var ioErr *IoError
		if !errors.As(err, &ioErr) || !errors.Is(err, boom) {
			t.Fatalf("Run = %v, want read *IoError", err)
		}
	})

	t.Run("initial render", func(t *testing.T) {
		l, _, f, p := newTestLoop("\x11")
		f.err, f.failAt = boom, 1
		if err := l.Run(); !errors.Is(err, boom) {
			t.Fatalf("Run = %v, want %v", err, boom)
		}
		if p.waits != 0 {
			t.Errorf("waited for input %d times after a failed first frame", p.waits)
		}
	})

	t.Run("render after key", func(t *testing.T) {
		l, s, f, _ := newTestLoop("\x1b[C\x1b[C")
		f.err, f.failAt = boom, 2
		if err := l.Run(); !errors.Is(err, boom) {
			t.Fatalf("Run = %v, want %v", err, boom)
		}
		if s.CX != 1 {
			t.Errorf("CX = %d, want 1: no key after a failed render", s.CX)
		}
	})
}

func equalFrames(a, b [][2]int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
