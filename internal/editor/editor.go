package editor

import (
	"io"

	"github.com/charmbracelet/log"
)

// State is the cursor and viewport of the editor.
type State struct {
	Rows int
	Cols int

	// Cursor position, 0-based. CX stays in [0, Cols-1] and CY in [0, Rows-1].
	CX int
	CY int

	ShouldExit bool

	// Content is the file the editor was started with. Nothing reads or
	// changes it yet.
	Content []byte
}

// Resize sets the viewport extent. It must be called before Apply.
func (s *State) Resize(cols, rows int) {
	s.Cols = cols
	s.Rows = rows
}

func (s *State) LoadContent(content []byte) {
	s.Content = content
}

// Apply updates the state for one decoded key. Keys without a binding are
// ignored.
func (s *State) Apply(key Key) {
	switch key {
	case CtrlKey('q'):
		s.ShouldExit = true
		return

	case KeyArrowLeft:
		if s.CX > 0 {
			s.CX--
		}
	case KeyArrowRight:
		if s.CX < s.Cols-1 {
			s.CX++
		}
	case KeyArrowUp:
		if s.CY > 0 {
			s.CY--
		}
	case KeyArrowDown:
		if s.CY < s.Rows-1 {
			s.CY++
		}

	case KeyPageUp:
		s.CY = 0
	case KeyPageDown:
		s.CY = s.Rows - 1
	case KeyHome:
		s.CX = 0
	case KeyEnd:
		s.CX = s.Cols - 1
	}
}

func orDiscard(l *log.Logger) *log.Logger {
	if l != nil {
		return l
	}
	return log.New(io.Discard)
}
