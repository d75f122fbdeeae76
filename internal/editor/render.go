package editor

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-runewidth"

	"github.com/islml/kilo/internal/version"
)

var (
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")
	csiHome       = []byte("\x1b[H")
	csiClearLine  = []byte("\x1b[K")
	csiClear      = []byte("\x1b[2J")
	crlf          = []byte("\r\n")
)

type Renderer interface {
	Render() error
}

// Restorer gives back a terminal resource. It must not fail.
type Restorer interface {
	Restore()
}

// View renders a State as full frames of ANSI sequences.
type View struct {
	out     io.Writer
	state   *State
	session Restorer
	logger  *log.Logger

	buf    bytes.Buffer
	closed bool
}

// NewView returns a view drawing state to out. session is restored by Close
// after the screen has been cleared; it may be nil.
func NewView(out io.Writer, state *State, session Restorer, logger *log.Logger) *View {
	v := &View{
		out:     out,
		state:   state,
		session: session,
		logger:  orDiscard(logger),
	}
	v.buf.Grow(1024)
	return v
}

func Banner() string {
	return "Kilo editor -- version " + version.Version
}

// Render builds a whole frame and writes it with a single Write.
func (v *View) Render() error {
	v.buf.Reset()
	v.buf.Write(csiCursorHide)
	v.buf.Write(csiHome)
	v.renderRows()
	v.renderCursor()
	v.buf.Write(csiCursorShow)
	return v.write(v.buf.Bytes())
}

func (v *View) renderRows() {
	rows, cols := v.state.Rows, v.state.Cols
	for y := 0; y < rows; y++ {
		if y == rows/3 {
			v.renderBanner(cols)
		} else {
			v.buf.WriteByte('~')
		}

		v.buf.Write(csiClearLine)
		if y < rows-1 {
			v.buf.Write(crlf)
		}
	}
}

func (v *View) renderBanner(cols int) {
	msg := Banner()
	if runewidth.StringWidth(msg) > cols {
		msg = runewidth.Truncate(msg, cols, "")
	}

	padding := (cols - runewidth.StringWidth(msg)) / 2
	if padding > 0 {
		v.buf.WriteByte('~')
		padding--
	}
	v.buf.WriteString(strings.Repeat(" ", padding))
	v.buf.WriteString(msg)
}

func (v *View) renderCursor() {
	b := v.buf.AvailableBuffer()
	b = append(b, "\x1b["...)
	b = strconv.AppendInt(b, int64(v.state.CY+1), 10)
	b = append(b, ';')
	b = strconv.AppendInt(b, int64(v.state.CX+1), 10)
	b = append(b, 'H')
	v.buf.Write(b)
}

func (v *View) write(p []byte) error {
	n, err := v.out.Write(p)
	if err != nil {
		return &IoError{Op: "write", Err: err}
	}
	if n != len(p) {
		return &IoError{Op: "write", Err: io.ErrShortWrite}
	}
	return nil
}

// Close clears the screen and then restores the terminal session. Write
// errors are logged, not returned.
func (v *View) Close() {
	if v.closed {
		return
	}
	v.closed = true

	if err := v.write(csiClear); err != nil {
		v.logger.Warn("clearing screen", "err", err)
	}
	if err := v.write(csiHome); err != nil {
		v.logger.Warn("homing cursor", "err", err)
	}
	if v.session != nil {
		v.session.Restore()
	}
}
