//go:build linux

package editor

import (
	"github.com/charmbracelet/log"
	"golang.org/x/sys/unix"
)

// RawMode holds a terminal in raw mode for as long as it is alive.
// Restore puts back the attributes captured when it was created.
type RawMode struct {
	fd       int
	original unix.Termios
	active   unix.Termios
	restored bool
	logger   *log.Logger
}

// EnterRawMode captures the attributes of fd and switches it to raw mode:
// no echo, no line buffering, no signal keys, no output post-processing,
// 8 bit characters, and reads that return after at most a tenth of a
// second even when no byte arrived.
func EnterRawMode(fd int, logger *log.Logger) (*RawMode, error) {
	orig, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return nil, &TerminalControlError{Op: "tcgetattr", Err: err}
	}

	t := &RawMode{
		fd:       fd,
		original: *orig,
		logger:   orDiscard(logger),
	}

	raw := *orig
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1
	t.active = raw

	if err := unix.IoctlSetTermios(fd, unix.TCSETSF, &t.active); err != nil {
		// tcsetattr may have applied part of the change
		t.Restore()
		return nil, &TerminalControlError{Op: "tcsetattr", Err: err}
	}

	t.logger.Debug("raw mode enabled", "fd", fd)
	return t, nil
}

// Restore re-applies the original attributes. It never fails: an error is
// logged and dropped since it only ever runs during teardown.
func (t *RawMode) Restore() {
	if t == nil || t.restored {
		return
	}
	t.restored = true

	orig := t.original
	if err := unix.IoctlSetTermios(t.fd, unix.TCSETSF, &orig); err != nil {
		t.logger.Warn("restoring terminal attributes", "fd", t.fd, "err", err)
		return
	}
	t.logger.Debug("raw mode disabled", "fd", t.fd)
}

func (t *RawMode) Original() unix.Termios { return t.original }

func (t *RawMode) Active() unix.Termios { return t.active }
