package editor

import (
	"errors"

	"golang.org/x/sys/unix"
)

var errZeroSize = errors.New("terminal reported a zero size")

// WindowSize returns the column and row count of the terminal on fd.
func WindowSize(fd int) (cols, rows int, err error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, &ResizeQueryError{Op: "ioctl(TIOCGWINSZ)", Err: err}
	}
	if ws.Col == 0 || ws.Row == 0 {
		return 0, 0, &ResizeQueryError{Op: "ioctl(TIOCGWINSZ)", Err: errZeroSize}
	}
	return int(ws.Col), int(ws.Row), nil
}
