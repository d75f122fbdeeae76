package system

import (
	"fmt"
	"io"
	"os"

	clog "github.com/charmbracelet/log"
)

// NewLogger returns a logger appending to the file at path, or one that
// discards everything when path is empty. Logs never go to the terminal:
// the editor owns it while running. The returned closer releases the file.
func NewLogger(path, level string) (*clog.Logger, io.Closer, error) {
	lvl, err := clog.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", level, err)
	}

	if path == "" {
		l := clog.NewWithOptions(io.Discard, clog.Options{Level: lvl})
		return l, io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	l := clog.NewWithOptions(f, clog.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "kilo",
	})
	return l, f, nil
}
