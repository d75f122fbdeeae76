package editor

import "fmt"

// TerminalControlError reports a failure to read or change terminal attributes.
type TerminalControlError struct {
	Op  string
	Err error
}

func (e *TerminalControlError) Error() string {
	return fmt.Sprintf("terminal control: %s: %v", e.Op, e.Err)
}

func (e *TerminalControlError) Unwrap() error { return e.Err }

// IoError reports a failed read or write on a terminal descriptor,
// including short writes.
type IoError struct {
	Op  string
	Err error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("io: %s: %v", e.Op, e.Err)
}

func (e *IoError) Unwrap() error { return e.Err }

// ResizeQueryError reports a failed window size query or a degenerate
// (zero sized) result.
type ResizeQueryError struct {
	Op  string
	Err error
}

func (e *ResizeQueryError) Error() string {
	return fmt.Sprintf("window size: %s: %v", e.Op, e.Err)
}

func (e *ResizeQueryError) Unwrap() error { return e.Err }
