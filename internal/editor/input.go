package editor

import (
	"errors"
	"io"
)

// InputCapacity is the size of the input window. It holds the longest
// sequence Decode recognizes.
const InputCapacity = 8

// InputBuffer is a fixed window over bytes read from the terminal. Bytes in
// [start, end) are read but not yet decoded.
type InputBuffer struct {
	r     io.Reader
	buf   [InputCapacity]byte
	start int
	end   int
}

func NewInputBuffer(r io.Reader) *InputBuffer {
	return &InputBuffer{r: r}
}

// Fill issues a single read into the free tail of the window, first moving
// unread bytes to the front if the tail is exhausted. A read that returns no
// bytes is not an error: in raw mode it means the read timed out.
func (b *InputBuffer) Fill() error {
	if b.end == len(b.buf) {
		n := copy(b.buf[:], b.buf[b.start:b.end])
		b.start, b.end = 0, n
	}

	n, err := b.r.Read(b.buf[b.end:])
	if n > 0 {
		b.end += n
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return &IoError{Op: "read", Err: err}
	}
	return nil
}

// View returns the unread bytes. The slice aliases the window and is only
// valid until the next Fill.
func (b *InputBuffer) View() []byte {
	return b.buf[b.start:b.end]
}

func (b *InputBuffer) FillAndView() ([]byte, error) {
	if err := b.Fill(); err != nil {
		return nil, err
	}
	return b.View(), nil
}

// Consume marks the first n unread bytes as decoded.
func (b *InputBuffer) Consume(n int) {
	if n > b.end-b.start {
		n = b.end - b.start
	}
	b.start += n
}

func (b *InputBuffer) Len() int { return b.end - b.start }
