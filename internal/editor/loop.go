package editor

import (
	"io"

	"github.com/charmbracelet/log"
)

// Poller blocks until input is ready to be read.
type Poller interface {
	Wait() error
}

// Loop feeds terminal input through Decode into a State and redraws after
// every key.
type Loop struct {
	poller Poller
	input  *InputBuffer
	state  *State
	view   Renderer
	logger *log.Logger
}

func NewLoop(poller Poller, in io.Reader, state *State, view Renderer, logger *log.Logger) *Loop {
	return &Loop{
		poller: poller,
		input:  NewInputBuffer(in),
		state:  state,
		view:   view,
		logger: orDiscard(logger),
	}
}

// Run draws the first frame and processes input until the state asks to
// exit. Any poll, read or write error ends the loop and is returned as is.
func (l *Loop) Run() error {
	if err := l.view.Render(); err != nil {
		return err
	}

	for {
		if err := l.poller.Wait(); err != nil {
			return err
		}
		if err := l.input.Fill(); err != nil {
			return err
		}
		if err := l.drain(); err != nil {
			return err
		}
		if l.state.ShouldExit {
			l.logger.Debug("exit requested")
			return nil
		}
	}
}

// drain applies every complete key in the input window, rendering after
// each one, and stops at an incomplete sequence or an exit request.
func (l *Loop) drain() error {
	for !l.state.ShouldExit {
		n, key := Decode(l.input.View())
		l.input.Consume(n)
		if key == KeyIncomplete {
			return nil
		}

		l.logger.Debug("key", "key", key, "bytes", n)
		l.state.Apply(key)
		if err := l.view.Render(); err != nil {
			return err
		}
	}
	return nil
}
