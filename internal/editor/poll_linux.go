package editor

import (
	"errors"

	"golang.org/x/sys/unix"
)

// EpollPoller waits for a single descriptor to become readable.
type EpollPoller struct {
	epfd   int
	fd     int
	events [4]unix.EpollEvent
}

func NewEpollPoller(fd int) (*EpollPoller, error) {
	epfd, err := unix.EpollCreate1(unix.EPOLL_CLOEXEC)
	if err != nil {
		return nil, &IoError{Op: "epoll_create", Err: err}
	}

	ev := unix.EpollEvent{Events: unix.EPOLLIN, Fd: int32(fd)}
	if err := unix.EpollCtl(epfd, unix.EPOLL_CTL_ADD, fd, &ev); err != nil {
		unix.Close(epfd)
		return nil, &IoError{Op: "epoll_ctl", Err: err}
	}

	return &EpollPoller{epfd: epfd, fd: fd}, nil
}

// Wait blocks until the descriptor is readable. A hung-up terminal still
// reports EPOLLIN, so hang-up with nothing left to read is an IoError.
func (p *EpollPoller) Wait() error {
	for {
		n, err := unix.EpollWait(p.epfd, p.events[:], -1)
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			return &IoError{Op: "epoll_wait", Err: err}
		}

		for _, ev := range p.events[:n] {
			if int(ev.Fd) != p.fd {
				continue
			}
			if ev.Events&(unix.EPOLLHUP|unix.EPOLLERR) != 0 && p.pending() == 0 {
				return &IoError{Op: "epoll_wait", Err: unix.EIO}
			}
			if ev.Events&unix.EPOLLIN != 0 {
				return nil
			}
		}
	}
}

// pending returns the number of unread input bytes. A hung-up tty fails the
// ioctl, which counts as none.
func (p *EpollPoller) pending() int {
	n, err := unix.IoctlGetInt(p.fd, unix.TIOCINQ)
	if err != nil {
		return 0
	}
	return n
}

func (p *EpollPoller) Close() error {
	return unix.Close(p.epfd)
}

// FdReader reads straight from a descriptor so an empty raw-mode read comes
// back as (0, nil) rather than io.EOF.
type FdReader struct {
	fd int
}

func NewFdReader(fd int) *FdReader {
	return &FdReader{fd: fd}
}

func (r *FdReader) Read(p []byte) (int, error) {
	n, err := unix.Read(r.fd, p)
	if err != nil {
		if errors.Is(err, unix.EINTR) || errors.Is(err, unix.EAGAIN) {
			return 0, nil
		}
		return 0, err
	}
	return n, nil
}
