//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package terminal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Session owns the terminal mode between Acquire and Restore
type Session struct {
	fd         int
	raw        unix.Termios
	original   unix.Termios
	flags      int
	interrupts chan os.Signal

	mu       sync.Mutex
	restored bool
}

// Acquire captures the terminal mode and file-status flags of f, prepares the
// raw-mode record, and clears O_NONBLOCK on the descriptor.
// The returned Session must be released with Restore.
func Acquire(f *os.File) (*Session, error) {
	fd := int(f.Fd())

	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("%s: %w", f.Name(), ErrNotTerminal)
	}

	flags, err := unix.FcntlInt(uintptr(fd), unix.F_GETFL, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to read file status flags: %w", err)
	}

	original, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return nil, fmt.Errorf("failed to read terminal attributes: %w", err)
	}

	if _, err := unix.FcntlInt(uintptr(fd), unix.F_SETFL, flags&^unix.O_NONBLOCK); err != nil {
		return nil, fmt.Errorf("failed to clear non-blocking mode: %w", err)
	}

	s := &Session{
		fd:         fd,
		raw:        makeRaw(*original),
		original:   *original,
		flags:      flags,
		interrupts: make(chan os.Signal, 1),
	}

	// Interrupts are turned into tagged keys instead of killing the process
	signal.Notify(s.interrupts, os.Interrupt)

	return s, nil
}

// makeRaw derives the raw-mode record from the original one:
// no break/parity/CR translation or flow control on input, no output
// post-processing, 8-bit characters, and no echo, canonical mode, signal keys
// or extended input processing.
func makeRaw(t unix.Termios) unix.Termios {
	t.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP |
		unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	t.Oflag &^= unix.OPOST
	t.Cflag &^= unix.CSIZE | unix.PARENB
	t.Cflag |= unix.CS8
	t.Lflag &^= unix.ECHONL | unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	t.Cc[unix.VMIN] = 1
	t.Cc[unix.VTIME] = 0
	return t
}

// ReadKey switches to raw mode, blocks until one byte arrives, then restores
// the original mode (discarding pending input) before returning.
// An interrupt signal during the wait yields Key{Interrupted: true}.
// ctx cancellation returns ctx.Err(); end of input returns io.EOF.
func (s *Session) ReadKey(ctx context.Context) (Key, error) {
	if err := unix.IoctlSetTermios(s.fd, ioctlSetTermios, &s.raw); err != nil {
		return Key{}, fmt.Errorf("failed to enter raw mode: %w", err)
	}

	key, err := waitKey(ctx, s.fd, s.interrupts)

	if rerr := unix.IoctlSetTermios(s.fd, ioctlSetTermiosFlush, &s.original); rerr != nil && err == nil {
		err = fmt.Errorf("failed to leave raw mode: %w", rerr)
	}

	return key, err
}

// Restore puts back the original terminal mode and file-status flags.
// It is safe to call more than once.
func (s *Session) Restore() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.restored {
		return nil
	}
	s.restored = true

	signal.Stop(s.interrupts)

	var errs []error
	if err := unix.IoctlSetTermios(s.fd, ioctlSetTermiosFlush, &s.original); err != nil {
		errs = append(errs, fmt.Errorf("failed to restore terminal attributes: %w", err))
	}
	if _, err := unix.FcntlInt(uintptr(s.fd), unix.F_SETFL, s.flags); err != nil {
		errs = append(errs, fmt.Errorf("failed to restore file status flags: %w", err))
	}

	return errors.Join(errs...)
}
