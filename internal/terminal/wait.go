//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package terminal

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// pollIntervalMs bounds how long a wait can miss a signal or cancellation
const pollIntervalMs = 100

// waitKey polls fd until one byte is readable, an interrupt arrives on
// interrupts, or ctx is done.
func waitKey(ctx context.Context, fd int, interrupts <-chan os.Signal) (Key, error) {
	buf := make([]byte, 1)

	for {
		select {
		case <-ctx.Done():
			return Key{}, ctx.Err()
		case <-interrupts:
			return Key{Interrupted: true}, nil
		default:
		}

		fds := []unix.PollFd{
			{Fd: int32(fd), Events: unix.POLLIN},
		}

		n, err := unix.Poll(fds, pollIntervalMs)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return Key{}, fmt.Errorf("failed to poll terminal: %w", err)
		}

		if n == 0 {
			continue // Timeout
		}

		rn, err := unix.Read(fd, buf)
		if err != nil {
			if err == unix.EINTR || err == unix.EAGAIN {
				continue
			}
			return Key{}, fmt.Errorf("failed to read terminal: %w", err)
		}

		if rn == 0 {
			return Key{}, io.EOF
		}

		return Key{Char: buf[0]}, nil
	}
}
