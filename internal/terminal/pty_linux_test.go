//go:build linux

package terminal

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// openPTY returns a pseudo-terminal pair; tests read from the slave side
func openPTY(t *testing.T) (master, slave *os.File) {
	t.Helper()

	m, err := os.OpenFile("/dev/ptmx", os.O_RDWR|unix.O_NOCTTY, 0)
	if err != nil {
		t.Skipf("pseudo-terminals unavailable: %v", err)
	}
	t.Cleanup(func() { m.Close() })

	mfd := int(m.Fd())
	require.NoError(t, unix.IoctlSetPointerInt(mfd, unix.TIOCSPTLCK, 0), "unlockpt")
	n, err := unix.IoctlGetUint32(mfd, unix.TIOCGPTN)
	require.NoError(t, err, "ptsname")

	s, err := os.OpenFile(fmt.Sprintf("/dev/pts/%d", n), os.O_RDWR|unix.O_NOCTTY, 0)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return m, s
}

func termiosOf(t *testing.T, fd int) unix.Termios {
	t.Helper()
	tio, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	require.NoError(t, err)
	return *tio
}

func flagsOf(t *testing.T, fd int) int {
	t.Helper()
	flags, err := unix.FcntlInt(uintptr(fd), unix.F_GETFL, 0)
	require.NoError(t, err)
	return flags
}

// typeAfter writes key to the master side once ReadKey is likely waiting
func typeAfter(t *testing.T, master *os.File, delay time.Duration, key string) {
	t.Helper()
	go func() {
		time.Sleep(delay)
		master.WriteString(key)
	}()
}

func TestSessionRestoresTerminalState(t *testing.T) {
	master, slave := openPTY(t)
	fd := int(slave.Fd())

	// Start from a non-blocking descriptor so the flag restore is observable
	_, err := unix.FcntlInt(uintptr(fd), unix.F_SETFL, flagsOf(t, fd)|unix.O_NONBLOCK)
	require.NoError(t, err)
	originalFlags := flagsOf(t, fd)
	original := termiosOf(t, fd)

	tty, err := Acquire(slave)
	require.NoError(t, err)
	defer tty.Restore()

	assert.Zero(t, flagsOf(t, fd)&unix.O_NONBLOCK, "Acquire clears O_NONBLOCK")
	assert.Equal(t, original, termiosOf(t, fd), "Acquire alone leaves the mode untouched")

	t.Run("successful read", func(t *testing.T) {
		typeAfter(t, master, 50*time.Millisecond, "r")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		key, err := tty.ReadKey(ctx)
		require.NoError(t, err)
		assert.Equal(t, Key{Char: 'r'}, key)
		assert.Equal(t, original, termiosOf(t, fd), "original mode back after the read")
	})

	t.Run("canceled read", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := tty.ReadKey(ctx)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Equal(t, original, termiosOf(t, fd), "original mode back after a failed read")
	})

	require.NoError(t, tty.Restore())
	assert.Equal(t, original, termiosOf(t, fd))
	assert.Equal(t, originalFlags, flagsOf(t, fd), "file-status flags restored")

	assert.NoError(t, tty.Restore(), "second Restore is a no-op")
	assert.Equal(t, originalFlags, flagsOf(t, fd))
}

func TestReadKeyIsRawWhileWaiting(t *testing.T) {
	master, slave := openPTY(t)
	fd := int(slave.Fd())

	tty, err := Acquire(slave)
	require.NoError(t, err)
	defer tty.Restore()

	seen := make(chan unix.Termios, 1)
	go func() {
		time.Sleep(50 * time.Millisecond)
		tio, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
		if err == nil {
			seen <- *tio
		}
		close(seen)
		master.WriteString("s")
	}()

	key, err := tty.ReadKey(context.Background())
	require.NoError(t, err)
	assert.Equal(t, byte('s'), key.Char)

	during, ok := <-seen
	require.True(t, ok, "termios read while waiting")
	assert.Zero(t, during.Lflag&(unix.ICANON|unix.ECHO|unix.ISIG))
	assert.NotZero(t, termiosOf(t, fd).Lflag&unix.ICANON, "canonical mode back after the read")
}
