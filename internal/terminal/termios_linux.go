//go:build linux

package terminal

import "golang.org/x/sys/unix"

const (
	ioctlGetTermios      = unix.TCGETS
	ioctlSetTermios      = unix.TCSETS  // TCSANOW
	ioctlSetTermiosFlush = unix.TCSETSF // TCSAFLUSH
)
