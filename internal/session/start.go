//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package session

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/harrison/micenotes/internal/models"
	"github.com/harrison/micenotes/internal/terminal"
)

// Start runs a session against the controlling terminal on stdin.
// The terminal mode is restored on every exit path.
func Start(ctx context.Context, opts Options) (models.Log, error) {
	return startOn(ctx, os.Stdin, opts)
}

func startOn(ctx context.Context, f *os.File, opts Options) (log models.Log, err error) {
	tty, err := terminal.Acquire(f)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire terminal: %w", err)
	}
	defer func() {
		if rerr := tty.Restore(); rerr != nil {
			err = errors.Join(err, rerr)
		}
	}()

	return NewRecorder(tty, opts).Run(ctx)
}
