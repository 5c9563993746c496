//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package session

import (
	"context"
	"errors"

	"github.com/harrison/micenotes/internal/models"
)

// Start is not supported without a termios terminal
func Start(ctx context.Context, opts Options) (models.Log, error) {
	return nil, errors.New("interactive sessions require a Unix terminal")
}
