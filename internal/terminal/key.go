// Package terminal provides single-keystroke input from the controlling terminal.
//
// A Session captures the terminal's original mode on Acquire, switches to raw
// mode only for the duration of each ReadKey, and puts the original mode back
// on Restore. Output written between reads therefore uses the normal cooked
// terminal settings.
//
//	tty, err := terminal.Acquire(os.Stdin)
//	if err != nil {
//	    return err
//	}
//	defer tty.Restore()
//
//	key, err := tty.ReadKey(ctx)
package terminal

import "errors"

// ErrNotTerminal is returned by Acquire when the file is not a terminal
var ErrNotTerminal = errors.New("input is not a terminal")

// Key is the result of one ReadKey call.
// Interrupted is set when an interrupt signal arrived while waiting; Char is
// zero in that case and must not be treated as input.
type Key struct {
	Char        byte
	Interrupted bool
}
