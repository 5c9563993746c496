package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/harrison/micenotes/internal/chart"
	"github.com/harrison/micenotes/internal/models"
	"github.com/harrison/micenotes/internal/session"
	"github.com/spf13/cobra"
)

// NewKeysCommand creates the keys command
func NewKeysCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Show the behavior key table",
		Long: `Show the keys accepted during a session, the behavior each one records,
and the colour used for it in charts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return printKeys(out, colorEnabled(out))
		},
	}
}

// printKeys writes the key table, with colour swatches when enabled
func printKeys(w io.Writer, enableColor bool) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%-7s %-14s %s\n", "KEY", "BEHAVIOR", "COLOUR")
	for _, behavior := range models.Behaviors() {
		swatch := behavior.Color
		if enableColor {
			r, g, bl, err := chart.ParseHex(behavior.Color)
			if err != nil {
				return fmt.Errorf("behavior %s: %w", behavior.Label, err)
			}
			c := color.RGB(r, g, bl)
			c.EnableColor()
			swatch = c.Sprint("██") + " " + behavior.Color
		}
		fmt.Fprintf(&b, "%-7c %-14s %s\n", byte(behavior.Code), behavior.Label, swatch)
	}

	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "%-7s %s\n", "space", "pause / resume")
	fmt.Fprintf(&b, "%-7c %s\n", session.QuitKey, "quit (ignored while paused)")
	fmt.Fprintln(&b, "Any other key records Other with a warning.")

	_, err := io.WriteString(w, b.String())
	return err
}
