// Spinbutton is a numeric spin button for the terminal.
//
// It runs an interactive widget bounded by a minimum and maximum, stepped by
// a fixed increment, operated with the arrow keys, Home/End and the mouse.
// The value can be bound to other programs over a WebSocket and the binding
// announced with mDNS.
//
// Usage:
//
//	spinbutton [command] [flags]
//
// Running without a command launches the widget. On exit the form field
// "name=value" is printed when --name is set.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/spinbutton/internal/logging"
	"github.com/muurk/spinbutton/internal/version"
)

func main() {
	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spinbutton",
	Short: "Numeric spin button for the terminal",
	Long: `An interactive numeric spin button.

Up/Down step the value, Home/End jump to the bounds, and the - and +
buttons can be clicked. Values are clamped to [min, max] or wrap around
with --wrap.

With --listen the value is served over a WebSocket so other programs can
set it and follow its changes.`,
	Example: `  # Quantity picker from 0 to 10
  spinbutton --min 0 --max 10 --value 1 --name qty

  # Decimal steps, wrapping at the ends
  spinbutton --min 0 --max 1 --step 0.05 --wrap

  # Day picker shown as dates
  spinbutton --min -7 --max 7 --value 0 --date-base 2026-10-19

  # Share the value on the local network
  spinbutton --listen :7070 --advertise`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging(cmd)
	},
	RunE: runWidget,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionFormat string

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		if versionFormat == "yaml" {
			return writeYAML(cmd.OutOrStdout(), version.Get())
		}
		fmt.Fprintf(cmd.OutOrStdout(), "spinbutton %s\n", version.Full())
		return nil
	},
}

func init() {
	versionCmd.Flags().StringVar(&versionFormat, "format", "text", "Output format (text, yaml)")
}
