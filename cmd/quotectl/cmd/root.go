// Package cmd provides the CLI commands for quotectl.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/tellsomethingsomething/tell-quote-sub009/internal/infrastructure/logging"

	"github.com/spf13/cobra"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

// NewRootCmd builds the command tree. Each call returns fresh flag state.
func NewRootCmd() *cobra.Command {
	var (
		verbose bool
		format  string
	)

	root := &cobra.Command{
		Use:   "quotectl",
		Short: "Regional pricing and quote totals from the command line",
		Long: `quotectl resolves pricing tiers, formats local prices and computes
quote totals offline, with the same rules the API uses.

Examples:
  quotectl tier MY
  quotectl tiers --format json
  quotectl format 2490 SEK
  quotectl totals ./quote.json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			format = strings.ToLower(strings.TrimSpace(format))
			switch format {
			case formatTable, formatJSON:
			default:
				return fmt.Errorf("unsupported format %q (use table or json)", format)
			}

			level := "warn"
			if verbose {
				level = "debug"
			}
			// Logs go to stderr so stdout stays parseable.
			return logging.Initialize(logging.Config{Level: level, Format: "console", Output: cmd.ErrOrStderr()})
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			logging.Sync()
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	root.PersistentFlags().StringVarP(&format, "format", "f", formatTable, "output format (table, json)")

	outputFormat := func() string { return format }
	root.AddCommand(
		newTierCmd(outputFormat),
		newTiersCmd(outputFormat),
		newFormatCmd(outputFormat),
		newTotalsCmd(outputFormat),
	)
	return root
}

// Execute runs the CLI
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
