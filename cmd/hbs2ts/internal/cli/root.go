// Package cli provides the Cobra command structure for hbs2ts.
package cli

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// BuildInfo holds build-time version information, set by the linker in
// release builds.
type BuildInfo struct {
	Version string
	Commit  string
}

// NewRootCommand creates the root hbs2ts command with its subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var verbose bool

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

	rootCmd := &cobra.Command{
		Use:     "hbs2ts",
		Short:   "Transform Handlebars-family templates into typed script text",
		Version: info.Version,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newCheckCommand(logger))
	rootCmd.AddCommand(newEmitCommand(logger))

	return rootCmd
}
