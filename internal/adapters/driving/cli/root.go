// Package cli implements the docmirror command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/docmirror/docmirror-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	flagVerbose  bool
	flagConfig   string
	flagKeepTemp bool
)

var rootCmd = &cobra.Command{
	Use:   "docmirror",
	Short: "Mirror a documentation site to local disk",
	Long: `docmirror mirrors a documentation website to local disk.

A run discovers document paths from the site's index page, fetches
each document sequentially and writes only those whose content
changed, producing a per-run change report and an end-of-run summary.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(flagVerbose)
	},
	RunE: runMirror,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default ~/.docmirror/config.toml)")
	rootCmd.Flags().BoolVar(&flagKeepTemp, "keep-temp", false, "keep the scratch workspace and per-run log after the run")
}

// Execute runs the CLI and returns the process exit code. Fatal
// errors (usage, dependency, discovery, total sync failure) print a
// distinguishable marker and yield a non-zero exit.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", render(errorStyle, "✗"), err)
		return 1
	}
	return 0
}
