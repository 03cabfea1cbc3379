// Package cli provides the Cobra command structure for siglint.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/siglint/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root siglint command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "siglint",
		Short: "A fast, self-fixing Sorbet signature linter for Ruby",
		Long: `siglint keeps Ruby method definitions and their Sorbet signatures in
shape. It detects methods that lack a sig block and signatures that have
drifted apart from their definitions, and can rewrite the source to fix
both: synthesizing T.untyped placeholder signatures and pulling stray
blank lines and comments out of the sig-to-def gap.

Fixes are applied through a conflict-checked edit pipeline with dry-run
mode and optional backups, and re-run until the file converges.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newLintCommand())
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
