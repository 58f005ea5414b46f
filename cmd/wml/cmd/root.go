// Package cmd implements the wml CLI commands.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "wml",
	Short: "wml - a view/template runtime for Go",
	Long: `wml renders compiled templates into display-node trees with widget
lifecycle management and whole-subtree invalidation.

This CLI scaffolds new wml projects and reports version information.
Use "wml <command> --help" for more information about a command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
