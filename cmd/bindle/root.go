// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for bindle.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"

	// verbose enables debug logging
	verbose bool
	// cfgFile allows specifying a custom settings file
	cfgFile string

	// logger writes diagnostics to stderr; debug level behind --verbose.
	logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "bindle",
	})

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "bindle",
		Short: "Classify build output into typed modules and assemble deployment bindings",
		Long: TitleStyle.Render("bindle") + SubtitleStyle.Render(" - deployment asset classifier") + `

bindle walks a build-output directory, assigns each file exactly one
module type using glob patterns (failing on ambiguity), and assembles
the resource bindings a deployed script references: KV namespaces,
durable-object classes, text blobs, plain texts, and wasm modules.

Settings live in a 'bindle.toml' file next to your project.

` + SubtitleStyle.Render("Examples:") + `
  bindle init my-worker     Scaffold a bindle.toml
  bindle manifest           Classify the upload directory
  bindle manifest --json    Same, as JSON for tooling
  bindle bindings           Print the assembled bindings as JSON`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "settings file (default is ./bindle.toml)")

	rootCmd.AddCommand(manifestCmd)
	rootCmd.AddCommand(bindingsCmd)
	rootCmd.AddCommand(initCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	// fang overrides rootCmd.Version, so pass it via fang.WithVersion
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
