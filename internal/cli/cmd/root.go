// Package cmd provides Cobra CLI commands for tintbar.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/tintbar/internal/cli"
)

var (
	app     *cli.App
	rootCmd = &cobra.Command{
		Use:   "tintbar",
		Short: "Per-project title-bar colors for GTK editors",
		Long: `Tintbar keeps every project window recognizable by tinting its
title bar with a per-project color.

Colors are remembered per project path. A project can get its color from
an explicit pick ('tintbar pick') or, when auto-pick is enabled, from a
generated one matching the active light/dark theme. 'tintbar run' starts
the engine that watches the host's windows and keeps their title bars in
sync.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion", "schema":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetVersion sets the version shown by --version (called from main.go).
func SetVersion(version string) {
	rootCmd.Version = version
}
