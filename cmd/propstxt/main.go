// Package main provides the propstxt CLI entry point.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/skarndev/propstxt/internal/config"
	"github.com/skarndev/propstxt/internal/version"
)

var (
	cfgFile string //nolint:gochecknoglobals // CLI flag variable
	verbose bool   //nolint:gochecknoglobals // CLI flag variable
	quiet   bool   //nolint:gochecknoglobals // CLI flag variable
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "propstxt",
		Short: "UModel .props.txt descriptor parser and inspector",
		Long: `propstxt parses .props.txt property dumps emitted by UModel (UE Viewer)
and extracts material and mesh data from them.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			setupLogging()
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.propstxt.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress output")

	rootCmd.AddCommand(parseCmd())
	rootCmd.AddCommand(scanCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(formatCmd())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging configures the default slog logger from the CLI flags.
func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	if quiet {
		level = slog.LevelError
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// loadConfig loads CLI configuration honoring the --config flag.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return cfg, nil
}

func versionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "propstxt %s (commit: %s, built: %s)\n",
				version.Version, version.Commit, version.Date)
		},
	}

	return cmd
}
