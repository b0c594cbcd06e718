// Package main is the entry point for the hitlist CLI.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jacksmith/hitlist/internal/cli"
	"github.com/jacksmith/hitlist/internal/storage"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		if msg := cli.FormatError(err); msg != "" {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(cli.ExitCode(err))
	}
}

var rootCmd = &cobra.Command{
	Use:   "hitlist",
	Short: "hitlist - bookmarks for directories",
	Long: `hitlist keeps a short list of directories you want to come back to.

Mark the current directory, list or check your marks, copy one to the
clipboard, and unmark them by number. Clearing the list keeps a single
backup that 'hitlist restore' brings back.

The list lives in $TMPDIR/.hitlist ($TEMP on Windows).`,
	Version:           Version,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var (
	flagColor    string
	flagLogLevel string

	// appConfig and logger are set by setup before any command runs.
	appConfig = storage.DefaultConfig()
	logger    = slog.New(slog.NewTextHandler(io.Discard, nil))
)

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("hitlist version {{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "", "colorize output: auto, always or never")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn or error")
}

// setup loads the user config and applies colour and logging settings.
// Flags take precedence over the config file.
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := storage.LoadConfig(storage.ConfigPath(os.Getenv))
	if err != nil {
		return err
	}

	mode := cfg.Color
	if flagColor != "" {
		mode = flagColor
	}
	if err := cli.SetColorMode(mode, cmd.OutOrStdout()); err != nil {
		return err
	}

	level := cfg.LogLevel
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	l, err := cli.NewLogger(level, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	appConfig = cfg
	logger = l
	return nil
}
