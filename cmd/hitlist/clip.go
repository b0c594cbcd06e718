package main

import (
	"github.com/jacksmith/hitlist/internal/ops"
	"github.com/spf13/cobra"
)

var clipCmd = &cobra.Command{
	Use:   "clip <index>",
	Short: "Copy a marked directory to the clipboard",
	Long: `Copy the directory at the given number to the system clipboard.

Examples:
  hitlist clip 1`,
	Args:              cobra.ExactArgs(1),
	RunE:              runClip,
	ValidArgsFunction: completeIndexes,
}

func init() {
	rootCmd.AddCommand(clipCmd)
}

func runClip(cmd *cobra.Command, args []string) error {
	index, err := parseIndex(args[0])
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}

	path, err := ops.Clip(s, index, newClipboard())
	if err != nil {
		return err
	}

	logger.Debug("copied to clipboard", "path", path)
	return nil
}
