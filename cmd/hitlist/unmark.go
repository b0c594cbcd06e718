package main

import (
	"github.com/jacksmith/hitlist/internal/ops"
	"github.com/spf13/cobra"
)

var unmarkCmd = &cobra.Command{
	Use:   "unmark [index]",
	Short: "Unmark a directory",
	Long: `Remove a directory from the list by its number in 'hitlist list'.

Without an index, the current directory is removed if it is marked.

Examples:
  hitlist unmark 2
  hitlist unmark`,
	Args:              cobra.MaximumNArgs(1),
	RunE:              runUnmark,
	ValidArgsFunction: completeIndexes,
}

func init() {
	rootCmd.AddCommand(unmarkCmd)
}

func runUnmark(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		dir, err := currentDir()
		if err != nil {
			return err
		}
		return ops.UnmarkPath(s, dir)
	}

	index, err := parseIndex(args[0])
	if err != nil {
		return err
	}
	return ops.Unmark(s, index)
}
