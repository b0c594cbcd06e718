package main

import (
	"github.com/jacksmith/hitlist/internal/ops"
	"github.com/spf13/cobra"
)

var markCmd = &cobra.Command{
	Use:   "mark",
	Short: "Mark the current directory",
	Long: `Add the current directory to the end of the list.

Marking a directory that is already on the list changes nothing and exits
with status 1 without printing anything, so scripts can tell the two apart.`,
	Args: cobra.NoArgs,
	RunE: runMark,
}

func init() {
	rootCmd.AddCommand(markCmd)
}

func runMark(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	dir, err := currentDir()
	if err != nil {
		return err
	}

	return ops.Mark(s, dir)
}
