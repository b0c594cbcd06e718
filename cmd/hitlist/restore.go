package main

import (
	"github.com/jacksmith/hitlist/internal/ops"
	"github.com/spf13/cobra"
)

var restoreCmd = &cobra.Command{
	Use:     "restore",
	Aliases: []string{"reset"},
	Short:   "Restore the list saved by the last clear",
	Long: `Replace the current list with the backup taken by the last 'hitlist clear'.

The backup is kept, so restore can be repeated. Without a backup this
prints "No backup found!" and exits successfully.`,
	Args: cobra.NoArgs,
	RunE: runRestore,
}

func init() {
	rootCmd.AddCommand(restoreCmd)
}

func runRestore(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	return ops.Restore(s)
}
