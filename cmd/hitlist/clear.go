package main

import (
	"github.com/jacksmith/hitlist/internal/ops"
	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the list, keeping a backup",
	Long: `Empty the list. The cleared list is saved as the backup, replacing any
earlier one, and can be brought back with 'hitlist restore'.

Clearing an empty list does nothing and keeps the existing backup.`,
	Args: cobra.NoArgs,
	RunE: runClear,
}

func init() {
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	return ops.Clear(s)
}
