package main

import (
	"bufio"

	"github.com/jacksmith/hitlist/internal/cli"
	"github.com/jacksmith/hitlist/internal/ops"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"check"},
	Short:   "Check that marked directories still exist",
	Long: `Print every marked directory with ✓ if it exists and ✘ if it is gone.

Exits with status 1 when nothing is marked.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	results, err := ops.Status(s)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(cmd.OutOrStdout())
	for _, r := range results {
		w.WriteString(cli.StatusLine(r.Path, r.Exists))
	}
	return w.Flush()
}
