package main

import (
	"bufio"

	"github.com/jacksmith/hitlist/internal/cli"
	"github.com/jacksmith/hitlist/internal/ops"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List marked directories",
	Long: `Print every marked directory with its number, oldest first.

Exits with status 1 when nothing is marked.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	entries, err := ops.List(s)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(cmd.OutOrStdout())
	for _, e := range entries {
		w.WriteString(cli.ListLine(e.Index, e.Path))
	}
	return w.Flush()
}
