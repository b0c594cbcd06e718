package main

import (
	"fmt"

	"github.com/jacksmith/hitlist/internal/model"
	"github.com/jacksmith/hitlist/internal/ops"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the list in $EDITOR",
	Long: `Open the list in $VISUAL or $EDITOR, one directory per line.

On save, blank lines and repeated directories are dropped and the list is
rewritten in the order given. Every line must be an absolute path; if one
is not, nothing is changed.`,
	Args: cobra.NoArgs,
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	edited, err := editText([]byte(model.Encode(s.Marks.Lines())))
	if err != nil {
		return err
	}

	n, err := ops.Replace(s, string(edited))
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved %d marks.\n", n)
	return nil
}
