package cmd

import (
	"fmt"
	"strings"

	"github.com/jcdickinson/ferrisdoc/internal/docs"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List crates with generated documentation",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	crates, err := docs.ListCrates(cfg.Docs.Path)
	if err != nil {
		return fmt.Errorf("failed to list crates: %w", err)
	}
	if len(crates) == 0 {
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(crates, "\n"))
	return nil
}
