package cmd

import (
	"fmt"
	"io"

	"github.com/jcdickinson/ferrisdoc/internal/render"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:     "show <file>",
	Short:   "Print a lookup saved with --out, decompressing .zst files",
	Example: `  ferrisdoc show docs/serde.json.zst`,
	Args:    cobra.ExactArgs(1),
	RunE:    runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	r, err := render.OpenSnapshot(args[0])
	if err != nil {
		return err
	}
	defer r.Close()

	if _, err := io.Copy(cmd.OutOrStdout(), r); err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	return nil
}
