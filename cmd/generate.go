package cmd

import (
	"fmt"

	"github.com/jcdickinson/ferrisdoc/internal/generate"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate [-- cargo doc flags...]",
	Short: "Run cargo doc to (re)generate documentation",
	Example: `  ferrisdoc generate
  ferrisdoc generate -- --no-deps --all-features`,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	runner := generate.NewRunner(cfg.Generate.Command, cfg.Generate.Args...)
	flags := append(append([]string{}, cfg.Generate.Flags...), args...)

	out, err := runner.Run(cmd.Context(), flags...)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
