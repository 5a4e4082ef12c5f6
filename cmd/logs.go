package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/jcdickinson/ferrisdoc/internal/config"
	"github.com/spf13/cobra"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View the MCP server log file",
	Args:  cobra.NoArgs,
	RunE:  runLogs,
}

var (
	logsFollow bool
	logsLines  int
)

func init() {
	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "follow log output")
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", 50, "number of lines to show")
}

func runLogs(cmd *cobra.Command, args []string) error {
	logPath := config.LogPath()
	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		fmt.Fprintln(cmd.OutOrStdout(), "no log file found (server may not have run yet)")
		return nil
	}

	tailArgs := []string{"-n", strconv.Itoa(logsLines)}
	if logsFollow {
		tailArgs = append(tailArgs, "-f")
	}
	tailArgs = append(tailArgs, logPath)

	tailCmd := exec.CommandContext(cmd.Context(), "tail", tailArgs...)
	tailCmd.Stdout = cmd.OutOrStdout()
	tailCmd.Stderr = cmd.ErrOrStderr()

	if err := tailCmd.Run(); err != nil {
		return fmt.Errorf("tail failed: %w", err)
	}
	return nil
}
