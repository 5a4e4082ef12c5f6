package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jcdickinson/ferrisdoc/internal/config"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "ferrisdoc",
	Short: "Query generated Rust documentation from the command line or over MCP",
	Long: `ferrisdoc reads the rustdoc HTML under target/doc and turns it into a
structured list of items (functions, structs, enums, traits, macros, type
aliases, constants and modules) that can be filtered and paginated.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("doc-path", "", "documentation root (default from config, target/doc)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	viper.BindPFlag("docs.path", rootCmd.PersistentFlags().Lookup("doc-path"))
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(logsCmd)
}

func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg = loaded
	slog.SetDefault(newLogger(os.Stderr, cfg.Log.Level))
	return nil
}

// newLogger returns a tint logger for w, coloured only when w is a terminal.
func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !term.IsTerminal(int(f.Fd()))
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      lvl,
		TimeFormat: "15:04:05",
		NoColor:    noColor,
	}))
}
