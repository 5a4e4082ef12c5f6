package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/jcdickinson/ferrisdoc/internal/config"
	"github.com/jcdickinson/ferrisdoc/internal/generate"
	"github.com/jcdickinson/ferrisdoc/internal/mcp"
	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Serve list_crates, lookup_crate and generate_docs over MCP (stdio)",
	Args:  cobra.NoArgs,
	RunE:  runServer,
}

func runServer(cmd *cobra.Command, args []string) error {
	// stdout carries the MCP transport, so logs go to a file.
	logPath := config.LogPath()
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logFile.Close()

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	runner := generate.NewRunner(cfg.Generate.Command, cfg.Generate.Args...)
	runner.Logger = logger
	server := mcp.NewServer(cfg.Docs.Path, runner, logger)

	logger.Info("starting MCP server", "doc_path", cfg.Docs.Path)

	errCh := make(chan error, 1)
	go func() { errCh <- server.Run(cmd.Context()) }()

	if err := waitForSignal(errCh); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}

func waitForSignal(errCh chan error) error {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	select {
	case sig := <-sigs:
		slog.Info("received signal", "signal", sig.String())
		return nil
	case err := <-errCh:
		return err
	}
}
