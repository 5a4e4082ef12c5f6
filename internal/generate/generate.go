// Package generate runs the external documentation generator (cargo doc)
// and reports what it printed.
package generate

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"

	"golang.org/x/sync/errgroup"
)

// SuccessMessage is reported when the generator succeeds silently.
const SuccessMessage = "Documentation generated successfully."

// ProcessError is returned when the generator exits with a non-zero status.
type ProcessError struct {
	Command  string
	ExitCode int
	Stderr   string
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("%s failed (exit %d): %s", e.Command, e.ExitCode, e.Stderr)
}

// Runner invokes a documentation generator command.
type Runner struct {
	Command string
	Args    []string
	Dir     string
	Logger  *slog.Logger
}

// NewRunner returns a Runner for command with its fixed leading args,
// e.g. NewRunner("cargo", "doc").
func NewRunner(command string, args ...string) *Runner {
	return &Runner{Command: command, Args: args, Logger: slog.Default()}
}

// Run executes the generator with extra flags appended and returns a summary
// of its output: "STDOUT:\n..." and "STDERR:\n..." sections separated by a
// blank line, or SuccessMessage when nothing was printed.
func (r *Runner) Run(ctx context.Context, flags ...string) (string, error) {
	args := append(append([]string{}, r.Args...), flags...)
	cmd := exec.CommandContext(ctx, r.Command, args...)
	cmd.Dir = r.Dir

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return "", fmt.Errorf("creating stdout pipe: %w", err)
	}
	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return "", fmt.Errorf("creating stderr pipe: %w", err)
	}

	name := strings.Join(append([]string{r.Command}, args...), " ")
	r.logger().Info("running documentation generator", "command", name, "dir", r.Dir)

	if err := cmd.Start(); err != nil {
		return "", fmt.Errorf("failed to run %s: %w", name, err)
	}

	// Both pipes must be drained before Wait, or a chatty generator blocks.
	var stdout, stderr bytes.Buffer
	var g errgroup.Group
	g.Go(func() error {
		_, err := io.Copy(&stdout, stdoutPipe)
		return err
	})
	g.Go(func() error {
		// ReadString has no line length cap, so the pipe is always drained.
		br := bufio.NewReader(stderrPipe)
		for {
			line, err := br.ReadString('\n')
			if line != "" {
				r.logger().Debug("generator", "stderr", strings.TrimRight(line, "\n"))
				stderr.WriteString(line)
			}
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}
		}
	})
	readErr := g.Wait()

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &ProcessError{Command: name, ExitCode: exitErr.ExitCode(), Stderr: stderr.String()}
		}
		return "", fmt.Errorf("waiting for %s: %w", name, err)
	}
	if readErr != nil {
		return "", fmt.Errorf("reading output of %s: %w", name, readErr)
	}

	return Summarize(stdout.String(), stderr.String()), nil
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.Default()
	}
	return r.Logger
}

// Summarize formats captured generator output.
func Summarize(stdout, stderr string) string {
	var b strings.Builder
	if stdout != "" {
		b.WriteString("STDOUT:\n")
		b.WriteString(stdout)
	}
	if stderr != "" {
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString("STDERR:\n")
		b.WriteString(stderr)
	}
	if b.Len() == 0 {
		return SuccessMessage
	}
	return b.String()
}
