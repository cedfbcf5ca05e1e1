package oscommand

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/AntonioJCosta/epithet/internal/core/ports"
)

// OSCommandExecutor implements the CommandExecutor interface using the operating system's shell.
type OSCommandExecutor struct {
	shell  string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// Option configures an OSCommandExecutor.
type Option func(*OSCommandExecutor)

// WithShell overrides the shell used to interpret commands.
func WithShell(shellPath string) Option {
	return func(e *OSCommandExecutor) { e.shell = shellPath }
}

// WithStdio replaces the standard streams handed to child processes.
func WithStdio(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(e *OSCommandExecutor) {
		e.stdin, e.stdout, e.stderr = stdin, stdout, stderr
	}
}

// NewOSCommandExecutor creates a new OSCommandExecutor attached to the process's own stdio.
// It uses $SHELL when set and /bin/sh otherwise.
func NewOSCommandExecutor(opts ...Option) ports.CommandExecutor {
	e := &OSCommandExecutor{
		shell:  os.Getenv("SHELL"),
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	if e.shell == "" {
		e.shell = "/bin/sh"
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run executes command with "<shell> -c" and returns its exit status.
func (e *OSCommandExecutor) Run(ctx context.Context, command string) (int, error) {
	cmd := exec.CommandContext(ctx, e.shell, "-c", command)
	cmd.Stdin = e.stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && ctx.Err() == nil {
		if code := exitErr.ExitCode(); code >= 0 {
			return code, nil
		}
		// Killed by a signal; report it the way shells do.
		return 128 + signalNumber(exitErr), nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return -1, fmt.Errorf("executing with shell '%s': %w", e.shell, ctxErr)
	}
	return -1, fmt.Errorf("executing with shell '%s': %w", e.shell, err)
}
