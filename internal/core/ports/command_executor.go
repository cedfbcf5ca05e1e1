package ports

import "context"

// CommandExecutor runs a single resolved command.
type CommandExecutor interface {
	// Run executes command and waits for it. A command that ran and exited
	// non-zero is reported through exitCode with a nil error; err is reserved
	// for commands that could not be started or waited for.
	Run(ctx context.Context, command string) (exitCode int, err error)
}
