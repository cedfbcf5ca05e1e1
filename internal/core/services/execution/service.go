package execution

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/AntonioJCosta/epithet/internal/core/domain/alias"
	"github.com/AntonioJCosta/epithet/internal/core/ports"
)

type service struct {
	executor ports.CommandExecutor
	logger   *slog.Logger
}

// NewService creates a plan runner on top of executor.
// It panics if executor is nil. A nil logger discards log output.
func NewService(executor ports.CommandExecutor, logger *slog.Logger) ports.PlanRunner {
	if executor == nil {
		panic("executor cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &service{executor: executor, logger: logger}
}

/*
Run executes the commands of plan one after another, never in parallel.
The shell-quoted form of each command is run when the plan carries one.

  - Single: the command's status is the result.
  - SequenceAll: stops at the first non-zero status and reports it.
  - SequenceUntilSuccess: stops at the first zero status; if every command
    fails, the last status is reported.

A command that cannot be started aborts the plan with an error. A cancelled
ctx stops the plan before the next command is started.
*/
func (s *service) Run(ctx context.Context, plan alias.Plan) (alias.Result, error) {
	var result alias.Result

	commands := plan.Executable()
	for i, command := range commands {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("running %s: %w", plan.Invocation(), err)
		}

		s.logger.Debug("running command",
			"alias", plan.Invocation(),
			"combinator", plan.Combinator.String(),
			"step", i+1,
			"of", len(commands),
			"command", command)

		code, err := s.executor.Run(ctx, command)
		result.Executed++
		if err != nil {
			return result, fmt.Errorf("running %s step %d (%q): %w", plan.Invocation(), i+1, command, err)
		}
		result.ExitCode = code

		if stop(plan.Combinator, code) {
			s.logger.Debug("plan short-circuited", "alias", plan.Invocation(), "step", i+1, "exit_code", code)
			break
		}
	}

	return result, nil
}

// stop reports whether a command's exit code ends the plan early.
func stop(combinator alias.Combinator, code int) bool {
	switch combinator {
	case alias.SequenceAll:
		return code != 0
	case alias.SequenceUntilSuccess:
		return code == 0
	default:
		return true
	}
}
