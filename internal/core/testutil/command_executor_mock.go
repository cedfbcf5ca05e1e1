package testutil

import (
	"context"
	"errors"

	"github.com/AntonioJCosta/epithet/internal/core/ports"
)

// MockCommandExecutor is a mock implementation of ports.CommandExecutor.
type MockCommandExecutor struct {
	RunFunc func(ctx context.Context, command string) (int, error)
	// RunCalls records every command passed to Run, in order.
	RunCalls []string
}

// Run records the command and calls the mock RunFunc.
func (m *MockCommandExecutor) Run(ctx context.Context, command string) (int, error) {
	m.RunCalls = append(m.RunCalls, command)
	if m.RunFunc != nil {
		return m.RunFunc(ctx, command)
	}
	return 0, errors.New("MockCommandExecutor.RunFunc not implemented")
}

// ExitCodes returns a RunFunc that answers each call with the next code in codes.
func ExitCodes(codes ...int) func(context.Context, string) (int, error) {
	next := 0
	return func(context.Context, string) (int, error) {
		if next >= len(codes) {
			return 0, errors.New("ExitCodes: more calls than codes")
		}
		code := codes[next]
		next++
		return code, nil
	}
}

var _ ports.CommandExecutor = (*MockCommandExecutor)(nil)
