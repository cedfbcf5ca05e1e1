package execution

import (
	"context"
	"errors"
	"testing"

	"github.com/AntonioJCosta/epithet/internal/core/domain/alias"
	"github.com/AntonioJCosta/epithet/internal/core/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewService(t *testing.T) {
	t.Run("should return a service if executor is not nil", func(t *testing.T) {
		svc := NewService(&testutil.MockCommandExecutor{}, nil)
		require.NotNil(t, svc)
	})

	t.Run("should panic if executor is nil", func(t *testing.T) {
		assert.PanicsWithValue(t, "executor cannot be nil", func() {
			_ = NewService(nil, nil)
		})
	})
}

func TestService_Run(t *testing.T) {
	tests := []struct {
		name         string
		combinator   alias.Combinator
		commands     []string
		codes        []int
		wantCalls    []string
		wantExitCode int
	}{
		{
			name:         "single success",
			combinator:   alias.Single,
			commands:     []string{"cargo build"},
			codes:        []int{0},
			wantCalls:    []string{"cargo build"},
			wantExitCode: 0,
		},
		{
			name:         "single failure carries status",
			combinator:   alias.Single,
			commands:     []string{"false"},
			codes:        []int{3},
			wantCalls:    []string{"false"},
			wantExitCode: 3,
		},
		{
			name:         "and runs everything when all succeed",
			combinator:   alias.SequenceAll,
			commands:     []string{"fmt", "lint", "test"},
			codes:        []int{0, 0, 0},
			wantCalls:    []string{"fmt", "lint", "test"},
			wantExitCode: 0,
		},
		{
			name:         "and stops at first failure",
			combinator:   alias.SequenceAll,
			commands:     []string{"fmt", "lint", "test"},
			codes:        []int{0, 2},
			wantCalls:    []string{"fmt", "lint"},
			wantExitCode: 2,
		},
		{
			name:         "or stops at first success",
			combinator:   alias.SequenceUntilSuccess,
			commands:     []string{"xdg-open x", "open x", "start x"},
			codes:        []int{127, 0},
			wantCalls:    []string{"xdg-open x", "open x"},
			wantExitCode: 0,
		},
		{
			name:         "or reports last status when all fail",
			combinator:   alias.SequenceUntilSuccess,
			commands:     []string{"a", "b", "c"},
			codes:        []int{1, 2, 5},
			wantCalls:    []string{"a", "b", "c"},
			wantExitCode: 5,
		},
		{
			name:         "empty plan succeeds without running anything",
			combinator:   alias.SequenceAll,
			commands:     nil,
			wantCalls:    nil,
			wantExitCode: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockExec := &testutil.MockCommandExecutor{RunFunc: testutil.ExitCodes(tt.codes...)}
			svc := NewService(mockExec, nil)

			plan := alias.Plan{Alias: "a", Combinator: tt.combinator, Commands: tt.commands}
			result, err := svc.Run(context.Background(), plan)

			require.NoError(t, err)
			assert.Equal(t, tt.wantCalls, mockExec.RunCalls)
			assert.Equal(t, tt.wantExitCode, result.ExitCode)
			assert.Equal(t, len(tt.wantCalls), result.Executed)
			assert.Equal(t, tt.wantExitCode == 0, result.Success())
		})
	}
}

func TestService_Run_ExecutorError(t *testing.T) {
	spawnErr := errors.New("exec: no such file")
	mockExec := &testutil.MockCommandExecutor{
		RunFunc: func(_ context.Context, command string) (int, error) {
			if command == "second" {
				return -1, spawnErr
			}
			return 0, nil
		},
	}
	svc := NewService(mockExec, nil)

	result, err := svc.Run(context.Background(), alias.Plan{
		Alias:      "a",
		Path:       []string{"b"},
		Combinator: alias.SequenceAll,
		Commands:   []string{"first", "second", "third"},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, spawnErr)
	assert.Contains(t, err.Error(), `running a b step 2 ("second")`)
	assert.Equal(t, []string{"first", "second"}, mockExec.RunCalls)
	assert.Equal(t, 2, result.Executed)
}

func TestService_Run_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	mockExec := &testutil.MockCommandExecutor{
		RunFunc: func(context.Context, string) (int, error) {
			cancel()
			return 0, nil
		},
	}
	svc := NewService(mockExec, nil)

	_, err := svc.Run(ctx, alias.Plan{Alias: "a", Combinator: alias.SequenceAll, Commands: []string{"one", "two"}})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"one"}, mockExec.RunCalls)
}

func TestService_Run_PrefersShellCommands(t *testing.T) {
	tests := []struct {
		name      string
		plan      alias.Plan
		wantCalls []string
	}{
		{
			name: "quoted commands are run",
			plan: alias.Plan{
				Alias:         "m",
				Combinator:    alias.Single,
				Commands:      []string{"git commit -m fix bug"},
				ShellCommands: []string{"git commit -m 'fix bug'"},
			},
			wantCalls: []string{"git commit -m 'fix bug'"},
		},
		{
			name: "plain commands are run when no quoted form is given",
			plan: alias.Plan{
				Alias:      "m",
				Combinator: alias.Single,
				Commands:   []string{"git status"},
			},
			wantCalls: []string{"git status"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockExec := &testutil.MockCommandExecutor{RunFunc: testutil.ExitCodes(0)}

			_, err := NewService(mockExec, nil).Run(context.Background(), tt.plan)

			require.NoError(t, err)
			assert.Equal(t, tt.wantCalls, mockExec.RunCalls)
		})
	}
}
