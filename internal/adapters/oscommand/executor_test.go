package oscommand

import (
	"bytes"
	"context"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/AntonioJCosta/epithet/internal/core/services/resolution"
)

func newTestExecutor(t *testing.T, stdout, stderr *bytes.Buffer) *OSCommandExecutor {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	exec := NewOSCommandExecutor(WithShell("/bin/sh"), WithStdio(strings.NewReader(""), stdout, stderr))
	e, ok := exec.(*OSCommandExecutor)
	if !ok {
		t.Fatalf("NewOSCommandExecutor() returned %T, want *OSCommandExecutor", exec)
	}
	return e
}

func TestNewOSCommandExecutor_DefaultShell(t *testing.T) {
	t.Setenv("SHELL", "")
	e := NewOSCommandExecutor().(*OSCommandExecutor)
	if e.shell != "/bin/sh" {
		t.Errorf("shell = %q, want /bin/sh", e.shell)
	}

	t.Setenv("SHELL", "/bin/zsh")
	e = NewOSCommandExecutor().(*OSCommandExecutor)
	if e.shell != "/bin/zsh" {
		t.Errorf("shell = %q, want /bin/zsh", e.shell)
	}
}

func TestOSCommandExecutor_Run(t *testing.T) {
	tests := []struct {
		name       string
		command    string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{name: "success", command: "echo hello", wantCode: 0, wantStdout: "hello\n"},
		{name: "non-zero exit is not an error", command: "exit 3", wantCode: 3},
		{name: "stderr is forwarded", command: "echo oops >&2; exit 1", wantCode: 1, wantStderr: "oops\n"},
		{name: "command not found", command: "definitely-not-a-command-epithet", wantCode: 127},
		{name: "shell syntax is interpreted", command: "true && echo chained", wantCode: 0, wantStdout: "chained\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			e := newTestExecutor(t, &stdout, &stderr)

			code, err := e.Run(context.Background(), tt.command)
			if err != nil {
				t.Fatalf("Run() unexpected error: %v", err)
			}
			if code != tt.wantCode {
				t.Errorf("Run() code = %d, want %d", code, tt.wantCode)
			}
			if stdout.String() != tt.wantStdout {
				t.Errorf("stdout = %q, want %q", stdout.String(), tt.wantStdout)
			}
			if tt.wantStderr != "" && stderr.String() != tt.wantStderr {
				t.Errorf("stderr = %q, want %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}

func TestOSCommandExecutor_Run_MissingShell(t *testing.T) {
	var stdout, stderr bytes.Buffer
	e := newTestExecutor(t, &stdout, &stderr)
	e.shell = "/nonexistent/shell"

	if _, err := e.Run(context.Background(), "true"); err == nil {
		t.Fatal("Run() expected an error for a missing shell")
	}
}

func TestOSCommandExecutor_Run_Cancelled(t *testing.T) {
	var stdout, stderr bytes.Buffer
	e := newTestExecutor(t, &stdout, &stderr)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := e.Run(ctx, "sleep 5")
	if err == nil {
		t.Fatal("Run() expected an error when the context expires")
	}
}

func TestOSCommandExecutor_Run_BoundArgumentsStayWhole(t *testing.T) {
	var stdout, stderr bytes.Buffer
	e := newTestExecutor(t, &stdout, &stderr)

	command, err := resolution.BindShellParameters(`printf '[%s]\n' {0} "{1}"`,
		[]string{"fix bug; echo injected", `$(echo no) "q"`})
	if err != nil {
		t.Fatalf("BindShellParameters() error = %v", err)
	}

	code, err := e.Run(context.Background(), command)
	if err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	if code != 0 {
		t.Errorf("Run() code = %d, want 0 (stderr %q)", code, stderr.String())
	}
	want := "[fix bug; echo injected]\n[$(echo no) \"q\"]\n"
	if stdout.String() != want {
		t.Errorf("stdout = %q, want %q", stdout.String(), want)
	}
}
