package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/AntonioJCosta/epithet/internal/core/domain/alias"
)

const binaryName = "epithet"

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join("~", ".config", binaryName, binaryName+".toml")
	}
	return filepath.Join(dir, binaryName, binaryName+".toml")
}

func defaultBinDir() string {
	return filepath.Join("~", ".local", binaryName, "bin")
}

// expandHome resolves a leading ~ to the user's home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func (a *app) loadConfig() (*alias.Configuration, error) {
	cfg, err := a.services.Loader.Load(a.settings.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("could not load aliases: %w", err)
	}
	a.logger.Debug("config loaded", "path", a.settings.ConfigPath, "aliases", len(cfg.Aliases))
	return cfg, nil
}

/*
DispatchArgs maps an invocation through an installed symlink onto the run
command: called as "gst -s", the binary behaves like "epithet run gst -s".
Invocations under the binary's own name are returned unchanged.
*/
func DispatchArgs(argv0 string, args []string) []string {
	name := strings.TrimSuffix(filepath.Base(argv0), ".exe")
	if name == binaryName || name == "" || name == "." {
		return args
	}
	return append([]string{"run", name}, args...)
}
