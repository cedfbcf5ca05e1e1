package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/AntonioJCosta/epithet/internal/adapters/commandanalysis"
	"github.com/AntonioJCosta/epithet/internal/adapters/configloader"
	"github.com/AntonioJCosta/epithet/internal/adapters/namecheck"
	"github.com/AntonioJCosta/epithet/internal/adapters/oscommand"
	"github.com/AntonioJCosta/epithet/internal/core/services/configcheck"
	"github.com/AntonioJCosta/epithet/internal/core/services/execution"
	"github.com/AntonioJCosta/epithet/internal/core/services/installation"
	"github.com/AntonioJCosta/epithet/internal/core/services/resolution"
	"github.com/AntonioJCosta/epithet/internal/handlers/cli"
	"github.com/AntonioJCosta/epithet/internal/handlers/ui"
	"github.com/AntonioJCosta/epithet/internal/repositories/entrypoints"
	"github.com/spf13/afero"
)

// Version is set at build time
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cli.NewRootCommand(Version, executablePath(), buildServices)
	rootCmd.SetArgs(cli.DispatchArgs(os.Args[0], os.Args[1:]))

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	fmt.Fprintln(os.Stderr, ui.ErrorColor("Error: "+err.Error()))
	return 1
}

func buildServices(settings cli.Settings, logger *slog.Logger) *cli.Services {
	fs := afero.NewOsFs()

	loader := configloader.NewLoader(fs)
	store := entrypoints.NewStore(fs, settings.BinDir, settings.Executable, entrypoints.WithSymlinks(settings.Symlink))
	names := namecheck.NewChecker(settings.BinDir)

	return &cli.Services{
		Loader:    loader,
		Resolver:  resolution.NewService(),
		Runner:    execution.NewService(oscommand.NewOSCommandExecutor(), logger),
		Installer: installation.NewService(store, names, loader, logger),
		Checker:   configcheck.NewService(commandanalysis.NewBasicAnalyzer(), names),
		Store:     store,
	}
}

// executablePath returns the absolute, symlink-free path of the running binary.
func executablePath() string {
	exe, err := os.Executable()
	if err != nil {
		return os.Args[0]
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		return resolved
	}
	return exe
}
