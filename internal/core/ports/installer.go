package ports

import (
	"context"

	"github.com/AntonioJCosta/epithet/internal/core/domain/alias"
)

// Installer materializes a configuration as entry points.
type Installer interface {
	// Install writes one entry point per alias of cfg.
	Install(cfg *alias.Configuration, opts alias.InstallOptions) (alias.InstallReport, error)

	/*
	   Watch installs the configuration at path, then installs again every
	   time the file changes, until ctx is cancelled. onInstall receives the
	   outcome of every run, including load errors.
	*/
	Watch(ctx context.Context, path string, opts alias.InstallOptions, onInstall func(alias.InstallReport, error)) error
}
