package installation

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"slices"
	"sort"
	"time"

	"github.com/AntonioJCosta/epithet/internal/core/domain/alias"
	"github.com/AntonioJCosta/epithet/internal/core/ports"
	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 200 * time.Millisecond

type service struct {
	store    ports.EntryPointStore
	names    ports.NameChecker
	loader   ports.ConfigLoader
	logger   *slog.Logger
	debounce time.Duration
}

// NewService creates an installer writing through store.
// It panics if store, names or loader is nil. A nil logger discards log output.
func NewService(store ports.EntryPointStore, names ports.NameChecker, loader ports.ConfigLoader, logger *slog.Logger) ports.Installer {
	if store == nil {
		panic("entry point store cannot be nil")
	}
	if names == nil {
		panic("name checker cannot be nil")
	}
	if loader == nil {
		panic("config loader cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &service{store: store, names: names, loader: loader, logger: logger, debounce: defaultDebounce}
}

/*
Install writes an entry point for every alias of cfg, in name order.

Files already present are left alone unless opts.Force is set. Names that
cannot be file names are reported as Invalid and skipped. Names that hide a
command on PATH are installed and reported as Shadowed. With opts.Prune,
managed entry points whose alias is gone are removed.

On a store failure the report of the work done so far is returned with the error.
*/
func (s *service) Install(cfg *alias.Configuration, opts alias.InstallOptions) (alias.InstallReport, error) {
	report := alias.InstallReport{Shadowed: map[string]string{}}
	if cfg == nil {
		return report, fmt.Errorf("installing: configuration cannot be nil")
	}

	names := make([]string, 0, len(cfg.Aliases))
	for name := range cfg.Aliases {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if !s.names.IsValidName(name) {
			report.Invalid = append(report.Invalid, name)
			continue
		}
		if path, found := s.names.Shadows(name); found {
			report.Shadowed[name] = path
		}

		exists, err := s.store.Exists(name)
		if err != nil {
			return report, fmt.Errorf("installing %s: %w", name, err)
		}
		if exists && !opts.Force {
			report.Skipped = append(report.Skipped, name)
			continue
		}

		ep := alias.EntryPoint{
			Name:       name,
			Executable: opts.Executable,
			SubAliases: cfg.Aliases[name].Names(),
		}
		if err := s.store.Write(ep); err != nil {
			return report, fmt.Errorf("installing %s: %w", name, err)
		}
		s.logger.Debug("entry point written", "alias", name, "dir", s.store.Dir(), "replaced", exists)

		if exists {
			report.Overwritten = append(report.Overwritten, name)
		} else {
			report.Created = append(report.Created, name)
		}
	}

	if opts.Prune {
		if err := s.prune(cfg, &report); err != nil {
			return report, err
		}
	}

	return report, nil
}

func (s *service) prune(cfg *alias.Configuration, report *alias.InstallReport) error {
	managed, err := s.store.List()
	if err != nil {
		return fmt.Errorf("pruning: %w", err)
	}
	for _, name := range managed {
		if _, ok := cfg.Aliases[name]; ok {
			continue
		}
		if err := s.store.Remove(name); err != nil {
			return fmt.Errorf("pruning %s: %w", name, err)
		}
		s.logger.Debug("entry point removed", "alias", name)
		report.Removed = append(report.Removed, name)
	}
	return nil
}

/*
Watch runs an install right away and again after every change to the file at
path. The parent directory is watched, so editors that replace the file on
save are picked up too. Bursts of events are collapsed into one install.
*/
func (s *service) Watch(ctx context.Context, path string, opts alias.InstallOptions, onInstall func(alias.InstallReport, error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	path = filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}

	s.reinstall(path, opts, onInstall)

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path || !isContentChange(event) {
				continue
			}
			s.logger.Debug("config changed", "path", path, "op", event.Op.String())
			pending = time.After(s.debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("watch error", "path", path, "error", err)
		case <-pending:
			pending = nil
			s.reinstall(path, opts, onInstall)
		}
	}
}

func (s *service) reinstall(path string, opts alias.InstallOptions, onInstall func(alias.InstallReport, error)) {
	cfg, err := s.loader.Load(path)
	if err != nil {
		onInstall(alias.InstallReport{}, err)
		return
	}
	onInstall(s.Install(cfg, opts))
}

func isContentChange(event fsnotify.Event) bool {
	return slices.ContainsFunc([]fsnotify.Op{fsnotify.Write, fsnotify.Create, fsnotify.Rename}, event.Has)
}
