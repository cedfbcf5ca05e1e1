package entrypoints

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/AntonioJCosta/epithet/internal/core/domain/alias"
	"github.com/AntonioJCosta/epithet/internal/core/ports"
	"github.com/spf13/afero"
)

// Marker is the line identifying wrapper scripts written by epithet.
const Marker = "# Generated by epithet. Do not edit."

var (
	// ErrNotManaged is returned when removing a file that was not created by epithet.
	ErrNotManaged = errors.New("not an epithet entry point")
	// ErrSymlinksUnsupported is returned in symlink mode on filesystems without symlinks.
	ErrSymlinksUnsupported = errors.New("filesystem does not support symlinks")
)

// Store writes entry points into a single directory of an afero.Fs.
type Store struct {
	fs         afero.Fs
	dir        string
	executable string
	symlinks   bool
}

// Option configures a Store.
type Option func(*Store)

// WithSymlinks makes the store link entry points to the executable
// instead of writing wrapper scripts.
func WithSymlinks(enabled bool) Option {
	return func(s *Store) { s.symlinks = enabled }
}

// NewStore creates a Store for dir. executable is the binary that managed
// symlinks point to.
func NewStore(fs afero.Fs, dir, executable string, opts ...Option) ports.EntryPointStore {
	if fs == nil {
		panic("fs cannot be nil")
	}
	s := &Store{fs: fs, dir: dir, executable: executable}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) Exists(name string) (bool, error) {
	if _, err := s.lstat(s.path(name)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to inspect %s: %w", toUserFriendlyPath(s.path(name)), err)
	}
	return true, nil
}

func (s *Store) IsManaged(name string) (bool, error) {
	info, err := s.lstat(s.path(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to inspect %s: %w", toUserFriendlyPath(s.path(name)), err)
	}
	return s.isManaged(info)
}

func (s *Store) List() ([]string, error) {
	infos, err := afero.ReadDir(s.fs, s.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read entry point directory %s: %w", toUserFriendlyPath(s.dir), err)
	}

	names := []string{}
	for _, info := range infos {
		if info.IsDir() {
			continue
		}
		managed, err := s.isManaged(info)
		if err != nil {
			return nil, err
		}
		if managed {
			names = append(names, info.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func (s *Store) Write(ep alias.EntryPoint) error {
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", toUserFriendlyPath(s.dir), err)
	}
	target := s.path(ep.Name)

	if s.symlinks {
		return s.writeSymlink(ep, target)
	}

	if err := s.removeIfPresent(target); err != nil {
		return err
	}
	if err := afero.WriteFile(s.fs, target, []byte(RenderScript(ep)), 0o755); err != nil {
		return fmt.Errorf("failed to write entry point %s: %w", toUserFriendlyPath(target), err)
	}
	return nil
}

func (s *Store) Remove(name string) error {
	target := s.path(name)
	info, err := s.lstat(target)
	if err != nil {
		return fmt.Errorf("failed to remove entry point %s: %w", toUserFriendlyPath(target), err)
	}

	managed, err := s.isManaged(info)
	if err != nil {
		return err
	}
	if !managed {
		return fmt.Errorf("refusing to remove %s: %w", toUserFriendlyPath(target), ErrNotManaged)
	}

	if err := s.fs.Remove(target); err != nil {
		return fmt.Errorf("failed to remove entry point %s: %w", toUserFriendlyPath(target), err)
	}
	return nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}
