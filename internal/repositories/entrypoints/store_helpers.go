package entrypoints

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/AntonioJCosta/epithet/internal/core/domain/alias"
	"github.com/spf13/afero"
)

// headerSize bounds how much of a foreign file is read to look for Marker.
const headerSize = 512

/*
RenderScript returns the wrapper script for ep:

	#!/bin/sh
	# Generated by epithet. Do not edit.
	# sub-aliases: b t
	exec '/abs/path/epithet' run 'c' "$@"

The sub-aliases line is omitted when the alias has none.
*/
func RenderScript(ep alias.EntryPoint) string {
	var b strings.Builder
	b.WriteString("#!/bin/sh\n")
	b.WriteString(Marker + "\n")
	if len(ep.SubAliases) > 0 {
		fmt.Fprintf(&b, "# sub-aliases: %s\n", strings.Join(ep.SubAliases, " "))
	}
	fmt.Fprintf(&b, "exec %s run %s \"$@\"\n", shellQuote(ep.Executable), shellQuote(ep.Name))
	return b.String()
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func (s *Store) lstat(path string) (os.FileInfo, error) {
	if lstater, ok := s.fs.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(path)
		return info, err
	}
	return s.fs.Stat(path)
}

// isManaged recognises wrapper scripts by Marker and symlinks by their target.
func (s *Store) isManaged(info os.FileInfo) (bool, error) {
	path := s.path(info.Name())

	if info.Mode()&os.ModeSymlink != 0 {
		reader, ok := s.fs.(afero.LinkReader)
		if !ok {
			return false, nil
		}
		target, err := reader.ReadlinkIfPossible(path)
		if err != nil {
			return false, fmt.Errorf("failed to read link %s: %w", toUserFriendlyPath(path), err)
		}
		return s.executable != "" && target == s.executable, nil
	}

	if !info.Mode().IsRegular() {
		return false, nil
	}

	f, err := s.fs.Open(path)
	if err != nil {
		return false, fmt.Errorf("failed to open %s: %w", toUserFriendlyPath(path), err)
	}
	defer f.Close()

	header := make([]byte, headerSize)
	n, err := io.ReadFull(f, header)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return false, fmt.Errorf("failed to read %s: %w", toUserFriendlyPath(path), err)
	}
	return bytes.Contains(header[:n], []byte("\n"+Marker+"\n")), nil
}

func (s *Store) writeSymlink(ep alias.EntryPoint, target string) error {
	linker, ok := s.fs.(afero.Linker)
	if !ok {
		return fmt.Errorf("linking %s: %w", toUserFriendlyPath(target), ErrSymlinksUnsupported)
	}
	if err := s.removeIfPresent(target); err != nil {
		return err
	}
	if err := linker.SymlinkIfPossible(ep.Executable, target); err != nil {
		return fmt.Errorf("failed to link %s to %s: %w", toUserFriendlyPath(target), ep.Executable, err)
	}
	return nil
}

func (s *Store) removeIfPresent(target string) error {
	info, err := s.lstat(target)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to inspect %s: %w", toUserFriendlyPath(target), err)
	}
	if info.IsDir() {
		return fmt.Errorf("cannot replace directory %s with an entry point", toUserFriendlyPath(target))
	}
	if err := s.fs.Remove(target); err != nil {
		return fmt.Errorf("failed to replace %s: %w", toUserFriendlyPath(target), err)
	}
	return nil
}

// toUserFriendlyPath abbreviates the home directory to ~ for display.
func toUserFriendlyPath(absPath string) string {
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		return absPath
	}
	if absPath == homeDir {
		return "~"
	}
	if strings.HasPrefix(absPath, homeDir+string(os.PathSeparator)) {
		return filepath.Join("~", strings.TrimPrefix(absPath, homeDir+string(os.PathSeparator)))
	}
	return absPath
}
