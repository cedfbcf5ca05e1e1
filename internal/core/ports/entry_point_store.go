package ports

import "github.com/AntonioJCosta/epithet/internal/core/domain/alias"

/*
EntryPointStore defines the interface for the directory holding the
invokable entry points of installed aliases. This is a driven port,
implemented by a repository that writes wrapper scripts or symlinks.
*/
type EntryPointStore interface {
	// Dir returns the directory entry points are written to.
	Dir() string

	// Exists reports whether any file named name is present, managed or not.
	Exists(name string) (bool, error)

	// IsManaged reports whether name is an entry point created by this tool.
	IsManaged(name string) (bool, error)

	// List returns the names of managed entry points, sorted.
	List() ([]string, error)

	// Write creates or replaces the entry point for ep.
	Write(ep alias.EntryPoint) error

	// Remove deletes a managed entry point. Files not created by this tool
	// are never removed.
	Remove(name string) error
}
