package ports

import "github.com/AntonioJCosta/epithet/internal/core/domain/alias"

// ConfigLoader defines the interface for reading an alias configuration
// from persistent storage.
type ConfigLoader interface {
	// Load reads and validates the configuration stored at path.
	Load(path string) (*alias.Configuration, error)
}
