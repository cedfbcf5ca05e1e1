package ports

import "github.com/AntonioJCosta/epithet/internal/core/domain/alias"

// ConfigChecker reports problems of a configuration that loading alone does not catch.
type ConfigChecker interface {
	Check(cfg *alias.Configuration) []alias.Finding
}
