package testutil

import (
	"errors"

	"github.com/AntonioJCosta/epithet/internal/core/domain/alias"
	"github.com/AntonioJCosta/epithet/internal/core/ports"
)

var _ ports.ConfigLoader = (*MockConfigLoader)(nil)

// MockConfigLoader is a mock implementation of ports.ConfigLoader for testing.
type MockConfigLoader struct {
	LoadFunc  func(path string) (*alias.Configuration, error)
	LoadCalls int
}

func (m *MockConfigLoader) Load(path string) (*alias.Configuration, error) {
	m.LoadCalls++
	if m.LoadFunc != nil {
		return m.LoadFunc(path)
	}
	return nil, errors.New("MockConfigLoader: LoadFunc not implemented")
}
