package testutil

import "github.com/AntonioJCosta/epithet/internal/core/ports"

var _ ports.NameChecker = (*MockNameChecker)(nil)

// MockNameChecker is a mock implementation of ports.NameChecker.
// Unset functions accept every name and find nothing on PATH.
type MockNameChecker struct {
	IsValidNameFunc func(name string) bool
	ShadowsFunc     func(name string) (string, bool)
	LookPathFunc    func(program string) (string, bool)
}

func (m *MockNameChecker) IsValidName(name string) bool {
	if m.IsValidNameFunc != nil {
		return m.IsValidNameFunc(name)
	}
	return true
}

func (m *MockNameChecker) Shadows(name string) (string, bool) {
	if m.ShadowsFunc != nil {
		return m.ShadowsFunc(name)
	}
	return "", false
}

func (m *MockNameChecker) LookPath(program string) (string, bool) {
	if m.LookPathFunc != nil {
		return m.LookPathFunc(program)
	}
	return "", false
}
