package testutil

import (
	"errors"
	"fmt"
	"sort"

	"github.com/AntonioJCosta/epithet/internal/core/domain/alias"
	"github.com/AntonioJCosta/epithet/internal/core/ports"
)

var _ ports.EntryPointStore = (*FakeEntryPointStore)(nil)

// ErrFakeNotManaged is returned by FakeEntryPointStore.Remove for foreign files.
var ErrFakeNotManaged = errors.New("fake: not managed")

// FakeEntryPointStore is an in-memory ports.EntryPointStore.
type FakeEntryPointStore struct {
	Managed  map[string]alias.EntryPoint
	Foreign  map[string]bool // files present in the directory but not written by the store
	WriteErr error
	Writes   []string
	Removes  []string
}

// NewFakeEntryPointStore returns an empty store.
func NewFakeEntryPointStore() *FakeEntryPointStore {
	return &FakeEntryPointStore{
		Managed: map[string]alias.EntryPoint{},
		Foreign: map[string]bool{},
	}
}

func (f *FakeEntryPointStore) Dir() string { return "/fake/bin" }

func (f *FakeEntryPointStore) Exists(name string) (bool, error) {
	_, managed := f.Managed[name]
	return managed || f.Foreign[name], nil
}

func (f *FakeEntryPointStore) IsManaged(name string) (bool, error) {
	_, managed := f.Managed[name]
	return managed, nil
}

func (f *FakeEntryPointStore) List() ([]string, error) {
	names := make([]string, 0, len(f.Managed))
	for name := range f.Managed {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (f *FakeEntryPointStore) Write(ep alias.EntryPoint) error {
	if f.WriteErr != nil {
		return f.WriteErr
	}
	f.Writes = append(f.Writes, ep.Name)
	delete(f.Foreign, ep.Name)
	f.Managed[ep.Name] = ep
	return nil
}

func (f *FakeEntryPointStore) Remove(name string) error {
	if _, ok := f.Managed[name]; !ok {
		return fmt.Errorf("remove %s: %w", name, ErrFakeNotManaged)
	}
	f.Removes = append(f.Removes, name)
	delete(f.Managed, name)
	return nil
}
