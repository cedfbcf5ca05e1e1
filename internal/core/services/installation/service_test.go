package installation

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/AntonioJCosta/epithet/internal/core/domain/alias"
	"github.com/AntonioJCosta/epithet/internal/core/testutil"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exe = "/usr/local/bin/epithet"

func testConfig() *alias.Configuration {
	return &alias.Configuration{
		Aliases: map[string]alias.Alias{
			"g": {Name: "g", Execution: alias.Command("git")},
			"c": {Name: "c", SubAliases: []alias.SubAlias{
				{Name: "b", Execution: alias.Command("cargo build")},
				{Name: "t", Execution: alias.Command("cargo test")},
			}},
			"ls": {Name: "ls", Execution: alias.Command("ls -la")},
		},
	}
}

func TestNewService(t *testing.T) {
	store := testutil.NewFakeEntryPointStore()
	names := &testutil.MockNameChecker{}
	loader := &testutil.MockConfigLoader{}

	t.Run("should return a service if all dependencies are set", func(t *testing.T) {
		require.NotNil(t, NewService(store, names, loader, nil))
	})

	t.Run("should panic if store is nil", func(t *testing.T) {
		assert.PanicsWithValue(t, "entry point store cannot be nil", func() { NewService(nil, names, loader, nil) })
	})

	t.Run("should panic if name checker is nil", func(t *testing.T) {
		assert.PanicsWithValue(t, "name checker cannot be nil", func() { NewService(store, nil, loader, nil) })
	})

	t.Run("should panic if loader is nil", func(t *testing.T) {
		assert.PanicsWithValue(t, "config loader cannot be nil", func() { NewService(store, names, nil, nil) })
	})
}

func TestService_Install(t *testing.T) {
	shadowsLs := &testutil.MockNameChecker{
		ShadowsFunc: func(name string) (string, bool) {
			if name == "ls" {
				return "/usr/bin/ls", true
			}
			return "", false
		},
	}

	tests := []struct {
		name        string
		setupStore  func(*testutil.FakeEntryPointStore)
		names       *testutil.MockNameChecker
		cfg         *alias.Configuration
		opts        alias.InstallOptions
		wantReport  alias.InstallReport
		wantManaged []string
	}{
		{
			name:  "fresh install creates every entry point",
			names: &testutil.MockNameChecker{},
			cfg:   testConfig(),
			opts:  alias.InstallOptions{Executable: exe},
			wantReport: alias.InstallReport{
				Created: []string{"c", "g", "ls"},
			},
			wantManaged: []string{"c", "g", "ls"},
		},
		{
			name: "existing entries are skipped without force",
			setupStore: func(s *testutil.FakeEntryPointStore) {
				s.Managed["g"] = alias.EntryPoint{Name: "g"}
				s.Foreign["ls"] = true
			},
			names: &testutil.MockNameChecker{},
			cfg:   testConfig(),
			opts:  alias.InstallOptions{Executable: exe},
			wantReport: alias.InstallReport{
				Created: []string{"c"},
				Skipped: []string{"g", "ls"},
			},
			wantManaged: []string{"c", "g"},
		},
		{
			name: "force overwrites existing entries",
			setupStore: func(s *testutil.FakeEntryPointStore) {
				s.Managed["g"] = alias.EntryPoint{Name: "g"}
				s.Foreign["ls"] = true
			},
			names: &testutil.MockNameChecker{},
			cfg:   testConfig(),
			opts:  alias.InstallOptions{Executable: exe, Force: true},
			wantReport: alias.InstallReport{
				Created:     []string{"c"},
				Overwritten: []string{"g", "ls"},
			},
			wantManaged: []string{"c", "g", "ls"},
		},
		{
			name: "prune removes managed entries no longer configured",
			setupStore: func(s *testutil.FakeEntryPointStore) {
				s.Managed["old"] = alias.EntryPoint{Name: "old"}
				s.Foreign["foreign"] = true
			},
			names: &testutil.MockNameChecker{},
			cfg:   testConfig(),
			opts:  alias.InstallOptions{Executable: exe, Prune: true},
			wantReport: alias.InstallReport{
				Created: []string{"c", "g", "ls"},
				Removed: []string{"old"},
			},
			wantManaged: []string{"c", "g", "ls"},
		},
		{
			name: "stale entries stay without prune",
			setupStore: func(s *testutil.FakeEntryPointStore) {
				s.Managed["old"] = alias.EntryPoint{Name: "old"}
			},
			names:       &testutil.MockNameChecker{},
			cfg:         testConfig(),
			opts:        alias.InstallOptions{Executable: exe},
			wantReport:  alias.InstallReport{Created: []string{"c", "g", "ls"}},
			wantManaged: []string{"c", "g", "ls", "old"},
		},
		{
			name: "invalid names are reported and skipped",
			names: &testutil.MockNameChecker{
				IsValidNameFunc: func(name string) bool { return name != "c" },
			},
			cfg:         testConfig(),
			opts:        alias.InstallOptions{Executable: exe},
			wantReport:  alias.InstallReport{Created: []string{"g", "ls"}, Invalid: []string{"c"}},
			wantManaged: []string{"g", "ls"},
		},
		{
			name:  "shadowing names are installed and reported",
			names: shadowsLs,
			cfg:   testConfig(),
			opts:  alias.InstallOptions{Executable: exe},
			wantReport: alias.InstallReport{
				Created:  []string{"c", "g", "ls"},
				Shadowed: map[string]string{"ls": "/usr/bin/ls"},
			},
			wantManaged: []string{"c", "g", "ls"},
		},
		{
			name:        "empty configuration installs nothing",
			names:       &testutil.MockNameChecker{},
			cfg:         &alias.Configuration{},
			opts:        alias.InstallOptions{Executable: exe, Prune: true},
			wantReport:  alias.InstallReport{},
			wantManaged: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := testutil.NewFakeEntryPointStore()
			if tt.setupStore != nil {
				tt.setupStore(store)
			}
			svc := NewService(store, tt.names, &testutil.MockConfigLoader{}, nil)

			report, err := svc.Install(tt.cfg, tt.opts)
			require.NoError(t, err)

			if diff := cmp.Diff(tt.wantReport, report, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Install() report mismatch (-want +got):\n%s", diff)
			}
			managed, _ := store.List()
			assert.Equal(t, tt.wantManaged, managed)
		})
	}
}

func TestService_Install_EntryPointContent(t *testing.T) {
	store := testutil.NewFakeEntryPointStore()
	svc := NewService(store, &testutil.MockNameChecker{}, &testutil.MockConfigLoader{}, nil)

	_, err := svc.Install(testConfig(), alias.InstallOptions{Executable: exe})
	require.NoError(t, err)

	assert.Equal(t, alias.EntryPoint{Name: "c", Executable: exe, SubAliases: []string{"b", "t"}}, store.Managed["c"])
	assert.Equal(t, []string{"c", "g", "ls"}, store.Writes)
}

func TestService_Install_StoreError(t *testing.T) {
	store := testutil.NewFakeEntryPointStore()
	store.WriteErr = errors.New("disk full")
	svc := NewService(store, &testutil.MockNameChecker{}, &testutil.MockConfigLoader{}, nil)

	_, err := svc.Install(testConfig(), alias.InstallOptions{Executable: exe})

	assert.ErrorIs(t, err, store.WriteErr)
	assert.Contains(t, err.Error(), "installing c")
}

func TestService_Install_NilConfig(t *testing.T) {
	svc := NewService(testutil.NewFakeEntryPointStore(), &testutil.MockNameChecker{}, &testutil.MockConfigLoader{}, nil)

	_, err := svc.Install(nil, alias.InstallOptions{})
	assert.Error(t, err)
}

func TestService_Watch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "epithet.toml")
	require.NoError(t, os.WriteFile(path, []byte("g = \"git\"\n"), 0o644))

	configs := []*alias.Configuration{
		{Aliases: map[string]alias.Alias{"g": {Name: "g", Execution: alias.Command("git")}}},
		{Aliases: map[string]alias.Alias{"k": {Name: "k", Execution: alias.Command("kubectl")}}},
	}
	loader := &testutil.MockConfigLoader{}
	loader.LoadFunc = func(p string) (*alias.Configuration, error) {
		assert.Equal(t, path, p)
		if loader.LoadCalls > len(configs) {
			return configs[len(configs)-1], nil
		}
		return configs[loader.LoadCalls-1], nil
	}

	store := testutil.NewFakeEntryPointStore()
	svc := NewService(store, &testutil.MockNameChecker{}, loader, nil).(*service)
	svc.debounce = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reports := make(chan alias.InstallReport, 8)
	done := make(chan error, 1)
	go func() {
		done <- svc.Watch(ctx, path, alias.InstallOptions{Executable: exe, Prune: true}, func(r alias.InstallReport, err error) {
			assert.NoError(t, err)
			reports <- r
		})
	}()

	select {
	case r := <-reports:
		assert.Equal(t, []string{"g"}, r.Created)
	case <-time.After(5 * time.Second):
		t.Fatal("no initial install")
	}

	require.NoError(t, os.WriteFile(path, []byte("k = \"kubectl\"\n"), 0o644))

	select {
	case r := <-reports:
		assert.Equal(t, []string{"k"}, r.Created)
		assert.Equal(t, []string{"g"}, r.Removed)
	case <-time.After(5 * time.Second):
		t.Fatal("no install after the config changed")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestService_Watch_LoadError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "epithet.toml")
	loadErr := errors.New("invalid config")
	loader := &testutil.MockConfigLoader{
		LoadFunc: func(string) (*alias.Configuration, error) { return nil, loadErr },
	}
	svc := NewService(testutil.NewFakeEntryPointStore(), &testutil.MockNameChecker{}, loader, nil)

	ctx, cancel := context.WithCancel(context.Background())
	var got error
	err := svc.Watch(ctx, path, alias.InstallOptions{}, func(_ alias.InstallReport, err error) {
		got = err
		cancel()
	})

	require.NoError(t, err)
	assert.ErrorIs(t, got, loadErr)
}

func TestService_Watch_MissingDirectory(t *testing.T) {
	svc := NewService(testutil.NewFakeEntryPointStore(), &testutil.MockNameChecker{}, &testutil.MockConfigLoader{}, nil)

	err := svc.Watch(context.Background(), "/does/not/exist/epithet.toml", alias.InstallOptions{}, func(alias.InstallReport, error) {})
	assert.Error(t, err)
}
