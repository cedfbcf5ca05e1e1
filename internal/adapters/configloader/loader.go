package configloader

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/AntonioJCosta/epithet/internal/core/domain/alias"
	"github.com/AntonioJCosta/epithet/internal/core/ports"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidConfig is wrapped by every error caused by the content of a config file.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrUnsupportedFormat is returned for file extensions other than .toml, .yaml and .yml.
	ErrUnsupportedFormat = errors.New("unsupported config format")
)

const (
	globalExpansionsKey = "global_expansions"
	settingsKey         = "settings"
)

// Loader implements the ConfigLoader interface for TOML and YAML files.
type Loader struct {
	fs afero.Fs
}

// NewLoader creates a Loader reading from fs.
// It panics if fs is nil.
func NewLoader(fs afero.Fs) ports.ConfigLoader {
	if fs == nil {
		panic("fs cannot be nil")
	}
	return &Loader{fs: fs}
}

/*
Load reads the configuration at path. The format is picked from the file
extension; a path without extension is read as TOML.

Every top-level key other than global_expansions and settings is an alias.
An alias is either a table or a plain string, which is shorthand for
{ command = "..." }. An empty file yields an empty configuration.
*/
func (l *Loader) Load(path string) (*alias.Configuration, error) {
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	tree := map[string]any{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case "", ".toml":
		if err := toml.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("%w: parsing %s: %v", ErrInvalidConfig, path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("%w: parsing %s: %v", ErrInvalidConfig, path, err)
		}
		if tree == nil {
			tree = map[string]any{}
		}
	default:
		return nil, fmt.Errorf("%w %q: %s", ErrUnsupportedFormat, ext, path)
	}

	cfg, err := buildConfiguration(tree)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return cfg, nil
}

// buildConfiguration decodes and validates a generic config tree.
// Errors of every alias are reported together, in name order.
func buildConfiguration(tree map[string]any) (*alias.Configuration, error) {
	cfg := &alias.Configuration{
		GlobalExpansions: map[string]string{},
		Aliases:          map[string]alias.Alias{},
	}

	if raw, ok := tree[globalExpansionsKey]; ok {
		if err := decode(raw, &cfg.GlobalExpansions); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, globalExpansionsKey, err)
		}
	}

	if raw, ok := tree[settingsKey]; ok {
		var s settingsFile
		if err := decode(raw, &s); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, settingsKey, err)
		}
		cfg.Settings = alias.Settings{ForwardArgs: s.ForwardArgs, ExpandArgs: s.ExpandArgs}
	}

	names := make([]string, 0, len(tree))
	for name := range tree {
		if name != globalExpansionsKey && name != settingsKey {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	var errs []error
	for _, name := range names {
		def, err := buildAlias(name, tree[name])
		if err != nil {
			errs = append(errs, err)
			continue
		}
		cfg.Aliases[name] = def
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return cfg, nil
}

func buildAlias(name string, raw any) (alias.Alias, error) {
	var file aliasFile
	if err := decode(raw, &file); err != nil {
		return alias.Alias{}, invalidAlias([]string{name}, err.Error())
	}
	if err := validate.Struct(file); err != nil {
		return alias.Alias{}, validationError(name, err)
	}

	execution, err := toExecution([]string{name}, file.Command, file.And, file.Or)
	if err != nil {
		return alias.Alias{}, err
	}
	if execution.IsZero() && len(file.SubAliases) == 0 {
		return alias.Alias{}, invalidAlias([]string{name}, "needs a command, an and/or list or sub_aliases")
	}

	subAliases, err := toSubAliases([]string{name}, file.SubAliases)
	if err != nil {
		return alias.Alias{}, err
	}

	expansions := make(map[string]string, len(file.Expansions))
	for _, e := range file.Expansions {
		expansions[e.Key] = e.Value
	}

	return alias.Alias{
		Name:       name,
		Execution:  execution,
		SubAliases: subAliases,
		Expansions: expansions,
	}, nil
}

func toSubAliases(parent []string, files []subAliasFile) ([]alias.SubAlias, error) {
	if len(files) == 0 {
		return nil, nil
	}

	out := make([]alias.SubAlias, 0, len(files))
	for _, f := range files {
		path := append(append([]string{}, parent...), f.Name)

		execution, err := toExecution(path, f.Command, f.And, f.Or)
		if err != nil {
			return nil, err
		}
		if execution.IsZero() && len(f.SubAliases) == 0 {
			return nil, invalidAlias(path, "needs a command, an and/or list or sub_aliases")
		}

		nested, err := toSubAliases(path, f.SubAliases)
		if err != nil {
			return nil, err
		}
		out = append(out, alias.SubAlias{Name: f.Name, Execution: execution, SubAliases: nested})
	}
	return out, nil
}

// toExecution enforces that at most one of command, and, or is set.
func toExecution(path []string, command string, and, or []string) (alias.Execution, error) {
	var set []string
	if command != "" {
		set = append(set, "command")
	}
	if len(and) > 0 {
		set = append(set, "and")
	}
	if len(or) > 0 {
		set = append(set, "or")
	}
	if len(set) > 1 {
		return alias.Execution{}, invalidAlias(path, fmt.Sprintf("only one of command, and, or may be set (found %s)", strings.Join(set, ", ")))
	}

	switch {
	case command != "":
		return alias.Command(command), nil
	case len(and) > 0:
		return alias.And(and...), nil
	case len(or) > 0:
		return alias.Or(or...), nil
	default:
		return alias.Execution{}, nil
	}
}

func invalidAlias(path []string, msg string) error {
	return fmt.Errorf("%w: alias %q: %s", ErrInvalidConfig, strings.Join(path, " "), msg)
}
