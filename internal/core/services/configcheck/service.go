package configcheck

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AntonioJCosta/epithet/internal/core/domain/alias"
	"github.com/AntonioJCosta/epithet/internal/core/ports"
	"github.com/AntonioJCosta/epithet/internal/core/services/resolution"
)

type service struct {
	analyzer ports.CommandAnalyzer
	names    ports.NameChecker
}

// NewService creates a configuration checker.
// It panics if analyzer or names is nil.
func NewService(analyzer ports.CommandAnalyzer, names ports.NameChecker) ports.ConfigChecker {
	if analyzer == nil {
		panic("analyzer cannot be nil")
	}
	if names == nil {
		panic("name checker cannot be nil")
	}
	return &service{analyzer: analyzer, names: names}
}

/*
Check inspects every alias of cfg, in name order, and returns its findings.

Errors make an alias unusable: names that cannot be installed, nodes with
nothing to run, sub-aliases hidden by an earlier one of the same name.
Warnings point at likely mistakes: expansions that stay unresolved, programs
missing from PATH, unbalanced quotes, names that shadow existing commands.
Info findings report how many arguments a command needs.
*/
func (s *service) Check(cfg *alias.Configuration) []alias.Finding {
	findings := []alias.Finding{}
	if cfg == nil {
		return findings
	}

	names := make([]string, 0, len(cfg.Aliases))
	for name := range cfg.Aliases {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		def := cfg.Aliases[name]
		c := checker{service: s, cfg: cfg, def: def}

		c.checkName(name)
		c.checkExpansionKeys()
		c.checkNode(nil, def.Execution, def.SubAliases)

		findings = append(findings, c.findings...)
	}
	return findings
}

// checker collects the findings of one alias.
type checker struct {
	*service
	cfg      *alias.Configuration
	def      alias.Alias
	findings []alias.Finding
}

func (c *checker) add(path []string, severity alias.Severity, format string, args ...any) {
	c.findings = append(c.findings, alias.Finding{
		Alias:    c.def.Name,
		Path:     path,
		Severity: severity,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (c *checker) checkName(name string) {
	if !c.names.IsValidName(name) {
		c.add(nil, alias.Error, "name %q cannot be installed as a command", name)
		return
	}
	if path, found := c.names.Shadows(name); found {
		c.add(nil, alias.Warning, "shadows %s", path)
	}
}

func (c *checker) checkExpansionKeys() {
	keys := make([]string, 0, len(c.def.Expansions))
	for k := range c.def.Expansions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !isExpansionKey(k) {
			c.add(nil, alias.Warning, "expansion key %q can never match an @token", k)
		}
	}
}

func (c *checker) checkNode(path []string, execution alias.Execution, subAliases []alias.SubAlias) {
	if execution.IsZero() && len(subAliases) == 0 {
		c.add(path, alias.Error, "%v", resolution.ErrEmptyDefinition)
	}

	for i, command := range execution.Commands {
		c.checkCommand(path, i, len(execution.Commands), command)
	}

	seen := map[string]bool{}
	for _, sa := range subAliases {
		subPath := append(append([]string{}, path...), sa.Name)
		if seen[sa.Name] {
			c.add(subPath, alias.Error, "duplicate sub-alias %q is never reachable", sa.Name)
			continue
		}
		seen[sa.Name] = true
		c.checkNode(subPath, sa.Execution, sa.SubAliases)
	}
}

func (c *checker) checkCommand(path []string, index, total int, template string) {
	label := "command"
	if total > 1 {
		label = fmt.Sprintf("command %d", index+1)
	}

	resolved := resolution.ResolveExpansions(template, c.def.Expansions, c.cfg.GlobalExpansions)
	analyzed := c.analyzer.Analyze(resolved)

	for _, token := range analyzed.Expansions {
		c.add(path, alias.Warning, "%s: @%s is not a known expansion and is passed on as is", label, token)
	}
	if analyzed.Unbalanced {
		c.add(path, alias.Warning, "%s: unbalanced quotes", label)
	}
	if analyzed.CommandName != "" && !isShellBuiltin(analyzed.CommandName) {
		if _, found := c.names.LookPath(analyzed.CommandName); !found {
			c.add(path, alias.Warning, "%s: program %q not found on PATH", label, analyzed.CommandName)
		}
	}
	if analyzed.RequiredArgs > 0 {
		c.add(path, alias.Info, "%s: needs %d argument(s)", label, analyzed.RequiredArgs)
	}
}

func isExpansionKey(key string) bool {
	if key == "" {
		return false
	}
	return strings.IndexFunc(key, func(r rune) bool {
		return !(r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9')
	}) < 0
}

var shellBuiltins = map[string]bool{
	".": true, ":": true, "[": true, "alias": true, "cd": true, "command": true,
	"echo": true, "eval": true, "exec": true, "exit": true, "export": true,
	"false": true, "printf": true, "pwd": true, "read": true, "set": true,
	"source": true, "test": true, "true": true, "type": true, "unset": true,
}

func isShellBuiltin(name string) bool {
	return shellBuiltins[name]
}
