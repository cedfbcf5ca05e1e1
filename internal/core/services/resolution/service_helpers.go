package resolution

import (
	"github.com/AntonioJCosta/epithet/internal/core/domain/alias"
)

/*
dispatch consumes sub-alias tokens from the front of args until it reaches
a node that either has no sub-aliases or has no sub-alias matching the next
token. It returns the execution to run, the consumed path and the
remaining arguments.

A node that declares both a command and sub-aliases uses the command only
when no sub-alias matches.
*/
func dispatch(aliasName string, def alias.Alias, args []string) (alias.Execution, []string, []string, error) {
	execution, children := def.Execution, def.SubAliases
	var path []string
	rest := args

	for len(children) > 0 {
		if len(rest) > 0 {
			if sub, ok := findSubAlias(children, rest[0]); ok {
				path = append(path, sub.Name)
				execution, children = sub.Execution, sub.SubAliases
				rest = rest[1:]
				continue
			}
		}
		if !execution.IsZero() {
			break
		}

		resolveErr := &ResolveError{Alias: aliasName, Path: path, Available: subAliasNames(children)}
		if len(rest) == 0 {
			resolveErr.Err = ErrMissingSubcommand
		} else {
			resolveErr.Token = rest[0]
			resolveErr.Err = ErrUnknownSubcommand
		}
		return alias.Execution{}, nil, nil, resolveErr
	}

	if execution.IsZero() {
		return alias.Execution{}, nil, nil, &ResolveError{Alias: aliasName, Path: path, Err: ErrEmptyDefinition}
	}
	return execution, path, rest, nil
}

// findSubAlias returns the first sub-alias named token. Matching is exact and case-sensitive.
func findSubAlias(subAliases []alias.SubAlias, token string) (alias.SubAlias, bool) {
	for _, sa := range subAliases {
		if sa.Name == token {
			return sa, true
		}
	}
	return alias.SubAlias{}, false
}

func subAliasNames(subAliases []alias.SubAlias) []string {
	names := make([]string, 0, len(subAliases))
	for _, sa := range subAliases {
		names = append(names, sa.Name)
	}
	return names
}

// resolveCommand runs the expansion pass and then the binding pass over one
// template. It returns the command as written and the same command with its
// arguments quoted for the shell.
func resolveCommand(template string, local, global map[string]string, params []string, forwardArgs bool) (string, string, error) {
	expanded := ResolveExpansions(template, local, global)
	bound, used, err := bindParameters(expanded, params, verbatim)
	if err != nil {
		return "", "", err
	}
	quoted, _, err := bindParameters(expanded, params, shellEscape)
	if err != nil {
		return "", "", err
	}
	if forwardArgs {
		bound = appendUnused(bound, params, used)
		quoted = appendUnused(quoted, params, used)
	}
	return bound, quoted, nil
}
