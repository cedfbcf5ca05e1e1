package resolution

import (
	"github.com/AntonioJCosta/epithet/internal/core/domain/alias"
	"github.com/AntonioJCosta/epithet/internal/core/ports"
)

type service struct{}

// NewService creates a new alias resolution service.
// The service holds no state, so one instance can serve concurrent callers.
func NewService() ports.AliasResolver {
	return &service{}
}

/*
Resolve looks up aliasName, dispatches through its sub-aliases using the
leading arguments, and substitutes expansions and parameters into every
command of the selected definition. Arguments are bound exactly as given
unless Settings.ExpandArgs is set. Either a complete plan is returned or
an error; nothing is executed.
*/
func (s *service) Resolve(cfg *alias.Configuration, aliasName string, args []string) (alias.Plan, error) {
	if cfg == nil {
		return alias.Plan{}, &ResolveError{Alias: aliasName, Err: ErrUnknownAlias}
	}
	def, ok := cfg.Aliases[aliasName]
	if !ok {
		return alias.Plan{}, &ResolveError{Alias: aliasName, Err: ErrUnknownAlias}
	}

	execution, path, rest, err := dispatch(aliasName, def, args)
	if err != nil {
		return alias.Plan{}, err
	}

	params := rest
	if cfg.Settings.ExpandArgs {
		params = ExpandArgs(rest, def.Expansions, cfg.GlobalExpansions)
	}

	plan := alias.Plan{
		Alias:         aliasName,
		Path:          path,
		Combinator:    execution.Combinator,
		Commands:      make([]string, 0, len(execution.Commands)),
		ShellCommands: make([]string, 0, len(execution.Commands)),
	}
	for _, template := range execution.Commands {
		command, shellCommand, err := resolveCommand(template, def.Expansions, cfg.GlobalExpansions, params, cfg.Settings.ForwardArgs)
		if err != nil {
			return alias.Plan{}, &SubstitutionError{Alias: aliasName, Path: path, Template: template, Err: err}
		}
		plan.Commands = append(plan.Commands, command)
		plan.ShellCommands = append(plan.ShellCommands, shellCommand)
	}
	return plan, nil
}
