/*
Package alias defines the core domain entities for alias definitions
and the execution plans they resolve to.
*/
package alias

import "strings"

/*
Configuration is the loaded alias configuration. It is built once by a
config loader and treated as read-only afterwards; resolution only ever
reads from it.
*/
type Configuration struct {
	GlobalExpansions map[string]string
	Aliases          map[string]Alias
	Settings         Settings
}

// Settings holds configuration-wide behaviour switches.
type Settings struct {
	// ForwardArgs appends arguments not consumed by any {n} placeholder
	// to the end of every resolved command.
	ForwardArgs bool
	// ExpandArgs replaces invocation arguments written as @key with the
	// words of the expansion value before parameters are bound.
	ExpandArgs bool
}

/*
Alias is a top-level alias. It either runs an Execution directly, dispatches
to one of its SubAliases by the first invocation argument, or both: a
matching sub-alias wins and the direct execution is the fallback.
*/
type Alias struct {
	Name       string
	Execution  Execution
	SubAliases []SubAlias
	Expansions map[string]string // alias-local, shadows GlobalExpansions
}

// SubAlias is a named subcommand of an alias. Sub-aliases may nest.
type SubAlias struct {
	Name       string
	Execution  Execution
	SubAliases []SubAlias
}

// ExpansionEntry is a single @token replacement as written in a config file.
type ExpansionEntry struct {
	Key   string
	Value string
}

// Names returns the names of the alias's direct sub-aliases in declaration order.
func (a Alias) Names() []string {
	names := make([]string, 0, len(a.SubAliases))
	for _, sa := range a.SubAliases {
		names = append(names, sa.Name)
	}
	return names
}

// Combinator tells an executor how to sequence the commands of a plan.
type Combinator int

const (
	// None marks the absence of a direct execution.
	None Combinator = iota
	// Single runs exactly one command.
	Single
	// SequenceAll runs every command in order and stops at the first failure.
	SequenceAll
	// SequenceUntilSuccess runs commands in order and stops at the first success.
	SequenceUntilSuccess
)

func (c Combinator) String() string {
	switch c {
	case Single:
		return "command"
	case SequenceAll:
		return "and"
	case SequenceUntilSuccess:
		return "or"
	default:
		return "none"
	}
}

// separator is how a combinator is rendered between commands.
func (c Combinator) separator() string {
	switch c {
	case SequenceAll:
		return " && "
	case SequenceUntilSuccess:
		return " || "
	default:
		return "; "
	}
}

/*
Execution is the tagged union command | and | or. The zero value
(Combinator None, no commands) means the node has no direct execution.
*/
type Execution struct {
	Combinator Combinator
	Commands   []string
}

// Command returns a Single execution of one command template.
func Command(template string) Execution {
	return Execution{Combinator: Single, Commands: []string{template}}
}

// And returns a SequenceAll execution.
func And(templates ...string) Execution {
	return Execution{Combinator: SequenceAll, Commands: templates}
}

// Or returns a SequenceUntilSuccess execution.
func Or(templates ...string) Execution {
	return Execution{Combinator: SequenceUntilSuccess, Commands: templates}
}

// IsZero reports whether the execution is unset.
func (e Execution) IsZero() bool {
	return e.Combinator == None || len(e.Commands) == 0
}

func (e Execution) String() string {
	return strings.Join(e.Commands, e.Combinator.separator())
}
