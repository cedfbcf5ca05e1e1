package alias

import "strings"

/*
Plan is the result of resolving an invocation: fully substituted commands
tagged with the combinator an executor must honour. A Plan is created per
invocation and discarded after it has been run.
*/
type Plan struct {
	Alias      string
	Path       []string // sub-alias names consumed during dispatch
	Combinator Combinator
	Commands   []string

	// ShellCommands are Commands with every bound argument quoted for
	// "sh -c", so an argument stays one word whatever it contains.
	ShellCommands []string
}

// Executable returns the commands an executor should hand to the shell.
func (p Plan) Executable() []string {
	if len(p.ShellCommands) == len(p.Commands) {
		return p.ShellCommands
	}
	return p.Commands
}

// String renders the plan the way a shell would chain it.
func (p Plan) String() string {
	return strings.Join(p.Commands, p.Combinator.separator())
}

// Invocation returns the alias name followed by the dispatched sub-alias path.
func (p Plan) Invocation() string {
	return strings.Join(append([]string{p.Alias}, p.Path...), " ")
}

// Result is the outcome of running a Plan.
type Result struct {
	ExitCode int
	Executed int // number of commands actually started
}

// Success reports whether the plan as a whole succeeded.
func (r Result) Success() bool {
	return r.ExitCode == 0
}
