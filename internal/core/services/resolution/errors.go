package resolution

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownAlias indicates the alias name is not defined in the configuration.
	ErrUnknownAlias = errors.New("unknown alias")
	// ErrMissingSubcommand indicates the alias needs a sub-alias token but none was given.
	ErrMissingSubcommand = errors.New("missing subcommand")
	// ErrUnknownSubcommand indicates the given token matches no sub-alias.
	ErrUnknownSubcommand = errors.New("unknown subcommand")
	// ErrIndexOutOfRange indicates a {n} placeholder past the supplied arguments.
	ErrIndexOutOfRange = errors.New("parameter index out of range")
	// ErrEmptyDefinition indicates a node with neither a command nor sub-aliases.
	ErrEmptyDefinition = errors.New("alias defines no command")
)

// ResolveError reports a failure to find the definition an invocation refers to.
type ResolveError struct {
	Alias     string
	Path      []string
	Token     string   // offending sub-alias token, if any
	Available []string // sub-alias names that would have matched
	Err       error
}

func (e *ResolveError) Error() string {
	invocation := strings.Join(append([]string{e.Alias}, e.Path...), " ")
	switch {
	case errors.Is(e.Err, ErrUnknownSubcommand):
		return fmt.Sprintf("%s: %v %q (available: %s)", invocation, e.Err, e.Token, strings.Join(e.Available, ", "))
	case errors.Is(e.Err, ErrMissingSubcommand):
		return fmt.Sprintf("%s: %v (available: %s)", invocation, e.Err, strings.Join(e.Available, ", "))
	default:
		return fmt.Sprintf("%s: %v", invocation, e.Err)
	}
}

func (e *ResolveError) Unwrap() error { return e.Err }

// BindError is returned by the parameter binder when a placeholder cannot be satisfied.
type BindError struct {
	Placeholder string
	Index       int // -1 when the index does not fit in an int
	Available   int
}

func (e *BindError) Error() string {
	return fmt.Sprintf("%v: %s needs argument %d, but %d argument(s) were given",
		ErrIndexOutOfRange, e.Placeholder, e.Index, e.Available)
}

// Is makes errors.Is(err, ErrIndexOutOfRange) hold for every BindError.
func (e *BindError) Is(target error) bool { return target == ErrIndexOutOfRange }

// SubstitutionError wraps a binding failure with the command template it occurred in.
type SubstitutionError struct {
	Alias    string
	Path     []string
	Template string
	Err      error
}

func (e *SubstitutionError) Error() string {
	invocation := strings.Join(append([]string{e.Alias}, e.Path...), " ")
	return fmt.Sprintf("%s: substituting %q: %v", invocation, e.Template, e.Err)
}

func (e *SubstitutionError) Unwrap() error { return e.Err }
