package alias

// EntryPoint is the shell-invokable artifact installed for one alias.
type EntryPoint struct {
	Name       string
	Executable string   // absolute path of the epithet binary
	SubAliases []string // listed for the reader of the generated file
}

// Severity ranks a Finding.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// Finding is a diagnostic produced while checking a configuration.
type Finding struct {
	Alias    string
	Path     []string
	Severity Severity
	Message  string
}

// InstallOptions controls how a configuration is materialized.
type InstallOptions struct {
	Executable string // written into every entry point
	Force      bool   // replace files that already exist
	Prune      bool   // remove managed entry points of aliases no longer configured
}

// InstallReport lists what an install did, by alias name. Every list is sorted.
type InstallReport struct {
	Created     []string
	Overwritten []string
	Skipped     []string // already present, not replaced without Force
	Removed     []string
	Invalid     []string          // names unusable as file names
	Shadowed    map[string]string // alias name -> command on PATH it hides
}

// Changed reports whether the install touched the entry point directory.
func (r InstallReport) Changed() bool {
	return len(r.Created)+len(r.Overwritten)+len(r.Removed) > 0
}

// HasErrors reports whether any finding has Error severity.
func HasErrors(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == Error {
			return true
		}
	}
	return false
}
