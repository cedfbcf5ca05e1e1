package ports

// NameChecker decides whether alias names can be installed as commands.
type NameChecker interface {
	// IsValidName reports whether name is usable as an entry point file name.
	IsValidName(name string) bool

	// Shadows returns the path of an existing command named name that an
	// installed entry point would hide or be hidden by.
	Shadows(name string) (path string, found bool)

	// LookPath reports where program resolves on PATH.
	LookPath(program string) (path string, found bool)
}
