package namecheck

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/AntonioJCosta/epithet/internal/core/ports"
)

// validNameRegex allows names that are safe as file names and shell words.
var validNameRegex = regexp.MustCompile(`^[a-zA-Z0-9_][a-zA-Z0-9._+-]*$`)

// Checker implements ports.NameChecker against the directories of $PATH.
type Checker struct {
	binDir   string
	pathDirs []string
}

// Option configures a Checker.
type Option func(*Checker)

// WithPathDirs replaces the directories searched for commands.
func WithPathDirs(dirs ...string) Option {
	return func(c *Checker) { c.pathDirs = dirs }
}

// NewChecker creates a Checker. binDir is the install directory; commands
// found there are entry points, not conflicts.
func NewChecker(binDir string, opts ...Option) ports.NameChecker {
	c := &Checker{
		binDir:   filepath.Clean(binDir),
		pathDirs: filepath.SplitList(os.Getenv("PATH")),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsValidName checks that name is non-empty, not a relative path element and
// only uses letters, digits and . _ + -.
func (c *Checker) IsValidName(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return validNameRegex.MatchString(name)
}

// Shadows returns the first executable named name on PATH outside the install directory.
func (c *Checker) Shadows(name string) (string, bool) {
	for _, dir := range c.pathDirs {
		if dir == "" || filepath.Clean(dir) == c.binDir {
			continue
		}
		if p := filepath.Join(dir, name); isExecutable(p) {
			return p, true
		}
	}
	return "", false
}

// LookPath resolves program like a shell would: paths containing a slash are
// checked directly, bare names are searched in every PATH directory.
func (c *Checker) LookPath(program string) (string, bool) {
	if strings.Contains(program, "/") {
		return program, isExecutable(program)
	}
	for _, dir := range c.pathDirs {
		if dir == "" {
			dir = "."
		}
		if p := filepath.Join(dir, program); isExecutable(p) {
			return p, true
		}
	}
	return "", false
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir() && info.Mode().Perm()&0o111 != 0
}
