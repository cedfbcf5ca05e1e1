package commandanalysis

import (
	"strings"

	"github.com/AntonioJCosta/epithet/internal/core/domain/command"
	"github.com/AntonioJCosta/epithet/internal/core/ports"
	"github.com/anmitsu/go-shlex"
)

// BasicAnalyzer provides a simple implementation of command analysis.
type BasicAnalyzer struct{}

// NewBasicAnalyzer creates a new BasicAnalyzer.
func NewBasicAnalyzer() ports.CommandAnalyzer {
	return &BasicAnalyzer{}
}

// Analyze breaks a command template into its components without binding it.
func (a *BasicAnalyzer) Analyze(template string) command.AnalyzedCommand {
	analyzed := command.AnalyzedCommand{
		Original:     template,
		Args:         []string{},
		Placeholders: []int{},
		Expansions:   []string{},
	}
	if strings.TrimSpace(template) == "" {
		return analyzed
	}

	words, err := shlex.Split(template, true)
	if err != nil {
		words = strings.Fields(template)
		analyzed.Unbalanced = true
	}

	words = skipAssignments(words)
	if len(words) > 0 {
		if !isComputed(words[0]) {
			analyzed.CommandName = words[0]
		}
		analyzed.Args = append(analyzed.Args, words[1:]...)
	}

	analyzed.IsComplex = a.determineComplexity(template)
	analyzed.Placeholders, analyzed.RequiredArgs = placeholders(template)
	analyzed.Expansions = expansionTokens(template)

	return analyzed
}
