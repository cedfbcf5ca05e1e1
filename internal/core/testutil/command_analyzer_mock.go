package testutil

import (
	"strings"

	"github.com/AntonioJCosta/epithet/internal/core/domain/command"
	"github.com/AntonioJCosta/epithet/internal/core/ports"
)

var _ ports.CommandAnalyzer = (*MockCommandAnalyzer)(nil)

// MockCommandAnalyzer is a mock implementation of ports.CommandAnalyzer.
type MockCommandAnalyzer struct {
	// AnalyzeFunc takes precedence over Results when set.
	AnalyzeFunc func(template string) command.AnalyzedCommand
	// Results holds canned analyses by template.
	Results map[string]command.AnalyzedCommand
	// AnalyzeCalls records every template passed to Analyze.
	AnalyzeCalls []string
}

// Analyze returns the canned result for template. Unknown templates are
// reported as a plain command named after their first word.
func (m *MockCommandAnalyzer) Analyze(template string) command.AnalyzedCommand {
	m.AnalyzeCalls = append(m.AnalyzeCalls, template)
	if m.AnalyzeFunc != nil {
		return m.AnalyzeFunc(template)
	}
	if result, ok := m.Results[template]; ok {
		return result
	}

	analyzed := command.AnalyzedCommand{Original: template}
	if fields := strings.Fields(template); len(fields) > 0 {
		analyzed.CommandName = fields[0]
		analyzed.Args = fields[1:]
	}
	return analyzed
}
