package ports

import "github.com/AntonioJCosta/epithet/internal/core/domain/command"

/*
CommandAnalyzer defines the contract for a service that analyzes a command template.
This is a driven port, representing a domain capability.
*/
type CommandAnalyzer interface {
	Analyze(template string) command.AnalyzedCommand
}
