package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AntonioJCosta/epithet/internal/core/domain/alias"
	"github.com/AntonioJCosta/epithet/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// newCheckCommand creates the 'check' subcommand.
func newCheckCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the configuration and report likely mistakes.",
		Long: `Loads the configuration and checks every alias: names that cannot be
installed, sub-aliases that can never be reached, unknown @expansions and
programs missing from PATH. Exits with status 1 when errors are found.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheckCmd(cmd, a)
		},
	}
}

func runCheckCmd(cmd *cobra.Command, a *app) error {
	out := cmd.OutOrStdout()

	cfg, err := a.loadConfig()
	if err != nil {
		for _, e := range flattenErrors(err) {
			printLine(out, ui.ErrorColor("error: ")+e.Error())
		}
		return &ExitError{Code: 1}
	}

	findings := a.services.Checker.Check(cfg)
	counts := map[alias.Severity]int{}
	for _, f := range findings {
		counts[f.Severity]++
		printLine(out, fmt.Sprintf("%s %s: %s", severityLabel(f.Severity), findingSubject(f), f.Message))
	}

	summary := fmt.Sprintf("%d alias(es) checked: %d error(s), %d warning(s)", len(cfg.Aliases), counts[alias.Error], counts[alias.Warning])
	if alias.HasErrors(findings) {
		printLine(out, ui.ErrorColor(summary))
		return &ExitError{Code: 1}
	}
	printLine(out, ui.SuccessColor(summary))
	return nil
}

func severityLabel(s alias.Severity) string {
	label := s.String() + ":"
	switch s {
	case alias.Error:
		return ui.ErrorColor(label)
	case alias.Warning:
		return ui.WarningColor(label)
	default:
		return ui.DetailColor(label)
	}
}

func findingSubject(f alias.Finding) string {
	return ui.AliasNameColor(strings.Join(append([]string{f.Alias}, f.Path...), " "))
}

// flattenErrors splits joined errors so each one is printed on its own line.
func flattenErrors(err error) []error {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		return joined.Unwrap()
	}
	return []error{err}
}
