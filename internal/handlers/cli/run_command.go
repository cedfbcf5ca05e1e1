package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newRunCommand creates the 'run' subcommand. Entry points call it.
func newRunCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run ALIAS [ARGS...]",
		Short: "Resolve an alias and execute it.",
		Long: `Resolves ALIAS with ARGS and runs the resulting commands through $SHELL.
Everything after ALIAS is passed to the alias untouched, flags included.
The exit status is the status of the alias.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRunCmd(cmd, args, a)
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func runRunCmd(cmd *cobra.Command, args []string, a *app) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	plan, err := a.services.Resolver.Resolve(cfg, args[0], args[1:])
	if err != nil {
		return err
	}
	a.logger.Debug("alias resolved", "alias", plan.Invocation(), "plan", plan.String())

	result, err := a.services.Runner.Run(cmd.Context(), plan)
	if err != nil {
		return fmt.Errorf("could not run %s: %w", plan.Invocation(), err)
	}
	if !result.Success() {
		return &ExitError{Code: result.ExitCode}
	}
	return nil
}
