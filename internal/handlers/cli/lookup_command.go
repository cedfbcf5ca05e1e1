package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newLookupCommand creates the 'lookup' subcommand.
func newLookupCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup ALIAS [ARGS...]",
		Short: "Print what an alias would run, without running it.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			plan, err := a.services.Resolver.Resolve(cfg, args[0], args[1:])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), plan.String())
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}
