package cli

import (
	"github.com/AntonioJCosta/epithet/internal/core/domain/alias"
	"github.com/spf13/cobra"
)

// newInstallCommand creates the 'install' subcommand.
func newInstallCommand(a *app) *cobra.Command {
	var force, prune, watch bool

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install every alias as a command in the bin directory.",
		Long: `Writes one entry point per alias into the bin directory (default ~/.local/epithet/bin).
Add that directory to your PATH to call aliases like any other command.
Existing files are kept unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := alias.InstallOptions{
				Executable: a.settings.Executable,
				Force:      force,
				Prune:      prune,
			}
			if watch {
				return runInstallWatch(cmd, a, opts)
			}
			return runInstallCmd(cmd, a, opts)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "replace files that already exist")
	cmd.Flags().BoolVar(&prune, "prune", false, "remove installed aliases that are no longer configured")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "keep running and reinstall whenever the config file changes")
	cmd.Flags().Bool("symlink", false, "link entry points to the epithet binary instead of writing scripts (env EPITHET_SYMLINK)")
	_ = a.v.BindPFlag("symlink", cmd.Flags().Lookup("symlink"))

	return cmd
}

func runInstallCmd(cmd *cobra.Command, a *app, opts alias.InstallOptions) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	report, err := a.services.Installer.Install(cfg, opts)
	printInstallReport(cmd.OutOrStdout(), a.services.Store.Dir(), report)
	if err != nil {
		return err
	}
	printPathHint(cmd.OutOrStdout(), a.services.Store.Dir())
	return nil
}

func runInstallWatch(cmd *cobra.Command, a *app, opts alias.InstallOptions) error {
	out := cmd.OutOrStdout()
	printInfo(out, "Watching %s for changes. Press Ctrl-C to stop.", a.settings.ConfigPath)

	return a.services.Installer.Watch(cmd.Context(), a.settings.ConfigPath, opts, func(report alias.InstallReport, err error) {
		if err != nil {
			printError(cmd.ErrOrStderr(), err)
			return
		}
		printInstallReport(out, a.services.Store.Dir(), report)
	})
}
