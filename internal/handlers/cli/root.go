package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/AntonioJCosta/epithet/internal/core/ports"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Settings are the resolved flag, environment and default values.
type Settings struct {
	ConfigPath string
	BinDir     string
	Executable string
	Symlink    bool
	Verbose    bool
}

// Services bundles the ports the commands work with.
type Services struct {
	Loader    ports.ConfigLoader
	Resolver  ports.AliasResolver
	Runner    ports.PlanRunner
	Installer ports.Installer
	Checker   ports.ConfigChecker
	Store     ports.EntryPointStore
}

// ServiceFactory builds the services once flags have been parsed.
type ServiceFactory func(settings Settings, logger *slog.Logger) *Services

// ExitError carries a process exit status out of a command.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// app is the state shared by all subcommands of one invocation.
type app struct {
	v          *viper.Viper
	build      ServiceFactory
	executable string
	settings   Settings
	logger     *slog.Logger
	services   *Services
}

// NewRootCommand creates the epithet command tree. executable is the path
// written into entry points; build is called before any subcommand runs.
func NewRootCommand(version, executable string, build ServiceFactory) *cobra.Command {
	if build == nil {
		panic("service factory cannot be nil")
	}

	a := &app{v: viper.New(), build: build, executable: executable}
	a.v.SetEnvPrefix("EPITHET")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	a.v.SetDefault("config", defaultConfigPath())
	a.v.SetDefault("bin-dir", defaultBinDir())

	rootCmd := &cobra.Command{
		Use:   "epithet",
		Short: "epithet turns declarative aliases into real commands.",
		Long: `epithet reads aliases with subcommands, parameters and @expansions from
a TOML or YAML file and installs each one as an invokable command.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "alias configuration file (env EPITHET_CONFIG)")
	rootCmd.PersistentFlags().String("bin-dir", "", "directory entry points are installed to (env EPITHET_BIN_DIR)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log what epithet is doing to stderr")
	for _, name := range []string{"config", "bin-dir", "verbose"} {
		_ = a.v.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}

	rootCmd.AddCommand(newRunCommand(a))
	rootCmd.AddCommand(newLookupCommand(a))
	rootCmd.AddCommand(newInstallCommand(a))
	rootCmd.AddCommand(newListCommand(a))
	rootCmd.AddCommand(newCheckCommand(a))

	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	configPath, err := expandHome(a.v.GetString("config"))
	if err != nil {
		return err
	}
	binDir, err := expandHome(a.v.GetString("bin-dir"))
	if err != nil {
		return err
	}

	a.settings = Settings{
		ConfigPath: configPath,
		BinDir:     binDir,
		Executable: a.executable,
		Symlink:    a.v.GetBool("symlink"),
		Verbose:    a.v.GetBool("verbose"),
	}
	a.logger = newLogger(cmd.ErrOrStderr(), a.settings.Verbose)
	a.logger.Debug("settings resolved",
		"config", a.settings.ConfigPath,
		"bin_dir", a.settings.BinDir,
		"symlink", a.settings.Symlink)

	a.services = a.build(a.settings, a.logger)
	if a.services == nil {
		return fmt.Errorf("service factory returned no services")
	}
	return nil
}
