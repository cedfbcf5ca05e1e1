package cli

import (
	"sort"
	"strings"

	"github.com/AntonioJCosta/epithet/internal/core/domain/alias"
	"github.com/AntonioJCosta/epithet/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// newListCommand creates the 'list' subcommand.
func newListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured aliases and their sub-aliases.",
		Long:  `Displays every alias of the configuration file, one row per runnable path, and whether it is installed.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListCmd(cmd, a)
		},
	}
}

// listRow is one runnable path of an alias.
type listRow struct {
	invocation string
	kind       string
	commands   string
}

func runListCmd(cmd *cobra.Command, a *app) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(cfg.Aliases) == 0 {
		printInfo(out, "No aliases configured in %s.", a.settings.ConfigPath)
		return nil
	}

	names := make([]string, 0, len(cfg.Aliases))
	for name := range cfg.Aliases {
		names = append(names, name)
	}
	sort.Strings(names)

	printLine(out, ui.HeaderColor("Aliases in "+a.settings.ConfigPath+":"))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Alias", "Runs", "Command", "Installed"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, name := range names {
		installed := ""
		if managed, err := a.services.Store.IsManaged(name); err == nil && managed {
			installed = "yes"
		}
		for i, row := range aliasRows(cfg.Aliases[name]) {
			mark := installed
			if i > 0 {
				mark = ""
			}
			table.Append([]string{row.invocation, row.kind, row.commands, mark})
		}
	}
	table.Render()
	return nil
}

// aliasRows flattens an alias into one row per node, depth first.
func aliasRows(def alias.Alias) []listRow {
	var rows []listRow
	var walk func(path []string, execution alias.Execution, subAliases []alias.SubAlias)
	walk = func(path []string, execution alias.Execution, subAliases []alias.SubAlias) {
		invocation := strings.Join(path, " ")
		switch {
		case !execution.IsZero():
			rows = append(rows, listRow{invocation: invocation, kind: execution.Combinator.String(), commands: execution.String()})
		case len(path) == 1:
			rows = append(rows, listRow{invocation: invocation, kind: "sub-aliases", commands: ""})
		}
		for _, sa := range subAliases {
			walk(append(append([]string{}, path...), sa.Name), sa.Execution, sa.SubAliases)
		}
	}
	walk([]string{def.Name}, def.Execution, def.SubAliases)
	return rows
}
