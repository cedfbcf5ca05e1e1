package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/AntonioJCosta/epithet/internal/core/domain/alias"
	"github.com/AntonioJCosta/epithet/internal/handlers/ui"
)

func printLine(w io.Writer, s string) {
	fmt.Fprintln(w, s)
}

func printInfo(w io.Writer, format string, args ...any) {
	printLine(w, ui.InfoColor(fmt.Sprintf(format, args...)))
}

func printError(w io.Writer, err error) {
	printLine(w, ui.ErrorColor("Error: "+err.Error()))
}

func printInstallReport(w io.Writer, dir string, report alias.InstallReport) {
	if !report.Changed() && len(report.Skipped) == 0 && len(report.Invalid) == 0 {
		printInfo(w, "Nothing to install into %s.", dir)
		return
	}

	printGroup(w, ui.SuccessColor, "Installed", report.Created)
	printGroup(w, ui.SuccessColor, "Replaced", report.Overwritten)
	printGroup(w, ui.SuccessColor, "Removed", report.Removed)
	printGroup(w, ui.DetailColor, "Already present (use --force to replace)", report.Skipped)
	printGroup(w, ui.ErrorColor, "Not installable as a command name", report.Invalid)

	shadowed := make([]string, 0, len(report.Shadowed))
	for name := range report.Shadowed {
		shadowed = append(shadowed, name)
	}
	sort.Strings(shadowed)
	for _, name := range shadowed {
		printLine(w, ui.WarningColor(fmt.Sprintf("Warning: '%s' has the same name as %s", name, report.Shadowed[name])))
	}
}

func printGroup(w io.Writer, color func(a ...interface{}) string, title string, names []string) {
	if len(names) == 0 {
		return
	}
	printLine(w, color(fmt.Sprintf("%s (%d): %s", title, len(names), strings.Join(names, ", "))))
}

// printPathHint reminds the user to put dir on PATH when it is missing there.
func printPathHint(w io.Writer, dir string) {
	for _, p := range filepath.SplitList(os.Getenv("PATH")) {
		if filepath.Clean(p) == filepath.Clean(dir) {
			return
		}
	}
	printLine(w, ui.WarningColor(fmt.Sprintf("Note: %s is not on your PATH. Add it to call aliases directly:", dir)))
	printLine(w, ui.CodeColor(fmt.Sprintf("  export PATH=\"%s:$PATH\"", dir)))
}
