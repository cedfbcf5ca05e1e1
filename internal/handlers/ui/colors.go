package ui

import "github.com/fatih/color"

// General Purpose Colors
var (
	InfoColor    = color.New(color.FgCyan).SprintFunc()
	SuccessColor = color.New(color.FgGreen).SprintFunc()
	WarningColor = color.New(color.FgYellow).SprintFunc()
	ErrorColor   = color.New(color.FgRed).SprintFunc()
	CodeColor    = color.New(color.FgWhite).SprintFunc()   // For shell snippets
	DetailColor  = color.New(color.FgHiBlack).SprintFunc() // For less prominent details
)

// Alias Specific Colors
var (
	AliasNameColor = color.New(color.FgYellow).SprintFunc()
)

// Header Colors
var (
	HeaderColor = color.New(color.FgGreen, color.Bold).SprintFunc()
)

// Disable turns colored output off, e.g. for tests or when output is captured.
func Disable() {
	color.NoColor = true
}
