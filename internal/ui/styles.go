package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// ------- minimal styling helpers (Lip Gloss) -------
var (
	TitleStyle   = lipgloss.NewStyle().Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	PendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	AccentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	WarnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	MutedStyle   = lipgloss.NewStyle().Faint(true)
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

	SelectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	DoneStyle     = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	HelpStyle     = lipgloss.NewStyle().Faint(true)
)

// OK prints a success line.
func OK(w io.Writer, msg string) {
	fmt.Fprintln(w, SuccessStyle.Render("✔ "+msg))
}

// Fail prints a failure line.
func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, ErrorStyle.Render("✖ "+msg))
}
