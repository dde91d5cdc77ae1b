// Package ui renders progress and diagnostics on the error stream.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	errorLabel   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	warningLabel = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	successLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

func label(w io.Writer, style lipgloss.Style, text string) string {
	if !IsTerminal(w) {
		return text
	}
	return style.Render(text)
}

// Errorf writes "Error: <msg>".
func Errorf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", label(w, errorLabel, "Error:"), fmt.Sprintf(format, args...))
}

// Warnf writes "Warning: <msg>".
func Warnf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", label(w, warningLabel, "Warning:"), fmt.Sprintf(format, args...))
}

// Successf writes msg highlighted on terminals.
func Successf(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, label(w, successLabel, fmt.Sprintf(format, args...)))
}
