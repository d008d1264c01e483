package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	verboseMode bool
	out         io.Writer = os.Stdout
	styled                = isTerminal(os.Stdout)
)

// SetVerbose enables or disables verbose output for debugging.
// This should be called by the CLI when the --verbose flag is set.
func SetVerbose(v bool) {
	verboseMode = v
}

// SetOutput redirects all output to w. Styling is enabled only when w is a
// terminal. Passing nil restores os.Stdout.
func SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	out = w
	styled = isTerminal(w)
}

// Success prints a success message with 🔥 emoji and green color.
// Use this for completed operations.
//
// Example:
//
//	output.Success("Uber Clone frontend scaffold complete!")
func Success(msg string) {
	emit(successStyle, "🔥 ", msg)
}

// Error prints an error message with ❌ emoji and red color.
// Use this for failures that need user attention.
//
// Example:
//
//	output.Error("Failed to write src/App.js: permission denied")
func Error(msg string) {
	emit(errorStyle, "❌ ", msg)
}

// Info prints an informational message with ℹ️ emoji and cyan color.
// Use this for status updates or explanations.
func Info(msg string) {
	emit(infoStyle, "ℹ️  ", msg)
}

// Step prints an indented step message in gray.
// Use this for sub-items of a preceding Info or Error line.
//
// Example:
//
//	output.Info("2 file(s) were written before the failure:")
//	output.Step("uber-clone/package.json")
func Step(msg string) {
	emit(stepStyle, "", "   "+msg)
}

// Created reports a file written to disk as "Created: <path>". The line is
// never decorated.
func Created(path string) {
	fmt.Fprintln(out, "Created: "+path)
}

// Verbose prints a debug message with 🔍 emoji only if verbose mode is enabled.
// Use this for detailed debugging information.
func Verbose(msg string) {
	if verboseMode {
		emit(stepStyle, "🔍 ", msg)
	}
}

// emit writes one line, decorated only when the destination is a terminal.
func emit(style lipgloss.Style, icon, msg string) {
	if !styled {
		fmt.Fprintln(out, msg)
		return
	}
	fmt.Fprintln(out, style.Render(icon+msg))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
