package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	pink  = lipgloss.Color("#ff7eb6")
	green = lipgloss.Color("#42be65")
	blue  = lipgloss.Color("#78a9ff")
	amber = lipgloss.Color("#ee5396")
	gray  = lipgloss.Color("#525252")
	cyan  = lipgloss.Color("#08bdba")
)

// Styles wraps the lipgloss styles for the application.
type Styles struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Muted   lipgloss.Style
	Path    lipgloss.Style
}

// NewStyles returns the default style set.
func NewStyles() *Styles {
	return &Styles{
		Success: lipgloss.NewStyle().Foreground(green),
		Error:   lipgloss.NewStyle().Foreground(pink),
		Warning: lipgloss.NewStyle().Foreground(amber),
		Info:    lipgloss.NewStyle().Foreground(blue),
		Muted:   lipgloss.NewStyle().Foreground(gray),
		Path:    lipgloss.NewStyle().Foreground(cyan),
	}
}

// Printer provides helper methods for printing formatted output.
type Printer struct {
	Styles *Styles
}

// NewPrinter creates a new Printer with default styles.
func NewPrinter() *Printer {
	return &Printer{Styles: NewStyles()}
}

// PrintSuccess prints a success message with a checkmark.
func (p *Printer) PrintSuccess(msg string) {
	fmt.Printf("%s %s\n", p.Styles.Success.Render("✔"), msg)
}

// PrintError prints an error message to stderr with a cross.
func (p *Printer) PrintError(msg string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", p.Styles.Error.Render("✘"), msg)
}

// PrintWarning prints a warning message with an exclamation.
func (p *Printer) PrintWarning(msg string) {
	fmt.Printf("%s %s\n", p.Styles.Warning.Render("⚠"), msg)
}

// PrintInfo prints an info message with an 'i' symbol.
func (p *Printer) PrintInfo(msg string) {
	fmt.Printf("%s %s\n", p.Styles.Info.Render("ℹ"), msg)
}

// PrintListItem prints a muted label with a value.
func (p *Printer) PrintListItem(label, value string) {
	fmt.Printf("%s: %s\n", p.Styles.Muted.Render(label), value)
}

// FormatPath formats a route or file path.
func (p *Printer) FormatPath(path string) string {
	return p.Styles.Path.Render(path)
}
