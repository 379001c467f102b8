package styles

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Symbols - Unicode with ASCII fallbacks
const (
	SymbolSuccess  = "✓"
	SymbolError    = "✗"
	SymbolWarning  = "⚠"
	SymbolSortAsc  = "▲"
	SymbolSortDesc = "▼"
)

// NoColor checks if colors should be disabled
func NoColor() bool {
	return os.Getenv("NO_COLOR") != "" || os.Getenv("GRIDVIEW_NO_COLOR") != ""
}

// IsAccessible checks if accessibility mode is enabled
// When enabled: no spinner animation, simplified output
func IsAccessible() bool {
	return os.Getenv("GRIDVIEW_ACCESSIBLE") == "1" || os.Getenv("GRIDVIEW_ACCESSIBLE") == "true"
}

// Base text styles
var (
	Bold = lipgloss.NewStyle().Bold(true)
	Dim  = lipgloss.NewStyle().Foreground(Muted)
)

// Semantic styles - use these instead of raw colors
var (
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Error)
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)
	InfoStyle    = lipgloss.NewStyle().Foreground(Info)
	MutedStyle   = lipgloss.NewStyle().Foreground(Muted)

	// Table display
	HeaderStyle     = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	SortHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorSortActive)
	MatchStyle      = lipgloss.NewStyle().Foreground(ColorMatch)
	SelectedStyle   = lipgloss.NewStyle().Background(BgHighlight).Foreground(TextPrimary)
	SelectedCell    = lipgloss.NewStyle().Background(Accent).Foreground(lipgloss.Color("#000000"))
	PageInfoStyle   = lipgloss.NewStyle().Foreground(ColorPageInfo)

	// Help bar
	HelpKey   = lipgloss.NewStyle().Foreground(Accent)
	HelpValue = lipgloss.NewStyle().Foreground(Muted)
)

// render applies a style if colors are enabled
func render(s lipgloss.Style, text string) string {
	if NoColor() {
		return text
	}
	return s.Render(text)
}

// ═══════════════════════════════════════════════════════════════════════════
// Message formatters - structured output
// ═══════════════════════════════════════════════════════════════════════════

// SuccessMsg formats a success message with checkmark
func SuccessMsg(msg string) string {
	symbol := SymbolSuccess
	if NoColor() {
		symbol = "+"
	}
	return fmt.Sprintf("%s %s", render(SuccessStyle, symbol), msg)
}

// ErrorMsg formats an error message
func ErrorMsg(title string) string {
	return render(ErrorStyle, "Error: "+title)
}

// WarningMsg formats a warning message
func WarningMsg(msg string) string {
	symbol := SymbolWarning
	if NoColor() {
		symbol = "!"
	}
	return fmt.Sprintf("%s %s", render(WarningStyle, symbol), msg)
}

// InfoMsg formats an info message
func InfoMsg(msg string) string {
	return render(InfoStyle, msg)
}

// MutedMsg formats muted/secondary text
func MutedMsg(msg string) string {
	return render(MutedStyle, msg)
}

// SortIndicator returns the header suffix for a sorted column.
func SortIndicator(descending bool) string {
	if descending {
		return SymbolSortDesc
	}
	return SymbolSortAsc
}

// HelpLine formats a help line (key description)
func HelpLine(key, description string) string {
	return fmt.Sprintf("  %s %s", render(HelpKey, key), render(MutedStyle, description))
}

// Indent returns text indented by n spaces
func Indent(text string, n int) string {
	prefix := strings.Repeat(" ", n)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}

// Simple string coloring helpers
func Mute(s string) string        { return render(MutedStyle, s) }
func SuccessText(s string) string { return render(SuccessStyle, s) }
func WarningText(s string) string { return render(WarningStyle, s) }
func ErrorText(s string) string   { return render(ErrorStyle, s) }

// Printf-style color functions
func Mutef(format string, a ...any) string    { return Mute(fmt.Sprintf(format, a...)) }
func Boldf(format string, a ...any) string    { return Bold.Render(fmt.Sprintf(format, a...)) }
func Errorf(format string, a ...any) string   { return ErrorText(fmt.Sprintf(format, a...)) }
func Successf(format string, a ...any) string { return SuccessText(fmt.Sprintf(format, a...)) }
