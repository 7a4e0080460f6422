package output

import "github.com/charmbracelet/lipgloss"

// Color palette used across prompts and summaries.
var (
	ColorCyan  = lipgloss.Color("14")
	ColorGreen = lipgloss.Color("82")
	ColorRed   = lipgloss.Color("196")
)

var (
	// StyleNoun styles identifiable nouns such as file paths and project names.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleError styles validation messages shown before a re-prompt.
	StyleError = lipgloss.NewStyle().Foreground(ColorRed)

	// StyleSuccess styles completion lines.
	StyleSuccess = lipgloss.NewStyle().Bold(true).Foreground(ColorGreen)

	// StyleDim styles structural chrome such as option numbers.
	StyleDim = lipgloss.NewStyle().Faint(true)
)

// Checkmark returns a styled completion mark followed by msg.
func Checkmark(msg string) string {
	return StyleSuccess.Render("✔") + " " + msg
}
