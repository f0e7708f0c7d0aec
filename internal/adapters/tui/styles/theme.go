package styles

import "github.com/charmbracelet/lipgloss"

// Palette shared by the wizard views. Obsidian's own accent is violet, so
// the wizard leans the same way.
var (
	accent  = lipgloss.Color("#8B5CF6")
	confirm = lipgloss.Color("#22C55E")
	dim     = lipgloss.Color("#71717A")
	alert   = lipgloss.Color("#DC2626")
)

var (
	App = lipgloss.NewStyle().Padding(1, 2)

	Title    = lipgloss.NewStyle().Foreground(accent).Bold(true).MarginBottom(1)
	Subtitle = lipgloss.NewStyle().Foreground(dim).Italic(true)
)

// Form field styles. The focused variants take the accent color so the
// active element reads without a cursor.
var (
	InputLabel = lipgloss.NewStyle().Foreground(confirm).Bold(true)

	InputField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(dim).
			Padding(0, 1)

	InputFocused = InputField.BorderForeground(accent)

	ToggleFocused = lipgloss.NewStyle().Foreground(accent).Bold(true)
	ToggleBlurred = lipgloss.NewStyle().Foreground(dim)
)

var (
	HelpKey  = lipgloss.NewStyle().Foreground(accent).Bold(true)
	HelpDesc = lipgloss.NewStyle().Foreground(dim)

	ErrorMsg = lipgloss.NewStyle().Foreground(alert).Bold(true)
)
