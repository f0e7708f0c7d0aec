package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

// Success prints a success message with checkmark
func Success(message string) {
	fmt.Println(successStyle.Render("✓ " + message))
}

// Warning prints a warning message
func Warning(message string) {
	fmt.Println(warningStyle.Render("⚠ " + message))
}

// Error prints an error message to stderr
func Error(message string) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("✗ "+message))
}

// Info prints an info message
func Info(message string) {
	fmt.Println("ℹ " + message)
}

// Muted prints a de-emphasized message
func Muted(message string) {
	fmt.Println(mutedStyle.Render(message))
}
