package utils

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Colorize wraps text in a conky color escape.
func Colorize(colorize bool, color, text string) string {
	if colorize {
		return fmt.Sprintf("${color %s}%s", color, text)
	}
	return text
}

// Paint renders text in a terminal color; hex is a "#rrggbb" string.
func Paint(hex, text string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Bold(true).Render(text)
}
