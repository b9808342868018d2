package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/btl/internal/ui/style"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Accent).
			Foreground(lipgloss.Color("#000000"))

	commandStyle = lipgloss.NewStyle().
			Foreground(style.Muted).
			PaddingLeft(1)

	runningStyle = lipgloss.NewStyle().Foreground(style.Yellow)
	successStyle = style.Success
	failureStyle = style.Failure
	hintStyle    = style.Dim
)
