package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/doeshing/autopilot-go/internal/application/submission"
)

// Run starts the session on the terminal and blocks until the user quits.
func Run(ctx context.Context, controller *submission.Controller, opts Options) error {
	program := tea.NewProgram(New(ctx, controller, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}
