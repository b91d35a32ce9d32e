package commands

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/doeshing/autopilot-go/internal/app"
	"github.com/doeshing/autopilot-go/internal/domain"
	"github.com/doeshing/autopilot-go/internal/infrastructure/cli/present"
	"github.com/doeshing/autopilot-go/internal/infrastructure/cli/tui"
)

// NewTUICommand creates the interactive session command.
func NewTUICommand(container *app.Container) *cobra.Command {
	var (
		mode    string
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if mode != "" {
				parsed, err := domain.ParseMode(mode)
				if err != nil {
					return err
				}
				container.Controller.SetMode(parsed)
			}
			return RunTUI(cmd, container, noColor)
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "", "Initial mode: interact|extract (default from config)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	return cmd
}

// RunTUI takes over the terminal until the user quits.
func RunTUI(cmd *cobra.Command, container *app.Container, noColor bool) error {
	if container == nil || container.Controller == nil {
		return errors.New(ErrControllerUnavailable)
	}
	if container.Logger != nil {
		container.Logger.MuteConsole()
	}

	renderer := present.NewRenderer(os.Stdout, colorEnabled(container.Config.UI.Color, noColor, os.Stdout))
	opts := tui.Options{
		Styles: present.NewStyles(renderer),
		Images: present.ImageOptions{
			Inspector: container.Screenshots,
			Exporter:  container.Screenshots,
			ExportDir: container.Config.Screenshots.ExportDir,
		},
	}
	if container.Clipboard != nil && container.Clipboard.Enabled() {
		opts.Clipboard = container.Clipboard
	}
	return tui.Run(cmd.Context(), container.Controller, opts)
}
