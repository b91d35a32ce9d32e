package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/doeshing/autopilot-go/internal/app"
	"github.com/doeshing/autopilot-go/internal/domain"
	"github.com/doeshing/autopilot-go/internal/infrastructure/cli/helpers"
	configinfra "github.com/doeshing/autopilot-go/internal/infrastructure/config"
)

// NewInitCommand creates the init command to initialize autopilot configuration.
func NewInitCommand(container *app.Container) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize autopilot configuration",
		Long: `Initialize autopilot configuration.

This command writes ~/.autopilot/config.yaml after asking for the backend
address and the default mode. Afterwards run 'autopilot doctor' to check
that the backend is reachable.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInitWizard(cmd, container, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing config without prompting")

	return cmd
}

// runInitWizard runs the configuration initialization wizard
func runInitWizard(cmd *cobra.Command, container *app.Container, force bool) error {
	loader, err := helpers.GetConfigLoader(container)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	reader := bufio.NewReader(cmd.InOrStdin())
	configPath := loader.Path()

	if !shouldProceedWithInit(out, reader, configPath, force) {
		fmt.Fprintln(out, MsgInitCancelled)
		return nil
	}

	cfg := promptForUserPreferences(out, reader, configinfra.DefaultConfig())

	if err := helpers.SaveConfigWithValidation(loader, cfg); err != nil {
		return err
	}

	displayCompletionInstructions(out, configPath)
	return nil
}

// shouldProceedWithInit checks if we should proceed with initialization
func shouldProceedWithInit(out io.Writer, reader *bufio.Reader, configPath string, force bool) bool {
	if _, err := os.Stat(configPath); err != nil {
		return true
	}
	if force {
		return true
	}
	question := fmt.Sprintf("%s exists. Overwrite?", configPath)
	return helpers.PromptForYesNo(out, reader, question, false)
}

// promptForUserPreferences prompts for user preferences and updates config
func promptForUserPreferences(out io.Writer, reader *bufio.Reader, cfg domain.Config) domain.Config {
	fmt.Fprintln(out, "\nConfiguration preferences:")

	cfg.Backend.BaseURL = helpers.PromptForChoice(out, reader,
		"Automation backend address", cfg.Backend.BaseURL)

	cfg.UI.DefaultMode = helpers.PromptForChoice(out, reader,
		"Default mode (interact/extract)?", cfg.UI.DefaultMode)

	cfg.UI.DefaultView = helpers.PromptForChoice(out, reader,
		"Default view (all/summary/steps/data/raw)?", cfg.UI.DefaultView)

	cfg.Screenshots.ExportDir = helpers.PromptForChoice(out, reader,
		"Screenshot export directory (empty disables export)", cfg.Screenshots.ExportDir)

	return cfg
}

// displayCompletionInstructions displays instructions after successful initialization
func displayCompletionInstructions(out io.Writer, configPath string) {
	fmt.Fprintf(out, "\n✓ Configuration initialized: %s\n\n", configPath)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Verify the backend is reachable:")
	fmt.Fprintln(out, "     autopilot doctor")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "  2. Run a command:")
	fmt.Fprintf(out, "     autopilot interact %q\n", domain.ModeInteract.Example())
	fmt.Fprintf(out, "     autopilot extract %q\n", domain.ModeExtract.Example())
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "  3. Or start the interactive session:")
	fmt.Fprintln(out, "     autopilot tui")
}
