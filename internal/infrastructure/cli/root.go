package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/autopilot-go/internal/app"
	"github.com/doeshing/autopilot-go/internal/domain"
	"github.com/doeshing/autopilot-go/internal/infrastructure/cli/commands"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose    bool
	ConfigPath string
}

// skipContainer lists commands that run without loading configuration.
var skipContainer = map[string]bool{"version": true, "help": true, "completion": true}

// NewRootCmd wires the cobra root command. The container is built once flags
// are parsed so --config and --debug take effect.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container := new(app.Container)

	var (
		runFlags commands.RunFlags
		mode     string
		debug    bool
	)

	root := &cobra.Command{
		Use:   "autopilot [command]",
		Short: "autopilot - natural-language browser automation client",
		Long: `autopilot sends natural-language commands to a browser automation backend
and shows what happened: a status badge, a summary, each step taken or the
extracted data, and the raw JSON payload.

Run without arguments on a terminal to start the interactive session.`,
		Args: cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if skipContainer[cmd.Name()] {
				return nil
			}
			built, err := app.BuildContainer(cmd.Context(), app.Options{
				Verbose:    opts.Verbose || debug,
				ConfigPath: opts.ConfigPath,
				Console:    cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			*container = *built
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			_ = container.Close()
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				if app.StdoutIsTerminal() {
					return commands.RunTUI(cmd, container, runFlags.NoColor)
				}
				return cmd.Help()
			}
			selected := container.Controller.Snapshot().ActiveMode
			if mode != "" {
				parsed, err := domain.ParseMode(mode)
				if err != nil {
					return err
				}
				selected = parsed
			}
			return commands.RunSubmission(cmd, container, selected, strings.Join(args, " "), runFlags)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.ConfigPath, "config", opts.ConfigPath, "Config file (default ~/.autopilot/config.yaml)")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "Enable verbose logging on stderr")
	root.Flags().StringVarP(&mode, "mode", "m", "", "Mode for a bare command: interact|extract (default from config)")
	commands.BindRunFlags(root, &runFlags)

	root.AddCommand(commands.NewModeCommand(container, domain.ModeInteract))
	root.AddCommand(commands.NewModeCommand(container, domain.ModeExtract))
	root.AddCommand(commands.NewTUICommand(container))
	root.AddCommand(commands.NewInitCommand(container))
	root.AddCommand(commands.NewConfigCommand(container))
	root.AddCommand(commands.NewDoctorCommand(container))
	root.AddCommand(commands.NewVersionCommand())
	root.SetContext(ctx)
	return root, nil
}
