package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/doeshing/autopilot-go/internal/app"
	"github.com/doeshing/autopilot-go/internal/application/render"
	"github.com/doeshing/autopilot-go/internal/domain"
	"github.com/doeshing/autopilot-go/internal/infrastructure/cli/present"
)

// RunFlags are the presentation flags shared by every submitting command.
type RunFlags struct {
	View          string
	JSON          bool
	NoColor       bool
	ScreenshotDir string
	Timeout       time.Duration
	Copy          bool
}

// BindRunFlags registers the shared flags on cmd.
func BindRunFlags(cmd *cobra.Command, flags *RunFlags) {
	cmd.Flags().StringVar(&flags.View, "view", "", "Result view to print: all|summary|steps|data|raw (default from config)")
	cmd.Flags().BoolVar(&flags.JSON, "json", false, "Print the raw backend payload only")
	cmd.Flags().BoolVar(&flags.NoColor, "no-color", false, "Disable colored output")
	cmd.Flags().StringVar(&flags.ScreenshotDir, "screenshot-dir", "", "Write decoded screenshots to this directory")
	cmd.Flags().BoolVarP(&flags.Copy, "copy", "c", false, "Copy the raw JSON payload to the clipboard")
	cmd.Flags().DurationVar(&flags.Timeout, "timeout", 0, "Abort the request after this long (0 waits for the backend)")
}

// NewModeCommand creates the interact or extract command.
func NewModeCommand(container *app.Container, mode domain.Mode) *cobra.Command {
	var flags RunFlags

	cmd := &cobra.Command{
		Use:     string(mode) + " <command>",
		Short:   mode.DisplayName() + ": send a natural-language command to /" + string(mode),
		Example: fmt.Sprintf("  autopilot %s %q", mode, mode.Example()),
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunSubmission(cmd, container, mode, strings.Join(args, " "), flags)
		},
	}
	BindRunFlags(cmd, &flags)
	return cmd
}

// ReportedError marks a failure that was already shown to the user.
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string { return e.Err.Error() }
func (e *ReportedError) Unwrap() error { return e.Err }

// IsReported reports whether err was already printed.
func IsReported(err error) bool {
	var reported *ReportedError
	return errors.As(err, &reported)
}

// RunSubmission submits command under mode and prints the result.
func RunSubmission(cmd *cobra.Command, container *app.Container, mode domain.Mode, command string, flags RunFlags) error {
	if container == nil || container.Controller == nil {
		return errors.New(ErrControllerUnavailable)
	}
	if strings.TrimSpace(command) == "" {
		return domain.ErrEmptyCommand
	}

	tabs, err := selectTabs(flags.View, container.Config.UI.DefaultView)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	styles := present.NewStyles(present.NewRenderer(out, colorEnabled(container.Config.UI.Color, flags.NoColor, out)))
	errStyles := present.NewStyles(present.NewRenderer(errOut, colorEnabled(container.Config.UI.Color, flags.NoColor, errOut)))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if flags.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, flags.Timeout)
		defer cancel()
	}

	var spinner *present.Spinner
	if !flags.JSON && isTerminal(errOut) {
		spinner = present.NewSpinner(errOut, "Processing...")
		spinner.Start()
	}
	submitErr := container.Controller.Submit(ctx, command, mode)
	if spinner != nil {
		spinner.Stop()
	}

	state := container.Controller.Snapshot()
	if submitErr != nil {
		if rejected(submitErr) {
			return submitErr
		}
		present.WriteError(errOut, errStyles, state.LastError)
		return &ReportedError{Err: submitErr}
	}
	if state.LastResult == nil {
		return nil
	}

	view := render.Render(*state.LastResult, state.ResultMode)
	if flags.Copy {
		copyRaw(errOut, container, view.Raw)
	}
	if flags.JSON {
		_, err := fmt.Fprintln(out, view.Raw)
		return err
	}

	exportDir := flags.ScreenshotDir
	if exportDir == "" {
		exportDir = container.Config.Screenshots.ExportDir
	}
	opts := present.Options{
		Tabs: tabs,
		Images: present.ImageOptions{
			Inspector: container.Screenshots,
			Exporter:  container.Screenshots,
			ExportDir: exportDir,
		},
	}
	return present.WriteView(out, styles, view, opts)
}

func copyRaw(errOut io.Writer, container *app.Container, raw string) {
	if container.Clipboard == nil {
		return
	}
	if err := container.Clipboard.Copy(raw); err != nil {
		fmt.Fprintf(errOut, "Warning: %v\n", err)
	}
}

// rejected reports errors raised before any request was sent.
func rejected(err error) bool {
	return errors.Is(err, domain.ErrEmptyCommand) ||
		errors.Is(err, domain.ErrUnknownMode) ||
		errors.Is(err, domain.ErrSubmissionInFlight)
}

func selectTabs(flagValue, configValue string) ([]render.TabID, error) {
	value := strings.TrimSpace(flagValue)
	if value == "" {
		value = strings.TrimSpace(configValue)
	}
	if value == "" || strings.EqualFold(value, viewAll) {
		return nil, nil
	}
	tab, err := render.ParseTab(value)
	if err != nil {
		return nil, err
	}
	return []render.TabID{tab}, nil
}

func colorEnabled(preference string, noColor bool, w io.Writer) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	switch strings.ToLower(preference) {
	case domain.ColorAlways:
		return true
	case domain.ColorNever:
		return false
	default:
		return isTerminal(w)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
