package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/doeshing/autopilot-go/internal/application/doctor"
	"github.com/doeshing/autopilot-go/internal/application/submission"
	"github.com/doeshing/autopilot-go/internal/domain"
	"github.com/doeshing/autopilot-go/internal/infrastructure/backend"
	"github.com/doeshing/autopilot-go/internal/infrastructure/clipboard"
	"github.com/doeshing/autopilot-go/internal/infrastructure/config"
	"github.com/doeshing/autopilot-go/internal/infrastructure/screenshot"
	"github.com/doeshing/autopilot-go/internal/pkg/logger"
	"github.com/doeshing/autopilot-go/internal/ports"
)

// Options configures BuildContainer.
type Options struct {
	Verbose    bool
	ConfigPath string
	// Console receives verbose log lines. Nil keeps logs in the file only.
	Console io.Writer
}

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config         domain.Config
	ConfigProvider ports.ConfigProvider
	ConfigLoader   *config.FileLoader
	Logger         *logger.ZapLogger
	Backend        *backend.Client
	Controller     *submission.Controller
	Screenshots    *screenshot.Inspector
	Clipboard      *clipboard.Clipboard
	DoctorService  *doctor.Service
	// EnvFiles lists the .env files that were loaded.
	EnvFiles []string
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, opts Options) (*Container, error) {
	envFiles, err := config.LoadDotEnv()
	if err != nil {
		return nil, err
	}

	cfgLoader := config.NewFileLoader(opts.ConfigPath)
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", cfgLoader.Path(), err)
	}

	log, err := logger.New(logger.Options{Settings: cfg.Logging, Verbose: opts.Verbose, Console: opts.Console})
	if err != nil {
		return nil, err
	}
	log.Debug("configuration loaded", map[string]interface{}{
		"path":      cfgLoader.Path(),
		"env_files": envFiles,
		"backend":   cfg.Backend.BaseURL,
	})

	client := backend.NewClient(cfg.Backend.BaseURL,
		backend.WithHeaders(cfg.Backend.Headers),
		backend.WithLogger(log),
	)

	mode, err := domain.ParseMode(cfg.UI.DefaultMode)
	if err != nil {
		log.Warn("falling back to interact mode", map[string]interface{}{"default_mode": cfg.UI.DefaultMode})
		mode = domain.ModeInteract
	}

	doctorService := &doctor.Service{
		ConfigProvider: cfgLoader,
		Backend:        client,
		Terminal:       StdoutIsTerminal,
	}

	return &Container{
		Config:         cfg,
		ConfigProvider: cfgLoader,
		ConfigLoader:   cfgLoader,
		Logger:         log,
		Backend:        client,
		Controller:     submission.New(client, log, mode),
		Screenshots:    screenshot.NewInspector(cfg.Screenshots.MaxWidth),
		Clipboard:      clipboard.New(),
		DoctorService:  doctorService,
		EnvFiles:       envFiles,
	}, nil
}

// Close flushes the logger.
func (c *Container) Close() error {
	if c == nil || c.Logger == nil {
		return nil
	}
	return c.Logger.Sync()
}

// StdoutIsTerminal reports whether stdout is attached to a terminal.
func StdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
