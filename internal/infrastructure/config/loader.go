package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/autopilot-go/assets"
	"github.com/doeshing/autopilot-go/internal/domain"
	"github.com/doeshing/autopilot-go/internal/pkg/filesystem"
	"github.com/doeshing/autopilot-go/internal/ports"
)

// Environment variables consulted by the loader.
const (
	EnvConfigPath  = "AUTOPILOT_CONFIG"
	EnvBackendURL  = "AUTOPILOT_BACKEND_URL"
	EnvDefaultMode = "AUTOPILOT_DEFAULT_MODE"
	EnvLogLevel    = "AUTOPILOT_LOG_LEVEL"
)

// FileLoader loads YAML configuration from ~/.autopilot/config.yaml (overridable via AUTOPILOT_CONFIG).
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider. Missing fields are filled from the
// defaults, paths are expanded and environment overrides are applied.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	cfg, err := l.Read()
	if err != nil {
		return domain.Config{}, err
	}
	return applyEnv(hydrateDefaults(cfg)), nil
}

// Read returns the file as written, creating it with defaults on first use.
// Unlike Load it applies neither defaults nor environment overrides, so the
// result is safe to edit and Save back.
func (l *FileLoader) Read() (domain.Config, error) {
	path := l.Path()
	if err := ensureConfigDir(path); err != nil {
		return domain.Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := l.Save(cfg); err != nil {
				return domain.Config{}, err
			}
			return cfg, nil
		}
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to the resolved path.
func (l *FileLoader) Save(cfg domain.Config) error {
	path := l.Path()
	if err := ensureConfigDir(path); err != nil {
		return err
	}
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, domain.SecureFilePermissions)
}

// Path returns the config file location.
func (l *FileLoader) Path() string {
	if l.overridePath != "" {
		return filesystem.ExpandPath(l.overridePath)
	}
	if custom := os.Getenv(EnvConfigPath); custom != "" {
		return filesystem.ExpandPath(custom)
	}
	return filepath.Join(filesystem.UserHomeDir(), domain.AppDirName, domain.ConfigFileName)
}

func ensureConfigDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, domain.DirectoryPermissions)
}

// Reset overwrites the config with defaults and returns the default snapshot.
func (l *FileLoader) Reset() (domain.Config, error) {
	cfg := DefaultConfig()
	if err := l.Save(cfg); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}

// Backup copies the current config file to a timestamped backup.
func (l *FileLoader) Backup() (string, error) {
	path := l.Path()
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	backup := fmt.Sprintf("%s.%s.bak", path, time.Now().Format("20060102T150405"))
	if err := os.WriteFile(backup, data, domain.SecureFilePermissions); err != nil {
		return "", err
	}
	return backup, nil
}

// DefaultConfig returns the configuration written on first run.
func DefaultConfig() domain.Config {
	var cfg domain.Config
	if err := yaml.Unmarshal(assets.DefaultConfigYAML, &cfg); err != nil {
		return fallbackConfig()
	}
	return cfg
}

func fallbackConfig() domain.Config {
	return domain.Config{
		ConfigFormatVersion: "1",
		Backend: domain.BackendSettings{
			BaseURL: domain.DefaultBackendURL,
		},
		UI: domain.UISettings{
			DefaultMode: string(domain.ModeInteract),
			DefaultView: "all",
			Color:       domain.ColorAuto,
		},
		Logging: domain.LoggingSettings{
			Level:      domain.DefaultLogLevel,
			File:       "~/" + domain.DefaultLogFile,
			MaxSizeMB:  domain.DefaultLogMaxSizeMB,
			MaxBackups: domain.DefaultLogMaxBackups,
			MaxAgeDays: domain.DefaultLogMaxAgeDays,
		},
	}
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	defaults := DefaultConfig()
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = defaults.ConfigFormatVersion
	}
	if cfg.Backend.BaseURL == "" {
		cfg.Backend.BaseURL = defaults.Backend.BaseURL
	}
	if cfg.UI.DefaultMode == "" {
		cfg.UI.DefaultMode = defaults.UI.DefaultMode
	}
	if cfg.UI.DefaultView == "" {
		cfg.UI.DefaultView = defaults.UI.DefaultView
	}
	if cfg.UI.Color == "" {
		cfg.UI.Color = defaults.UI.Color
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaults.Logging.Level
	}
	if cfg.Logging.MaxSizeMB == 0 {
		cfg.Logging.MaxSizeMB = defaults.Logging.MaxSizeMB
	}
	cfg.Logging.File = filesystem.ExpandPath(cfg.Logging.File)
	cfg.Screenshots.ExportDir = filesystem.ExpandPath(cfg.Screenshots.ExportDir)
	return cfg
}

func applyEnv(cfg domain.Config) domain.Config {
	if value := os.Getenv(EnvBackendURL); value != "" {
		cfg.Backend.BaseURL = value
	}
	if value := os.Getenv(EnvDefaultMode); value != "" {
		cfg.UI.DefaultMode = value
	}
	if value := os.Getenv(EnvLogLevel); value != "" {
		cfg.Logging.Level = value
	}
	return cfg
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
