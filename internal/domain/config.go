package domain

// Config mirrors ~/.autopilot/config.yaml.
type Config struct {
	ConfigFormatVersion string             `yaml:"config_format_version"`
	Backend             BackendSettings    `yaml:"backend"`
	UI                  UISettings         `yaml:"ui"`
	Logging             LoggingSettings    `yaml:"logging"`
	Screenshots         ScreenshotSettings `yaml:"screenshots"`
}

// BackendSettings locates the automation backend.
type BackendSettings struct {
	BaseURL string            `yaml:"base_url"`
	Headers map[string]string `yaml:"headers,omitempty"`
}

// UISettings holds presentation defaults.
type UISettings struct {
	DefaultMode string `yaml:"default_mode"`
	DefaultView string `yaml:"default_view"`
	Color       string `yaml:"color"`
}

// LoggingSettings configures the rotating log file.
type LoggingSettings struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// ScreenshotSettings controls image export.
type ScreenshotSettings struct {
	ExportDir string `yaml:"export_dir"`
	// MaxWidth downsizes wider images on export; 0 keeps the original size.
	MaxWidth int `yaml:"max_width"`
}

// Color preferences.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)
