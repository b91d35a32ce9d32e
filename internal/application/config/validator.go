package config

import (
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/doeshing/autopilot-go/internal/application/render"
	"github.com/doeshing/autopilot-go/internal/domain"
)

// Validate ensures config structure is consistent.
func Validate(cfg domain.Config) error {
	if err := validateBackend(cfg.Backend); err != nil {
		return err
	}
	if err := validateUI(cfg.UI); err != nil {
		return err
	}
	if err := validateLogging(cfg.Logging); err != nil {
		return err
	}
	if err := validateScreenshots(cfg.Screenshots); err != nil {
		return err
	}
	return nil
}

func validateBackend(backend domain.BackendSettings) error {
	if strings.TrimSpace(backend.BaseURL) == "" {
		return fmt.Errorf("backend.base_url must be set")
	}
	parsed, err := url.Parse(backend.BaseURL)
	if err != nil {
		return fmt.Errorf("backend.base_url invalid: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("backend.base_url must use http or https, got %q", backend.BaseURL)
	}
	if parsed.Host == "" {
		return fmt.Errorf("backend.base_url must include a host, got %q", backend.BaseURL)
	}
	for name := range backend.Headers {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("backend.headers contains an empty header name")
		}
	}
	return nil
}

func validateUI(ui domain.UISettings) error {
	if _, err := domain.ParseMode(ui.DefaultMode); err != nil {
		return fmt.Errorf("ui.default_mode: %w", err)
	}
	if !strings.EqualFold(ui.DefaultView, "all") {
		if _, err := render.ParseTab(ui.DefaultView); err != nil {
			return fmt.Errorf("ui.default_view: %w", err)
		}
	}
	switch strings.ToLower(ui.Color) {
	case "", domain.ColorAuto, domain.ColorAlways, domain.ColorNever:
	default:
		return fmt.Errorf("ui.color must be auto|always|never, got %s", ui.Color)
	}
	return nil
}

func validateLogging(logging domain.LoggingSettings) error {
	if _, err := zapcore.ParseLevel(logging.Level); err != nil {
		return fmt.Errorf("logging.level invalid: %w", err)
	}
	if logging.MaxSizeMB < 0 || logging.MaxBackups < 0 || logging.MaxAgeDays < 0 {
		return fmt.Errorf("logging rotation limits must be >= 0")
	}
	return nil
}

func validateScreenshots(shots domain.ScreenshotSettings) error {
	if shots.MaxWidth < 0 {
		return fmt.Errorf("screenshots.max_width must be >= 0")
	}
	return nil
}
