package config

import (
	"strings"
	"testing"

	"github.com/doeshing/autopilot-go/internal/domain"
)

func validConfig() domain.Config {
	return domain.Config{
		ConfigFormatVersion: "1",
		Backend:             domain.BackendSettings{BaseURL: "http://localhost:5000"},
		UI:                  domain.UISettings{DefaultMode: "interact", DefaultView: "all", Color: "auto"},
		Logging:             domain.LoggingSettings{Level: "info", MaxSizeMB: 10},
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	if err := Validate(validConfig()); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Config)
		want   string
	}{
		{"empty url", func(c *domain.Config) { c.Backend.BaseURL = "" }, "backend.base_url must be set"},
		{"relative url", func(c *domain.Config) { c.Backend.BaseURL = "localhost:5000" }, "http or https"},
		{"missing host", func(c *domain.Config) { c.Backend.BaseURL = "http://" }, "host"},
		{"unknown mode", func(c *domain.Config) { c.UI.DefaultMode = "scrape" }, "ui.default_mode"},
		{"unknown view", func(c *domain.Config) { c.UI.DefaultView = "images" }, "ui.default_view"},
		{"unknown color", func(c *domain.Config) { c.UI.Color = "rainbow" }, "ui.color"},
		{"bad level", func(c *domain.Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"negative width", func(c *domain.Config) { c.Screenshots.MaxWidth = -1 }, "max_width"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := Validate(cfg)
			if err == nil {
				t.Fatalf("expected error containing %q", tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}

func TestValidateAcceptsSingleView(t *testing.T) {
	cfg := validConfig()
	cfg.UI.DefaultView = "Raw"
	cfg.UI.DefaultMode = "EXTRACT"
	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}
