package doctor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	configapp "github.com/doeshing/autopilot-go/internal/application/config"
	"github.com/doeshing/autopilot-go/internal/domain"
	"github.com/doeshing/autopilot-go/internal/ports"
)

const defaultPingTimeout = 5 * time.Second

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Backend        ports.BackendProbe
	// Terminal reports whether stdout is interactive. Nil skips the check.
	Terminal    func() bool
	PingTimeout time.Duration
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	if err := configapp.Validate(cfg); err != nil {
		checks = append(checks, fail("Config file", err.Error()))
	} else {
		checks = append(checks, ok("Config file", fmt.Sprintf("loaded version %s", cfg.ConfigFormatVersion)))
	}

	checks = append(checks, s.backendCheck(ctx))
	checks = append(checks, logFileCheck(cfg.Logging))
	if dir := cfg.Screenshots.ExportDir; dir != "" {
		checks = append(checks, dirCheck("Screenshot export", dir))
	}
	if s.Terminal != nil {
		if s.Terminal() {
			checks = append(checks, ok("Terminal", "interactive, TUI available"))
		} else {
			checks = append(checks, warn("Terminal", "stdout is not a terminal, TUI disabled"))
		}
	}

	return domain.HealthReport{Checks: checks}, nil
}

func (s *Service) backendCheck(ctx context.Context) domain.HealthCheck {
	if s.Backend == nil {
		return warn("Backend", "backend client not initialized")
	}
	timeout := s.PingTimeout
	if timeout <= 0 {
		timeout = defaultPingTimeout
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := s.Backend.Ping(pingCtx); err != nil {
		return fail("Backend", fmt.Sprintf("%s unreachable: %v", s.Backend.BaseURL(), err))
	}
	return ok("Backend", fmt.Sprintf("%s reachable", s.Backend.BaseURL()))
}

func logFileCheck(logging domain.LoggingSettings) domain.HealthCheck {
	if logging.File == "" {
		return warn("Log file", "file logging disabled")
	}
	return dirCheck("Log file", filepath.Dir(logging.File))
}

func dirCheck(name, dir string) domain.HealthCheck {
	info, err := os.Stat(dir)
	switch {
	case os.IsNotExist(err):
		return warn(name, fmt.Sprintf("%s does not exist yet, it will be created", dir))
	case err != nil:
		return fail(name, err.Error())
	case !info.IsDir():
		return fail(name, fmt.Sprintf("%s is not a directory", dir))
	}
	probe, err := os.CreateTemp(dir, ".autopilot-doctor-*")
	if err != nil {
		return fail(name, fmt.Sprintf("%s not writable: %v", dir, err))
	}
	probe.Close()
	os.Remove(probe.Name())
	return ok(name, fmt.Sprintf("%s writable", dir))
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
