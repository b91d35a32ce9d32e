// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and external
// adapters (infrastructure). The submission controller and the renderer only see
// these interfaces; the HTTP backend client, the YAML config loader and the zap
// logger live in the infrastructure layer.
//
// Key architectural concepts:
//   - Ports: Interfaces defined here (e.g., AutomationBackend, ConfigProvider)
//   - Adapters: Concrete implementations in the infrastructure layer
//   - Dependency inversion: Application depends on abstractions, not implementations
package ports

import (
	"context"

	"github.com/doeshing/autopilot-go/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.autopilot/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// AutomationBackend submits one request to the remote automation service.
// A returned error is a transport failure: the network call failed, the
// backend answered with a non-2xx status, or the body was not JSON.
type AutomationBackend interface {
	Submit(context.Context, domain.AutomationRequest) (domain.AutomationResult, error)
}

// BackendProbe checks whether the automation backend answers at all.
type BackendProbe interface {
	Ping(context.Context) error
	BaseURL() string
}

// ImageInspector describes base64 encoded images without drawing them.
type ImageInspector interface {
	Inspect(encoded string) (domain.ImageInfo, error)
}

// ImageExporter writes base64 encoded images to disk and returns the path.
type ImageExporter interface {
	Export(encoded, dir, name string) (string, error)
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}

// Clipboard copies text to the system clipboard.
type Clipboard interface {
	Enabled() bool
	Copy(text string) error
}
