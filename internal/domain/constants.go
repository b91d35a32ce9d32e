package domain

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// SecureFilePermissions is the permission for sensitive files (rw-------)
	SecureFilePermissions = 0o600
	// ExportFilePermissions is the permission for exported screenshots (rw-r--r--)
	ExportFilePermissions = 0o644
)

// Location constants
const (
	// AppDirName is the per-user directory holding config and logs
	AppDirName = ".autopilot"
	// ConfigFileName is the config file inside AppDirName
	ConfigFileName = "config.yaml"
	// DefaultLogFile is the log file path relative to the home directory
	DefaultLogFile = AppDirName + "/logs/autopilot.log"
)

// Backend constants
const (
	// DefaultBackendURL is where the automation backend listens by default
	DefaultBackendURL = "http://localhost:5000"
	// RequestIDHeader carries the per-submission correlation id
	RequestIDHeader = "X-Request-ID"
	// GenericFailureMessage is shown when a failure carries no usable text
	GenericFailureMessage = "An error occurred while processing your request"
)

// Logging constants
const (
	DefaultLogLevel      = "info"
	DefaultLogMaxSizeMB  = 10
	DefaultLogMaxBackups = 3
	DefaultLogMaxAgeDays = 28
)
