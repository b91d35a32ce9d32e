package commands

// Error messages
const (
	ErrDoctorServiceUnavailable = "doctor service unavailable"
	ErrControllerUnavailable    = "submission controller unavailable"
	ErrKeyRequired              = "--key is required"
)

// Success messages
const (
	MsgConfigurationValid       = "Configuration valid"
	MsgNoDifferencesFromDefault = "No differences from default configuration."
	MsgInitCancelled            = "Init cancelled."
	MsgResetCancelled           = "Reset cancelled."
)

// viewAll selects every offered result tab.
const viewAll = "all"
