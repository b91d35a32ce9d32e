package domain

import "strings"

// BrowserChrome is the browser identifier sent with every request.
const BrowserChrome = "chrome"

// AutomationRequest is a single submission. It is immutable once built.
type AutomationRequest struct {
	Command string
	Mode    Mode
}

// NewAutomationRequest trims the command and validates both fields.
func NewAutomationRequest(command string, mode Mode) (AutomationRequest, error) {
	command = strings.TrimSpace(command)
	if command == "" {
		return AutomationRequest{}, ErrEmptyCommand
	}
	if !mode.Valid() {
		return AutomationRequest{}, ErrUnknownMode
	}
	return AutomationRequest{Command: command, Mode: mode}, nil
}

// RequestBody is the JSON document posted to the backend.
type RequestBody struct {
	Command string `json:"command"`
	Browser string `json:"browser"`
}

// Body builds the wire body for the request.
func (r AutomationRequest) Body() RequestBody {
	return RequestBody{Command: r.Command, Browser: BrowserChrome}
}
