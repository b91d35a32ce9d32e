// Package domain defines core entities and value objects for autopilot.
//
// This file contains the automation modes a command can be submitted under.
// The domain layer is independent of infrastructure concerns: nothing here
// performs I/O.
package domain

import (
	"fmt"
	"strings"
)

// Mode selects which automation behavior the backend runs for a command.
type Mode string

const (
	ModeInteract Mode = "interact"
	ModeExtract  Mode = "extract"
)

// Modes lists every supported mode in display order.
var Modes = []Mode{ModeInteract, ModeExtract}

// ParseMode resolves user input (case-insensitive) to a Mode.
func ParseMode(value string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(value))) {
	case ModeInteract:
		return ModeInteract, nil
	case ModeExtract:
		return ModeExtract, nil
	default:
		return "", fmt.Errorf("%w: %q (want interact|extract)", ErrUnknownMode, value)
	}
}

// Valid reports whether m is one of the supported modes.
func (m Mode) Valid() bool {
	return m == ModeInteract || m == ModeExtract
}

// Endpoint returns the backend path serving this mode.
func (m Mode) Endpoint() string {
	return "/" + string(m)
}

// DisplayName is the human label used by mode selectors.
func (m Mode) DisplayName() string {
	switch m {
	case ModeInteract:
		return "Browser Automation"
	case ModeExtract:
		return "Data Extraction"
	default:
		return string(m)
	}
}

// Example is a sample command for the mode.
func (m Mode) Example() string {
	if m == ModeExtract {
		return "Extract all news headlines from CNN"
	}
	return "Open Bing, search for cute puppies"
}

// Placeholder is the input hint shown while the command is empty.
func (m Mode) Placeholder() string {
	return "Enter a command like: '" + m.Example() + "'"
}

func (m Mode) String() string {
	return string(m)
}
