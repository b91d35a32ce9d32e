// Package render turns an automation result into a navigable view.
//
// Everything here is pure: Render and Classify read their arguments and
// return values, with no I/O and no state shared between calls. Presenters
// (the plain writer and the TUI) decide how the view is drawn.
package render

import "github.com/doeshing/autopilot-go/internal/domain"

// Icon is the glyph family shown next to a status.
type Icon string

const (
	IconNone    Icon = ""
	IconCheck   Icon = "check"
	IconCross   Icon = "cross"
	IconWarning Icon = "warning"
)

// Color is the badge color class.
type Color string

const (
	ColorNeutral Color = "neutral"
	ColorGreen   Color = "green"
	ColorRed     Color = "red"
	ColorYellow  Color = "yellow"
)

// Classification is the visual treatment of a status value.
type Classification struct {
	Icon  Icon
	Label string
	Color Color
}

// Classify maps any status string to its badge. Unknown values, including
// the empty string, keep their raw text on a neutral badge.
func Classify(status string) Classification {
	switch domain.Status(status) {
	case domain.StatusSuccess:
		return Classification{Icon: IconCheck, Label: "success", Color: ColorGreen}
	case domain.StatusError:
		return Classification{Icon: IconCross, Label: "error", Color: ColorRed}
	case domain.StatusPartialSuccess:
		return Classification{Icon: IconWarning, Label: "Partial Success", Color: ColorYellow}
	default:
		return Classification{Icon: IconNone, Label: status, Color: ColorNeutral}
	}
}
