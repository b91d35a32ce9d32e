// Package clipboard copies text to the system clipboard.
package clipboard

import (
	"fmt"
	"runtime"

	"github.com/atotto/clipboard"

	"github.com/doeshing/autopilot-go/internal/ports"
)

// Clipboard implements ports.Clipboard on top of the platform clipboard tools
// (pbcopy, xclip, xsel, wl-copy, or the Windows API).
type Clipboard struct {
	write func(string) error
}

// New builds the clipboard helper.
func New() *Clipboard {
	return &Clipboard{write: clipboard.WriteAll}
}

// Enabled reports whether a clipboard backend was found.
func (c *Clipboard) Enabled() bool {
	return !clipboard.Unsupported
}

// Copy copies text to the system clipboard.
func (c *Clipboard) Copy(text string) error {
	if !c.Enabled() {
		return fmt.Errorf("clipboard not supported on %s", runtime.GOOS)
	}
	if err := c.write(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

var _ ports.Clipboard = (*Clipboard)(nil)
