//go:build windows || darwin

package platform

import (
	"fmt"

	"github.com/kbinani/screenshot"
)

// Detect returns the display-bounds probe. Windows and macOS expose
// monitor geometry through the same capture API, so a single variant
// covers both.
func Detect() Probe {
	return displayBoundsProbe{}
}

// displayBoundsProbe reads the primary display's bounds through the OS
// screen-capture enumeration without taking a capture or creating a
// window.
type displayBoundsProbe struct{}

func (displayBoundsProbe) Name() string { return "display-bounds" }

func (displayBoundsProbe) Probe() (Monitor, error) {
	n := screenshot.NumActiveDisplays()
	if n <= 0 {
		return Monitor{}, fmt.Errorf("%w: no active displays", ErrNoMonitor)
	}

	// Display 0 is the primary monitor.
	bounds := screenshot.GetDisplayBounds(0)
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return Monitor{}, fmt.Errorf("%w: display 0 reported %dx%d", ErrQueryFailed, width, height)
	}

	return Monitor{
		Name:    "display-0",
		Primary: true,
		Width:   width,
		Height:  height,
	}, nil
}
