// Package platform selects and runs the per-platform monitor probe.
// Each variant opens its own short-lived handle to the display service,
// reads the primary monitor's pixel size and releases the handle before
// returning. No variant creates a visible window or joins a rendering
// library's event loop.
package platform

import (
	"errors"
	"fmt"
)

// Probe failures are classified into three structural causes. They are
// structural rather than transient, so callers attempt a probe exactly
// once.
var (
	ErrUnsupported = errors.New("display probe: unsupported platform")
	ErrQueryFailed = errors.New("display probe: query failed")
	ErrNoMonitor   = errors.New("display probe: no monitor found")
)

// Monitor describes a physical display's current pixel size.
type Monitor struct {
	Name    string
	Primary bool
	Width   int
	Height  int
}

// Probe abstracts the monitor query across platforms.
type Probe interface {
	Name() string
	Probe() (Monitor, error)
}

// unsupportedProbe is returned by Detect when no query path exists for
// the current target or session.
type unsupportedProbe struct {
	reason string
}

func (unsupportedProbe) Name() string { return "unsupported" }

func (p unsupportedProbe) Probe() (Monitor, error) {
	return Monitor{}, fmt.Errorf("%w: %s", ErrUnsupported, p.reason)
}
