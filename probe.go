package monres

import (
	"github.com/greyfell/monres/internal/platform"
)

// Probe is the platform-specific query primitive. Implementations must
// complete synchronously, must not create a visible window or rendering
// context, and must release any display-server connection before
// returning so it cannot interfere with the connection the windowing
// library opens later.
type Probe interface {
	// Name identifies the probe variant for diagnostics.
	Name() string
	// Probe reads the primary monitor's current pixel size.
	Probe() (Resolution, MonitorDescriptor, error)
}

// DetectProbe selects the probe variant for the compile-time target
// and, on Linux, the display-server protocol active at runtime. Exactly
// one variant is selected and it is attempted exactly once per resolve:
// probe failures are structural (unsupported target, missing service),
// not transient, so there is no retry loop and no settle wait.
func DetectProbe() Probe {
	return platformProbe{inner: platform.Detect()}
}

// platformProbe adapts the internal per-platform probe to the public
// Probe interface.
type platformProbe struct {
	inner platform.Probe
}

func (p platformProbe) Name() string {
	return p.inner.Name()
}

func (p platformProbe) Probe() (Resolution, MonitorDescriptor, error) {
	mon, err := p.inner.Probe()
	if err != nil {
		return Resolution{}, MonitorDescriptor{}, err
	}
	return Resolution{Width: mon.Width, Height: mon.Height},
		MonitorDescriptor{Name: mon.Name, Primary: mon.Primary},
		nil
}
