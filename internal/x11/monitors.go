package x11

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/xgb/randr"
)

// ErrNoMonitor reports that the X server enumerated no active monitor.
var ErrNoMonitor = errors.New("no active monitor")

// Monitor represents a physical display.
type Monitor struct {
	Name    string
	Primary bool
	Width   int
	Height  int
}

// PrimaryMonitor returns the primary monitor's current pixel size using
// XRandR. When no primary output is configured, the first active CRTC
// is used instead; when RandR itself is unavailable, the core-protocol
// root screen size is returned.
func (c *Connection) PrimaryMonitor() (Monitor, error) {
	if err := randr.Init(c.XUtil.Conn()); err != nil {
		return c.rootScreenMonitor(fmt.Errorf("randr init failed: %w", err))
	}

	resources, err := randr.GetScreenResources(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return c.rootScreenMonitor(fmt.Errorf("failed to get screen resources: %w", err))
	}

	if mon, ok := c.primaryOutputMonitor(resources); ok {
		return mon, nil
	}

	monitors := c.activeMonitors(resources)
	if len(monitors) == 0 {
		return Monitor{}, ErrNoMonitor
	}
	return monitors[0], nil
}

// primaryOutputMonitor resolves the RandR primary output to its CRTC
// geometry.
func (c *Connection) primaryOutputMonitor(resources *randr.GetScreenResourcesReply) (Monitor, bool) {
	primary, err := randr.GetOutputPrimary(c.XUtil.Conn(), c.Root).Reply()
	if err != nil || primary.Output == 0 {
		return Monitor{}, false
	}

	outputInfo, err := randr.GetOutputInfo(c.XUtil.Conn(), primary.Output, resources.ConfigTimestamp).Reply()
	if err != nil || outputInfo.Crtc == 0 {
		return Monitor{}, false
	}

	crtcInfo, err := randr.GetCrtcInfo(c.XUtil.Conn(), outputInfo.Crtc, resources.ConfigTimestamp).Reply()
	if err != nil || crtcInfo.Width == 0 || crtcInfo.Height == 0 {
		return Monitor{}, false
	}

	return Monitor{
		Name:    string(outputInfo.Name),
		Primary: true,
		Width:   int(crtcInfo.Width),
		Height:  int(crtcInfo.Height),
	}, true
}

// activeMonitors walks all CRTCs and collects those currently driving
// an output.
func (c *Connection) activeMonitors(resources *randr.GetScreenResourcesReply) []Monitor {
	var monitors []Monitor

	for i, crtc := range resources.Crtcs {
		crtcInfo, err := randr.GetCrtcInfo(c.XUtil.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}

		// Skip disabled CRTCs
		if crtcInfo.Width == 0 || crtcInfo.Height == 0 || len(crtcInfo.Outputs) == 0 {
			continue
		}

		name := fmt.Sprintf("Monitor%d", i)
		if outputInfo, err := randr.GetOutputInfo(c.XUtil.Conn(), crtcInfo.Outputs[0], resources.ConfigTimestamp).Reply(); err == nil {
			name = string(outputInfo.Name)
		}

		monitors = append(monitors, Monitor{
			Name:   name,
			Width:  int(crtcInfo.Width),
			Height: int(crtcInfo.Height),
		})
	}

	return monitors
}

// rootScreenMonitor falls back to the core-protocol screen size when
// RandR queries fail. On multi-head setups this is the combined virtual
// screen, which is still preferable to an invented default.
func (c *Connection) rootScreenMonitor(cause error) (Monitor, error) {
	screen := c.XUtil.Screen()
	if screen == nil || screen.WidthInPixels == 0 || screen.HeightInPixels == 0 {
		return Monitor{}, cause
	}

	return Monitor{
		Name:   "root",
		Width:  int(screen.WidthInPixels),
		Height: int(screen.HeightInPixels),
	}, nil
}
