//go:build linux

package platform

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/greyfell/monres/internal/x11"
)

// protocol is the display-server protocol active for the session.
type protocol int

const (
	protocolUnknown protocol = iota
	protocolX11
	protocolWayland
)

// Detect selects the probe for the active display-server protocol.
// Wayland sessions that expose an X socket (XWayland) are probed over
// X11, which reports the same output geometry. Pure Wayland sessions
// offer no minimal query handshake here and yield the unsupported
// probe, leaving the caller's fallback policy to apply.
func Detect() Probe {
	switch activeProtocol() {
	case protocolX11:
		return x11Probe{}
	case protocolWayland:
		if strings.TrimSpace(os.Getenv("DISPLAY")) != "" {
			return x11Probe{}
		}
		return unsupportedProbe{reason: "wayland session without an X socket"}
	default:
		if strings.TrimSpace(os.Getenv("DISPLAY")) != "" {
			return x11Probe{}
		}
		return unsupportedProbe{reason: "no display server detected"}
	}
}

func activeProtocol() protocol {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("XDG_SESSION_TYPE"))) {
	case "x11":
		return protocolX11
	case "wayland":
		return protocolWayland
	}
	if strings.TrimSpace(os.Getenv("WAYLAND_DISPLAY")) != "" {
		return protocolWayland
	}
	if strings.TrimSpace(os.Getenv("DISPLAY")) != "" {
		return protocolX11
	}
	return protocolUnknown
}

// x11Probe queries the primary monitor over a dedicated X11 connection
// that is closed before the probe returns, so it cannot interfere with
// a connection the windowing library opens afterwards.
type x11Probe struct{}

func (x11Probe) Name() string { return "x11" }

func (x11Probe) Probe() (Monitor, error) {
	conn, err := x11.NewConnection()
	if err != nil {
		return Monitor{}, fmt.Errorf("%w: connect to X server: %v", ErrQueryFailed, err)
	}
	defer conn.Close()

	mon, err := conn.PrimaryMonitor()
	if err != nil {
		if errors.Is(err, x11.ErrNoMonitor) {
			return Monitor{}, fmt.Errorf("%w: %v", ErrNoMonitor, err)
		}
		return Monitor{}, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	if mon.Width <= 0 || mon.Height <= 0 {
		return Monitor{}, fmt.Errorf("%w: monitor %q reported %dx%d",
			ErrQueryFailed, mon.Name, mon.Width, mon.Height)
	}

	return Monitor{
		Name:    mon.Name,
		Primary: mon.Primary,
		Width:   mon.Width,
		Height:  mon.Height,
	}, nil
}
